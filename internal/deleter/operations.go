package deleter

import (
	strings2 "awsdeleter/internal/lib/strings"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"strings"
)

// SupportedOperations maps a resource type to the operations allowed on it.
type SupportedOperations map[string]OperationSpec

type OperationSpec struct {
	Delete DeleteOperations `yaml:"delete"`
}

// DeleteOperations holds either a single operation name or a list of them.
// A single name is matched by substring, a list by exact membership. An
// empty name or list is still set and supports nothing.
type DeleteOperations struct {
	names  []string
	scalar bool
	set    bool
}

func Operation(name string) DeleteOperations {
	return DeleteOperations{names: []string{name}, scalar: true, set: true}
}

func Operations(names ...string) DeleteOperations {
	return DeleteOperations{names: names, set: true}
}

func (o DeleteOperations) Supports(name string) bool {
	if o.IsEmpty() {
		return false
	}
	if o.scalar {
		return strings.Contains(o.names[0], name)
	}
	return strings2.OneOf(name, o.names)
}

// IsSet is false when the delete field was never given (or given as null).
func (o DeleteOperations) IsSet() bool {
	return o.set
}

func (o DeleteOperations) IsEmpty() bool {
	return len(o.names) == 0 || (o.scalar && o.names[0] == "")
}

func (o DeleteOperations) Names() []string {
	return o.names
}

func (o DeleteOperations) String() string {
	if o.scalar && len(o.names) == 1 {
		return o.names[0]
	}
	return "[" + strings.Join(o.names, ", ") + "]"
}

func (o *DeleteOperations) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*o = Operation(value.Value)
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return errors.Wrapf(err, "line %d", value.Line)
		}
		*o = Operations(names...)
	default:
		return errors.Errorf("line %d: delete must be an operation name or a list of names", value.Line)
	}
	return nil
}

func (o DeleteOperations) MarshalYAML() (interface{}, error) {
	if o.scalar && len(o.names) == 1 {
		return o.names[0], nil
	}
	return o.names, nil
}
