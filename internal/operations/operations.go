package operations

import (
	"awsdeleter/internal/deleter"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"sort"
)

const KinesisConsumer = "kinesis_consumer"

func Defaults() deleter.SupportedOperations {
	return deleter.SupportedOperations{
		KinesisConsumer: {Delete: deleter.Operation(deleter.DeregisterStreamConsumer)},
	}
}

// Load reads a supported operations table from a YAML or JSON file. An empty
// path yields the built-in table.
func Load(path string) (deleter.SupportedOperations, error) {
	if path == "" {
		log.Debug().Msg("no operations file given, using built-in table")
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading operations file")
	}

	ops, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing operations file %s", path)
	}
	log.Debug().Msgf("loaded %d resource types from %s", len(ops), path)
	return ops, nil
}

func Parse(data []byte) (deleter.SupportedOperations, error) {
	ops := deleter.SupportedOperations{}
	if err := yaml.Unmarshal(data, &ops); err != nil {
		return nil, err
	}
	return ops, nil
}

func Render(w io.Writer, ops deleter.SupportedOperations) {
	resourceTypes := make([]string, 0, len(ops))
	for resourceType := range ops {
		resourceTypes = append(resourceTypes, resourceType)
	}
	sort.Strings(resourceTypes)

	data := make([][]string, 0, len(resourceTypes))
	for _, resourceType := range resourceTypes {
		data = append(data, []string{resourceType, ops[resourceType].Delete.String()})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Resource Type", "Delete"})
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}
