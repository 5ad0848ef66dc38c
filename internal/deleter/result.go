package deleter

type Outcome int

const (
	Unsupported Outcome = iota
	Deleted
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Deleted:
		return "deleted"
	case Failed:
		return "failed"
	default:
		return "unsupported"
	}
}

// Result describes a single delete attempt. Err is set only for Failed.
type Result struct {
	Outcome   Outcome
	Operation string
	Err       error
}

func (r Result) Succeeded() bool {
	return r.Outcome == Deleted
}

// Status is the legacy "true"/"false" rendering of the outcome.
func (r Result) Status() string {
	if r.Succeeded() {
		return "true"
	}
	return "false"
}
