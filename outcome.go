package payments

import "fmt"

// Status classifies the result of applying one record.
type Status int

const (
	// Applied means the record mutated the addressed account.
	Applied Status = iota
	// Ignored means the record hit an expected business condition (e.g.
	// insufficient funds) and was skipped with a warning.
	Ignored
	// Fatal means the record revealed a data-integrity or arithmetic
	// violation; processing of the stream must stop.
	Fatal
)

func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Outcome is the three-way result of applying one record: Applied,
// Ignored with a human-readable reason, or Fatal with an error.
type Outcome struct {
	Status Status
	Reason string // set when Ignored
	Err    error  // set when Fatal
}

func applied() Outcome {
	return Outcome{Status: Applied}
}

func ignored(format string, args ...any) Outcome {
	return Outcome{Status: Ignored, Reason: fmt.Sprintf(format, args...)}
}

func fatal(err error) Outcome {
	return Outcome{Status: Fatal, Err: err}
}
