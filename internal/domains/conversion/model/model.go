package model

type Mode int

const (
	ModeNow Mode = iota + 1
	ModeInteractive
	ModeDefaults
	ModeSpecific
)

func (m Mode) String() string {
	switch m {
	case ModeNow:
		return "now"
	case ModeInteractive:
		return "interactive"
	case ModeDefaults:
		return "defaults"
	case ModeSpecific:
		return "specific"
	default:
		return "unknown"
	}
}

// Result is one zone rendering. Exactly one of Display and Err is set.
type Result struct {
	Label   string
	Zone    string
	Display string
	Err     error
}

func (r Result) OK() bool {
	return r.Err == nil
}
