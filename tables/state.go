package tables

const (
	StartLabel  = "q0"
	AcceptLabel = "q_accept"
	RejectLabel = "q_reject"
)

// State is a control state label, optionally holding one symbol read earlier.
type State struct {
	Label string
	Held  Symbol
}

func (s State) String() string {
	if s.Held == None {
		return s.Label
	}
	return s.Label + "[" + s.Held.String() + "]"
}
