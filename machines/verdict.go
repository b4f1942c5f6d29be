package machines

type Verdict uint8

const (
	Running Verdict = iota
	Accept
	Reject
	// halted in a state that is neither accept nor reject
	Indeterminate
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Indeterminate:
		return "indeterminate"
	}
	return "running"
}

type Outcome uint8

const (
	Halted Outcome = iota
	StepLimit
)

func (o Outcome) String() string {
	if o == StepLimit {
		return "step limit exceeded"
	}
	return "halted"
}
