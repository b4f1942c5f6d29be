package tables

type Hold uint8

const (
	Release Hold = iota
	Keep
	Capture
)

type Rule struct {
	Write Symbol
	Move  Move
	Next  string
	Hold  Hold
}

func To(write Symbol, move Move, next string) Rule {
	return Rule{
		Write: write,
		Move:  move,
		Next:  next,
	}
}

// Keep makes the next state hold the current held symbol.
func (r Rule) Keep() Rule {
	r.Hold = Keep
	return r
}

// Capture makes the next state hold the symbol read.
func (r Rule) Capture() Rule {
	r.Hold = Capture
	return r
}

// Action is a rule resolved against the state and the symbol read.
type Action struct {
	Write Symbol
	Move  Move
	Next  State
}
