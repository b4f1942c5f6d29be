package machines

import "github.com/reusee/turing/tables"

// Tape is unbounded in both directions. Cells left of the origin are kept in
// reverse order so growing either end never renumbers stored cells.
type Tape struct {
	left  []tables.Symbol
	right []tables.Symbol
	pos   int
}

// Load replaces the contents with symbols. An empty word is a single blank cell.
func (t *Tape) Load(symbols []tables.Symbol) {
	t.left = t.left[:0]
	t.right = append(t.right[:0], symbols...)
	if len(t.right) == 0 {
		t.right = append(t.right, tables.Blank)
	}
	t.pos = 0
}

func (t *Tape) Len() int {
	return len(t.left) + len(t.right)
}

// Head is the index of the head into Cells.
func (t *Tape) Head() int {
	return t.pos + len(t.left)
}

func (t *Tape) Read() tables.Symbol {
	if t.pos >= 0 {
		return t.right[t.pos]
	}
	return t.left[-t.pos-1]
}

func (t *Tape) Write(s tables.Symbol) {
	if t.pos >= 0 {
		t.right[t.pos] = s
		return
	}
	t.left[-t.pos-1] = s
}

func (t *Tape) Move(move tables.Move) {
	switch move {
	case tables.Left:
		t.pos--
		if t.pos < 0 && -t.pos-1 >= len(t.left) {
			t.left = append(t.left, tables.Blank)
		}
	case tables.Right:
		t.pos++
		if t.pos >= len(t.right) {
			t.right = append(t.right, tables.Blank)
		}
	}
}

func (t *Tape) Cells() []tables.Symbol {
	ret := make([]tables.Symbol, t.Len())
	n := len(t.left)
	for i, s := range t.left {
		ret[n-1-i] = s
	}
	copy(ret[n:], t.right)
	return ret
}
