package tables

import (
	"fmt"
	"maps"
	"slices"
)

type Rules map[string]map[Symbol]Rule

// Table is an immutable transition function. It is safe for concurrent use.
type Table struct {
	name     string
	rules    Rules
	alphabet map[Symbol]bool
}

// NewTable copies rules. A nil alphabet makes a wildcard program accepting any input symbol.
func NewTable(name string, alphabet []Symbol, rules Rules) *Table {
	t := &Table{
		name:  name,
		rules: make(Rules, len(rules)),
	}
	for label, symbols := range rules {
		t.rules[label] = maps.Clone(symbols)
	}
	if alphabet != nil {
		t.alphabet = make(map[Symbol]bool, len(alphabet))
		for _, s := range alphabet {
			t.alphabet[s] = true
		}
	}
	return t
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Lookup(state State, read Symbol) (ret Action, ok bool) {
	rules := t.rules[state.Label]
	if len(rules) == 0 {
		return
	}

	rule, ok := rules[read]
	if !ok && state.Held != None && read == state.Held {
		rule, ok = rules[Held]
	}
	if !ok {
		rule, ok = rules[Any]
	}
	if !ok {
		return
	}

	ret.Write = rule.Write
	switch rule.Write {
	case Any:
		ret.Write = read
	case Held:
		ret.Write = state.Held
	}
	ret.Move = rule.Move
	ret.Next.Label = rule.Next
	switch rule.Hold {
	case Keep:
		ret.Next.Held = state.Held
	case Capture:
		ret.Next.Held = read
	}

	return ret, true
}

// ContainsState reports whether label has at least one rule.
func (t *Table) ContainsState(label string) bool {
	return len(t.rules[label]) > 0
}

// Accepts reports whether s belongs to the working alphabet.
func (t *Table) Accepts(s Symbol) bool {
	if !s.IsInput() {
		return false
	}
	if t.alphabet == nil {
		return true
	}
	return t.alphabet[s]
}

// Alphabet returns the working alphabet, or nil for wildcard programs.
func (t *Table) Alphabet() []Symbol {
	if t.alphabet == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.alphabet))
}

func (t *Table) States() []string {
	return slices.Sorted(maps.Keys(t.rules))
}

func (t *Table) String() string {
	return fmt.Sprintf("<table %s states=%d>", t.name, len(t.rules))
}
