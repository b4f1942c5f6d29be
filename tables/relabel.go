package tables

import (
	"errors"
	"fmt"
	"maps"
)

var ErrLabelConflict = errors.New("label conflict")

// Relabel returns a copy of t with its start, accept and reject states renamed.
func (t *Table) Relabel(start, accept, reject string) (*Table, error) {
	renames := map[string]string{
		StartLabel:  start,
		AcceptLabel: accept,
		RejectLabel: reject,
	}
	seen := make(map[string]bool)
	for _, label := range []string{start, accept, reject} {
		if label == "" || seen[label] {
			return nil, fmt.Errorf("%w: %q %q %q", ErrLabelConflict, start, accept, reject)
		}
		seen[label] = true
	}
	for label := range t.rules {
		if _, ok := renames[label]; !ok && seen[label] {
			return nil, fmt.Errorf("%w: %q is a working state of %s", ErrLabelConflict, label, t.name)
		}
	}

	rename := func(label string) string {
		if to, ok := renames[label]; ok {
			return to
		}
		return label
	}
	ret := &Table{
		name:     t.name,
		rules:    make(Rules, len(t.rules)),
		alphabet: maps.Clone(t.alphabet),
	}
	for label, symbols := range t.rules {
		renamed := make(map[Symbol]Rule, len(symbols))
		for s, rule := range symbols {
			rule.Next = rename(rule.Next)
			renamed[s] = rule
		}
		ret.rules[rename(label)] = renamed
	}
	return ret, nil
}
