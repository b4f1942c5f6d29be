package tables

import (
	"errors"
	"fmt"
)

var ErrInvalidAlphabet = errors.New("invalid alphabet")

// Strict builds a wildcard-free program over alphabet with a pair of
// remembering states per letter.
func Strict(alphabet string) (*Table, error) {
	var symbols []Symbol
	seen := make(map[Symbol]bool)
	for i, s := range SymbolsOf(alphabet) {
		if !s.IsInput() {
			return nil, fmt.Errorf("%w: %q at %d", ErrInvalidAlphabet, s, i)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		symbols = append(symbols, s)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAlphabet)
	}

	scan := map[Symbol]Rule{
		Marker: To(Marker, Right, StartLabel),
		Blank:  To(Blank, Left, "q1"),
	}
	mark := map[Symbol]Rule{
		Marker: To(Marker, Left, "q1"),
		Blank:  To(Blank, Right, AcceptLabel),
	}
	rules := Rules{
		StartLabel:  scan,
		"q1":        mark,
		AcceptLabel: {},
		RejectLabel: {},
	}

	for _, s := range symbols {
		scan[s] = To(s, Right, StartLabel)
		back, compare := strictLabels(s)
		mark[s] = To(Marker, Left, back)

		backRules := map[Symbol]Rule{
			Marker: To(Marker, Left, back),
			Blank:  To(Blank, Right, compare),
		}
		compareRules := map[Symbol]Rule{
			Marker: To(Marker, Right, compare),
			Blank:  To(Blank, Stay, AcceptLabel),
		}
		for _, other := range symbols {
			backRules[other] = To(other, Left, back)
			if other == s {
				compareRules[other] = To(Marker, Right, StartLabel)
			} else {
				compareRules[other] = To(other, Stay, RejectLabel)
			}
		}
		rules[back] = backRules
		rules[compare] = compareRules
	}

	return NewTable("strict", symbols, rules), nil
}

func strictLabels(s Symbol) (back, compare string) {
	return "q2_" + s.String(), "q3_" + s.String()
}
