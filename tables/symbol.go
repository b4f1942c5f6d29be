package tables

import "unicode/utf8"

type Symbol rune

const (
	None Symbol = 0

	// tape filler for cells never written
	Blank Symbol = -1
	// consumed input cell
	Marker Symbol = -2

	// rule key matching any symbol without an exact rule; as a write, the symbol read
	Any Symbol = -3
	// rule key matching the symbol held by the state; as a write, that symbol
	Held Symbol = -4
)

// IsInput reports whether s may appear in a loaded word.
func (s Symbol) IsInput() bool {
	return s > 0 &&
		s != utf8.RuneError &&
		utf8.ValidRune(rune(s))
}

func (s Symbol) String() string {
	switch s {
	case None:
		return ""
	case Blank:
		return "⊔"
	case Marker:
		return "X"
	case Any:
		return "_any_"
	case Held:
		return "_held_"
	}
	return string(rune(s))
}

// Display is the glyph consumers show for a tape cell.
func (s Symbol) Display() string {
	if s == Blank {
		return "_"
	}
	return s.String()
}

func SymbolsOf(word string) []Symbol {
	ret := make([]Symbol, 0, len(word))
	for _, r := range word {
		ret = append(ret, Symbol(r))
	}
	return ret
}
