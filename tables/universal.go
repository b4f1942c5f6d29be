package tables

// Universal decides palindromes over any alphabet.
//
// It runs the same passes as Restricted, but the symbol marked on the right is
// carried by q2 and q3 instead of being encoded in per-letter states.
func Universal() *Table {
	return NewTable("universal", nil, Rules{
		StartLabel: {
			Any:   To(Any, Right, StartLabel),
			Blank: To(Blank, Left, "q1"),
		},
		"q1": {
			Marker: To(Marker, Left, "q1"),
			Blank:  To(Blank, Right, AcceptLabel),
			Any:    To(Marker, Left, "q2").Capture(),
		},
		"q2": {
			Blank: To(Blank, Right, "q3").Keep(),
			Any:   To(Any, Left, "q2").Keep(),
		},
		"q3": {
			Marker: To(Marker, Right, "q3").Keep(),
			Held:   To(Marker, Right, StartLabel),
			Blank:  To(Blank, Stay, AcceptLabel),
			Any:    To(Any, Stay, RejectLabel),
		},
		AcceptLabel: {},
		RejectLabel: {},
	})
}
