package tables

// Restricted decides palindromes over {a, b}.
//
// q0 runs right to the blank, q1 marks the rightmost unmarked symbol and picks
// q2 (for a) or q3 (for b) to walk back to the left end, where q4 or q5 skips
// markers and checks the leftmost unmarked symbol against the remembered one.
func Restricted() *Table {
	return NewTable("restricted", []Symbol{'a', 'b'}, Rules{
		StartLabel: {
			'a':    To('a', Right, StartLabel),
			'b':    To('b', Right, StartLabel),
			Marker: To(Marker, Right, StartLabel),
			Blank:  To(Blank, Left, "q1"),
		},
		"q1": {
			Marker: To(Marker, Left, "q1"),
			'a':    To(Marker, Left, "q2"),
			'b':    To(Marker, Left, "q3"),
			Blank:  To(Blank, Right, AcceptLabel),
		},
		"q2": {
			'a':    To('a', Left, "q2"),
			'b':    To('b', Left, "q2"),
			Marker: To(Marker, Left, "q2"),
			Blank:  To(Blank, Right, "q4"),
		},
		"q3": {
			'a':    To('a', Left, "q3"),
			'b':    To('b', Left, "q3"),
			Marker: To(Marker, Left, "q3"),
			Blank:  To(Blank, Right, "q5"),
		},
		"q4": {
			Marker: To(Marker, Right, "q4"),
			'a':    To(Marker, Right, StartLabel),
			'b':    To('b', Stay, RejectLabel),
			// the remembered symbol was the middle one
			Blank: To(Blank, Stay, AcceptLabel),
		},
		"q5": {
			Marker: To(Marker, Right, "q5"),
			'b':    To(Marker, Right, StartLabel),
			'a':    To('a', Stay, RejectLabel),
			Blank:  To(Blank, Stay, AcceptLabel),
		},
		AcceptLabel: {},
		RejectLabel: {},
	})
}
