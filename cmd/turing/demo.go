package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tables"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/words"
)

type demoSet struct {
	table *tables.Table
	words []string
}

var demoWords = []demoSet{
	{tables.Restricted(), []string{"", "a", "b", "aa", "ab", "aba", "abb", "abba", "abab"}},
	{tables.Universal(), []string{"", "x", "xy", "xx", "xyz", "xyx", "radar", "level"}},
}

// RunDemo decides the demo words with the restricted and universal programs,
// then any configured demo words with the configured program,
// returning how many verdicts disagree with a direct comparison.
type RunDemo func(w io.Writer) (mismatches int)

func (Module) RunDemo(
	labels machines.Labels,
	maxSteps tmconfigs.MaxSteps,
	table *tables.Table,
	extra tmconfigs.DemoWords,
) RunDemo {
	sets := demoWords
	if len(extra) > 0 {
		sets = append(slices.Clip(sets), demoSet{table, extra})
	}
	return func(w io.Writer) (mismatches int) {
		for _, set := range sets {
			fmt.Fprintf(w, "%s program\n", set.table.Name())
			m := machines.New(set.table, labels)
			for _, word := range set.words {
				if err := m.Load(word); err != nil {
					fmt.Fprintf(w, "  %q: %v\n", word, err)
					mismatches++
					continue
				}
				steps, outcome := m.Run(int(maxSteps))
				expected := words.IsPalindrome(word)
				got := m.Result() == machines.Accept
				mark := "ok"
				if got != expected || outcome != machines.Halted {
					mark = "MISMATCH"
					mismatches++
				}
				fmt.Fprintf(w, "  %-8q %-8s %5d steps  %s  %s\n",
					word,
					m.Result(),
					steps,
					strings.Join(m.Display(), ""),
					mark,
				)
			}
		}
		return
	}
}
