package machines

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/reusee/turing/tables"
)

func words(alphabet string, maxLen int) []string {
	ret := []string{""}
	last := []string{""}
	for range maxLen {
		var next []string
		for _, w := range last {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		ret = append(ret, next...)
		last = next
	}
	return ret
}

func isPalindrome(word string) bool {
	runes := []rune(word)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

func mustStrict(t *testing.T, alphabet string) *tables.Table {
	table, err := tables.Strict(alphabet)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func decide(t *testing.T, m *Machine, word string) (Verdict, int) {
	t.Helper()
	if err := m.Load(word); err != nil {
		t.Fatal(err)
	}
	steps, outcome := m.Run(1_000_000)
	if outcome != Halted {
		t.Fatalf("%q: got %v", word, outcome)
	}
	return m.Result(), steps
}

func TestDecidesPalindromes(t *testing.T) {
	for _, c := range []struct {
		table    *tables.Table
		alphabet string
		maxLen   int
	}{
		{tables.Restricted(), "ab", 9},
		{tables.Universal(), "ab", 9},
		{tables.Universal(), "abcX", 6},
		{tables.Universal(), "é⊔_", 5},
		{mustStrict(t, "ab"), "ab", 9},
		{mustStrict(t, "xyz"), "xyz", 6},
	} {
		t.Run(c.table.Name()+"/"+c.alphabet, func(t *testing.T) {
			m := New(c.table, DefaultLabels)
			for _, word := range words(c.alphabet, c.maxLen) {
				verdict, _ := decide(t, m, word)
				expected := Reject
				if isPalindrome(word) {
					expected = Accept
				}
				if verdict != expected {
					t.Fatalf("%q: got %v", word, verdict)
				}
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	restricted := New(tables.Restricted(), DefaultLabels)
	universal := New(tables.Universal(), DefaultLabels)
	for _, c := range []struct {
		machine  *Machine
		word     string
		expected Verdict
	}{
		{restricted, "", Accept},
		{universal, "", Accept},
		{restricted, "a", Accept},
		{restricted, "ab", Reject},
		{restricted, "abba", Accept},
		{restricted, "abab", Reject},
		{universal, "radar", Accept},
		{universal, "level", Accept},
		{universal, "abc", Reject},
		{universal, "xyx", Accept},
		{universal, "XaX", Accept},
	} {
		verdict, _ := decide(t, c.machine, c.word)
		if verdict != c.expected {
			t.Fatalf("%s %q: got %v", c.machine.Table().Name(), c.word, verdict)
		}
	}
}

func TestEmptyWord(t *testing.T) {
	m := New(tables.Restricted(), DefaultLabels)
	if err := m.Load(""); err != nil {
		t.Fatal(err)
	}
	if m.tape.Len() != 1 || m.Read() != tables.Blank {
		t.Fatalf("got %v", m.Cells())
	}
	if m.Halted() {
		t.Fatal()
	}
	steps, outcome := m.Run(10)
	if outcome != Halted || steps != 2 {
		t.Fatalf("got %v %v", steps, outcome)
	}
	if m.Result() != Accept {
		t.Fatalf("got %v", m.Result())
	}
	// moved left past the origin and back
	if str := strings.Join(m.Display(), ""); str != "__" {
		t.Fatalf("got %s", str)
	}
	if m.Head() != 1 {
		t.Fatalf("got %v", m.Head())
	}
}

func TestSingleSymbolTrace(t *testing.T) {
	m := New(tables.Restricted(), DefaultLabels)
	if err := m.Load("a"); err != nil {
		t.Fatal(err)
	}
	var trace []string
	for record := range m.Records(100) {
		trace = append(trace, fmt.Sprintf("%s %s%s%s %d", record.From, record.Read, record.Write, record.Move, record.Head))
	}
	expected := []string{
		"q0 aaR 1",
		"q0 ⊔⊔L 0",
		"q1 aXL 0",
		"q2 ⊔⊔R 1",
		"q4 XXR 2",
		"q4 ⊔⊔S 2",
	}
	if str := strings.Join(trace, "\n"); str != strings.Join(expected, "\n") {
		t.Fatalf("got\n%s", str)
	}
	if m.State().Label != tables.AcceptLabel {
		t.Fatalf("got %v", m.State())
	}
	if str := strings.Join(m.Display(), ""); str != "_X_" {
		t.Fatalf("got %s", str)
	}
}

func TestLoadResets(t *testing.T) {
	m := New(tables.Universal(), DefaultLabels)
	for _, word := range []string{"abcba", "ab", "", "racecar"} {
		decide(t, m, word)
		if err := m.Load(word); err != nil {
			t.Fatal(err)
		}
		if m.State() != (tables.State{Label: tables.StartLabel}) {
			t.Fatalf("got %v", m.State())
		}
		if m.Head() != 0 || m.Steps() != 0 {
			t.Fatalf("got %v %v", m.Head(), m.Steps())
		}
		expectedLen := len([]rune(word))
		if expectedLen == 0 {
			expectedLen = 1
		}
		if len(m.Cells()) != expectedLen {
			t.Fatalf("got %v", m.Cells())
		}
		if m.Result() != Running {
			t.Fatalf("got %v", m.Result())
		}
	}
}

func TestStepBound(t *testing.T) {
	restricted := New(tables.Restricted(), DefaultLabels)
	universal := New(tables.Universal(), DefaultLabels)
	strict := New(mustStrict(t, "ab"), DefaultLabels)
	for n := 0; n <= 40; n++ {
		for _, word := range []string{
			strings.Repeat("a", n),
			strings.Repeat("ab", n/2) + strings.Repeat("ba", n/2),
		} {
			_, steps := decide(t, restricted, word)
			size := len(word)
			if steps < size*size/4 || steps > 4*(size+2)*(size+2) {
				t.Fatalf("%q: %d steps", word, steps)
			}
			// same passes regardless of how the marked symbol is remembered
			if _, s := decide(t, universal, word); s != steps {
				t.Fatalf("%q: universal %d, restricted %d", word, s, steps)
			}
			if _, s := decide(t, strict, word); s != steps {
				t.Fatalf("%q: strict %d, restricted %d", word, s, steps)
			}
		}
	}
}

func TestStepHalted(t *testing.T) {
	m := New(tables.Restricted(), DefaultLabels)
	decide(t, m, "ab")
	state := m.State()
	cells := fmt.Sprint(m.Cells())
	head := m.Head()
	_, err := m.Step()
	if !errors.Is(err, ErrHalted) {
		t.Fatalf("got %v", err)
	}
	if m.State() != state || fmt.Sprint(m.Cells()) != cells || m.Head() != head {
		t.Fatal("halted step mutated the machine")
	}
	steps, outcome := m.Run(10)
	if steps != 0 || outcome != Halted {
		t.Fatalf("got %v %v", steps, outcome)
	}
}

func TestInvalidSymbol(t *testing.T) {
	m := New(tables.Restricted(), DefaultLabels)
	if err := m.Load("ab"); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Step(); err != nil {
		t.Fatal(err)
	}

	err := m.Load("abca")
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "at 2") {
		t.Fatalf("got %v", err)
	}
	// untouched
	if m.Steps() != 1 || m.Head() != 1 || strings.Join(m.Display(), "") != "ab" {
		t.Fatalf("got %v %v %v", m.Steps(), m.Head(), m.Display())
	}

	universal := New(tables.Universal(), DefaultLabels)
	if err := universal.Load("a\xffa"); !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("got %v", err)
	}
	if err := universal.Load("a\x00a"); !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("got %v", err)
	}
}

func TestStepLimit(t *testing.T) {
	m := New(tables.Universal(), DefaultLabels)
	if err := m.Load("abcdcba"); err != nil {
		t.Fatal(err)
	}
	steps, outcome := m.Run(5)
	if steps != 5 || outcome != StepLimit {
		t.Fatalf("got %v %v", steps, outcome)
	}
	if m.Result() != Running {
		t.Fatalf("got %v", m.Result())
	}
	// resumable
	more, outcome := m.Run(1_000_000)
	if outcome != Halted || m.Result() != Accept {
		t.Fatalf("got %v %v", outcome, m.Result())
	}
	if m.Steps() != steps+more {
		t.Fatalf("got %v", m.Steps())
	}

	if err := m.Load("abc"); err != nil {
		t.Fatal(err)
	}
	steps, outcome = m.Run(0)
	if steps != 0 || outcome != StepLimit {
		t.Fatalf("got %v %v", steps, outcome)
	}
}

func TestRunaway(t *testing.T) {
	table := tables.NewTable("loop", nil, tables.Rules{
		"q0": {
			tables.Any: tables.To(tables.Any, tables.Right, "q0"),
		},
	})
	m := New(table, DefaultLabels)
	if err := m.Load("a"); err != nil {
		t.Fatal(err)
	}
	steps, outcome := m.Run(1000)
	if steps != 1000 || outcome != StepLimit {
		t.Fatalf("got %v %v", steps, outcome)
	}
	if m.Head() != 1000 || len(m.Cells()) != 1001 {
		t.Fatalf("got %v %v", m.Head(), len(m.Cells()))
	}
}

func TestIndeterminate(t *testing.T) {
	table := tables.NewTable("stuck", nil, tables.Rules{
		"q0": {
			'a': tables.To('a', tables.Left, "q9"),
		},
	})
	m := New(table, DefaultLabels)
	if err := m.Load("a"); err != nil {
		t.Fatal(err)
	}
	if _, outcome := m.Run(10); outcome != Halted {
		t.Fatal()
	}
	if m.Result() != Indeterminate {
		t.Fatalf("got %v", m.Result())
	}
	if m.Table().ContainsState(m.State().Label) {
		t.Fatal()
	}
	if m.Head() != 0 || strings.Join(m.Display(), "") != "_a" {
		t.Fatalf("got %v %v", m.Head(), m.Display())
	}
}

func TestCustomLabels(t *testing.T) {
	table := tables.NewTable("custom", []tables.Symbol{'1'}, tables.Rules{
		"begin": {
			'1':          tables.To('1', tables.Right, "begin"),
			tables.Blank: tables.To(tables.Blank, tables.Stay, "yes"),
		},
	})
	m := New(table, Labels{
		Start:  "begin",
		Accept: "yes",
		Reject: "no",
	})
	verdict, steps := decide(t, m, "111")
	if verdict != Accept || steps != 4 {
		t.Fatalf("got %v %v", verdict, steps)
	}
}

func TestSharedTable(t *testing.T) {
	table := tables.Universal()
	candidates := words("xyz", 5)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := New(table, DefaultLabels)
			for j := i; j < len(candidates); j += 8 {
				word := candidates[j]
				if err := m.Load(word); err != nil {
					errs <- err
					return
				}
				m.Run(1_000_000)
				if (m.Result() == Accept) != isPalindrome(word) {
					errs <- fmt.Errorf("%q: got %v", word, m.Result())
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
