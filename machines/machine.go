package machines

import (
	"errors"
	"fmt"
	"iter"

	"github.com/reusee/turing/tables"
)

var (
	ErrHalted        = errors.New("machine halted")
	ErrInvalidSymbol = errors.New("invalid symbol")
)

type Labels struct {
	Start  string
	Accept string
	Reject string
}

var DefaultLabels = Labels{
	Start:  tables.StartLabel,
	Accept: tables.AcceptLabel,
	Reject: tables.RejectLabel,
}

// Machine is not safe for concurrent use. The table may be shared.
type Machine struct {
	table  *tables.Table
	labels Labels
	state  tables.State
	tape   Tape
	steps  int
}

func New(table *tables.Table, labels Labels) *Machine {
	m := &Machine{
		table:  table,
		labels: labels,
	}
	m.reset(nil)
	return m
}

func (m *Machine) reset(symbols []tables.Symbol) {
	m.tape.Load(symbols)
	m.state = tables.State{
		Label: m.labels.Start,
	}
	m.steps = 0
}

// Load puts word on a fresh tape and rewinds to the start state.
func (m *Machine) Load(word string) error {
	symbols := tables.SymbolsOf(word)
	for i, s := range symbols {
		if !m.table.Accepts(s) {
			return fmt.Errorf("%w: %q at %d for %s program", ErrInvalidSymbol, rune(s), i, m.table.Name())
		}
	}
	m.reset(symbols)
	return nil
}

func (m *Machine) Read() tables.Symbol {
	return m.tape.Read()
}

type StepRecord struct {
	Step  int
	From  tables.State
	Read  tables.Symbol
	Write tables.Symbol
	Move  tables.Move
	State tables.State
	Head  int
}

func (r StepRecord) String() string {
	return fmt.Sprintf("%d: δ(%s, %s) = (%s, %s, %s)", r.Step, r.From, r.Read, r.Write, r.Move, r.State)
}

func (m *Machine) Step() (ret StepRecord, err error) {
	read := m.tape.Read()
	action, ok := m.table.Lookup(m.state, read)
	if !ok {
		return ret, fmt.Errorf("%w: state %s, symbol %s", ErrHalted, m.state, read)
	}

	ret.From = m.state
	ret.Read = read
	m.tape.Write(action.Write)
	m.tape.Move(action.Move)
	m.state = action.Next
	m.steps++

	ret.Step = m.steps
	ret.Write = action.Write
	ret.Move = action.Move
	ret.State = m.state
	ret.Head = m.tape.Head()
	return ret, nil
}

func (m *Machine) Halted() bool {
	_, ok := m.table.Lookup(m.state, m.tape.Read())
	return !ok
}

// Records steps the machine at most maxSteps times, yielding every record.
func (m *Machine) Records(maxSteps int) iter.Seq[StepRecord] {
	return func(yield func(StepRecord) bool) {
		for range max(maxSteps, 0) {
			record, err := m.Step()
			if err != nil {
				return
			}
			if !yield(record) {
				return
			}
		}
	}
}

// Run steps until halted or maxSteps steps were taken. The machine may be resumed after StepLimit.
func (m *Machine) Run(maxSteps int) (steps int, outcome Outcome) {
	for range m.Records(maxSteps) {
		steps++
	}
	if m.Halted() {
		return steps, Halted
	}
	return steps, StepLimit
}

func (m *Machine) Result() Verdict {
	if !m.Halted() {
		return Running
	}
	switch m.state.Label {
	case m.labels.Accept:
		return Accept
	case m.labels.Reject:
		return Reject
	}
	return Indeterminate
}

func (m *Machine) State() tables.State {
	return m.state
}

func (m *Machine) Head() int {
	return m.tape.Head()
}

// Steps counts steps since the last load.
func (m *Machine) Steps() int {
	return m.steps
}

func (m *Machine) Cells() []tables.Symbol {
	return m.tape.Cells()
}

// Display renders the tape for consumers, blank as "_".
func (m *Machine) Display() []string {
	cells := m.tape.Cells()
	ret := make([]string, len(cells))
	for i, s := range cells {
		ret[i] = s.Display()
	}
	return ret
}

func (m *Machine) Table() *tables.Table {
	return m.table
}

func (m *Machine) Labels() Labels {
	return m.labels
}
