package debugs

import (
	"fmt"

	"github.com/reusee/turing/machines"
)

// MachineGlobals exposes m to a tap session. Everything is a function so
// values stay current while the session steps the machine.
func MachineGlobals(m *machines.Machine, maxSteps int) map[string]any {
	return map[string]any{
		"program": m.Table().Name(),
		"labels":  m.Labels(),
		"state": func() string {
			return m.State().String()
		},
		"head": func() int {
			return m.Head()
		},
		"tape": func() []string {
			return m.Display()
		},
		"steps": func() int {
			return m.Steps()
		},
		"result": func() string {
			return m.Result().String()
		},
		"halted": func() bool {
			return m.Halted()
		},
		"step": func() string {
			record, err := m.Step()
			if err != nil {
				return err.Error()
			}
			return record.String()
		},
		"run": func() string {
			steps, outcome := m.Run(maxSteps)
			return fmt.Sprintf("%d steps, %s", steps, outcome)
		},
		"load": func(word string) string {
			if err := m.Load(word); err != nil {
				return err.Error()
			}
			return m.State().String()
		},
	}
}
