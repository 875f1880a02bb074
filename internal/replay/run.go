package replay

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/jask/nameform/internal/form"
)

// Entry is the state after one step.
type Entry struct {
	Step  int        `yaml:"step"`
	Event string     `yaml:"event"`
	State form.State `yaml:"state"`
}

type Trace struct {
	Session string  `yaml:"session"`
	Entries []Entry `yaml:"trace"`
}

// Final returns the state after the last recorded step.
func (t Trace) Final() form.State {
	if len(t.Entries) == 0 {
		return form.State{}
	}
	return t.Entries[len(t.Entries)-1].State
}

// Encode writes the trace as YAML.
func (t Trace) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("replay: encode trace: %w", err)
	}
	return enc.Close()
}

// Run applies every step to a fresh session. On the first failed
// expectation it returns the trace up to and including that step together
// with a *MismatchError.
func Run(s Script, logger *slog.Logger) (Trace, error) {
	ctrl := form.NewController(form.Options{ClearErrorsOnSuccess: s.Options.ClearErrorsOnSuccess})
	session := form.NewSession(ctrl, logger)
	defer session.End()

	trace := Trace{Session: session.ID(), Entries: make([]Entry, 0, len(s.Steps))}
	for i, step := range s.Steps {
		n := i + 1
		var st form.State
		switch ev := step.event().(type) {
		case form.FieldChanged:
			st = session.Edit(ev.Field, ev.Value)
		case form.Submitted:
			st = session.Submit()
		}
		trace.Entries = append(trace.Entries, Entry{Step: n, Event: step.describe(), State: st})
		if err := step.Expect.check(n, st); err != nil {
			return trace, err
		}
	}
	return trace, nil
}
