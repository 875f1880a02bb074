// Package replay drives a form session from a YAML script and records the
// state after every step. It is the headless counterpart of the terminal
// frontends and is used for scripted checks.
package replay

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jask/nameform/internal/form"
)

// ErrEmptyScript is returned by Parse for a document with no steps.
var ErrEmptyScript = errors.New("replay: script has no steps")

type Script struct {
	Options Options `yaml:"options"`
	Steps   []Step  `yaml:"steps"`
}

type Options struct {
	ClearErrorsOnSuccess bool `yaml:"clear_errors_on_success"`
}

// Step is either an edit (Edit names the field) or a submit.
type Step struct {
	Edit   string  `yaml:"edit,omitempty"`
	Value  string  `yaml:"value,omitempty"`
	Submit bool    `yaml:"submit,omitempty"`
	Expect *Expect `yaml:"expect,omitempty"`

	field form.Field
}

// Expect lists values to check after a step. Nil pointers are not
// checked. A non-nil Errors map must match the set errors exactly, so
// `errors: {}` asserts there are none.
type Expect struct {
	FirstName *string           `yaml:"first_name,omitempty"`
	LastName  *string           `yaml:"last_name,omitempty"`
	Email     *string           `yaml:"email,omitempty"`
	FullName  *string           `yaml:"full_name,omitempty"`
	Errors    map[string]string `yaml:"errors,omitempty"`
}

// Parse reads a script, rejecting unknown keys and malformed steps.
func Parse(r io.Reader) (Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, ErrEmptyScript
		}
		return Script{}, fmt.Errorf("replay: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, ErrEmptyScript
	}
	for i := range s.Steps {
		if err := s.Steps[i].resolve(); err != nil {
			return Script{}, fmt.Errorf("replay: step %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (st *Step) resolve() error {
	hasEdit := strings.TrimSpace(st.Edit) != ""
	switch {
	case hasEdit && st.Submit:
		return errors.New("step cannot both edit and submit")
	case !hasEdit && !st.Submit:
		return errors.New("step must set edit or submit")
	}
	if hasEdit {
		f, err := form.ParseField(st.Edit)
		if err != nil {
			return err
		}
		st.field = f
	} else if st.Value != "" {
		return errors.New("value is only valid with edit")
	}
	if st.Expect != nil {
		for name := range st.Expect.Errors {
			if _, err := form.ParseField(name); err != nil {
				return fmt.Errorf("expect.errors: %w", err)
			}
		}
	}
	return nil
}

func (st Step) event() form.Event {
	if st.Submit {
		return form.Submitted{}
	}
	return form.FieldChanged{Field: st.field, Value: st.Value}
}

func (st Step) describe() string {
	if st.Submit {
		return "submit"
	}
	return "edit " + st.field.String()
}

// check compares got with the expectation and reports the first mismatch
// in a stable order.
func (e *Expect) check(step int, got form.State) error {
	if e == nil {
		return nil
	}
	values := []struct {
		name string
		want *string
		got  string
	}{
		{"first_name", e.FirstName, got.FirstName},
		{"last_name", e.LastName, got.LastName},
		{"email", e.Email, got.Email},
		{"full_name", e.FullName, got.FullName},
	}
	for _, v := range values {
		if v.want != nil && *v.want != v.got {
			return &MismatchError{Step: step, Field: v.name, Want: *v.want, Got: v.got}
		}
	}
	if e.Errors == nil {
		return nil
	}

	want := make(map[form.Field]string, len(e.Errors))
	for name, msg := range e.Errors {
		f, _ := form.ParseField(name)
		want[f] = msg
	}
	for _, f := range form.Fields() {
		if want[f] != got.Err(f) {
			return &MismatchError{Step: step, Field: "error_" + f.String(), Want: want[f], Got: got.Err(f)}
		}
	}
	return nil
}

// MismatchError reports an expectation that did not hold.
type MismatchError struct {
	Step  int
	Field string
	Want  string
	Got   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("replay: step %d: %s = %q, want %q", e.Step, e.Field, e.Got, e.Want)
}
