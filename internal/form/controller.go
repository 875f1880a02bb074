package form

// Options tunes controller behaviour. The zero value is the default
// behaviour.
type Options struct {
	// ClearErrorsOnSuccess drops any leftover error messages when a submit
	// passes. Off by default: a passing submit only sets FullName.
	ClearErrorsOnSuccess bool
}

// Controller turns a State into the next State. It holds no state of its
// own, so one Controller can serve any number of sessions.
type Controller struct {
	opts Options
}

func NewController(opts Options) Controller {
	return Controller{opts: opts}
}

func (c Controller) Options() Options { return c.opts }

// OnFieldChange sets f to value and clears f's error. Other fields and
// their errors are untouched and nothing is re-validated.
func (c Controller) OnFieldChange(s State, f Field, value string) State {
	if !f.Valid() {
		return s
	}
	return s.withValue(f, value).withErr(f, "")
}

// OnSubmit validates all fields. On failure it records every finding and
// keeps FullName; on success it sets FullName.
func (c Controller) OnSubmit(s State) State {
	findings := Validate(s)
	if !findings.OK() {
		for _, f := range Fields() {
			s = s.withErr(f, findings[f])
		}
		return s
	}
	s.FullName = JoinFullName(s.FirstName, s.LastName)
	if c.opts.ClearErrorsOnSuccess {
		for _, f := range Fields() {
			s = s.withErr(f, "")
		}
	}
	return s
}

// Apply reduces a single event.
func (c Controller) Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case FieldChanged:
		return c.OnFieldChange(s, e.Field, e.Value)
	case Submitted:
		return c.OnSubmit(s)
	}
	return s
}

var defaultController Controller

// OnFieldChange applies a field edit with default options.
func OnFieldChange(s State, f Field, value string) State {
	return defaultController.OnFieldChange(s, f, value)
}

// OnSubmit applies a submit with default options.
func OnSubmit(s State) State {
	return defaultController.OnSubmit(s)
}
