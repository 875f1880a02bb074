package form

// State is one snapshot of a form session. It is a value: transitions
// return a new State and never modify the one they were given.
//
// An empty error string means the field has no error.
type State struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	FullName  string `yaml:"full_name"`

	ErrFirstName string `yaml:"error_first_name,omitempty"`
	ErrLastName  string `yaml:"error_last_name,omitempty"`
	ErrEmail     string `yaml:"error_email,omitempty"`
}

// Value returns the raw input for f.
func (s State) Value(f Field) string {
	switch f {
	case FirstName:
		return s.FirstName
	case LastName:
		return s.LastName
	case Email:
		return s.Email
	}
	return ""
}

// Err returns the validation message for f, or "" when it has none.
func (s State) Err(f Field) string {
	switch f {
	case FirstName:
		return s.ErrFirstName
	case LastName:
		return s.ErrLastName
	case Email:
		return s.ErrEmail
	}
	return ""
}

func (s State) HasErrors() bool {
	return s.ErrFirstName != "" || s.ErrLastName != "" || s.ErrEmail != ""
}

// Errors returns the set error messages keyed by field.
func (s State) Errors() map[Field]string {
	out := make(map[Field]string, fieldCount)
	for _, f := range Fields() {
		if msg := s.Err(f); msg != "" {
			out[f] = msg
		}
	}
	return out
}

func (s State) withValue(f Field, v string) State {
	switch f {
	case FirstName:
		s.FirstName = v
	case LastName:
		s.LastName = v
	case Email:
		s.Email = v
	}
	return s
}

func (s State) withErr(f Field, msg string) State {
	switch f {
	case FirstName:
		s.ErrFirstName = msg
	case LastName:
		s.ErrLastName = msg
	case Email:
		s.ErrEmail = msg
	}
	return s
}
