package form

import (
	"fmt"
	"strings"
)

// Field selects one of the three form inputs.
type Field int

const (
	FirstName Field = iota
	LastName
	Email
	fieldCount
)

var fieldNames = [fieldCount]string{
	FirstName: "first_name",
	LastName:  "last_name",
	Email:     "email",
}

var fieldLabels = [fieldCount]string{
	FirstName: "Nama Depan",
	LastName:  "Nama Belakang",
	Email:     "Email",
}

// Fields returns every field in validation order.
func Fields() []Field {
	return []Field{FirstName, LastName, Email}
}

func (f Field) Valid() bool { return f >= 0 && f < fieldCount }

// String returns the snake_case name used in config files and scripts.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Label is the text shown next to the input.
func (f Field) Label() string {
	if !f.Valid() {
		return ""
	}
	return fieldLabels[f]
}

// ParseField accepts the snake_case name or its camelCase spelling.
func ParseField(name string) (Field, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "first_name", "firstname":
		return FirstName, nil
	case "last_name", "lastname":
		return LastName, nil
	case "email":
		return Email, nil
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid field %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := ParseField(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
