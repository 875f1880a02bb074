package prompt

import (
	"context"
	"fmt"

	"github.com/jask/nameform/internal/form"
)

const fieldHelp = "Kosongkan untuk mempertahankan nilai sebelumnya."

// Run drives session until a submit passes. Every field is asked once;
// after a failed submit only the fields carrying an error are asked again.
// It returns the final state, or the driver's error if one occurs.
func Run(ctx context.Context, d Driver, session *form.Session) (form.State, error) {
	pending := form.Fields()
	for {
		for _, f := range pending {
			if err := ctx.Err(); err != nil {
				return session.State(), err
			}
			current := session.State()
			v, err := d.Input(ctx, InputConfig{
				Message: f.Label() + ":",
				Default: current.Value(f),
				Help:    fieldHelp,
			})
			if err != nil {
				return session.State(), err
			}
			session.Edit(f, v)
		}

		st := session.Submit()
		findings := form.Validate(st)
		pending = pending[:0:0]
		for _, f := range form.Fields() {
			msg := findings.For(f)
			if msg == "" {
				continue
			}
			pending = append(pending, f)
			if err := d.Info(ctx, fmt.Sprintf("  ✗ %s: %s", f.Label(), msg)); err != nil {
				return st, err
			}
		}
		if len(pending) == 0 {
			if err := d.Info(ctx, "Nama Lengkap: "+st.FullName); err != nil {
				return st, err
			}
			return st, nil
		}
	}
}
