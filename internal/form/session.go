package form

import (
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Session is one lifetime of the form: created empty, driven by a render
// layer, then discarded. Nothing outlives End.
type Session struct {
	id     string
	store  *Store
	logger *slog.Logger
	end    sync.Once
}

func NewSession(ctrl Controller, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	id := uuid.NewString()
	s := &Session{
		id:     id,
		store:  NewStore(ctrl),
		logger: logger.With("session", id),
	}
	s.logger.Info("session started",
		"clear_errors_on_success", ctrl.Options().ClearErrorsOnSuccess)
	return s
}

func (s *Session) ID() string    { return s.id }
func (s *Session) Store() *Store { return s.store }
func (s *Session) State() State  { return s.store.State() }

// Edit forwards one keystroke-level change of a field.
func (s *Session) Edit(f Field, value string) State {
	return s.Send(FieldChanged{Field: f, Value: value}).State
}

func (s *Session) Submit() State {
	return s.Send(Submitted{}).State
}

// Send commits ev to the store and returns the versioned result.
func (s *Session) Send(ev Event) Snapshot {
	next := s.store.Commit(ev)
	switch ev := ev.(type) {
	case FieldChanged:
		s.logger.Debug("field changed", "field", ev.Field.String(), "len", len(ev.Value))
	case Submitted:
		if !Validate(next.State).OK() {
			s.logger.Info("submit rejected", "errors", errorFields(next.State))
		} else {
			s.logger.Info("submit accepted")
		}
	}
	return next
}

// End closes the store. It is safe to call more than once.
func (s *Session) End() {
	s.end.Do(func() {
		s.store.Close()
		s.logger.Info("session ended")
	})
}

// errorFields lists failing field names. Raw values are never logged.
func errorFields(st State) []string {
	var out []string
	for _, f := range Fields() {
		if st.Err(f) != "" {
			out = append(out, f.String())
		}
	}
	return out
}
