// Package forms models the entity action dialogs as explicit state:
// Closed -> Open(seeded) -> Submitting -> Closed on success, or back to
// Open with an inline error on failure. The presentation toggle is derived
// from Phase, never owned by the view.
package forms

import "sync"

type Phase int

const (
	Closed Phase = iota
	Open
	Submitting
)

// state is the machinery shared by every form. While Submitting all inputs
// and the submit control are disabled; cancel stays enabled.
type state struct {
	mu        sync.Mutex
	phase     Phase
	submitErr string
	fieldErrs map[string]string
}

func (s *state) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// InputsDisabled mirrors the Submitting guard for the view layer.
func (s *state) InputsDisabled() bool {
	return s.Phase() == Submitting
}

// SubmitError is the inline error shown when a submit was rejected.
func (s *state) SubmitError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitErr
}

// FieldError returns the per-field validation message, if any.
func (s *state) FieldError(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fieldErrs[name]
}

// FieldErrors returns a copy of all current validation messages.
func (s *state) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.fieldErrs))
	for k, v := range s.fieldErrs {
		out[k] = v
	}
	return out
}

// Cancel dismisses the form. Ignored while a submit is outstanding.
func (s *state) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == Submitting {
		return
	}
	s.reset()
}

func (s *state) open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Open
	s.submitErr = ""
	s.fieldErrs = map[string]string{}
}

// beginSubmit moves Open -> Submitting. False when the form is not open or
// a submit is already outstanding (double-submit guard).
func (s *state) beginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Open {
		return false
	}
	s.phase = Submitting
	s.submitErr = ""
	return true
}

// failSubmit returns to Open with the inline error; the form stays up for
// retry or cancel.
func (s *state) failSubmit(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = Open
	s.submitErr = msg
}

// completeSubmit closes the form after a successful mutation.
func (s *state) completeSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *state) setFieldErrs(errs map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fieldErrs = errs
}

func (s *state) reset() {
	s.phase = Closed
	s.submitErr = ""
	s.fieldErrs = map[string]string{}
}
