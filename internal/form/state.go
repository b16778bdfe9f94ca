// Package form models the inquiry form on the client side: the values being
// edited, the per-field errors currently shown and the submission status.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/vorolab/site/internal/inquiry"
)

// User-facing feedback after a submission attempt.
const (
	SuccessMessage = "Thank you! Your inquiry has been sent successfully. We'll get back to you within 24 hours."
	FailureMessage = "Sorry, there was an error sending your inquiry. Please try again or contact us directly."
)

var (
	ErrInvalidForm  = errors.New("form has validation errors")
	ErrUnknownField = errors.New("unknown form field")
)

// Status is the submission status of a form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Submitter sends a validated inquiry to the relay.
type Submitter interface {
	Submit(ctx context.Context, in inquiry.Inquiry) error
}

// State is the in-memory form. It is not safe for concurrent use.
type State struct {
	Values inquiry.Inquiry
	Errors inquiry.FieldErrors
	Status Status
	// Err holds the cause of the last failed submission.
	Err error
}

// New returns an empty, idle form.
func New() *State {
	return &State{Errors: inquiry.FieldErrors{}}
}

// Set updates one field and clears any error shown for it. The rest of the
// form is not revalidated.
func (s *State) Set(field, value string) error {
	switch field {
	case inquiry.FieldName:
		s.Values.Name = value
	case inquiry.FieldBusinessName:
		s.Values.BusinessName = value
	case inquiry.FieldPhoneNumber:
		s.Values.PhoneNumber = value
	case inquiry.FieldBusinessAddress:
		s.Values.BusinessAddress = value
	case inquiry.FieldInstagram:
		s.Values.Instagram = value
	case inquiry.FieldMessage:
		s.Values.Message = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	delete(s.Errors, field)
	return nil
}

// Validate recomputes every field error and reports whether the form is valid.
func (s *State) Validate() bool {
	s.Errors = inquiry.Validate(s.Values)
	return len(s.Errors) == 0
}

// Submit validates the form and, only if it is valid, hands the values to
// sub. On success the form is reset; on failure the values are kept so the
// user can resubmit.
func (s *State) Submit(ctx context.Context, sub Submitter) error {
	if !s.Validate() {
		return ErrInvalidForm
	}

	s.Status = StatusSubmitting
	s.Err = nil

	if err := sub.Submit(ctx, s.Values); err != nil {
		s.Status = StatusError
		s.Err = err
		return err
	}

	s.Status = StatusSuccess
	s.Values = inquiry.Inquiry{}
	return nil
}

// Feedback returns the message to show for the current status, if any.
func (s *State) Feedback() string {
	switch s.Status {
	case StatusSuccess:
		return SuccessMessage
	case StatusError:
		return FailureMessage
	default:
		return ""
	}
}
