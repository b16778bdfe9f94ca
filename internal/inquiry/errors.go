package inquiry

import (
	"errors"
	"fmt"
	"sort"
)

var requiredMessages = map[string]string{
	FieldName:         "Name is required",
	FieldBusinessName: "Business name is required",
	FieldPhoneNumber:  "Phone number is required",
	FieldMessage:      "Message is required",
}

var invalidMessages = map[string]string{
	FieldPhoneNumber: "Please enter a valid phone number",
}

// RequiredFieldError reports a required field that is empty or whitespace only.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Message returns the text shown next to the field.
func (e *RequiredFieldError) Message() string {
	if msg, ok := requiredMessages[e.Field]; ok {
		return msg
	}
	return e.Error()
}

// InvalidFormatError reports a field whose value does not match its expected format.
type InvalidFormatError struct {
	Field string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s has an invalid format", e.Field)
}

// Message returns the text shown next to the field.
func (e *InvalidFormatError) Message() string {
	if msg, ok := invalidMessages[e.Field]; ok {
		return msg
	}
	return e.Error()
}

// FieldErrors maps a field name to its validation error. An empty map means
// the inquiry is valid.
type FieldErrors map[string]error

// Messages returns the user-facing message for every failing field.
func (fe FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(fe))
	for field, err := range fe {
		var msg interface{ Message() string }
		if errors.As(err, &msg) {
			out[field] = msg.Message()
			continue
		}
		out[field] = err.Error()
	}
	return out
}

// Missing returns the sorted names of fields that failed a required check.
func (fe FieldErrors) Missing() []string {
	var fields []string
	for field, err := range fe {
		var reqErr *RequiredFieldError
		if errors.As(err, &reqErr) {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	return fields
}

// HasRequired reports whether any required field is missing.
func (fe FieldErrors) HasRequired() bool {
	return len(fe.Missing()) > 0
}
