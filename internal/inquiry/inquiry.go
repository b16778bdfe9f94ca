// Package inquiry holds the contact-form submission model together with the
// pure functions that validate it and render it as a Telegram notification.
//
// Nothing in this package performs I/O: Validate and Format are safe to call
// from any goroutine and always produce the same output for the same input.
package inquiry

// Field names as they appear in JSON payloads and in FieldErrors.
const (
	FieldName            = "name"
	FieldBusinessName    = "businessName"
	FieldPhoneNumber     = "phoneNumber"
	FieldBusinessAddress = "businessAddress"
	FieldInstagram       = "instagram"
	FieldMessage         = "message"
)

// Fields lists every form field in display order.
var Fields = []string{
	FieldName,
	FieldBusinessName,
	FieldPhoneNumber,
	FieldBusinessAddress,
	FieldInstagram,
	FieldMessage,
}

// Inquiry is a single contact-form submission from a prospective client.
type Inquiry struct {
	Name            string `json:"name" validate:"notblank"`
	BusinessName    string `json:"businessName" validate:"notblank"`
	PhoneNumber     string `json:"phoneNumber" validate:"notblank,phone"`
	BusinessAddress string `json:"businessAddress,omitempty"`
	Instagram       string `json:"instagram,omitempty"`
	Message         string `json:"message" validate:"notblank"`
}
