package inquiry

import "github.com/vorolab/site/internal/inquiry"

// InquiryRequest represents a contact form submission
type InquiryRequest struct {
	Name            string `json:"name" binding:"notblank"`
	BusinessName    string `json:"businessName" binding:"notblank"`
	PhoneNumber     string `json:"phoneNumber" binding:"notblank"`
	BusinessAddress string `json:"businessAddress"`
	Instagram       string `json:"instagram"`
	Message         string `json:"message" binding:"notblank"`
}

// ToInquiry converts the request into the domain model
func (r *InquiryRequest) ToInquiry() inquiry.Inquiry {
	return inquiry.Inquiry{
		Name:            r.Name,
		BusinessName:    r.BusinessName,
		PhoneNumber:     r.PhoneNumber,
		BusinessAddress: r.BusinessAddress,
		Instagram:       r.Instagram,
		Message:         r.Message,
	}
}
