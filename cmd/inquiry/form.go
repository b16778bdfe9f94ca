package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vorolab/site/internal/form"
	"github.com/vorolab/site/internal/inquiry"
)

var flagFields = map[string]string{
	"name":      inquiry.FieldName,
	"business":  inquiry.FieldBusinessName,
	"phone":     inquiry.FieldPhoneNumber,
	"address":   inquiry.FieldBusinessAddress,
	"instagram": inquiry.FieldInstagram,
	"message":   inquiry.FieldMessage,
}

func bindInquiryFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("name", "", "Your name (required)")
	flags.String("business", "", "Business name (required)")
	flags.String("phone", "", "Phone number (required)")
	flags.String("address", "", "Business address")
	flags.String("instagram", "", "Instagram handle")
	flags.StringP("message", "m", "", "Message (required)")
}

// stateFromFlags fills a fresh form from the command's inquiry flags.
func stateFromFlags(cmd *cobra.Command) (*form.State, error) {
	state := form.New()
	for flag, field := range flagFields {
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return nil, err
		}
		if err := state.Set(field, value); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// printFieldErrors writes one line per failing field, in form order.
func printFieldErrors(w io.Writer, errs inquiry.FieldErrors) {
	messages := errs.Messages()
	for _, field := range inquiry.Fields {
		if msg, ok := messages[field]; ok {
			fmt.Fprintf(w, "  %s: %s\n", field, msg)
		}
	}
}
