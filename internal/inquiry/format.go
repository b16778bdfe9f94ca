package inquiry

import (
	"strings"
	"time"

	// Embedded so the Pacific timestamp works on hosts without zoneinfo.
	_ "time/tzdata"
)

// Title heads every notification.
const Title = "New Inquiry from Voro Lab Website"

// TimestampLayout renders e.g. "October 16, 2026, 03:04 PM PDT".
const TimestampLayout = "January 2, 2006, 03:04 PM MST"

// Location is the timezone notifications are stamped in.
var Location = mustLoadLocation("America/Los_Angeles")

// markdownEscaper escapes the control characters of Telegram's legacy
// Markdown mode inside user-supplied values.
var markdownEscaper = strings.NewReplacer(
	`_`, `\_`,
	`*`, `\*`,
	"`", "\\`",
	`[`, `\[`,
)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("inquiry: loading location " + name + ": " + err.Error())
	}
	return loc
}

// EscapeMarkdown escapes s for Telegram's "Markdown" parse mode.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Format renders in as a Markdown notification stamped with now.
// Optional fields that are empty are left out entirely.
func Format(in Inquiry, now time.Time) string {
	var b strings.Builder

	b.WriteString("🆕 *" + Title + "*\n\n")

	writeField(&b, "👤", "Name", in.Name)
	writeField(&b, "🏢", "Business", in.BusinessName)
	writeField(&b, "📞", "Phone", in.PhoneNumber)
	if strings.TrimSpace(in.BusinessAddress) != "" {
		writeField(&b, "📍", "Address", in.BusinessAddress)
	}
	if strings.TrimSpace(in.Instagram) != "" {
		writeField(&b, "📱", "Instagram", in.Instagram)
	}

	b.WriteString("\n💬 *Message:*\n")
	b.WriteString(EscapeMarkdown(strings.TrimSpace(in.Message)))
	b.WriteString("\n\n---\n*Sent at:* ")
	b.WriteString(now.In(Location).Format(TimestampLayout))

	return b.String()
}

func writeField(b *strings.Builder, icon, label, value string) {
	b.WriteString(icon)
	b.WriteString(" *")
	b.WriteString(label)
	b.WriteString(":* ")
	b.WriteString(EscapeMarkdown(strings.TrimSpace(value)))
	b.WriteByte('\n')
}
