package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// StrictPolicy removes all HTML tags and attributes.
	StrictPolicy = bluemonday.StrictPolicy()

	// UGCPolicy allows safe formatting (<p>, <b>, <em>, <a>, lists) and drops
	// scripts, iframes, event handlers and style attributes.
	UGCPolicy = bluemonday.UGCPolicy()
)

// Text strips all HTML and trims surrounding whitespace. Entities produced by
// the policy are decoded so plain text stays readable in mails and PDFs.
// Use for names, remarks and contact form fields.
func Text(input string) string {
	return strings.TrimSpace(html.UnescapeString(StrictPolicy.Sanitize(input)))
}

// HTML sanitizes HTML content, allowing safe formatting tags.
// Use for seminar descriptions.
func HTML(input string) string {
	return strings.TrimSpace(UGCPolicy.Sanitize(input))
}

// OptionalText applies Text to a non-nil value. Blank results become nil.
func OptionalText(input *string) *string {
	if input == nil {
		return nil
	}
	s := Text(*input)
	if s == "" {
		return nil
	}
	return &s
}
