package titles

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Summarize strips any HTML markup from a provider description and truncates
// the result to maxLen characters, appending "..." when text was cut.
func Summarize(raw string, maxLen int) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	if strings.Contains(text, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
			text = strings.TrimSpace(doc.Text())
		}
	}

	text = strings.Join(strings.Fields(text), " ")
	if maxLen > 0 && len(text) > maxLen {
		text = text[:maxLen] + "..."
	}
	return text
}
