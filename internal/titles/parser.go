package titles

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucidmotion/showreel/internal/models"
)

var (
	trailingOrderPattern = regexp.MustCompile(`\s*#(\d+)\s*$`)
	yearPattern          = regexp.MustCompile(`^\d{4}$`)
)

var titleKinds = map[string]models.TitleKind{
	"FULL":      models.KindFull,
	"AD":        models.KindAd,
	"MV":        models.KindMV,
	"SNIPPET":   models.KindSnippet,
	"CLIP":      models.KindClip,
	"CUT":       models.KindCut,
	"BREAKDOWN": models.KindBreakdown,
}

// Parse recovers structured fields from a raw provider title following the
// studio's naming convention: YEAR_CLIENT_TITLE..._TYPE, optionally suffixed
// with an explicit featured rank of the form "#<digits>". It is total:
// malformed input yields a ParsedTitle with fields unset, never an error.
func Parse(raw string) models.ParsedTitle {
	var parsed models.ParsedTitle

	remaining := strings.TrimSpace(raw)
	if remaining == "" {
		return parsed
	}

	// Only a rank marker at the very end of the string counts; earlier
	// "#n" look-alikes stay part of the title text.
	if match := trailingOrderPattern.FindStringSubmatch(remaining); match != nil {
		if order, err := strconv.Atoi(match[1]); err == nil {
			parsed.FeaturedOrder = &order
		}
		remaining = strings.TrimSpace(trailingOrderPattern.ReplaceAllString(remaining, ""))
	}

	tokens := splitTokens(remaining)
	if len(tokens) == 0 {
		return parsed
	}

	if yearPattern.MatchString(tokens[0]) {
		if year, err := strconv.Atoi(tokens[0]); err == nil {
			parsed.Year = year
		}
	}

	if len(tokens) > 1 {
		parsed.Client = tokens[1]
	}

	titleEnd := len(tokens)
	if kind, ok := titleKinds[strings.ToUpper(tokens[len(tokens)-1])]; ok {
		parsed.Kind = kind
		titleEnd--
	}

	if titleEnd > 2 {
		parsed.Title = strings.Join(tokens[2:titleEnd], " ")
	}

	return parsed
}

func splitTokens(s string) []string {
	parts := strings.Split(s, "_")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
