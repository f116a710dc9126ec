package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the calendar date format exchanged with the language model and the UI.
const DateLayout = "2006-01-02"

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether s is exactly a YYYY-MM-DD calendar date.
func IsISODate(s string) bool {
	if !isoDateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a free-form date in the parser's timezone.
// It tries YYYY-MM-DD, then relative phrases, then a general-purpose date parser.
func (p *Parser) ParseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if IsISODate(value) {
		return time.ParseInLocation(DateLayout, value, p.location)
	}

	t, matched, err := p.parseRelative(value, now)
	if err != nil {
		return time.Time{}, err
	}
	if matched {
		return t, nil
	}

	t, err = dateparse.ParseIn(value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", value, err)
	}
	return t.In(p.location), nil
}
