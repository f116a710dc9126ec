package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves dates and date ranges in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/New_York"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser bound to loc.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// parseRelative reports matched=false when relative is not a phrase it understands.
func (p *Parser) parseRelative(relative string, baseTime time.Time) (time.Time, bool, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), true, nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), true, nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), true, nil
	}

	if strings.HasPrefix(relative, "in ") {
		t, err := p.parseInDuration(relative, baseTime)
		return t, true, err
	}

	if strings.HasPrefix(relative, "next ") {
		if _, isRange := NormalizeKeyword(relative); isRange {
			return baseTime, false, nil
		}
		t, err := p.parseNextWeekday(relative, baseTime)
		return t, true, err
	}

	return baseTime, false, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	local := baseTime.In(p.location)
	daysUntil := int(targetWeekday - local.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(local.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return startOfDay(t.In(p.location))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
