package datemath

import (
	"strings"
	"time"
)

// Keyword is a relative date-range keyword. The underscored spelling is canonical.
type Keyword string

const (
	KeywordToday    Keyword = "today"
	KeywordTomorrow Keyword = "tomorrow"
	KeywordThisWeek Keyword = "this_week"
	KeywordNextWeek Keyword = "next_week"
)

// Keywords lists the supported keywords.
var Keywords = []Keyword{KeywordToday, KeywordTomorrow, KeywordThisWeek, KeywordNextWeek}

// Range is a half-open interval [Start, End). A range with End <= Start is empty.
type Range struct {
	Start time.Time
	End   time.Time
}

// Empty reports whether r contains no instant.
func (r Range) Empty() bool {
	return !r.End.After(r.Start)
}

// Contains reports whether t is in [Start, End).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Overlaps reports whether an item spanning [start, end] touches r.
// A nil end means the item is a single instant at start.
func (r Range) Overlaps(start time.Time, end *time.Time) bool {
	if r.Empty() {
		return false
	}
	last := start
	if end != nil {
		last = *end
	}
	return !last.Before(r.Start) && start.Before(r.End)
}

// NormalizeKeyword maps spelling variants ("This Week", "next-week", "this_week") onto the
// canonical keyword.
func NormalizeKeyword(s string) (Keyword, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")

	switch k := Keyword(s); k {
	case KeywordToday, KeywordTomorrow, KeywordThisWeek, KeywordNextWeek:
		return k, true
	}
	return "", false
}

// Resolve maps a keyword to calendar-day boundaries in now's location.
// Weeks start on Sunday. Unknown keywords resolve to an empty range.
func Resolve(keyword string, now time.Time) Range {
	k, ok := NormalizeKeyword(keyword)
	if !ok {
		return Range{Start: now, End: now}
	}

	y, m, d := now.Date()
	loc := now.Location()
	day := func(offset int) time.Time {
		return time.Date(y, m, d+offset, 0, 0, 0, 0, loc)
	}
	wd := int(now.Weekday())

	switch k {
	case KeywordToday:
		return Range{Start: day(0), End: day(1)}
	case KeywordTomorrow:
		return Range{Start: day(1), End: day(2)}
	case KeywordThisWeek:
		return Range{Start: day(-wd), End: day(-wd + 7)}
	default: // KeywordNextWeek
		return Range{Start: day(7 - wd), End: day(14 - wd)}
	}
}

// Resolve is the package-level Resolve evaluated in the parser's timezone.
func (p *Parser) Resolve(keyword string, now time.Time) Range {
	return Resolve(keyword, now.In(p.location))
}

// ResolveDateRange resolves a keyword, or else a specific date covering that whole day.
// Anything else yields an empty range.
func (p *Parser) ResolveDateRange(value string, now time.Time) Range {
	if _, ok := NormalizeKeyword(value); ok {
		return p.Resolve(value, now)
	}

	t, err := p.ParseDate(value, now)
	if err != nil {
		local := now.In(p.location)
		return Range{Start: local, End: local}
	}
	start := p.StartOfDay(t)
	return Range{Start: start, End: start.AddDate(0, 0, 1)}
}

// DayPart is a named window of the day.
type DayPart string

const (
	DayPartMorning   DayPart = "morning"
	DayPartAfternoon DayPart = "afternoon"
	DayPartEvening   DayPart = "evening"
)

// dayPartHours holds [from, to) hours per part.
var dayPartHours = map[DayPart][2]int{
	DayPartMorning:   {5, 12},
	DayPartAfternoon: {12, 17},
	DayPartEvening:   {17, 24},
}

// NormalizeDayPart maps "Morning", " evening " and similar onto a DayPart.
func NormalizeDayPart(s string) (DayPart, bool) {
	d := DayPart(strings.ToLower(strings.TrimSpace(s)))
	_, ok := dayPartHours[d]
	return d, ok
}

// Window returns the part's range on the calendar day of t, in t's location.
func (d DayPart) Window(t time.Time) Range {
	h, ok := dayPartHours[d]
	if !ok {
		return Range{Start: t, End: t}
	}
	y, m, day := t.Date()
	loc := t.Location()
	return Range{
		Start: time.Date(y, m, day, h[0], 0, 0, 0, loc),
		End:   time.Date(y, m, day, h[1], 0, 0, 0, loc),
	}
}

// StartsIn reports whether t falls inside the part of its own day.
func (d DayPart) StartsIn(t time.Time) bool {
	return d.Window(t).Contains(t)
}
