package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-calendar/internal/event"
	"task-calendar/internal/model"
	"task-calendar/internal/router"
	"task-calendar/pkg/datemath"
)

var clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// parseClock reads a 24h HH:MM time.
func parseClock(value string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// baseDate resolves a classifier date. A YYYY-MM-DD date keeps seed's time of day;
// anything else is the instant the date parser yields. ok is false when value is not a date.
func baseDate(parser *datemath.Parser, value string, seed, now time.Time) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return seed, false
	}

	loc := parser.Location()
	if datemath.IsISODate(value) {
		d, err := time.ParseInLocation(datemath.DateLayout, value, loc)
		if err != nil {
			return seed, false
		}
		seed = seed.In(loc)
		return time.Date(d.Year(), d.Month(), d.Day(), seed.Hour(), seed.Minute(), seed.Second(), 0, loc), true
	}

	d, err := parser.ParseDate(value, now)
	if err != nil {
		return seed, false
	}
	return d.In(loc), true
}

// moveToDate puts seed on the calendar day named by value, keeping its time of day.
func moveToDate(parser *datemath.Parser, value string, seed, now time.Time) time.Time {
	d, ok := baseDate(parser, value, seed, now)
	if !ok {
		return seed
	}
	seed = seed.In(parser.Location())
	return time.Date(d.Year(), d.Month(), d.Day(), seed.Hour(), seed.Minute(), seed.Second(), seed.Nanosecond(), seed.Location())
}

// atClock overwrites the hour and minute of t when value is a valid HH:MM.
func atClock(t time.Time, value string) time.Time {
	hour, minute, ok := parseClock(value)
	if !ok {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// endAfter returns start + duration minutes, or nil when the duration is missing or not positive.
func endAfter(start time.Time, duration *int) *time.Time {
	if duration == nil || *duration <= 0 {
		return nil
	}
	end := start.Add(time.Duration(*duration) * time.Minute)
	return &end
}

// buildCreateInput turns classifier parameters into a new event.
//
//  1. title defaults to "New Task"
//  2. a YYYY-MM-DD date keeps the current time of day; other dates are the parsed instant;
//     no date or an unparseable one means now
//  3. a valid HH:MM time overwrites hour and minute and zeroes seconds
//  4. a positive duration in minutes sets the end
//  5. description defaults to a note quoting the raw input
func buildCreateInput(parser *datemath.Parser, p router.CreateParams, raw string, now time.Time) event.CreateInput {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = defaultTitle
	}

	now = now.In(parser.Location())
	start, ok := baseDate(parser, p.Date, now, now)
	if !ok {
		start = now
	}
	start = atClock(start, p.Time)

	description := strings.TrimSpace(p.Description)
	if description == "" {
		description = fmt.Sprintf(defaultDescriptionPattern, raw)
	}

	return event.CreateInput{
		Title:       title,
		Start:       start,
		End:         endAfter(start, p.Duration),
		Description: description,
	}
}

// buildUpdateInput applies classifier parameters to an existing event. Date and time are
// relative to the current start. When the start moves without a new duration the span is kept.
func buildUpdateInput(parser *datemath.Parser, existing model.Event, p router.UpdateParams, now time.Time) event.UpdateInput {
	input := event.UpdateInput{ID: existing.ID}

	if title := strings.TrimSpace(p.Title); title != "" {
		input.Title = &title
	}
	if description := strings.TrimSpace(p.Description); description != "" {
		input.Description = &description
	}

	oldStart := existing.Start.In(parser.Location())
	start := atClock(moveToDate(parser, p.Date, oldStart, now), p.Time)
	if !start.Equal(oldStart) {
		input.Start = &start
	}

	if end := endAfter(start, p.Duration); end != nil {
		input.End = end
	} else if input.Start != nil && existing.End != nil {
		end := start.Add(existing.End.Sub(existing.Start))
		input.End = &end
	}

	return input
}
