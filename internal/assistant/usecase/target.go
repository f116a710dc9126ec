package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-calendar/internal/event"
	"task-calendar/internal/model"
)

// resolveTarget finds the single event a command refers to by title. When ok is false,
// res holds the reply to send instead. A date, when given, narrows multiple matches to that day.
func (uc *implUseCase) resolveTarget(ctx context.Context, sc model.Scope, target, date, verb string) (model.Event, outcome, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return model.Event{}, outcome{response: fmt.Sprintf(msgTargetMissing, verb)}, false
	}

	out, err := uc.events.Search(ctx, sc, event.SearchInput{Text: target, Limit: event.SearchLimit})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.resolveTarget Search: %v", err)
		return model.Event{}, outcome{response: msgProcessFailed}, false
	}

	matches := out.Events
	if len(matches) > 1 && strings.TrimSpace(date) != "" {
		rng := uc.parser.ResolveDateRange(date, uc.now())
		var sameDay []model.Event
		for _, e := range matches {
			if rng.Overlaps(e.Start, e.End) {
				sameDay = append(sameDay, e)
			}
		}
		if len(sameDay) > 0 {
			matches = sameDay
		}
	}

	switch len(matches) {
	case 0:
		return model.Event{}, outcome{response: fmt.Sprintf(msgTargetNotFound, target)}, false
	case 1:
		return matches[0], outcome{}, true
	}

	var exact []model.Event
	for _, e := range matches {
		if strings.EqualFold(strings.TrimSpace(e.Title), target) {
			exact = append(exact, e)
		}
	}
	if len(exact) == 1 {
		return exact[0], outcome{}, true
	}

	titles := make([]string, 0, maxListedTargets)
	for i, e := range matches {
		if i == maxListedTargets {
			break
		}
		titles = append(titles, `"`+e.Title+`"`)
	}
	return model.Event{}, outcome{response: fmt.Sprintf(msgTargetAmbig, target, strings.Join(titles, ", "))}, false
}
