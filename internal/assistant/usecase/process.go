package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-calendar/internal/assistant"
	"task-calendar/internal/event"
	"task-calendar/internal/model"
	"task-calendar/internal/router"
)

// outcome is what an intent handler produced.
type outcome struct {
	response string
	event    *model.Event
	results  []model.Event
}

// Process runs one command end to end. Only empty input, a busy session and session
// store failures are errors; everything else becomes response text.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ProcessOutput{}, assistant.ErrEmptyInput
	}

	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = uc.newID()
	}
	if !uc.guard.acquire(sessionID) {
		return assistant.ProcessOutput{}, assistant.ErrSessionBusy
	}
	defer uc.guard.release(sessionID)

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return assistant.ProcessOutput{}, err
	}

	classified := uc.router.Classify(ctx, text)

	var res outcome
	switch p := classified.Params.(type) {
	case router.CreateParams:
		res = uc.handleCreate(ctx, sc, p, text)
	case router.QueryParams:
		res = uc.handleQuery(ctx, sc, p, classified.Response)
	case router.UpdateParams:
		res = uc.handleUpdate(ctx, sc, p)
	case router.DeleteParams:
		res = uc.handleDelete(ctx, sc, p)
	default:
		res = outcome{response: classified.Response}
		if res.response == "" {
			res.response = msgUnknown
		}
	}

	now := uc.now()
	session.History.Push(assistant.Turn{User: text, Assistant: res.response, Timestamp: now})
	session.LastResponse = res.response
	session.UpdatedAt = now
	if err := uc.sessions.Save(ctx, session); err != nil {
		// The command has already taken effect, so the reply is still returned.
		uc.l.Errorf(ctx, "assistant.usecase.Process Save %s: %v", sessionID, err)
	}

	return assistant.ProcessOutput{
		SessionID: sessionID,
		Intent:    classified,
		Response:  res.response,
		Event:     res.event,
		Results:   res.results,
	}, nil
}

func (uc *implUseCase) loadSession(ctx context.Context, id string) (assistant.Session, error) {
	session, err := uc.sessions.Get(ctx, id)
	if errors.Is(err, assistant.ErrSessionNotFound) {
		return assistant.NewSession(id), nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.loadSession %s: %v", id, err)
		return assistant.Session{}, err
	}
	if session.History == nil {
		session.History = assistant.NewSession(id).History
	}
	return session, nil
}

func (uc *implUseCase) handleCreate(ctx context.Context, sc model.Scope, p router.CreateParams, raw string) outcome {
	input := buildCreateInput(uc.parser, p, raw, uc.now())

	out, err := uc.events.Create(ctx, sc, input)
	if err != nil {
		uc.l.Warnf(ctx, "assistant.usecase.handleCreate: %v", err)
		return outcome{response: msgCreateFailed}
	}

	start := out.Event.Start.In(uc.parser.Location())
	created := out.Event
	return outcome{
		response: fmt.Sprintf(msgCreated, created.Title, start.Format(createdDateLayout), start.Format(createdTimeLayout)),
		event:    &created,
	}
}

func (uc *implUseCase) handleQuery(ctx context.Context, sc model.Scope, p router.QueryParams, classifierResponse string) outcome {
	out, err := uc.events.Query(ctx, sc, event.QueryInput{DateRange: p.DateRange, Query: p.Query, TimeOfDay: p.TimeRange})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.handleQuery: %v", err)
		return outcome{response: msgProcessFailed}
	}

	response := classifierResponse
	if response == "" {
		response = msgQueryDefault
	}
	return outcome{response: response, results: out.Events}
}

func (uc *implUseCase) handleUpdate(ctx context.Context, sc model.Scope, p router.UpdateParams) outcome {
	target, res, ok := uc.resolveTarget(ctx, sc, p.Target, "", "update")
	if !ok {
		return res
	}

	out, err := uc.events.Update(ctx, sc, buildUpdateInput(uc.parser, target, p, uc.now()))
	if err != nil {
		return uc.writeFailure(ctx, target, err)
	}

	updated := out.Event
	return outcome{response: fmt.Sprintf(msgUpdated, updated.Title), event: &updated}
}

func (uc *implUseCase) handleDelete(ctx context.Context, sc model.Scope, p router.DeleteParams) outcome {
	target, res, ok := uc.resolveTarget(ctx, sc, p.Target, p.Date, "delete")
	if !ok {
		return res
	}

	if err := uc.events.Delete(ctx, sc, target.ID); err != nil {
		return uc.writeFailure(ctx, target, err)
	}
	return outcome{response: fmt.Sprintf(msgDeleted, target.Title)}
}

func (uc *implUseCase) writeFailure(ctx context.Context, target model.Event, err error) outcome {
	switch {
	case errors.Is(err, event.ErrForbidden):
		return outcome{response: fmt.Sprintf(msgForbidden, target.Title)}
	case errors.Is(err, event.ErrEventNotFound):
		return outcome{response: fmt.Sprintf(msgTargetNotFound, target.Title)}
	default:
		uc.l.Errorf(ctx, "assistant.usecase.writeFailure %s: %v", target.ID, err)
		return outcome{response: msgProcessFailed}
	}
}
