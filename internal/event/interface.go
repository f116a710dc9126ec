package event

import (
	"context"

	"task-calendar/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Search ranks visible events by title match, at most SearchLimit.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)
	Query(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}

// Mirror copies store writes to an external calendar. Failures never
// affect the store operation.
type Mirror interface {
	Upsert(ctx context.Context, e model.Event) error
	Delete(ctx context.Context, id string) error
}
