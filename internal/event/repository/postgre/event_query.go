package postgre

import (
	"fmt"
	"strings"

	repo "task-calendar/internal/event/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneEvent.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneEventOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.CreatedBy != "" {
		conditions = append(conditions, fmt.Sprintf("created_by = $%d", idx))
		args = append(args, opt.CreatedBy)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildOwnerFilter restricts rows to one creator when createdBy is set.
func (r *implRepository) buildOwnerFilter(createdBy string) (string, []any) {
	if createdBy == "" {
		return "1=1", nil
	}
	return "created_by = $1", []any{createdBy}
}

// buildPagination renders LIMIT/OFFSET placeholders starting at idx.
func (r *implRepository) buildPagination(limit, offset, idx int) (string, []any) {
	var parts []string
	var args []any

	if limit > 0 {
		parts = append(parts, fmt.Sprintf(" LIMIT $%d", idx))
		args = append(args, limit)
		idx++
	}
	if offset > 0 {
		parts = append(parts, fmt.Sprintf(" OFFSET $%d", idx))
		args = append(args, offset)
	}
	return strings.Join(parts, ""), args
}

// buildSearchQuery ranks exact title matches first, then earlier substring
// positions, then creation order.
func (r *implRepository) buildSearchQuery(opt repo.SearchEventsOptions) (string, []any) {
	args := []any{"%" + escapeLike(opt.Text) + "%", opt.Text}
	conditions := []string{`title ILIKE $1 ESCAPE '\'`}

	if opt.CreatedBy != "" {
		args = append(args, opt.CreatedBy)
		conditions = append(conditions, fmt.Sprintf("created_by = $%d", len(args)))
	}

	query := fmt.Sprintf(
		"SELECT %s FROM events WHERE %s ORDER BY (lower(title) = lower($2)) DESC, strpos(lower(title), lower($2)) ASC, created_at ASC, id ASC",
		eventColumns, strings.Join(conditions, " AND "),
	)

	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
