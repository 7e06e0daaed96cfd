package postgres

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/defect-tracker/internal/apperrors"
	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/jmoiron/sqlx"
)

const statusChangesTable = "defect_status_changes"

type StatusChangeRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewStatusChangeRepository(db *sqlx.DB, log *slog.Logger) *StatusChangeRepository {
	return &StatusChangeRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *StatusChangeRepository) Create(ctx context.Context, tx *sqlx.Tx, c domain.StatusChange) (domain.StatusChange, error) {
	const op = "internal.repository.postgres.status_change.Create"

	query, args, err := r.sq.Insert(statusChangesTable).
		SetMap(domain.StatusChangeToStorage(c)).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return domain.StatusChange{}, fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	b, err := scanBag(tx.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if pqErrorCode(err) == codeForeignKeyViolation {
			return domain.StatusChange{}, fmt.Errorf("%s: %w: user or defect", op, apperrors.ErrReferenceNotFound)
		}

		return domain.StatusChange{}, fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return domain.NormalizeStatusChange(b), nil
}

func (r *StatusChangeRepository) ListByDefect(ctx context.Context, defectID int64) ([]domain.StatusChange, error) {
	const op = "internal.repository.postgres.status_change.ListByDefect"

	query, args, err := r.sq.Select("*").
		From(statusChangesTable).
		Where(sq.Eq{"defect_id": defectID}).
		OrderBy("changed_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	bags, err := queryBags(ctx, r.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	changes := make([]domain.StatusChange, 0, len(bags))
	for _, b := range bags {
		changes = append(changes, domain.NormalizeStatusChange(b))
	}

	return changes, nil
}
