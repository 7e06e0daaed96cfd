package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/YusovID/defect-tracker/internal/apperrors"
	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/jmoiron/sqlx"
)

const defectsTable = "defects"

type DefectRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewDefectRepository(db *sqlx.DB, log *slog.Logger) *DefectRepository {
	return &DefectRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DefectRepository) Create(ctx context.Context, d domain.Defect) (domain.Defect, error) {
	const op = "internal.repository.postgres.defect.Create"

	query, args, err := r.sq.Insert(defectsTable).
		SetMap(domain.DefectToStorage(d)).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return domain.Defect{}, fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	b, err := scanBag(r.db.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if pqErrorCode(err) == codeForeignKeyViolation {
			return domain.Defect{}, fmt.Errorf("%s: %w: assignee or reporter", op, apperrors.ErrReferenceNotFound)
		}

		return domain.Defect{}, fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return domain.NormalizeDefect(b), nil
}

func (r *DefectRepository) GetByID(ctx context.Context, id int64) (domain.Defect, error) {
	const op = "internal.repository.postgres.defect.GetByID"

	query, args, err := r.sq.Select("*").
		From(defectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Defect{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	b, err := scanBag(r.db.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Defect{}, fmt.Errorf("%s: %w", op, &apperrors.NotFoundError{Kind: "defect", ID: id})
		}

		return domain.Defect{}, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return domain.NormalizeDefect(b), nil
}

func (r *DefectRepository) List(ctx context.Context, f domain.DefectFilter) ([]domain.Defect, error) {
	const op = "internal.repository.postgres.defect.List"

	builder := r.sq.Select("*").
		From(defectsTable).
		OrderBy("created_at DESC", "id DESC")

	if f.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(f.Status)})
	}

	if f.Severity != "" {
		builder = builder.Where(sq.Eq{"severity": string(f.Severity)})
	}

	if f.Priority != 0 {
		builder = builder.Where(sq.Eq{"priority": f.Priority})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	bags, err := queryBags(ctx, r.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	defects := make([]domain.Defect, 0, len(bags))
	for _, b := range bags {
		defects = append(defects, domain.NormalizeDefect(b))
	}

	return defects, nil
}

func (r *DefectRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (domain.Defect, error) {
	const op = "internal.repository.postgres.defect.GetForUpdate"

	query, args, err := r.sq.Select("*").
		From(defectsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return domain.Defect{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	b, err := scanBag(tx.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Defect{}, fmt.Errorf("%s: %w", op, &apperrors.NotFoundError{Kind: "defect", ID: id})
		}

		return domain.Defect{}, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return domain.NormalizeDefect(b), nil
}

func (r *DefectRepository) Update(ctx context.Context, tx *sqlx.Tx, id int64, d domain.Defect) (domain.Defect, error) {
	const op = "internal.repository.postgres.defect.Update"

	query, args, err := r.sq.Update(defectsTable).
		SetMap(domain.DefectToStorage(d)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return domain.Defect{}, fmt.Errorf("%s: failed to build update query: %w", op, err)
	}

	b, err := scanBag(tx.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Defect{}, fmt.Errorf("%s: %w", op, &apperrors.NotFoundError{Kind: "defect", ID: id})
		}

		if pqErrorCode(err) == codeForeignKeyViolation {
			return domain.Defect{}, fmt.Errorf("%s: %w: assignee or reporter", op, apperrors.ErrReferenceNotFound)
		}

		return domain.Defect{}, fmt.Errorf("%s: failed to execute update: %w", op, err)
	}

	return domain.NormalizeDefect(b), nil
}

func (r *DefectRepository) Delete(ctx context.Context, id int64) error {
	const op = "internal.repository.postgres.defect.Delete"

	return deleteByID(ctx, r.db, r.sq, op, defectsTable, "defect", id)
}

func (r *DefectRepository) Count(ctx context.Context) (int, error) {
	const op = "internal.repository.postgres.defect.Count"

	query, args, err := r.sq.Select("COUNT(*)").From(defectsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return count, nil
}

func (r *DefectRepository) LockByID(ctx context.Context, tx *sqlx.Tx, id int64) error {
	const op = "internal.repository.postgres.defect.LockByID"

	query, args, err := r.sq.Select("id").
		From(defectsTable).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	var locked int64
	if err := tx.GetContext(ctx, &locked, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, &apperrors.NotFoundError{Kind: "defect", ID: id})
		}

		return fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return nil
}

// deleteByID removes a single row and reports a NotFoundError when nothing
// was deleted.
func deleteByID(ctx context.Context, db sqlx.ExecerContext, b sq.StatementBuilderType, op, table, kind string, id int64) error {
	query, args, err := b.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: failed to build delete query: %w", op, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: failed to execute delete: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get affected rows: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: %w", op, &apperrors.NotFoundError{Kind: kind, ID: id})
	}

	return nil
}
