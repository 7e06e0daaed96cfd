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

const commentsTable = "comments"

type CommentRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewCommentRepository(db *sqlx.DB, log *slog.Logger) *CommentRepository {
	return &CommentRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *CommentRepository) Create(ctx context.Context, tx *sqlx.Tx, c domain.Comment) (domain.Comment, error) {
	const op = "internal.repository.postgres.comment.Create"

	query, args, err := r.sq.Insert(commentsTable).
		SetMap(domain.CommentToStorage(c)).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	b, err := scanBag(tx.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if pqErrorCode(err) == codeForeignKeyViolation {
			return domain.Comment{}, fmt.Errorf("%s: %w: user or defect", op, apperrors.ErrReferenceNotFound)
		}

		return domain.Comment{}, fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return domain.NormalizeComment(b), nil
}

func (r *CommentRepository) ListByDefect(ctx context.Context, defectID int64) ([]domain.Comment, error) {
	const op = "internal.repository.postgres.comment.ListByDefect"

	query, args, err := r.sq.Select("*").
		From(commentsTable).
		Where(sq.Eq{"defect_id": defectID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	bags, err := queryBags(ctx, r.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	comments := make([]domain.Comment, 0, len(bags))
	for _, b := range bags {
		comments = append(comments, domain.NormalizeComment(b))
	}

	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	const op = "internal.repository.postgres.comment.Delete"

	return deleteByID(ctx, r.db, r.sq, op, commentsTable, "comment", id)
}
