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

const attachmentsTable = "attachments"

type AttachmentRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewAttachmentRepository(db *sqlx.DB, log *slog.Logger) *AttachmentRepository {
	return &AttachmentRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, tx *sqlx.Tx, a domain.Attachment) (domain.Attachment, error) {
	const op = "internal.repository.postgres.attachment.Create"

	query, args, err := r.sq.Insert(attachmentsTable).
		SetMap(domain.AttachmentToStorage(a)).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return domain.Attachment{}, fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	b, err := scanBag(tx.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if pqErrorCode(err) == codeForeignKeyViolation {
			return domain.Attachment{}, fmt.Errorf("%s: %w: user or defect", op, apperrors.ErrReferenceNotFound)
		}

		return domain.Attachment{}, fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	return domain.NormalizeAttachment(b), nil
}

func (r *AttachmentRepository) ListByDefect(ctx context.Context, defectID int64) ([]domain.Attachment, error) {
	const op = "internal.repository.postgres.attachment.ListByDefect"

	query, args, err := r.sq.Select("*").
		From(attachmentsTable).
		Where(sq.Eq{"defect_id": defectID}).
		OrderBy("uploaded_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	bags, err := queryBags(ctx, r.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	attachments := make([]domain.Attachment, 0, len(bags))
	for _, b := range bags {
		attachments = append(attachments, domain.NormalizeAttachment(b))
	}

	return attachments, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id int64) error {
	const op = "internal.repository.postgres.attachment.Delete"

	return deleteByID(ctx, r.db, r.sq, op, attachmentsTable, "attachment", id)
}
