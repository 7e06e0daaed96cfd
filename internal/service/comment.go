package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/repository"
	"github.com/jmoiron/sqlx"
)

type CommentService interface {
	Create(ctx context.Context, defectID int64, input domain.Bag) (domain.Comment, error)
	ListByDefect(ctx context.Context, defectID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type CommentServiceImpl struct {
	BaseService
	defects  repository.DefectRepository
	comments repository.CommentRepository
}

func NewCommentService(
	db Transactor,
	log *slog.Logger,
	defects repository.DefectRepository,
	comments repository.CommentRepository,
) *CommentServiceImpl {
	return &CommentServiceImpl{
		BaseService: NewBaseService(db, log),
		defects:     defects,
		comments:    comments,
	}
}

// Create stores a comment on defectID. The defect row stays locked until the
// comment is committed.
func (s *CommentServiceImpl) Create(ctx context.Context, defectID int64, input domain.Bag) (domain.Comment, error) {
	const op = "internal.service.comment.Create"
	log := s.log.With(slog.String("op", op), slog.Int64("defect_id", defectID))

	c := domain.NormalizeComment(input)
	c.DefectID = &defectID

	if err := domain.ValidateComment(c).Err(); err != nil {
		return domain.Comment{}, fmt.Errorf("%s: %w", op, err)
	}

	var created domain.Comment

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.defects.LockByID(ctx, tx, defectID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		var err error

		created, err = s.comments.Create(ctx, tx, c)

		return err
	})
	if err != nil {
		return domain.Comment{}, err
	}

	log.Info("comment added", slog.Int64("comment_id", *created.ID))

	return created, nil
}

func (s *CommentServiceImpl) ListByDefect(ctx context.Context, defectID int64) ([]domain.Comment, error) {
	const op = "internal.service.comment.ListByDefect"

	if _, err := s.defects.GetByID(ctx, defectID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comments, err := s.comments.ListByDefect(ctx, defectID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list comments: %w", op, err)
	}

	return comments, nil
}

func (s *CommentServiceImpl) Delete(ctx context.Context, id int64) error {
	const op = "internal.service.comment.Delete"

	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
