package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/repository"
	"github.com/jmoiron/sqlx"
)

type AttachmentService interface {
	Create(ctx context.Context, defectID int64, input domain.Bag) (domain.Attachment, error)
	ListByDefect(ctx context.Context, defectID int64) ([]domain.Attachment, error)
	Delete(ctx context.Context, id int64) error
}

type AttachmentServiceImpl struct {
	BaseService
	defects     repository.DefectRepository
	attachments repository.AttachmentRepository
}

func NewAttachmentService(
	db Transactor,
	log *slog.Logger,
	defects repository.DefectRepository,
	attachments repository.AttachmentRepository,
) *AttachmentServiceImpl {
	return &AttachmentServiceImpl{
		BaseService: NewBaseService(db, log),
		defects:     defects,
		attachments: attachments,
	}
}

// Create records attachment metadata for defectID. File content is stored
// elsewhere, only FilePath points at it.
func (s *AttachmentServiceImpl) Create(ctx context.Context, defectID int64, input domain.Bag) (domain.Attachment, error) {
	const op = "internal.service.attachment.Create"
	log := s.log.With(slog.String("op", op), slog.Int64("defect_id", defectID))

	a := domain.NormalizeAttachment(input)
	a.DefectID = &defectID

	if err := domain.ValidateAttachment(a).Err(); err != nil {
		return domain.Attachment{}, fmt.Errorf("%s: %w", op, err)
	}

	var created domain.Attachment

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		if err := s.defects.LockByID(ctx, tx, defectID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		var err error

		created, err = s.attachments.Create(ctx, tx, a)

		return err
	})
	if err != nil {
		return domain.Attachment{}, err
	}

	log.Info("attachment added", slog.Int64("attachment_id", *created.ID), slog.String("file_name", created.FileName))

	return created, nil
}

func (s *AttachmentServiceImpl) ListByDefect(ctx context.Context, defectID int64) ([]domain.Attachment, error) {
	const op = "internal.service.attachment.ListByDefect"

	if _, err := s.defects.GetByID(ctx, defectID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	attachments, err := s.attachments.ListByDefect(ctx, defectID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list attachments: %w", op, err)
	}

	return attachments, nil
}

func (s *AttachmentServiceImpl) Delete(ctx context.Context, id int64) error {
	const op = "internal.service.attachment.Delete"

	if err := s.attachments.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
