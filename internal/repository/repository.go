// package repository defines the interfaces for the data persistence layer.
// These interfaces abstract the underlying database implementation from the service layer.
package repository

import (
	"context"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/jmoiron/sqlx"
)

// DefectRepository defines the contract for storing defects.
type DefectRepository interface {
	// Create inserts d and returns the stored row with its id and timestamps.
	Create(ctx context.Context, d domain.Defect) (domain.Defect, error)

	// GetByID returns apperrors.ErrNotFound if the defect does not exist.
	GetByID(ctx context.Context, id int64) (domain.Defect, error)

	// List returns the defects matching the status, severity and priority
	// criteria of f, newest first. Free-text search is left to the caller.
	List(ctx context.Context, f domain.DefectFilter) ([]domain.Defect, error)

	// GetForUpdate reads the defect within tx and keeps its row locked until
	// tx ends. It returns apperrors.ErrNotFound if the defect does not exist.
	GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (domain.Defect, error)

	// Update overwrites every storable field of the defect within tx.
	// It returns apperrors.ErrNotFound if the defect does not exist.
	Update(ctx context.Context, tx *sqlx.Tx, id int64, d domain.Defect) (domain.Defect, error)

	// Delete removes the defect together with its comments and attachments.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of stored defects.
	Count(ctx context.Context) (int, error)

	// LockByID acquires a row-level lock ("FOR UPDATE") on the defect, so that it
	// cannot be deleted while dependent records are written in tx.
	// It returns apperrors.ErrNotFound if the defect does not exist.
	LockByID(ctx context.Context, tx *sqlx.Tx, id int64) error
}

// UserRepository defines the contract for storing users.
type UserRepository interface {
	// Create returns *apperrors.UserAlreadyExistsError when the username or
	// email is taken.
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// CommentRepository defines the contract for storing defect comments.
type CommentRepository interface {
	// Create inserts c within tx. It returns apperrors.ErrReferenceNotFound if
	// the author does not exist.
	Create(ctx context.Context, tx *sqlx.Tx, c domain.Comment) (domain.Comment, error)
	ListByDefect(ctx context.Context, defectID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// AttachmentRepository defines the contract for storing attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, tx *sqlx.Tx, a domain.Attachment) (domain.Attachment, error)
	ListByDefect(ctx context.Context, defectID int64) ([]domain.Attachment, error)
	Delete(ctx context.Context, id int64) error
}

// StatusChangeRepository stores the status history of defects.
type StatusChangeRepository interface {
	// Create inserts c within tx. It returns apperrors.ErrReferenceNotFound if
	// the author does not exist.
	Create(ctx context.Context, tx *sqlx.Tx, c domain.StatusChange) (domain.StatusChange, error)

	// ListByDefect returns the history of a defect, oldest change first.
	ListByDefect(ctx context.Context, defectID int64) ([]domain.StatusChange, error)
}
