package service

import (
	"context"
	"database/sql"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type DefectRepositoryMock struct {
	mock.Mock
}

var _ repository.DefectRepository = (*DefectRepositoryMock)(nil)

func (m *DefectRepositoryMock) Create(ctx context.Context, d domain.Defect) (domain.Defect, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Defect), args.Error(1)
}

func (m *DefectRepositoryMock) GetByID(ctx context.Context, id int64) (domain.Defect, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Defect), args.Error(1)
}

func (m *DefectRepositoryMock) List(ctx context.Context, f domain.DefectFilter) ([]domain.Defect, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Defect), args.Error(1)
}

func (m *DefectRepositoryMock) GetForUpdate(ctx context.Context, tx *sqlx.Tx, id int64) (domain.Defect, error) {
	args := m.Called(ctx, tx, id)
	return args.Get(0).(domain.Defect), args.Error(1)
}

func (m *DefectRepositoryMock) Update(ctx context.Context, tx *sqlx.Tx, id int64, d domain.Defect) (domain.Defect, error) {
	args := m.Called(ctx, tx, id, d)
	return args.Get(0).(domain.Defect), args.Error(1)
}

func (m *DefectRepositoryMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *DefectRepositoryMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *DefectRepositoryMock) LockByID(ctx context.Context, tx *sqlx.Tx, id int64) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

type UserRepositoryMock struct {
	mock.Mock
}

var _ repository.UserRepository = (*UserRepositoryMock)(nil)

func (m *UserRepositoryMock) Create(ctx context.Context, u domain.User) (domain.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepositoryMock) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

type CommentRepositoryMock struct {
	mock.Mock
}

var _ repository.CommentRepository = (*CommentRepositoryMock)(nil)

func (m *CommentRepositoryMock) Create(ctx context.Context, tx *sqlx.Tx, c domain.Comment) (domain.Comment, error) {
	args := m.Called(ctx, tx, c)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentRepositoryMock) ListByDefect(ctx context.Context, defectID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, defectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepositoryMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AttachmentRepositoryMock struct {
	mock.Mock
}

var _ repository.AttachmentRepository = (*AttachmentRepositoryMock)(nil)

func (m *AttachmentRepositoryMock) Create(ctx context.Context, tx *sqlx.Tx, a domain.Attachment) (domain.Attachment, error) {
	args := m.Called(ctx, tx, a)
	return args.Get(0).(domain.Attachment), args.Error(1)
}

func (m *AttachmentRepositoryMock) ListByDefect(ctx context.Context, defectID int64) ([]domain.Attachment, error) {
	args := m.Called(ctx, defectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *AttachmentRepositoryMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type StatusChangeRepositoryMock struct {
	mock.Mock
}

var _ repository.StatusChangeRepository = (*StatusChangeRepositoryMock)(nil)

func (m *StatusChangeRepositoryMock) Create(ctx context.Context, tx *sqlx.Tx, c domain.StatusChange) (domain.StatusChange, error) {
	args := m.Called(ctx, tx, c)
	return args.Get(0).(domain.StatusChange), args.Error(1)
}

func (m *StatusChangeRepositoryMock) ListByDefect(ctx context.Context, defectID int64) ([]domain.StatusChange, error) {
	args := m.Called(ctx, defectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.StatusChange), args.Error(1)
}

type TransactorMock struct {
	mock.Mock
}

func (m *TransactorMock) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	var tx *sqlx.Tx

	args := m.Called(ctx, opts)
	if args.Get(0) != nil {
		tx = args.Get(0).(*sqlx.Tx)
	}

	return tx, args.Error(1)
}
