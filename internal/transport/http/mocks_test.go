package http

import (
	"context"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/service"
	"github.com/stretchr/testify/mock"
)

type DefectServiceMock struct {
	mock.Mock
}

var _ service.DefectService = (*DefectServiceMock)(nil)

func (m *DefectServiceMock) Create(ctx context.Context, input domain.Bag) (domain.Defect, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Defect), args.Error(1)
}

func (m *DefectServiceMock) Get(ctx context.Context, id int64) (domain.Defect, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Defect), args.Error(1)
}

func (m *DefectServiceMock) List(ctx context.Context, filter domain.DefectFilter) ([]domain.Defect, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Defect), args.Error(1)
}

func (m *DefectServiceMock) Update(ctx context.Context, id int64, patch domain.Bag) (domain.Defect, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Defect), args.Error(1)
}

func (m *DefectServiceMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *DefectServiceMock) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *DefectServiceMock) History(ctx context.Context, id int64) ([]domain.StatusChange, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.StatusChange), args.Error(1)
}

type UserServiceMock struct {
	mock.Mock
}

var _ service.UserService = (*UserServiceMock)(nil)

func (m *UserServiceMock) Create(ctx context.Context, input domain.Bag) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserServiceMock) Get(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserServiceMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.User), args.Error(1)
}

type CommentServiceMock struct {
	mock.Mock
}

var _ service.CommentService = (*CommentServiceMock)(nil)

func (m *CommentServiceMock) Create(ctx context.Context, defectID int64, input domain.Bag) (domain.Comment, error) {
	args := m.Called(ctx, defectID, input)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentServiceMock) ListByDefect(ctx context.Context, defectID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, defectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentServiceMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AttachmentServiceMock struct {
	mock.Mock
}

var _ service.AttachmentService = (*AttachmentServiceMock)(nil)

func (m *AttachmentServiceMock) Create(ctx context.Context, defectID int64, input domain.Bag) (domain.Attachment, error) {
	args := m.Called(ctx, defectID, input)
	return args.Get(0).(domain.Attachment), args.Error(1)
}

func (m *AttachmentServiceMock) ListByDefect(ctx context.Context, defectID int64) ([]domain.Attachment, error) {
	args := m.Called(ctx, defectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *AttachmentServiceMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
