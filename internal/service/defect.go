package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YusovID/defect-tracker/internal/domain"
	"github.com/YusovID/defect-tracker/internal/repository"
	"github.com/jmoiron/sqlx"
)

type DefectService interface {
	Create(ctx context.Context, input domain.Bag) (domain.Defect, error)
	Get(ctx context.Context, id int64) (domain.Defect, error)
	List(ctx context.Context, filter domain.DefectFilter) ([]domain.Defect, error)
	Update(ctx context.Context, id int64, patch domain.Bag) (domain.Defect, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	History(ctx context.Context, id int64) ([]domain.StatusChange, error)
}

type DefectServiceImpl struct {
	BaseService
	repo    repository.DefectRepository
	history repository.StatusChangeRepository
	cache   *DefectCache
}

func NewDefectService(
	db Transactor,
	log *slog.Logger,
	repo repository.DefectRepository,
	history repository.StatusChangeRepository,
	cache *DefectCache,
) *DefectServiceImpl {
	return &DefectServiceImpl{
		BaseService: NewBaseService(db, log),
		repo:        repo,
		history:     history,
		cache:       cache,
	}
}

func (s *DefectServiceImpl) Create(ctx context.Context, input domain.Bag) (domain.Defect, error) {
	const op = "internal.service.defect.Create"
	log := s.log.With(slog.String("op", op))

	d := domain.NormalizeDefect(input)
	if err := domain.ValidateDefect(d).Err(); err != nil {
		return domain.Defect{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		return domain.Defect{}, fmt.Errorf("%s: failed to create defect: %w", op, err)
	}

	log.Info("defect created", slog.Int64("defect_id", *created.ID))

	return created, nil
}

func (s *DefectServiceImpl) Get(ctx context.Context, id int64) (domain.Defect, error) {
	const op = "internal.service.defect.Get"

	if d, ok := s.cache.Get(id); ok {
		return d, nil
	}

	snapshot := s.cache.Snapshot()

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Defect{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Fill(d, snapshot)

	return d, nil
}

// List narrows by status, severity and priority in storage, then applies
// the full filter so that search and ordering match FilterDefects.
func (s *DefectServiceImpl) List(ctx context.Context, filter domain.DefectFilter) ([]domain.Defect, error) {
	const op = "internal.service.defect.List"

	defects, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list defects: %w", op, err)
	}

	return domain.FilterDefects(defects, filter), nil
}

// Update overlays patch on the stored defect and stores the result. Fields
// missing from patch keep their stored values, explicit nulls clear them.
// A status change is appended to the defect history in the same
// transaction, attributed to changedBy and annotated with statusComment
// when patch carries them.
func (s *DefectServiceImpl) Update(ctx context.Context, id int64, patch domain.Bag) (domain.Defect, error) {
	const op = "internal.service.defect.Update"
	log := s.log.With(slog.String("op", op), slog.Int64("defect_id", id))

	var (
		updated domain.Defect
		from    domain.Status
	)

	err := s.transaction(ctx, op, func(tx *sqlx.Tx) error {
		stored, err := s.repo.GetForUpdate(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		merged := domain.NormalizeDefect(overlay(domain.DefectToWire(stored), patch))
		merged.ID = stored.ID
		merged.CreatedAt = stored.CreatedAt

		if err := domain.ValidateDefect(merged).Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		updated, err = s.repo.Update(ctx, tx, id, merged)
		if err != nil {
			return fmt.Errorf("%s: failed to update defect: %w", op, err)
		}

		from = stored.Status
		if updated.Status == from {
			return nil
		}

		change := domain.NewStatusChange(id, from, updated.Status, patch)
		if _, err := s.history.Create(ctx, tx, change); err != nil {
			return fmt.Errorf("%s: failed to record status change: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return domain.Defect{}, err
	}

	s.cache.Set(updated)

	if updated.Status != from {
		log.Info("defect status changed", slog.String("from", string(from)), slog.String("to", string(updated.Status)))
	} else {
		log.Info("defect updated")
	}

	return updated, nil
}

func (s *DefectServiceImpl) Delete(ctx context.Context, id int64) error {
	const op = "internal.service.defect.Delete"

	err := s.repo.Delete(ctx, id)
	s.cache.Delete(id)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("defect deleted", slog.String("op", op), slog.Int64("defect_id", id))

	return nil
}

// History returns the status changes of a defect, oldest first.
func (s *DefectServiceImpl) History(ctx context.Context, id int64) ([]domain.StatusChange, error) {
	const op = "internal.service.defect.History"

	if _, err := s.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	changes, err := s.history.ListByDefect(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list status changes: %w", op, err)
	}

	return changes, nil
}

func (s *DefectServiceImpl) Count(ctx context.Context) (int, error) {
	const op = "internal.service.defect.Count"

	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// overlay copies base and writes patch over it. A snake_case key in patch
// replaces the camelCase key of base, which would otherwise win on
// normalisation.
func overlay(base map[string]any, patch domain.Bag) domain.Bag {
	merged := make(domain.Bag, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}

	for k, v := range patch {
		if camel := camelCase(k); camel != k {
			delete(merged, camel)
		}

		merged[k] = v
	}

	return merged
}

func camelCase(key string) string {
	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}

	return strings.Join(parts, "")
}
