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

const usersTable = "users"

type UserRepository struct {
	db  *sqlx.DB
	log *slog.Logger
	sq  sq.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
		sq:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (ur *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const op = "internal.repository.postgres.user.Create"

	log := ur.log.With(slog.String("op", op))
	log.Debug("creating user", slog.String("username", u.Username))

	query, args, err := ur.sq.Insert(usersTable).
		SetMap(domain.UserToStorage(u)).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: failed to build insert query: %w", op, err)
	}

	b, err := scanBag(ur.db.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if pqErrorCode(err) == codeUniqueViolation {
			return domain.User{}, &apperrors.UserAlreadyExistsError{Username: u.Username, Email: u.Email}
		}

		return domain.User{}, fmt.Errorf("%s: failed to execute insert: %w", op, err)
	}

	log.Debug("user created")

	return domain.NormalizeUser(b), nil
}

func (ur *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const op = "internal.repository.postgres.user.GetByID"

	query, args, err := ur.sq.Select("*").
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.User{}, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	b, err := scanBag(ur.db.QueryRowxContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, fmt.Errorf("%s: %w", op, &apperrors.NotFoundError{Kind: "user", ID: id})
		}

		return domain.User{}, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	return domain.NormalizeUser(b), nil
}

func (ur *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	const op = "internal.repository.postgres.user.List"

	query, args, err := ur.sq.Select("*").
		From(usersTable).
		OrderBy("username").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build query: %w", op, err)
	}

	bags, err := queryBags(ctx, ur.db, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to execute query: %w", op, err)
	}

	users := make([]domain.User, 0, len(bags))
	for _, b := range bags {
		users = append(users, domain.NormalizeUser(b))
	}

	return users, nil
}
