package postgres

import (
	"context"
	"errors"
	"fmt"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/internal/service"
	"postboard/pkg/tableinfo"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewUserStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *UserStorage {
	return &UserStorage{
		db:     db,
		getter: getter,
	}
}

func scanUser(row pgx.Row) (model.User, error) {
	var (
		u    model.User
		name pgtype.Text
	)
	if err := row.Scan(&u.ID, &u.Email, &name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return model.User{}, err
	}
	u.Name = textPtr(name)
	return u, nil
}

func (s *UserStorage) ListUsers(ctx context.Context, params storage.ListParams) ([]model.User, error) {
	query, args, err := selectList(tableinfo.UsersTableName, tableinfo.UserColumns, params).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select users: %w", err)
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *UserStorage) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	query, args, err := sq.
		Select(tableinfo.UserColumns...).
		From(tableinfo.UsersTableName).
		Where(sq.Eq{tableinfo.UserIDColumn: userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	u, err := scanUser(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, service.ErrNotFound
		}
		return model.User{}, fmt.Errorf("exec select user by id: %w", err)
	}
	return u, nil
}

func (s *UserStorage) CreateUser(ctx context.Context, in model.User) (model.User, error) {
	query, args, err := sq.
		Insert(tableinfo.UsersTableName).
		Columns(tableinfo.UserEmailColumn, tableinfo.UserNameColumn).
		Values(in.Email, in.Name).
		Suffix(returning(tableinfo.UserColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	u, err := scanUser(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.User{}, fmt.Errorf("exec error creating user: %w", err)
	}
	return u, nil
}

func (s *UserStorage) UpdateUser(ctx context.Context, userID int64, patch model.UserPatch) (model.User, error) {
	qb := sq.
		Update(tableinfo.UsersTableName).
		Set(tableinfo.UserUpdatedAtColumn, sq.Expr("now()"))
	if patch.Email != nil {
		qb = qb.Set(tableinfo.UserEmailColumn, *patch.Email)
	}
	if patch.Name != nil {
		qb = qb.Set(tableinfo.UserNameColumn, *patch.Name)
	}

	query, args, err := qb.
		Where(sq.Eq{tableinfo.UserIDColumn: userID}).
		Suffix(returning(tableinfo.UserColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	u, err := scanUser(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, service.ErrNotFound
		}
		return model.User{}, fmt.Errorf("exec update user: %w", err)
	}
	return u, nil
}

func (s *UserStorage) DeleteUser(ctx context.Context, userID int64) error {
	query, args, err := sq.
		Delete(tableinfo.UsersTableName).
		Where(sq.Eq{tableinfo.UserIDColumn: userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
