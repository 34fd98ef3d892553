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

type PostStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewPostStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *PostStorage {
	return &PostStorage{
		db:     db,
		getter: getter,
	}
}

func scanPost(row pgx.Row) (model.Post, error) {
	var (
		p        model.Post
		authorID pgtype.Int8
	)
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&authorID,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return model.Post{}, err
	}
	p.AuthorID = int8Ptr(authorID)
	return p, nil
}

func (s *PostStorage) ListPosts(ctx context.Context, params storage.ListParams) ([]model.Post, error) {
	query, args, err := selectList(tableinfo.PostsTableName, tableinfo.PostColumns, params).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec error selecting posts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return out, nil
}

func (s *PostStorage) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	query, args, err := sq.
		Select(tableinfo.PostColumns...).
		From(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	p, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec select post by id: %w", err)
	}
	return p, nil
}

func (s *PostStorage) CreatePost(ctx context.Context, in model.Post) (model.Post, error) {
	query, args, err := sq.
		Insert(tableinfo.PostsTableName).
		Columns(
			tableinfo.PostTitleColumn,
			tableinfo.PostContentColumn,
			tableinfo.PostAuthorIDColumn,
			tableinfo.PostPublishedColumn,
		).
		Values(in.Title, in.Content, in.AuthorID, in.Published).
		Suffix(returning(tableinfo.PostColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	p, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Post{}, fmt.Errorf("exec error creating post: %w", err)
	}
	return p, nil
}

func (s *PostStorage) UpdatePost(ctx context.Context, postID int64, patch model.PostPatch) (model.Post, error) {
	qb := sq.
		Update(tableinfo.PostsTableName).
		Set(tableinfo.PostUpdatedAtColumn, sq.Expr("now()"))
	if patch.Title != nil {
		qb = qb.Set(tableinfo.PostTitleColumn, *patch.Title)
	}
	if patch.Content != nil {
		qb = qb.Set(tableinfo.PostContentColumn, *patch.Content)
	}
	if patch.AuthorID != nil {
		qb = qb.Set(tableinfo.PostAuthorIDColumn, *patch.AuthorID)
	}
	if patch.Published != nil {
		qb = qb.Set(tableinfo.PostPublishedColumn, *patch.Published)
	}

	query, args, err := qb.
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		Suffix(returning(tableinfo.PostColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	p, err := scanPost(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, service.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("exec update post: %w", err)
	}
	return p, nil
}

func (s *PostStorage) DeletePost(ctx context.Context, postID int64) error {
	query, args, err := sq.
		Delete(tableinfo.PostsTableName).
		Where(sq.Eq{tableinfo.PostIDColumn: postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
