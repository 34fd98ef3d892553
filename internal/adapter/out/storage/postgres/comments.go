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

type CommentStorage struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewCommentStorage(db trmpgx.Tr, getter *trmpgx.CtxGetter) *CommentStorage {
	return &CommentStorage{db: db, getter: getter}
}

func scanComment(row pgx.Row) (model.Comment, error) {
	var (
		c                model.Comment
		postID, authorID pgtype.Int8
	)
	if err := row.Scan(
		&c.ID,
		&c.Content,
		&postID,
		&authorID,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return model.Comment{}, err
	}
	c.PostID = int8Ptr(postID)
	c.AuthorID = int8Ptr(authorID)
	return c, nil
}

func (s *CommentStorage) ListComments(ctx context.Context, params storage.ListParams) ([]model.Comment, error) {
	query, args, err := selectList(tableinfo.CommentsTableName, tableinfo.CommentColumns, params).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select comments: %w", err)
	}
	defer rows.Close()

	out := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *CommentStorage) GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error) {
	query, args, err := sq.
		Select(tableinfo.CommentColumns...).
		From(tableinfo.CommentsTableName).
		Where(sq.Eq{tableinfo.CommentIDColumn: commentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	c, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Comment{}, service.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("exec select comment by id: %w", err)
	}
	return c, nil
}

func (s *CommentStorage) CreateComment(ctx context.Context, in model.Comment) (model.Comment, error) {
	query, args, err := sq.
		Insert(tableinfo.CommentsTableName).
		Columns(
			tableinfo.CommentContentColumn,
			tableinfo.CommentPostIDColumn,
			tableinfo.CommentAuthorIDColumn,
		).
		Values(in.Content, in.PostID, in.AuthorID).
		Suffix(returning(tableinfo.CommentColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	c, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		return model.Comment{}, fmt.Errorf("exec error creating comment: %w", err)
	}
	return c, nil
}

func (s *CommentStorage) UpdateComment(ctx context.Context, commentID int64, patch model.CommentPatch) (model.Comment, error) {
	qb := sq.
		Update(tableinfo.CommentsTableName).
		Set(tableinfo.CommentUpdatedAtColumn, sq.Expr("now()"))
	if patch.Content != nil {
		qb = qb.Set(tableinfo.CommentContentColumn, *patch.Content)
	}
	if patch.PostID != nil {
		qb = qb.Set(tableinfo.CommentPostIDColumn, *patch.PostID)
	}
	if patch.AuthorID != nil {
		qb = qb.Set(tableinfo.CommentAuthorIDColumn, *patch.AuthorID)
	}

	query, args, err := qb.
		Where(sq.Eq{tableinfo.CommentIDColumn: commentID}).
		Suffix(returning(tableinfo.CommentColumns)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	c, err := scanComment(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Comment{}, service.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("exec update comment: %w", err)
	}
	return c, nil
}

func (s *CommentStorage) DeleteComment(ctx context.Context, commentID int64) error {
	query, args, err := sq.
		Delete(tableinfo.CommentsTableName).
		Where(sq.Eq{tableinfo.CommentIDColumn: commentID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := s.getter.DefaultTrOrDB(ctx, s.db)
	tag, err := tr.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("exec delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}
