package postgres

import (
	"context"
	"errors"
	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/internal/service"
	"regexp"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var commentCols = []string{"id", "content", "post_id", "author_id", "created_at", "updated_at"}

func TestCommentStorage_CreateComment(t *testing.T) {
	now := time.Now()
	postID := int64(5)

	tests := []struct {
		name  string
		input model.Comment
		setup func(m pgxmock.PgxPoolIface)
		check func(t *testing.T, got model.Comment, err error)
	}{
		{
			name:  "success",
			input: model.Comment{Content: "hello", PostID: &postID},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments (content,post_id,author_id) VALUES ($1,$2,$3)")).
					WithArgs("hello", &postID, (*int64)(nil)).
					WillReturnRows(pgxmock.NewRows(commentCols).AddRow(int64(1), "hello", postID, nil, now, now))
			},
			check: func(t *testing.T, got model.Comment, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(1), got.ID)
				require.Equal(t, "hello", got.Content)
				require.Equal(t, int64(5), *got.PostID)
				require.Nil(t, got.AuthorID)
			},
		},
		{
			name:  "db error",
			input: model.Comment{Content: "hello"},
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery("INSERT INTO comments").
					WithArgs("hello", (*int64)(nil), (*int64)(nil)).
					WillReturnError(errors.New("db down"))
			},
			check: func(t *testing.T, _ model.Comment, err error) {
				require.ErrorContains(t, err, "exec error creating comment")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setup(mock)

			st := NewCommentStorage(mock, trmpgx.DefaultCtxGetter)
			got, err := st.CreateComment(context.Background(), tt.input)
			tt.check(t, got, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommentStorage_UpdateComment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	content := "edited"
	author := int64(8)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE comments SET updated_at = now(), content = $1, author_id = $2 WHERE id = $3")).
		WithArgs(content, author, int64(2)).
		WillReturnRows(pgxmock.NewRows(commentCols).AddRow(int64(2), content, nil, author, now, now))
	mock.ExpectQuery("UPDATE comments").
		WithArgs(content, author, int64(3)).
		WillReturnError(pgx.ErrNoRows)

	st := NewCommentStorage(mock, trmpgx.DefaultCtxGetter)

	got, err := st.UpdateComment(context.Background(), 2, model.CommentPatch{Content: &content, AuthorID: &author})
	require.NoError(t, err)
	require.Equal(t, content, got.Content)
	require.Equal(t, author, *got.AuthorID)

	_, err = st.UpdateComment(context.Background(), 3, model.CommentPatch{Content: &content, AuthorID: &author})
	require.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentStorage_ListGetDelete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments ORDER BY id ASC")).
		WillReturnRows(pgxmock.NewRows(commentCols).
			AddRow(int64(1), "a", int64(1), int64(2), now, now).
			AddRow(int64(2), "b", nil, nil, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(commentCols).AddRow(int64(1), "a", int64(1), int64(2), now, now))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	st := NewCommentStorage(mock, trmpgx.DefaultCtxGetter)

	list, err := st.ListComments(context.Background(), storage.ListParams{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Nil(t, list[1].PostID)

	got, err := st.GetCommentByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "a", got.Content)

	require.NoError(t, st.DeleteComment(context.Background(), 1))
	require.ErrorIs(t, st.DeleteComment(context.Background(), 1), service.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
