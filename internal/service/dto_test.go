package service

import (
	"context"
	"errors"
	"testing"

	"postboard/internal/adapter/out/storage"
	"postboard/pkg/pagination"

	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "valid", raw: "42", want: 42},
		{name: "surrounding spaces", raw: " 7 ", want: 7},
		{name: "letters", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "float", raw: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID("user", tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidID)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				require.Equal(t, "invalid user id", verr.Message)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	empty := ""
	zero := int64(0)

	tests := []struct {
		name      string
		req       any
		wantField string
		wantMsg   string
	}{
		{
			name:      "post without anything cites title first",
			req:       CreatePostRequest{},
			wantField: "title",
			wantMsg:   "field 'title' is required",
		},
		{
			name:      "post without content",
			req:       CreatePostRequest{Title: "t"},
			wantField: "content",
			wantMsg:   "field 'content' is required",
		},
		{
			name:      "blank comment",
			req:       CreateCommentRequest{Content: "   "},
			wantField: "content",
			wantMsg:   "field 'content' must not be blank",
		},
		{
			name:      "non positive author",
			req:       CreateCommentRequest{Content: "x", AuthorID: &zero},
			wantField: "authorId",
			wantMsg:   "field 'authorId' must be greater than 0",
		},
		{
			name:      "user without email",
			req:       CreateUserRequest{},
			wantField: "email",
			wantMsg:   "field 'email' is required",
		},
		{
			name:      "user update with empty email",
			req:       UpdateUserRequest{Email: &empty},
			wantField: "email",
			wantMsg:   "field 'email' must not be empty",
		},
		{
			name: "user update without fields",
			req:  UpdateUserRequest{},
		},
		{
			name: "valid post",
			req:  UpdatePostRequest{Title: "t", Content: "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRequest)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.wantField, verr.Field)
			require.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestFetchPage(t *testing.T) {
	t.Parallel()

	ids := []int64{1, 2, 3, 4, 5}
	fetch := func(_ context.Context, params storage.ListParams) ([]int64, error) {
		from, to := storage.Window(ids, params)
		return ids[from:to], nil
	}
	idOf := func(id int64) int64 { return id }

	t.Run("full list", func(t *testing.T) {
		page, err := fetchPage(context.Background(), pagination.PageRequest{}, fetch, idOf)
		require.NoError(t, err)
		require.Equal(t, ids, page.Items)
		require.False(t, page.HasNextPage)
		require.Nil(t, page.EndCursor)
	})

	t.Run("walk pages", func(t *testing.T) {
		page, err := fetchPage(context.Background(), pagination.PageRequest{Limit: 2}, fetch, idOf)
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2}, page.Items)
		require.True(t, page.HasNextPage)
		require.NotNil(t, page.EndCursor)

		page, err = fetchPage(context.Background(), pagination.PageRequest{Limit: 2, AfterCursor: page.EndCursor}, fetch, idOf)
		require.NoError(t, err)
		require.Equal(t, []int64{3, 4}, page.Items)

		page, err = fetchPage(context.Background(), pagination.PageRequest{Limit: 2, AfterCursor: page.EndCursor}, fetch, idOf)
		require.NoError(t, err)
		require.Equal(t, []int64{5}, page.Items)
		require.False(t, page.HasNextPage)
		require.Nil(t, page.EndCursor)
	})

	t.Run("bad cursor", func(t *testing.T) {
		bad := "not-a-cursor"
		_, err := fetchPage(context.Background(), pagination.PageRequest{AfterCursor: &bad}, fetch, idOf)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := fetchPage(context.Background(), pagination.PageRequest{Limit: -1}, fetch, idOf)
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("fetch error", func(t *testing.T) {
		failing := func(context.Context, storage.ListParams) ([]int64, error) { return nil, errors.New("db fail") }
		_, err := fetchPage(context.Background(), pagination.PageRequest{}, failing, idOf)
		require.EqualError(t, err, "db fail")
	})
}
