package service

import (
	"context"
	"errors"
	"testing"

	"postboard/internal/adapter/out/storage"
	"postboard/internal/model"
	"postboard/pkg/pagination"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestUserService_CreateUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateUserRequest
		setup   func(ms *MockUserStorage)
		wantErr error
	}{
		{
			name:    "missing email never reaches storage",
			req:     CreateUserRequest{Name: strPtr("ann")},
			setup:   func(_ *MockUserStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "storage error",
			req:  CreateUserRequest{Email: "a@b.c"},
			setup: func(ms *MockUserStorage) {
				ms.EXPECT().
					CreateUser(gomock.Any(), model.User{Email: "a@b.c"}).
					Return(model.User{}, errors.New("db fail"))
			},
			wantErr: ErrInternalError,
		},
		{
			name: "success",
			req:  CreateUserRequest{Email: "a@b.c", Name: strPtr("ann")},
			setup: func(ms *MockUserStorage) {
				ms.EXPECT().
					CreateUser(gomock.Any(), model.User{Email: "a@b.c", Name: strPtr("ann")}).
					Return(model.User{ID: 1, Email: "a@b.c", Name: strPtr("ann")}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ms := NewMockUserStorage(ctrl)
			tt.setup(ms)

			svc := NewUserService(ms)
			got, err := svc.CreateUser(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(1), got.ID)
			require.Equal(t, tt.req.Email, got.Email)
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		userID  int64
		req     UpdateUserRequest
		setup   func(ms *MockUserStorage)
		wantErr error
	}{
		{
			name:    "invalid id",
			userID:  0,
			req:     UpdateUserRequest{Email: strPtr("x")},
			setup:   func(_ *MockUserStorage) {},
			wantErr: ErrInvalidID,
		},
		{
			name:   "not found",
			userID: 9,
			req:    UpdateUserRequest{Email: strPtr("x")},
			setup: func(ms *MockUserStorage) {
				ms.EXPECT().
					UpdateUser(gomock.Any(), int64(9), model.UserPatch{Email: strPtr("x")}).
					Return(model.User{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name:   "partial update",
			userID: 3,
			req:    UpdateUserRequest{Name: strPtr("bob")},
			setup: func(ms *MockUserStorage) {
				ms.EXPECT().
					UpdateUser(gomock.Any(), int64(3), model.UserPatch{Name: strPtr("bob")}).
					Return(model.User{ID: 3, Email: "b@c.d", Name: strPtr("bob")}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ms := NewMockUserStorage(ctrl)
			tt.setup(ms)

			svc := NewUserService(ms)
			got, err := svc.UpdateUser(context.Background(), tt.userID, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.userID, got.ID)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := NewMockUserStorage(ctrl)
	gomock.InOrder(
		ms.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil),
		ms.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(ErrNotFound),
	)

	svc := NewUserService(ms)
	require.NoError(t, svc.DeleteUser(context.Background(), 5))
	require.ErrorIs(t, svc.DeleteUser(context.Background(), 5), ErrNotFound)
	require.ErrorIs(t, svc.DeleteUser(context.Background(), -1), ErrInvalidID)
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := NewMockUserStorage(ctrl)
	ms.EXPECT().
		ListUsers(gomock.Any(), storage.ListParams{}).
		Return([]model.User{{ID: 1}, {ID: 2}}, nil)
	ms.EXPECT().
		ListUsers(gomock.Any(), storage.ListParams{Limit: 2}).
		Return([]model.User{{ID: 1}, {ID: 2}}, nil)

	svc := NewUserService(ms)

	page, err := svc.ListUsers(context.Background(), pagination.PageRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, page.Count)

	page, err = svc.ListUsers(context.Background(), pagination.PageRequest{Limit: 1})
	require.NoError(t, err)
	require.Equal(t, 1, page.Count)
	require.True(t, page.HasNextPage)
	require.Equal(t, pagination.Cursor{ID: 1}.Encode(), page.EndCursor)
}

func TestUserService_GetUserByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ms := NewMockUserStorage(ctrl)
	ms.EXPECT().
		GetUserByID(gomock.Any(), int64(4)).
		Return(model.User{ID: 4, Email: "x"}, nil)

	svc := NewUserService(ms)

	got, err := svc.GetUserByID(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "x", got.Email)

	_, err = svc.GetUserByID(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidID)
}
