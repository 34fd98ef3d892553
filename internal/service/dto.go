package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"postboard/internal/adapter/out/storage"
	"postboard/pkg/pagination"

	"github.com/go-playground/validator/v10"
)

type CreateUserRequest struct {
	Email string  `json:"email" validate:"required"`
	Name  *string `json:"name"`
}

type UpdateUserRequest struct {
	Email *string `json:"email" validate:"omitnil,min=1"`
	Name  *string `json:"name"`
}

type CreatePostRequest struct {
	Title     string `json:"title" validate:"required,notblank"`
	Content   string `json:"content" validate:"required,notblank"`
	AuthorID  *int64 `json:"authorId" validate:"omitnil,gt=0"`
	Published *bool  `json:"published"`
}

type UpdatePostRequest struct {
	Title     string `json:"title" validate:"required,notblank"`
	Content   string `json:"content" validate:"required,notblank"`
	AuthorID  *int64 `json:"authorId" validate:"omitnil,gt=0"`
	Published *bool  `json:"published"`
}

type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required,notblank"`
	PostID   *int64 `json:"postId" validate:"omitnil,gt=0"`
	AuthorID *int64 `json:"authorId" validate:"omitnil,gt=0"`
}

type UpdateCommentRequest struct {
	Content  string `json:"content" validate:"required,notblank"`
	PostID   *int64 `json:"postId" validate:"omitnil,gt=0"`
	AuthorID *int64 `json:"authorId" validate:"omitnil,gt=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return invalidField(fe.Field(), fieldMessage(fe))
	}
	return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "notblank":
		return fmt.Sprintf("field '%s' must not be blank", fe.Field())
	case "min":
		return fmt.Sprintf("field '%s' must not be empty", fe.Field())
	case "gt":
		return fmt.Sprintf("field '%s' must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' is invalid", fe.Field())
	}
}

// ParseID validates a path identifier; resource names the entity in the message.
func ParseID(resource, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidID(fmt.Sprintf("invalid %s id", resource))
	}
	return id, nil
}

func checkID(resource string, id int64) error {
	if id <= 0 {
		return invalidID(fmt.Sprintf("invalid %s id", resource))
	}
	return nil
}

// fetchPage loads either the full list or one keyset page, peeking one extra
// record to learn whether another page follows.
func fetchPage[T any](
	ctx context.Context,
	in pagination.PageRequest,
	fetch func(ctx context.Context, params storage.ListParams) ([]T, error),
	idOf func(T) int64,
) (pagination.Page[T], error) {
	var page pagination.Page[T]

	if in.Limit < 0 {
		return page, invalidField("limit", "field 'limit' must be greater than 0")
	}

	if !in.Paginated() {
		items, err := fetch(ctx, storage.ListParams{})
		if err != nil {
			return page, err
		}
		page.Items = items
		page.Count = len(items)
		return page, nil
	}

	limit := in.Limit
	if limit == 0 {
		limit = pagination.DefaultLimit
	}
	limit = min(limit, pagination.MaxLimit)

	after, err := pagination.Decode(in.AfterCursor)
	if err != nil {
		return page, invalidField("after", "invalid cursor")
	}

	params := storage.ListParams{Limit: limit + 1}
	if after != nil {
		params.AfterID = after.ID
	}

	items, err := fetch(ctx, params)
	if err != nil {
		return page, err
	}

	if len(items) > limit {
		page.HasNextPage = true
		items = items[:limit]
	}
	page.Items = items
	page.Count = len(items)

	if page.HasNextPage {
		page.EndCursor = pagination.Cursor{ID: idOf(items[len(items)-1])}.Encode()
	}
	return page, nil
}
