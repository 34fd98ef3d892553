package tableinfo

const (
	UsersTableName = "users"

	UserIDColumn        = "id"
	UserEmailColumn     = "email"
	UserNameColumn      = "name"
	UserCreatedAtColumn = "created_at"
	UserUpdatedAtColumn = "updated_at"
)

const (
	PostsTableName = "posts"

	PostIDColumn        = "id"
	PostTitleColumn     = "title"
	PostContentColumn   = "content"
	PostAuthorIDColumn  = "author_id"
	PostPublishedColumn = "published"
	PostCreatedAtColumn = "created_at"
	PostUpdatedAtColumn = "updated_at"
)

const (
	CommentsTableName = "comments"

	CommentIDColumn        = "id"
	CommentContentColumn   = "content"
	CommentPostIDColumn    = "post_id"
	CommentAuthorIDColumn  = "author_id"
	CommentCreatedAtColumn = "created_at"
	CommentUpdatedAtColumn = "updated_at"
)

var (
	UserColumns = []string{
		UserIDColumn,
		UserEmailColumn,
		UserNameColumn,
		UserCreatedAtColumn,
		UserUpdatedAtColumn,
	}

	PostColumns = []string{
		PostIDColumn,
		PostTitleColumn,
		PostContentColumn,
		PostAuthorIDColumn,
		PostPublishedColumn,
		PostCreatedAtColumn,
		PostUpdatedAtColumn,
	}

	CommentColumns = []string{
		CommentIDColumn,
		CommentContentColumn,
		CommentPostIDColumn,
		CommentAuthorIDColumn,
		CommentCreatedAtColumn,
		CommentUpdatedAtColumn,
	}
)
