package orm

import (
	"postboard/internal/model"
	"postboard/pkg/tableinfo"
	"time"
)

type userModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email"`
	Name      *string   `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return tableinfo.UsersTableName }

func (m userModel) toDomain() model.User {
	return model.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type postModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Content   string    `gorm:"column:content"`
	AuthorID  *int64    `gorm:"column:author_id"`
	Published bool      `gorm:"column:published"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (postModel) TableName() string { return tableinfo.PostsTableName }

func (m postModel) toDomain() model.Post {
	return model.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		AuthorID:  m.AuthorID,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type commentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Content   string    `gorm:"column:content"`
	PostID    *int64    `gorm:"column:post_id"`
	AuthorID  *int64    `gorm:"column:author_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (commentModel) TableName() string { return tableinfo.CommentsTableName }

func (m commentModel) toDomain() model.Comment {
	return model.Comment{
		ID:        m.ID,
		Content:   m.Content,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
