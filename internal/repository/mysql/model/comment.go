package model

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index;constraint:OnDelete:CASCADE"`
	AuthorID  int64     `gorm:"column:author_id;not null"`
	Body      string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		AuthorID:  m.AuthorID,
		Body:      m.Body,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
	}
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		UpdatedAt: c.UpdatedAt,
		CreatedAt: c.CreatedAt,
	}
}
