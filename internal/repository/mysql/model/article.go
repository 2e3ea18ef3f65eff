package model

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type Article struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:varchar(512);not null"`
	Body        string    `gorm:"type:longtext;not null"`
	AuthorID    int64     `gorm:"column:author_id;not null;index"`
	UpdatedAt   time.Time `gorm:"type:datetime"`
	CreatedAt   time.Time `gorm:"type:datetime;index"`
}

func (Article) TableName() string {
	return "articles"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description,
		Body:        m.Body,
		AuthorID:    m.AuthorID,
		UpdatedAt:   m.UpdatedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
		AuthorID:    a.AuthorID,
		UpdatedAt:   a.UpdatedAt,
		CreatedAt:   a.CreatedAt,
	}
}
