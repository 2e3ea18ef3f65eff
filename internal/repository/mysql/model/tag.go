package model

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type Tag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Tag) TableName() string {
	return "tags"
}

func (m *Tag) ToDomain() domain.Tag {
	return domain.Tag{
		ID:   m.ID,
		Name: m.Name,
	}
}

// ArticleTag rows are removed by the store's cascade rule when the owning
// article is deleted.
type ArticleTag struct {
	ArticleID int64     `gorm:"column:article_id;primaryKey;not null;constraint:OnDelete:CASCADE"`
	TagID     int64     `gorm:"column:tag_id;primaryKey;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (ArticleTag) TableName() string {
	return "article_tags"
}
