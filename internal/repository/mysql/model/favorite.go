package model

import "time"

// Favorite is one (user, article) favorite edge. The composite primary key
// keeps a pair from appearing twice; rows follow the article out on delete
// via the store's cascade rule.
type Favorite struct {
	UserID    int64     `gorm:"column:user_id;primaryKey;not null"`
	ArticleID int64     `gorm:"column:article_id;primaryKey;not null;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
