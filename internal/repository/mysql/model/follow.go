package model

import "time"

// Follow is one (follower, followee) edge.
type Follow struct {
	FollowerID int64     `gorm:"column:follower_id;primaryKey;not null"`
	FolloweeID int64     `gorm:"column:followee_id;primaryKey;not null"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Follow) TableName() string {
	return "follows"
}
