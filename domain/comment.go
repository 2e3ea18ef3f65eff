package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64
	ArticleID int64
	AuthorID  int64
	Body      string
	Author    Profile // comment author as seen by the viewer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (Comment, error)
	// FetchByArticle returns the article's comments newest-first.
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)
	Delete(ctx context.Context, id int64) error
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Add(ctx context.Context, userID int64, slug, body string) (Comment, error)
	List(ctx context.Context, viewerID int64, slug string) ([]Comment, error)
	// Delete removes a comment; only its author may delete it.
	Delete(ctx context.Context, userID, commentID int64) error
}
