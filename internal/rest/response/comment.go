package response

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type Comment struct {
	ID        int64   `json:"id"`
	Body      string  `json:"body"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
	Author    Profile `json:"author"`
}

type SingleComment struct {
	Comment Comment `json:"comment"`
}

type MultipleComments struct {
	Comments []Comment `json:"comments"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
		Author:    NewProfileFromDomain(&c.Author),
	}
}

func NewMultipleComments(list []domain.Comment) MultipleComments {
	comments := make([]Comment, len(list))
	for i := range list {
		comments[i] = NewCommentFromDomain(&list[i])
	}
	return MultipleComments{Comments: comments}
}
