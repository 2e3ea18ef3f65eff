package request

// CreateArticle is the create-article request body.
type CreateArticle struct {
	Article struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Body        string   `json:"body" binding:"required"`
		TagList     []string `json:"tagList"`
	} `json:"article" binding:"required"`
}

// UpdateArticle carries the optional update fields; absent fields keep their
// stored values.
type UpdateArticle struct {
	Article struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	} `json:"article" binding:"required"`
}
