package comment

import (
	"context"

	"github.com/conduit-labs/conduit/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	followRepo  domain.FollowRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository,
	userRepo domain.UserRepository, followRepo domain.FollowRepository) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		followRepo:  followRepo,
	}
}

func (s *service) Add(ctx context.Context, userID int64, slug, body string) (domain.Comment, error) {
	if body == "" {
		return domain.Comment{}, domain.ErrBadParamInput
	}

	ar, err := s.articleRepo.FindBySlug(ctx, 0, slug)
	if err != nil {
		return domain.Comment{}, err
	}

	c := domain.Comment{
		ArticleID: ar.ID,
		AuthorID:  userID,
		Body:      body,
	}
	if err := s.commentRepo.Store(ctx, &c); err != nil {
		return domain.Comment{}, err
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.Comment{}, err
	}
	c.Author = author.Profile(false)

	return c, nil
}

func (s *service) List(ctx context.Context, viewerID int64, slug string) ([]domain.Comment, error) {
	ar, err := s.articleRepo.FindBySlug(ctx, 0, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FetchByArticle(ctx, ar.ID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []domain.Comment{}, nil
	}

	return s.fillAuthors(ctx, viewerID, comments)
}

func (s *service) Delete(ctx context.Context, userID, commentID int64) error {
	c, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if c.AuthorID != userID {
		return domain.ErrUnauthorized
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// fillAuthors resolves the distinct comment authors in one query and, for a
// signed-in viewer, their follow flags in a second batched read.
func (s *service) fillAuthors(ctx context.Context, viewerID int64, comments []domain.Comment) ([]domain.Comment, error) {
	authorIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool, len(comments))
	for _, c := range comments {
		if !seen[c.AuthorID] {
			authorIDs = append(authorIDs, c.AuthorID)
			seen[c.AuthorID] = true
		}
	}

	authors, err := s.userRepo.GetByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	following := map[int64]bool{}
	if viewerID != 0 {
		following, err = s.followRepo.FollowingSet(ctx, viewerID, authorIDs)
		if err != nil {
			return nil, err
		}
	}

	authorMap := make(map[int64]domain.User, len(authors))
	for _, u := range authors {
		authorMap[u.ID] = u
	}

	for i := range comments {
		if u, ok := authorMap[comments[i].AuthorID]; ok {
			comments[i].Author = u.Profile(following[u.ID])
		}
	}
	return comments, nil
}
