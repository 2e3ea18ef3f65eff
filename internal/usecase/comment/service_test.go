package comment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/usecase/comment"
)

type stubArticleRepo struct {
	articles map[string]domain.Article
}

func (r *stubArticleRepo) FindBySlug(_ context.Context, _ int64, slug string) (domain.Article, error) {
	ar, ok := r.articles[slug]
	if !ok {
		return domain.Article{}, domain.ErrNotFound
	}
	return ar, nil
}

func (r *stubArticleRepo) FindMany(context.Context, int64, domain.ArticleFilter) ([]domain.Article, error) {
	return nil, nil
}
func (r *stubArticleRepo) Insert(context.Context, *domain.Article) error { return nil }
func (r *stubArticleRepo) Update(context.Context, *domain.Article) error { return nil }
func (r *stubArticleRepo) Delete(context.Context, int64) error           { return nil }
func (r *stubArticleRepo) ListSlugs(context.Context) ([]string, error)   { return nil, nil }

type stubCommentRepo struct {
	comments map[int64]domain.Comment
	nextID   int64
}

func (r *stubCommentRepo) Store(_ context.Context, c *domain.Comment) error {
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.comments[c.ID] = *c
	return nil
}

func (r *stubCommentRepo) GetByID(_ context.Context, id int64) (domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	return c, nil
}

func (r *stubCommentRepo) FetchByArticle(_ context.Context, articleID int64) ([]domain.Comment, error) {
	var res []domain.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			res = append(res, c)
		}
	}
	return res, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

type stubUserRepo struct {
	users map[int64]domain.User

	getByIDsCalls int
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	r.getByIDsCalls++
	var res []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}

func (r *stubUserRepo) GetByEmail(context.Context, string) (domain.User, error) {
	return domain.User{}, domain.ErrNotFound
}
func (r *stubUserRepo) GetByUsername(context.Context, string) (domain.User, error) {
	return domain.User{}, domain.ErrNotFound
}
func (r *stubUserRepo) Insert(context.Context, *domain.User) error { return nil }
func (r *stubUserRepo) Update(context.Context, *domain.User) error { return nil }

type stubFollowRepo struct {
	edges map[[2]int64]bool
}

func (r *stubFollowRepo) Add(context.Context, int64, int64) error    { return nil }
func (r *stubFollowRepo) Remove(context.Context, int64, int64) error { return nil }
func (r *stubFollowRepo) IsFollowing(_ context.Context, followerID, followeeID int64) (bool, error) {
	return r.edges[[2]int64{followerID, followeeID}], nil
}
func (r *stubFollowRepo) FollowingSet(_ context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(followeeIDs))
	for _, id := range followeeIDs {
		res[id] = r.edges[[2]int64{followerID, id}]
	}
	return res, nil
}

type fixture struct {
	svc      domain.CommentUsecase
	comments *stubCommentRepo
	users    *stubUserRepo
	follows  *stubFollowRepo
}

func newFixture() *fixture {
	articles := &stubArticleRepo{articles: map[string]domain.Article{
		"first-post": {ID: 10, Slug: "first-post", AuthorID: 1},
	}}
	comments := &stubCommentRepo{comments: make(map[int64]domain.Comment)}
	users := &stubUserRepo{users: map[int64]domain.User{
		1: {ID: 1, Username: "alice"},
		2: {ID: 2, Username: "bob"},
	}}
	follows := &stubFollowRepo{edges: make(map[[2]int64]bool)}
	return &fixture{
		svc:      comment.NewService(comments, articles, users, follows),
		comments: comments,
		users:    users,
		follows:  follows,
	}
}

func TestAddComment(t *testing.T) {
	f := newFixture()

	c, err := f.svc.Add(context.Background(), 2, "first-post", "nice one")
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.EqualValues(t, 10, c.ArticleID)
	assert.Equal(t, "bob", c.Author.Username)

	_, err = f.svc.Add(context.Background(), 2, "first-post", "")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = f.svc.Add(context.Background(), 2, "no-such-post", "hello")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCommentsFillsAuthors(t *testing.T) {
	f := newFixture()
	f.follows.edges[[2]int64{2, 1}] = true

	_, err := f.svc.Add(context.Background(), 1, "first-post", "one")
	require.NoError(t, err)
	_, err = f.svc.Add(context.Background(), 1, "first-post", "two")
	require.NoError(t, err)

	f.users.getByIDsCalls = 0
	comments, err := f.svc.List(context.Background(), 2, "first-post")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, 1, f.users.getByIDsCalls, "authors must come from one batched query")
	for _, c := range comments {
		assert.Equal(t, "alice", c.Author.Username)
		assert.True(t, c.Author.Following)
	}
}

func TestListCommentsEmpty(t *testing.T) {
	f := newFixture()

	comments, err := f.svc.List(context.Background(), 0, "first-post")
	require.NoError(t, err)
	assert.Empty(t, comments)
	assert.NotNil(t, comments)
}

func TestDeleteComment(t *testing.T) {
	f := newFixture()

	c, err := f.svc.Add(context.Background(), 2, "first-post", "mine")
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), 1, c.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = f.svc.Delete(context.Background(), 2, c.ID)
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), 2, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
