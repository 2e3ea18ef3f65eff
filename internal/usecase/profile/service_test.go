package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/usecase/profile"
)

type stubUserRepo struct {
	users map[string]domain.User
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *stubUserRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	var res []domain.User
	for _, id := range ids {
		if u, err := r.GetByID(context.Background(), id); err == nil {
			res = append(res, u)
		}
	}
	return res, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Insert(context.Context, *domain.User) error { return nil }
func (r *stubUserRepo) Update(context.Context, *domain.User) error { return nil }

type stubFollowRepo struct {
	edges map[[2]int64]bool
}

func (r *stubFollowRepo) Add(_ context.Context, followerID, followeeID int64) error {
	r.edges[[2]int64{followerID, followeeID}] = true
	return nil
}

func (r *stubFollowRepo) Remove(_ context.Context, followerID, followeeID int64) error {
	delete(r.edges, [2]int64{followerID, followeeID})
	return nil
}

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

func newProfileService() (*profile.Service, *stubFollowRepo) {
	users := &stubUserRepo{users: map[string]domain.User{
		"alice": {ID: 1, Username: "alice", Bio: "first"},
		"bob":   {ID: 2, Username: "bob", Bio: "second"},
	}}
	follows := &stubFollowRepo{edges: make(map[[2]int64]bool)}
	return profile.NewService(users, follows), follows
}

func TestGetProfile(t *testing.T) {
	svc, follows := newProfileService()

	// anonymous viewer never sees a follow flag
	p, err := svc.Get(context.Background(), 0, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.False(t, p.Following)

	follows.edges[[2]int64{2, 1}] = true
	p, err = svc.Get(context.Background(), 2, "alice")
	require.NoError(t, err)
	assert.True(t, p.Following)

	_, err = svc.Get(context.Background(), 0, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFollow(t *testing.T) {
	svc, _ := newProfileService()

	p, err := svc.Follow(context.Background(), 2, "alice")
	require.NoError(t, err)
	assert.True(t, p.Following)

	// following again keeps the edge, no error
	p, err = svc.Follow(context.Background(), 2, "alice")
	require.NoError(t, err)
	assert.True(t, p.Following)
}

func TestFollowSelf(t *testing.T) {
	svc, _ := newProfileService()

	_, err := svc.Follow(context.Background(), 1, "alice")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestUnfollow(t *testing.T) {
	svc, follows := newProfileService()
	follows.edges[[2]int64{2, 1}] = true

	p, err := svc.Unfollow(context.Background(), 2, "alice")
	require.NoError(t, err)
	assert.False(t, p.Following)
	assert.Empty(t, follows.edges)

	// removing a non-existent edge is a no-op
	_, err = svc.Unfollow(context.Background(), 2, "alice")
	assert.NoError(t, err)
}
