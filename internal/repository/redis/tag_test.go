package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/cache"
	redisRepo "github.com/conduit-labs/conduit/internal/repository/redis"
)

func envelope(t *testing.T, names []string, expireAt time.Time) string {
	t.Helper()
	data, err := json.Marshal(cache.DataWithLogicalExpire{
		Data:      names,
		ExpireAt:  expireAt,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return string(data)
}

func TestGetNamesMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewTagCache(client)

	mock.ExpectGet(redisRepo.KeyTagNames).RedisNil()

	_, _, err := c.GetNames(context.Background())
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNamesFresh(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewTagCache(client)

	mock.ExpectGet(redisRepo.KeyTagNames).
		SetVal(envelope(t, []string{"go", "redis"}, time.Now().Add(time.Minute)))

	names, expired, err := c.GetNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "redis"}, names)
	assert.False(t, expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNamesLogicallyExpired(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewTagCache(client)

	mock.ExpectGet(redisRepo.KeyTagNames).
		SetVal(envelope(t, []string{"stale"}, time.Now().Add(-time.Minute)))

	names, expired, err := c.GetNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, names)
	assert.True(t, expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNamesCorruptPayload(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := redisRepo.NewTagCache(client)

	mock.ExpectGet(redisRepo.KeyTagNames).SetVal("not json")

	_, _, err := c.GetNames(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}
