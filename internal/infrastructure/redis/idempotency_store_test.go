package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/workspace-api/internal/infrastructure/redis"
)

const ttl = time.Hour

func TestKey(t *testing.T) {
	assert.Equal(t, "idemp:/api/v1/x:u-1:abc", redis.Key("/api/v1/x", "u-1", "abc"))
}

func TestGet_NoExiste(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := redis.NewIdempotencyStore(db, ttl)
	mock.ExpectGet("k").RedisNil()

	got, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_Cacheado(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := redis.NewIdempotencyStore(db, ttl)
	raw, _ := json.Marshal(redis.StoredResponse{Status: 201, Body: []byte(`{"ok":true}`)})
	mock.ExpectGet("k").SetVal(string(raw))

	got, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 201, got.Status)
	assert.JSONEq(t, `{"ok":true}`, string(got.Body))
}

func TestGet_ErrorDeRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := redis.NewIdempotencyStore(db, ttl)
	mock.ExpectGet("k").SetErr(errors.New("conexión rechazada"))

	_, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestLock_SegundaPeticionEnCurso(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := redis.NewIdempotencyStore(db, ttl)
	mock.ExpectSetNX("k:lock", "1", 30*time.Second).SetVal(true)
	mock.ExpectSetNX("k:lock", "1", 30*time.Second).SetVal(false)

	ok, err := store.Lock(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Lock(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_GuardaYLiberaLock(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := redis.NewIdempotencyStore(db, ttl)
	resp := redis.StoredResponse{Status: 200, ContentType: "application/json", Body: []byte(`{}`)}
	raw, _ := json.Marshal(resp)
	mock.ExpectSet("k", string(raw), ttl).SetVal("OK")
	mock.ExpectDel("k:lock").SetVal(1)

	require.NoError(t, store.Save(context.Background(), "k", resp))
	assert.NoError(t, mock.ExpectationsWereMet())
}
