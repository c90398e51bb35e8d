package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerLocker_TryLock(t *testing.T) {
	testErr := errors.New("test error")
	ttl := 5 * time.Minute

	t.Run("Success Lock acquired", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		locker := NewServerLocker(client, ttl)

		mock.ExpectSetNX("panel-server-lock:201", 1, ttl).SetVal(true)

		acquired, err := locker.TryLock(context.Background(), 201)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success Lock held elsewhere", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		locker := NewServerLocker(client, ttl)

		mock.ExpectSetNX("panel-server-lock:201", 1, ttl).SetVal(false)

		acquired, err := locker.TryLock(context.Background(), 201)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("Failure Redis error wrapped", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		locker := NewServerLocker(client, ttl)

		mock.ExpectSetNX("panel-server-lock:201", 1, ttl).SetErr(testErr)

		_, err := locker.TryLock(context.Background(), 201)
		require.Error(t, err)
		assert.ErrorIs(t, err, testErr)
	})
}

func TestServerLocker_Unlock(t *testing.T) {
	testErr := errors.New("test error")
	ttl := 5 * time.Minute

	t.Run("Success Lock released", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		locker := NewServerLocker(client, ttl)

		mock.ExpectDel("panel-server-lock:201").SetVal(1)

		assert.NoError(t, locker.Unlock(context.Background(), 201))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure Redis error wrapped", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		locker := NewServerLocker(client, ttl)

		mock.ExpectDel("panel-server-lock:201").SetErr(testErr)

		err := locker.Unlock(context.Background(), 201)
		require.Error(t, err)
		assert.ErrorIs(t, err, testErr)
	})
}
