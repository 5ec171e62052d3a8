package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"course-enrollment-service/internal/domain/user"
	errs "course-enrollment-service/pkg/errors"
)

func newUserStore(t *testing.T) *UserStore {
	return NewUserStore(zaptest.NewLogger(t))
}

func TestUserStore_CreateAssignsID(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, user.User{Name: "Alice", Email: "alice@example.com", Role: user.RoleStudent})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, [16]byte{}, [16]byte(created.ID))
	assert.Equal(t, "alice@example.com", created.Email)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *created, *got)
}

func TestUserStore_CreateDuplicateEmail(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, user.User{Name: "Alice", Email: "alice@example.com", Role: user.RoleStudent})
	require.NoError(t, err)

	_, err = s.Create(ctx, user.User{Name: "Other Alice", Email: "alice@example.com", Role: user.RoleAdmin})

	require.Error(t, err)
	var existsErr *errs.AlreadyExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "email", existsErr.Resource)
}

func TestUserStore_GetByEmail(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, user.User{Name: "Alice", Email: "alice@example.com", Role: user.RoleStudent})
	require.NoError(t, err)

	got, err := s.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := s.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserStore_GetByIDMissing(t *testing.T) {
	s := newUserStore(t)

	created, err := s.Create(context.Background(), user.User{Name: "Alice", Email: "a@example.com", Role: user.RoleStudent})
	require.NoError(t, err)

	other := created.ID
	other[0] ^= 0xff
	got, err := s.GetByID(context.Background(), other)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserStore_List(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()

	users, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = s.Create(ctx, user.User{Name: "Alice", Email: "a@example.com", Role: user.RoleStudent})
	require.NoError(t, err)
	_, err = s.Create(ctx, user.User{Name: "Bob", Email: "b@example.com", Role: user.RoleAdmin})
	require.NoError(t, err)

	users, err = s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserStore_ConcurrentCreateSameEmail(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, user.User{Name: "Alice", Email: "race@example.com", Role: user.RoleStudent})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one create with a given email may succeed")
}
