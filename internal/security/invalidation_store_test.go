package security_test

import (
	"auth-web-server/internal/security"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryInvalidationStore(t *testing.T) {
	ctx := context.Background()
	store := security.NewMemoryInvalidationStore()

	found, err := store.Contains(ctx, "token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Add(ctx, "token"))
	require.NoError(t, store.Add(ctx, "token"))

	found, err = store.Contains(ctx, "token")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = store.Contains(ctx, "other")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryInvalidationStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := security.NewMemoryInvalidationStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		token := fmt.Sprintf("token-%d", i%10)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Add(ctx, token))
		}()
		go func() {
			defer wg.Done()
			_, err := store.Contains(ctx, token)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		found, err := store.Contains(ctx, fmt.Sprintf("token-%d", i))
		require.NoError(t, err)
		assert.True(t, found)
	}
	found, err := store.Contains(ctx, "token-10")
	require.NoError(t, err)
	assert.False(t, found)
}
