package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow("1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := rl.Allow("1.2.3.4")
	assert.False(t, ok)
	assert.Error(t, err)

	// Other callers are tracked independently.
	ok, _ = rl.Allow("5.6.7.8")
	assert.True(t, ok)
}

func TestRateLimiterReset(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)

	ok, _ := rl.Allow("1.2.3.4")
	require.True(t, ok)
	ok, _ = rl.Allow("1.2.3.4")
	require.False(t, ok)

	rl.Reset("1.2.3.4")

	ok, _ = rl.Allow("1.2.3.4")
	assert.True(t, ok)
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(10*time.Millisecond, 1)

	ok, _ := rl.Allow("1.2.3.4")
	require.True(t, ok)
	ok, _ = rl.Allow("1.2.3.4")
	require.False(t, ok)

	time.Sleep(20 * time.Millisecond)

	ok, _ = rl.Allow("1.2.3.4")
	assert.True(t, ok)
}
