package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLimiter_WithinBudget(t *testing.T) {
	limiter := NewTokenLimiter(1000)

	require.NoError(t, limiter.Wait(context.Background(), 400))
	assert.Equal(t, 600, limiter.GetRemaining())

	require.NoError(t, limiter.Wait(context.Background(), 600))
	assert.Equal(t, 0, limiter.GetRemaining())
}

func TestTokenLimiter_OversizedRequestDoesNotBlockForever(t *testing.T) {
	limiter := NewTokenLimiter(100)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, limiter.Wait(ctx, 500))
}

func TestTokenLimiter_ExhaustedBudgetHonorsContext(t *testing.T) {
	limiter := NewTokenLimiter(100)
	require.NoError(t, limiter.Wait(context.Background(), 100))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := limiter.Wait(ctx, 50)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
