package services

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() RetryPolicy {
	policy := DefaultRetryPolicy()
	policy.Sleep = func(time.Duration) {}
	policy.MaxJitter = 0
	return policy
}

func TestDoWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	result, err := DoWithRetry(testPolicy(), func() (string, int, error) {
		calls++
		return "ok", http.StatusOK, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDoWithRetryRetriesServerErrors(t *testing.T) {
	calls := 0
	result, err := DoWithRetry(testPolicy(), func() (string, int, error) {
		calls++
		if calls < 3 {
			return "", http.StatusServiceUnavailable, errors.New("upstream down")
		}
		return "recovered", http.StatusOK, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, calls)
}

func TestDoWithRetryRetriesRateLimit(t *testing.T) {
	calls := 0
	_, err := DoWithRetry(testPolicy(), func() (string, int, error) {
		calls++
		return "", http.StatusTooManyRequests, errors.New("rate limited")
	})
	require.Error(t, err)
	assert.EqualError(t, err, "rate limited")
	// Hết lượt sau đúng MaxAttempts lần gọi
	assert.Equal(t, 3, calls)
}

func TestDoWithRetryDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	_, err := DoWithRetry(testPolicy(), func() (string, int, error) {
		calls++
		return "", http.StatusBadRequest, errors.New("bad payload")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoWithRetryDoesNotRetryNetworkErrorsWithoutStatus(t *testing.T) {
	calls := 0
	_, err := DoWithRetry(testPolicy(), func() (string, int, error) {
		calls++
		return "", 0, errors.New("connection refused")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestBackoffGrowsExponentially(t *testing.T) {
	policy := testPolicy()
	assert.Equal(t, policy.BaseDelay, policy.backoff(0))
	assert.Equal(t, 2*policy.BaseDelay, policy.backoff(1))
	assert.Equal(t, 4*policy.BaseDelay, policy.backoff(2))
}
