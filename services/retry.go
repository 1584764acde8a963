package services

import (
	"math/rand"
	"net/http"
	"time"
)

// RetryPolicy chính sách retry dùng chung cho các lời gọi ra ngoài (hiện
// chỉ có AI). Backoff lũy thừa: BaseDelay x 2^attempt cộng jitter ngẫu
// nhiên. Retry chỉ áp dụng ở biên tích hợp ngoài, tuyệt đối không dùng
// cho mutation trên dữ liệu bất động sản.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration
	// Retryable quyết định status HTTP nào đáng thử lại
	Retryable func(statusCode int) bool
	// Sleep tách ra để test không phải chờ thật
	Sleep func(time.Duration)
}

// DefaultRetryPolicy retry tối đa 3 lần cho rate-limit (429) và lỗi
// server (5xx); lỗi client trả thẳng cho caller, không thử lại.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   1500 * time.Millisecond,
		MaxJitter:   time.Second,
		Retryable: func(statusCode int) bool {
			return statusCode == http.StatusTooManyRequests || (statusCode >= 500 && statusCode < 600)
		},
		Sleep: time.Sleep,
	}
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	delay := p.BaseDelay * (1 << attempt)
	if p.MaxJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(p.MaxJitter)))
	}
	return delay
}

// DoWithRetry chạy op theo chính sách retry. Op trả về status HTTP (0 nếu
// lỗi mạng không có status) và error; hết lượt thì trả error cuối cùng
// nguyên vẹn cho caller.
func DoWithRetry[T any](policy RetryPolicy, op func() (T, int, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		result, status, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if policy.Retryable == nil || !policy.Retryable(status) {
			return zero, err
		}
		if attempt < policy.MaxAttempts-1 {
			sleep := policy.Sleep
			if sleep == nil {
				sleep = time.Sleep
			}
			sleep(policy.backoff(attempt))
		}
	}

	return zero, lastErr
}
