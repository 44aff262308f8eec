package tinycards

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/avast/retry-go"
)

// isRetryableError reports whether a failed read may succeed when it is sent again.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError || apiErr.StatusCode == http.StatusTooManyRequests
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func (client *Client) withRetry(ctx context.Context, operation string, fn func() error) error {
	return retry.Do(
		fn,
		retry.Context(ctx),
		retry.Attempts(client.retryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isRetryableError),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying Tinycards API call",
				"operation", operation,
				"attempt", n+1,
				"error", err)
		}),
	)
}
