package gsheets

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/sheets/v4"
)

// newBackoff возвращает фабрику: состояние backoff нельзя делить между запросами
func newBackoff(retries uint64, base time.Duration) func() retry.Backoff {
	if base <= 0 {
		base = 200 * time.Millisecond
	}

	return func() retry.Backoff {
		return retry.WithMaxRetries(retries, retry.NewExponential(base))
	}
}

// fetchWithRetry повторяет чтение при временных ошибках API (429, 5xx).
// Общий срок задает контекст вызывающего.
func fetchWithRetry(
	ctx context.Context,
	backoff retry.Backoff,
	fetch func(ctx context.Context) (*sheets.ValueRange, error),
) (*sheets.ValueRange, error) {
	var resp *sheets.ValueRange

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := fetch(ctx)
		if err != nil {
			if transient(err) {
				return retry.RetryableError(err)
			}
			return err
		}

		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func transient(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}
