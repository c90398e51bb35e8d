package pterodactyl

import (
	"context"
	"fmt"
)

// fetchAllPages drains a paged list endpoint. Page 1 is fetched first to
// learn the total page count, then pages 2..N in ascending order; results are
// concatenated in page order. The first page fetch error is propagated, no
// page is retried and no deduplication happens here.
func fetchAllPages[T any](ctx context.Context, fetchPage func(ctx context.Context, page int) ([]T, int, error)) ([]T, error) {
	items, totalPages, err := fetchPage(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("fetchAllPages page 1: %w", err)
	}
	for p := 2; p <= totalPages; p++ {
		pageItems, _, err := fetchPage(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("fetchAllPages page %d: %w", p, err)
		}
		items = append(items, pageItems...)
	}
	return items, nil
}
