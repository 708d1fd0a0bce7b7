package drive

import (
	"context"
	"errors"
	"fmt"
)

const (
	// DefaultPageSize is the per-page size hint used when ListOptions does
	// not specify one.
	DefaultPageSize = 10

	// DefaultMaxPages bounds the pagination loop when ListOptions does not
	// specify a cap. Generous enough that well-behaved listings never hit
	// it; it exists to stop a service that keeps returning page tokens.
	DefaultMaxPages = 1000
)

// ErrPageLimitExceeded is returned by ListAll when a listing produces more
// pages than the configured maximum. Compare with errors.Is.
var ErrPageLimitExceeded = errors.New("page limit exceeded")

// ListAll collects every entry matching opts.Query by following the
// service's page tokens until none is returned. Entries are appended in
// page-arrival order; the final page (the one without a token) is included.
//
// Any page failure fails the whole call: no partial result is returned.
// An empty first page with no token yields an empty, non-nil slice.
func ListAll(ctx context.Context, cat Catalog, opts ListOptions) ([]*FileInfo, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	files := []*FileInfo{}
	token := ""
	pages := 0
	for {
		page, err := cat.QueryPage(ctx, PageRequest{
			Query:     opts.Query,
			PageSize:  pageSize,
			PageToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		files = append(files, page.Files...)

		if page.NextPageToken == "" {
			return files, nil
		}
		pages++
		if pages >= maxPages {
			return nil, fmt.Errorf("listing %q: %w after %d pages", opts.Query, ErrPageLimitExceeded, pages)
		}
		token = page.NextPageToken
	}
}
