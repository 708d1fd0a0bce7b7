package drive

import (
	"context"
	"errors"
	"fmt"
)

// lookupPageSize is the page size used by FindFirst. Small on purpose: the
// fast lookup only ever inspects one page.
const lookupPageSize = 10

// ErrAmbiguousName is returned by FindUnique when more than one entry
// matches the requested name. Compare with errors.Is.
var ErrAmbiguousName = errors.New("ambiguous name")

// FindFirst looks up an entry by exact name and returns the first match on
// the first page of results. Further pages are deliberately not requested,
// so with duplicate names the result depends on service ordering; callers
// that need certainty use FindUnique instead.
//
// The boolean reports whether a match was found; a miss is not an error.
func FindFirst(ctx context.Context, cat Catalog, name string, kind Kind) (*FileInfo, bool, error) {
	if name == "" {
		return nil, false, fmt.Errorf("name is required")
	}

	page, err := cat.QueryPage(ctx, PageRequest{
		Query:    nameQuery(name, kind),
		PageSize: lookupPageSize,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s %q: %w", kind, name, err)
	}

	if len(page.Files) == 0 {
		return nil, false, nil
	}
	return page.Files[0], true, nil
}

// FindUnique looks up an entry by exact name, scanning every page of
// results. It fails with ErrAmbiguousName when the name matches more than
// one entry. The boolean reports whether a match was found; a miss is not
// an error.
func FindUnique(ctx context.Context, cat Catalog, name string, kind Kind) (*FileInfo, bool, error) {
	if name == "" {
		return nil, false, fmt.Errorf("name is required")
	}

	matches, err := ListAll(ctx, cat, ListOptions{
		Query:    nameQuery(name, kind),
		PageSize: lookupPageSize,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s %q: %w", kind, name, err)
	}

	switch len(matches) {
	case 0:
		return nil, false, nil
	case 1:
		return matches[0], true, nil
	default:
		return nil, false, fmt.Errorf("%s %q: %w (%d matches)", kind, name, ErrAmbiguousName, len(matches))
	}
}
