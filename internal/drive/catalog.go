package drive

import "context"

// Catalog is the single remote capability the listing core consumes: one
// query page per call. *Client implements it against the real Drive API;
// tests substitute a scripted fake.
type Catalog interface {
	// QueryPage issues exactly one Files.List round trip and returns the
	// resulting page. The page token is opaque: an empty PageToken requests
	// the first page, and an empty NextPageToken in the response means no
	// further pages exist.
	QueryPage(ctx context.Context, req PageRequest) (*Page, error)
}

// PageRequest describes one page of a query.
type PageRequest struct {
	// Query is the filter expression, owned by the service's query grammar.
	Query string

	// PageSize is a size hint; the service may return fewer entries.
	PageSize int64

	// PageToken continues a previous page. Empty means first page.
	PageToken string
}

// Page is one page of query results.
type Page struct {
	// Files are the entries of this page, in service order.
	Files []*FileInfo

	// NextPageToken continues the listing. Empty means this was the last page.
	NextPageToken string
}
