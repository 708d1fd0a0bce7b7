// Package drive provides a client for the Google Drive v3 API built around
// a small pagination core.
//
// The core is the Catalog capability: one query page per network round trip,
// continued through an opaque page token. ListAll follows the token until the
// service stops returning one, and the two lookup helpers are built on top:
//   - FindFirst inspects a single page and returns the first match
//   - FindUnique scans every page and fails when a name is ambiguous
//
// The rest of the package is the surrounding file workflow: folder listing,
// upload, download, folder creation, deletion, and copying.
//
// Callers pass the authenticated client (or any Catalog) explicitly; there
// is no ambient service handle. "Not found" is reported as a boolean, not
// an error, since it is an expected outcome of name lookups.
//
// Example usage:
//
//	ctx := context.Background()
//	client := drive.NewClient(service)
//
//	// List everything inside a named folder
//	files, found, err := client.ListFolderByName(ctx, "reports")
//
//	// Full listing with an explicit query
//	files, err = drive.ListAll(ctx, client, drive.ListOptions{
//	    Query:    "name contains 'report'",
//	    PageSize: 10,
//	})
package drive
