package drive

import (
	"fmt"
	"strings"
)

// escapeQueryValue escapes a string for use inside single quotes in a Drive
// query expression. The grammar requires backslashes and single quotes to be
// backslash-escaped.
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return v
}

// nameQuery builds an exact-name query, optionally restricted by kind.
// Trashed entries are always excluded.
func nameQuery(name string, kind Kind) string {
	q := fmt.Sprintf("name = '%s' and trashed = false", escapeQueryValue(name))
	switch kind {
	case KindFolder:
		q += fmt.Sprintf(" and mimeType = '%s'", FolderMimeType)
	case KindFile:
		q += fmt.Sprintf(" and mimeType != '%s'", FolderMimeType)
	}
	return q
}

// childrenQuery builds a query matching the direct children of a folder.
func childrenQuery(folderID string) string {
	return fmt.Sprintf("'%s' in parents and trashed = false", escapeQueryValue(folderID))
}
