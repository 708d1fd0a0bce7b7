package drive

import "time"

// FileInfo represents metadata about a file or folder in Google Drive
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mimeType"`

	// Size is the size of the file in bytes (not populated for folders)
	Size int64 `json:"size,omitempty"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modifiedTime"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`
}

// IsFolder reports whether the entry is a Drive folder.
func (f *FileInfo) IsFolder() bool {
	return f.MimeType == FolderMimeType
}

// Kind restricts a lookup to a particular entry type.
type Kind int

const (
	// KindAny matches files and folders alike.
	KindAny Kind = iota

	// KindFile matches anything that is not a folder.
	KindFile

	// KindFolder matches folders only.
	KindFolder
)

// String returns the kind name for log output.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return "any"
	}
}

// ListOptions controls a full listing performed by ListAll.
type ListOptions struct {
	// Query is a filter expression in Google Drive's query language.
	// See https://developers.google.com/drive/api/guides/search-files
	// Examples:
	//   "name contains 'report'"
	//   "'folderId' in parents"
	Query string

	// PageSize is a per-page size hint passed to the service. The service
	// may return fewer entries per page than requested. Zero or negative
	// selects DefaultPageSize.
	PageSize int64

	// MaxPages caps the number of pages ListAll will follow before failing
	// with ErrPageLimitExceeded. Zero or negative selects DefaultMaxPages.
	MaxPages int
}

// UploadOptions contains options for uploading a file
type UploadOptions struct {
	// ParentFolders are the IDs of parent folders where the file should be placed
	ParentFolders []string

	// MimeType is the MIME type of the file (e.g., "application/pdf", "image/png")
	// If not specified, it is guessed from the file name's extension
	MimeType string

	// ChunkSize overrides the resumable-upload chunk size in bytes.
	// Zero keeps the API client's default.
	ChunkSize int
}

// CopyOptions contains options for copying a file
type CopyOptions struct {
	// ParentFolder is an optional folder ID to create the copy in
	ParentFolder string

	// NewName is an optional name for the copy (leave empty to keep the original name)
	NewName string
}
