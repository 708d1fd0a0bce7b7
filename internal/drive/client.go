package drive

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"

	// listFields selects the file metadata the client consumes; everything
	// else the API could return is left out of the response.
	listFields = "nextPageToken, files(id, name, mimeType, size, modifiedTime, parents)"

	fileFields = "id, name, mimeType, size, modifiedTime, parents"
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
}

// NewClient creates a client around an authenticated Drive service.
// Use googleauth.NewDriveService to construct the service.
func NewClient(service *drive.Service) *Client {
	return &Client{service: service}
}

// QueryPage implements Catalog with exactly one Files.List round trip.
func (c *Client) QueryPage(ctx context.Context, req PageRequest) (*Page, error) {
	call := c.service.Files.List().
		Context(ctx).
		Fields(listFields)

	if req.Query != "" {
		call = call.Q(req.Query)
	}
	if req.PageSize > 0 {
		call = call.PageSize(req.PageSize)
	}
	if req.PageToken != "" {
		call = call.PageToken(req.PageToken)
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("query page request failed: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return &Page{
		Files:         files,
		NextPageToken: fileList.NextPageToken,
	}, nil
}

// Download fetches the content of a file. The returned size is the response
// content length, or -1 when the service does not report one. The caller
// owns the ReadCloser.
func (c *Client) Download(ctx context.Context, fileID string) (io.ReadCloser, int64, error) {
	if fileID == "" {
		return nil, 0, fmt.Errorf("fileID is required")
	}

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}

	return resp.Body, resp.ContentLength, nil
}

// Upload creates a file with the given name and content. The MIME type is
// taken from options, or guessed from the name's extension.
func (c *Client) Upload(ctx context.Context, name string, content io.Reader, options *UploadOptions) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if content == nil {
		return nil, fmt.Errorf("file content is required")
	}

	file := &drive.File{
		Name: name,
	}

	mimeType := ""
	var mediaOpts []googleapi.MediaOption
	if options != nil {
		if len(options.ParentFolders) > 0 {
			file.Parents = options.ParentFolders
		}
		mimeType = options.MimeType
		if options.ChunkSize > 0 {
			mediaOpts = append(mediaOpts, googleapi.ChunkSize(options.ChunkSize))
		}
	}
	if mimeType == "" {
		mimeType = mime.TypeByExtension(filepath.Ext(name))
	}
	if mimeType != "" {
		file.MimeType = mimeType
		mediaOpts = append(mediaOpts, googleapi.ContentType(mimeType))
	}

	driveFile, err := c.service.Files.Create(file).
		Context(ctx).
		Media(content, mediaOpts...).
		Fields(fileFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return convertToFileInfo(driveFile), nil
}

// CreateFolder creates a new folder in Google Drive
func (c *Client) CreateFolder(ctx context.Context, name string, parentFolders []string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}

	file := &drive.File{
		Name:     name,
		MimeType: FolderMimeType,
	}

	if len(parentFolders) > 0 {
		file.Parents = parentFolders
	}

	driveFile, err := c.service.Files.Create(file).
		Context(ctx).
		Fields(fileFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return convertToFileInfo(driveFile), nil
}

// Delete permanently deletes a file from Google Drive
func (c *Client) Delete(ctx context.Context, fileID string) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}

	err := c.service.Files.Delete(fileID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}

	return nil
}

// Copy copies a file, optionally into a different parent folder and under
// a different name.
func (c *Client) Copy(ctx context.Context, fileID string, options *CopyOptions) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	file := &drive.File{}
	if options != nil {
		if options.ParentFolder != "" {
			file.Parents = []string{options.ParentFolder}
		}
		if options.NewName != "" {
			file.Name = options.NewName
		}
	}

	driveFile, err := c.service.Files.Copy(fileID, file).
		Context(ctx).
		Fields(fileFields).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to copy file %s: %w", fileID, err)
	}

	return convertToFileInfo(driveFile), nil
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	fileInfo := &FileInfo{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
		Parents:  f.Parents,
	}

	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			fileInfo.ModifiedTime = t
		}
	}

	return fileInfo
}
