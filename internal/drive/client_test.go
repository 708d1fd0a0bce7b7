package drive

import (
	"testing"
	"time"

	drive "google.golang.org/api/drive/v3"
)

func TestConvertToFileInfo(t *testing.T) {
	driveFile := &drive.File{
		Id:           "file123",
		Name:         "test.pdf",
		MimeType:     "application/pdf",
		Size:         1024,
		ModifiedTime: "2023-01-02T15:30:00Z",
		Parents:      []string{"parent1", "parent2"},
	}

	fileInfo := convertToFileInfo(driveFile)

	if fileInfo.ID != "file123" {
		t.Errorf("Expected ID file123, got %s", fileInfo.ID)
	}
	if fileInfo.Name != "test.pdf" {
		t.Errorf("Expected Name test.pdf, got %s", fileInfo.Name)
	}
	if fileInfo.MimeType != "application/pdf" {
		t.Errorf("Expected MimeType application/pdf, got %s", fileInfo.MimeType)
	}
	if fileInfo.Size != 1024 {
		t.Errorf("Expected Size 1024, got %d", fileInfo.Size)
	}
	if len(fileInfo.Parents) != 2 {
		t.Errorf("Expected 2 parents, got %d", len(fileInfo.Parents))
	}

	expectedModified, _ := time.Parse(time.RFC3339, "2023-01-02T15:30:00Z")
	if !fileInfo.ModifiedTime.Equal(expectedModified) {
		t.Errorf("Expected ModifiedTime %v, got %v", expectedModified, fileInfo.ModifiedTime)
	}
}

func TestConvertToFileInfoInvalidTimestamp(t *testing.T) {
	driveFile := &drive.File{
		Id:           "file456",
		Name:         "bad-time.txt",
		ModifiedTime: "not-a-timestamp",
	}

	fileInfo := convertToFileInfo(driveFile)

	// Invalid timestamps are dropped, not fatal.
	if !fileInfo.ModifiedTime.IsZero() {
		t.Errorf("Expected zero ModifiedTime, got %v", fileInfo.ModifiedTime)
	}
}

func TestFileInfoIsFolder(t *testing.T) {
	folder := &FileInfo{ID: "f1", MimeType: FolderMimeType}
	if !folder.IsFolder() {
		t.Error("Expected folder MIME type to report IsFolder")
	}

	doc := &FileInfo{ID: "f2", MimeType: "application/pdf"}
	if doc.IsFolder() {
		t.Error("Expected non-folder MIME type to not report IsFolder")
	}
}
