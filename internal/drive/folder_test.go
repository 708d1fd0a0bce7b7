package drive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFolderByName(t *testing.T) {
	// Request 1 resolves the folder, requests 2-3 page through its children.
	cat := &fakeCatalog{
		pages: []*Page{
			{Files: []*FileInfo{{ID: "folder1", Name: "reports", MimeType: FolderMimeType}}},
			{Files: []*FileInfo{file("10", "jan.csv")}, NextPageToken: "t1"},
			{Files: []*FileInfo{file("11", "feb.csv")}},
		},
	}

	files, found, err := ListFolderByName(context.Background(), cat, "reports", false, ListOptions{})
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, files, 2)
	assert.Equal(t, "jan.csv", files[0].Name)
	assert.Equal(t, "feb.csv", files[1].Name)

	require.Len(t, cat.requests, 3)
	assert.Contains(t, cat.requests[0].Query, FolderMimeType)
	assert.Equal(t, "'folder1' in parents and trashed = false", cat.requests[1].Query)
}

func TestListFolderByNameMissingFolder(t *testing.T) {
	cat := &fakeCatalog{pages: []*Page{{}}}

	files, found, err := ListFolderByName(context.Background(), cat, "nope", false, ListOptions{})
	require.NoError(t, err, "a missing folder is not an error")
	assert.False(t, found)
	assert.Nil(t, files)
	assert.Len(t, cat.requests, 1, "children are not queried when the folder is absent")
}

func TestListFolderByNameStrict(t *testing.T) {
	cat := &fakeCatalog{
		pages: []*Page{
			{Files: []*FileInfo{
				{ID: "f1", Name: "reports", MimeType: FolderMimeType},
				{ID: "f2", Name: "reports", MimeType: FolderMimeType},
			}},
		},
	}

	_, _, err := ListFolderByName(context.Background(), cat, "reports", true, ListOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousName)
}

func TestListFolderByNameEmptyFolder(t *testing.T) {
	cat := &fakeCatalog{
		pages: []*Page{
			{Files: []*FileInfo{{ID: "folder1", Name: "empty", MimeType: FolderMimeType}}},
			{},
		},
	}

	files, found, err := ListFolderByName(context.Background(), cat, "empty", false, ListOptions{})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, files)
}
