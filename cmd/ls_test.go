package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avedra/drivectl/internal/config"
	"github.com/avedra/drivectl/internal/drive"
)

func TestRunLs(t *testing.T) {
	cfg = config.Default()

	cat := &fakeCatalog{
		pages: []*drive.Page{
			{Files: []*drive.FileInfo{{ID: "folder1", Name: "reports", MimeType: drive.FolderMimeType}}},
			{Files: []*drive.FileInfo{
				{ID: "10", Name: "jan.csv", Size: 2048},
				{ID: "11", Name: "feb.csv", Size: 4096},
			}},
		},
	}

	var out bytes.Buffer
	err := runLs(context.Background(), cat, &out, "reports", false, false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "10  jan.csv")
	assert.Contains(t, out.String(), "11  feb.csv")
}

func TestRunLsLongFormat(t *testing.T) {
	cfg = config.Default()

	cat := &fakeCatalog{
		pages: []*drive.Page{
			{Files: []*drive.FileInfo{{ID: "folder1", Name: "reports", MimeType: drive.FolderMimeType}}},
			{Files: []*drive.FileInfo{
				{ID: "10", Name: "jan.csv", Size: 2048},
				{ID: "sub", Name: "nested", MimeType: drive.FolderMimeType},
			}},
		},
	}

	var out bytes.Buffer
	err := runLs(context.Background(), cat, &out, "reports", false, true)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "2.0")
	assert.Contains(t, out.String(), "nested")
}

func TestRunLsMissingFolder(t *testing.T) {
	cfg = config.Default()
	cat := &fakeCatalog{pages: []*drive.Page{{}}}

	var out bytes.Buffer
	err := runLs(context.Background(), cat, &out, "nope", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
	assert.Empty(t, out.String())
}
