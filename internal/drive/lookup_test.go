package drive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFirstReturnsFirstMatch(t *testing.T) {
	// Two entries share the name; the one the service lists first wins.
	cat := &fakeCatalog{
		pages: []*Page{
			{Files: []*FileInfo{file("101", "report.csv"), file("102", "report.csv")}, NextPageToken: "more"},
		},
	}

	info, found, err := FindFirst(context.Background(), cat, "report.csv", KindAny)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "101", info.ID)

	// The fast lookup never follows the page token.
	require.Len(t, cat.requests, 1)
	assert.Equal(t, int64(lookupPageSize), cat.requests[0].PageSize)
}

func TestFindFirstNotFound(t *testing.T) {
	cat := &fakeCatalog{pages: []*Page{{}}}

	info, found, err := FindFirst(context.Background(), cat, "report.csv", KindAny)
	require.NoError(t, err, "a miss is not an error")
	assert.False(t, found)
	assert.Nil(t, info)
	assert.Len(t, cat.requests, 1, "no further requests after a miss")
}

func TestFindFirstKindRestriction(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindAny, "name = 'projects' and trashed = false"},
		{KindFolder, "name = 'projects' and trashed = false and mimeType = 'application/vnd.google-apps.folder'"},
		{KindFile, "name = 'projects' and trashed = false and mimeType != 'application/vnd.google-apps.folder'"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			cat := &fakeCatalog{pages: []*Page{{}}}
			_, _, err := FindFirst(context.Background(), cat, "projects", tt.kind)
			require.NoError(t, err)
			require.Len(t, cat.requests, 1)
			assert.Equal(t, tt.want, cat.requests[0].Query)
		})
	}
}

func TestFindFirstEmptyName(t *testing.T) {
	cat := &fakeCatalog{}
	_, _, err := FindFirst(context.Background(), cat, "", KindAny)
	require.Error(t, err)
	assert.Empty(t, cat.requests)
}

func TestFindFirstPropagatesFailure(t *testing.T) {
	cat := &fakeCatalog{failAt: 1}
	_, found, err := FindFirst(context.Background(), cat, "report.csv", KindAny)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackend)
	assert.False(t, found)
}

func TestFindUniqueSingleMatch(t *testing.T) {
	cat := &fakeCatalog{
		pages: []*Page{
			{Files: []*FileInfo{file("7", "unique.txt")}},
		},
	}

	info, found, err := FindUnique(context.Background(), cat, "unique.txt", KindFile)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "7", info.ID)
}

func TestFindUniqueScansAllPages(t *testing.T) {
	// One match per page; the duplicate only shows up on the second page,
	// which the fast lookup would have missed.
	cat := &fakeCatalog{
		pages: []*Page{
			{Files: []*FileInfo{file("1", "dup")}, NextPageToken: "t1"},
			{Files: []*FileInfo{file("2", "dup")}},
		},
	}

	_, _, err := FindUnique(context.Background(), cat, "dup", KindAny)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousName)
	assert.Len(t, cat.requests, 2)
}

func TestFindUniqueNotFound(t *testing.T) {
	cat := &fakeCatalog{pages: []*Page{{}}}

	info, found, err := FindUnique(context.Background(), cat, "missing", KindAny)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, info)
}
