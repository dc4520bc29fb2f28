package kml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapKMZ(t *testing.T) {
	tests := []struct {
		name    string
		entries []zipEntry
		want    string
	}{
		{
			name:    "preferred name over assets",
			entries: []zipEntry{{"images/icon.png", "png"}, {"doc.kml", "doc"}},
			want:    "doc",
		},
		{
			name:    "suffix fallback",
			entries: []zipEntry{{"mydata.kml", "mydata"}},
			want:    "mydata",
		},
		{
			name:    "preferred priority beats listing order",
			entries: []zipEntry{{"index.kml", "index"}, {"root.kml", "root"}, {"doc.kml", "doc"}},
			want:    "doc",
		},
		{
			name:    "root before index",
			entries: []zipEntry{{"index.kml", "index"}, {"root.kml", "root"}},
			want:    "root",
		},
		{
			name:    "preferred name in a directory",
			entries: []zipEntry{{"a.kml", "a"}, {"files/doc.kml", "nested"}},
			want:    "nested",
		},
		{
			name:    "suffix is case insensitive",
			entries: []zipEntry{{"readme.txt", "txt"}, {"Layer.KML", "upper"}, {"other.kml", "other"}},
			want:    "upper",
		},
		{
			name:    "preferred names are exact",
			entries: []zipEntry{{"mydoc.kml", "mydoc"}, {"xdoc.kml", "x"}},
			want:    "mydoc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnwrapKMZ(buildZip(t, tt.entries...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestUnwrapKMZNoKML(t *testing.T) {
	_, err := UnwrapKMZ(buildZip(t, zipEntry{"images/icon.png", "png"}, zipEntry{"notes.txt", "txt"}))
	var noKML *NoKMLFoundError
	require.True(t, errors.As(err, &noKML), "got %v", err)
	assert.Equal(t, 2, noKML.Entries)
	assert.True(t, IsFatal(err))
}

func TestUnwrapKMZNotAZip(t *testing.T) {
	_, err := UnwrapKMZ([]byte("PK\x03\x04 definitely not a zip"))
	var archiveErr *ArchiveReadError
	require.True(t, errors.As(err, &archiveErr), "got %v", err)
	assert.NotNil(t, errors.Unwrap(err))
	assert.True(t, IsFatal(err))
}

func TestIsKMZ(t *testing.T) {
	assert.True(t, IsKMZ(buildZip(t, zipEntry{"doc.kml", "x"})))
	assert.False(t, IsKMZ([]byte(`<?xml version="1.0"?><kml/>`)))
	assert.False(t, IsKMZ(nil))
	assert.True(t, IsKMZ(buildZip(t)), "an archive without entries")
}

func TestLoadEmptyArchive(t *testing.T) {
	_, err := Load(buildZip(t))
	var noKML *NoKMLFoundError
	require.True(t, errors.As(err, &noKML), "got %v", err)
	assert.Equal(t, 0, noKML.Entries)
}
