package kml

import (
	"bytes"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// preferredNames are checked in order before falling back to the first
// entry with a .kml suffix.
var preferredNames = []string{"doc.kml", "root.kml", "index.kml"}

// zipMagic holds the local file header signature and, for an archive with
// no entries, the end of central directory signature.
var zipMagic = [][]byte{[]byte("PK\x03\x04"), []byte("PK\x05\x06")}

// IsKMZ reports whether data starts with a zip signature.
func IsKMZ(data []byte) bool {
	for _, magic := range zipMagic {
		if bytes.HasPrefix(data, magic) {
			return true
		}
	}
	return false
}

// UnwrapKMZ returns the bytes of the KML document bundled in a KMZ archive.
//
// An entry named doc.kml, root.kml or index.kml (in that priority, at the
// archive root or under any directory) wins. Otherwise the first entry, in
// listing order, whose name ends in .kml regardless of case is used.
func UnwrapKMZ(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ArchiveReadError{Err: err}
	}
	f := selectKML(zr.File)
	if f == nil {
		return nil, &NoKMLFoundError{Entries: len(zr.File)}
	}
	rc, err := f.Open()
	if err != nil {
		return nil, &ArchiveReadError{Err: err}
	}
	defer rc.Close()
	out, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ArchiveReadError{Err: err}
	}
	return out, nil
}

func selectKML(files []*zip.File) *zip.File {
	for _, want := range preferredNames {
		for _, f := range files {
			if f.Name == want || strings.HasSuffix(f.Name, "/"+want) {
				return f
			}
		}
	}
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f.Name), ".kml") {
			return f
		}
	}
	return nil
}
