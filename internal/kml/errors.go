package kml

import (
	"errors"
	"fmt"
)

// ErrNoUsableFeatures is returned with an empty row set when a document
// parsed cleanly but no Placemark carried a usable Point or Polygon. It is a
// warning, not a failure; test for it with errors.Is.
var ErrNoUsableFeatures = errors.New("kml: no Placemark features with usable geometries were found")

// ArchiveReadError indicates the KMZ buffer is not a readable zip container.
type ArchiveReadError struct {
	Err error
}

func (e *ArchiveReadError) Error() string {
	return fmt.Sprintf("kmz: cannot read archive: %v", e.Err)
}

func (e *ArchiveReadError) Unwrap() error { return e.Err }

// NoKMLFoundError indicates a valid zip container without any .kml entry.
type NoKMLFoundError struct {
	Entries int
}

func (e *NoKMLFoundError) Error() string {
	return fmt.Sprintf("kmz: no KML file found inside the KMZ (%d entries)", e.Entries)
}

// MalformedXMLError indicates the document could not be recovered into a tree
// at all, even with the lenient decoder, or that it only parsed by skipping
// broken markup and still produced no rows.
type MalformedXMLError struct {
	Err error
}

func (e *MalformedXMLError) Error() string {
	if e.Err == nil {
		return "kml: malformed XML: no root element"
	}
	return fmt.Sprintf("kml: malformed XML: %v", e.Err)
}

func (e *MalformedXMLError) Unwrap() error { return e.Err }

// IsFatal reports whether err is one of the errors that abort an export:
// an unreadable archive, an archive without KML, or unrecoverable XML.
func IsFatal(err error) bool {
	var (
		archiveErr *ArchiveReadError
		noKMLErr   *NoKMLFoundError
		xmlErr     *MalformedXMLError
	)
	return errors.As(err, &archiveErr) || errors.As(err, &noKMLErr) || errors.As(err, &xmlErr)
}
