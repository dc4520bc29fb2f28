package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zip"

	"kmzexport/internal/kml"
)

// Artifact is one rendered output file.
type Artifact struct {
	Name string
	Data []byte
}

// Set names the artifacts to render. An empty name disables that artifact.
type Set struct {
	CSV     string
	TXT     string
	GeoJSON string
	// Bundle, when set, adds a zip holding every other artifact.
	Bundle string
}

// DefaultSet renders CSV and TXT under their default names.
func DefaultSet() Set {
	return Set{CSV: CSVName, TXT: TXTName}
}

// Render serializes rows into the artifacts enabled in s, in the order CSV,
// TXT, GeoJSON, bundle.
func (s Set) Render(rows []kml.Row) ([]Artifact, error) {
	writers := []struct {
		name  string
		write func(io.Writer, []kml.Row) error
	}{
		{s.CSV, WriteCSV},
		{s.TXT, WriteTXT},
		{s.GeoJSON, WriteGeoJSON},
	}
	var out []Artifact
	for _, w := range writers {
		if w.name == "" {
			continue
		}
		var buf bytes.Buffer
		if err := w.write(&buf, rows); err != nil {
			return nil, fmt.Errorf("render %s: %w", w.name, err)
		}
		out = append(out, Artifact{Name: w.name, Data: buf.Bytes()})
	}
	if s.Bundle != "" {
		var buf bytes.Buffer
		if err := WriteBundle(&buf, out); err != nil {
			return nil, fmt.Errorf("render %s: %w", s.Bundle, err)
		}
		out = append(out, Artifact{Name: s.Bundle, Data: buf.Bytes()})
	}
	return out, nil
}

// WriteBundle writes files into a deflated zip archive in the given order.
func WriteBundle(w io.Writer, files []Artifact) error {
	zw := zip.NewWriter(w)
	now := time.Now()
	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   zip.Deflate,
			Modified: now,
		})
		if err != nil {
			return err
		}
		if _, err := fw.Write(f.Data); err != nil {
			return err
		}
	}
	return zw.Close()
}

// WriteDir writes every artifact into dir, creating it when needed, and
// returns the paths written.
func WriteDir(dir string, arts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(arts))
	for _, a := range arts {
		p := filepath.Join(dir, a.Name)
		if err := os.WriteFile(p, a.Data, 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
