package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/paulmach/orb"

	"kmzexport/internal/export"
	"kmzexport/internal/geom"
	"kmzexport/internal/kml"
	"kmzexport/internal/source"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !source.Supported(name) {
			continue
		}
		items = append(items, fileItem{
			title: name,
			desc:  strings.ToLower(filepath.Ext(name)),
			path:  filepath.Join(m.cwd, name),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no supported files in current directory"
	}
}

// loadPath converts a file into rows and resets the view onto them.
func (m *Model) loadPath(p string) {
	opts := []kml.Option{kml.WithDefaultSymbol(m.opts.DefaultSymbol)}
	if m.opts.StrictNamespace {
		opts = append(opts, kml.WithStrictNamespace())
	}
	rows, err := source.Load(p, opts...)
	switch {
	case errors.Is(err, kml.ErrNoUsableFeatures):
		m.selPath = p
		m.setRows(nil)
		m.status = filepath.Base(p) + ": no Placemark features with usable geometries were found"
		return
	case err != nil:
		m.status = "load error: " + describe(err)
		return
	}
	m.selPath = p
	m.setRows(rows)
	m.status = "loaded: " + filepath.Base(p) + "  " + m.countsLine()

	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// setRows replaces the dataset, rebuilding the bounds and nearest index.
func (m *Model) setRows(rows []kml.Row) {
	m.rows = rows
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	m.inspectPopup = ""
	m.hovering = false
	m.index = newRowIndex(rows)

	pts := make([]geom.Coordinate, len(rows))
	for i, r := range rows {
		pts[i] = orb.Point{r.Lon, r.Lat}
	}
	m.bbox = padBound(geom.Bounds(pts))
}

// padBound widens a degenerate bound so a lone row, or rows on one line,
// still project onto the map.
func padBound(b orb.Bound) orb.Bound {
	const pad = 0.001
	if b.Max[0]-b.Min[0] < pad {
		b.Min[0] -= pad
		b.Max[0] += pad
	}
	if b.Max[1]-b.Min[1] < pad {
		b.Min[1] -= pad
		b.Max[1] += pad
	}
	return b
}

func (m *Model) countsLine() string {
	counts := make(map[kml.Symbol]int)
	for _, r := range m.rows {
		counts[r.Symbol]++
	}
	parts := make([]string, 0, len(kml.Symbols))
	for _, s := range kml.Symbols {
		parts = append(parts, fmt.Sprintf("%s=%d", s, counts[s]))
	}
	return fmt.Sprintf("rows=%d  ", len(m.rows)) + strings.Join(parts, " ")
}

// exportCurrent writes the configured artifacts next to the loaded file.
func (m *Model) exportCurrent() {
	if len(m.rows) == 0 {
		m.status = "export: nothing loaded"
		return
	}
	arts, err := m.opts.Artifacts.Render(m.rows)
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	dir := filepath.Dir(m.selPath)
	if m.selPath == "" {
		dir = m.cwd
	}
	for _, a := range arts {
		if samePath(filepath.Join(dir, a.Name), m.selPath) {
			m.status = "export: " + a.Name + " would overwrite the loaded file"
			return
		}
	}
	paths, err := export.WriteDir(dir, arts)
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	m.status = "exported: " + strings.Join(names, ", ")
	m.refreshDir()
}

func samePath(a, b string) bool {
	if b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// describe renders load errors the way a user reads them.
func describe(err error) string {
	var noKML *kml.NoKMLFoundError
	if errors.As(err, &noKML) {
		return "No KML file found inside the KMZ."
	}
	return err.Error()
}
