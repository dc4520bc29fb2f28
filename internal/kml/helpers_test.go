package kml

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
	gokml "github.com/twpayne/go-kml"
)

// buildKML renders a KML 2.2 document with the given Document children.
func buildKML(t *testing.T, children ...gokml.Element) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gokml.KML(gokml.Document(children...)).Write(&buf))
	return buf.Bytes()
}

func point(lon, lat float64) gokml.Element {
	return gokml.Point(gokml.Coordinates(gokml.Coordinate{Lon: lon, Lat: lat}))
}

func polygon(coords ...gokml.Coordinate) gokml.Element {
	return gokml.Polygon(
		gokml.OuterBoundaryIs(
			gokml.LinearRing(gokml.Coordinates(coords...)),
		),
	)
}

func iconStyle(id, href string) *gokml.SharedElement {
	return gokml.SharedStyle(id, gokml.IconStyle(gokml.Icon(gokml.Href(href))))
}

func styleMap(id, normalURL, highlightURL string) *gokml.SharedElement {
	return gokml.SharedStyleMap(id,
		gokml.Pair(gokml.Key(gokml.StyleStateNormal), gokml.StyleURL(normalURL)),
		gokml.Pair(gokml.Key(gokml.StyleStateHighlight), gokml.StyleURL(highlightURL)),
	)
}

type zipEntry struct {
	name string
	body string
}

// buildZip writes entries into an in-memory zip in the given order.
func buildZip(t *testing.T, entries ...zipEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func mustParse(t *testing.T, data []byte, opts ...Option) []Row {
	t.Helper()
	rows, err := Parse(data, opts...)
	require.NoError(t, err)
	return rows
}
