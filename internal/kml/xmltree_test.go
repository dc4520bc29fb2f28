package kml

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTreeNamespaces(t *testing.T) {
	doc, err := parseTree([]byte(`<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:o="urn:other">
		<Document>
			<o:Placemark><name>foreign</name></o:Placemark>
			<Placemark><name>native</name></Placemark>
		</Document>
	</kml>`), Namespace)
	require.NoError(t, err)

	pms := doc.findAll("Placemark")
	require.Len(t, pms, 1)
	name, ok := pms[0].childText("name")
	assert.True(t, ok)
	assert.Equal(t, "native", name)
}

func TestParseTreeWithoutNamespace(t *testing.T) {
	input := []byte(`<kml><Placemark><name>bare</name></Placemark></kml>`)

	doc, err := parseTree(input, Namespace)
	require.NoError(t, err)
	require.Len(t, doc.findAll("Placemark"), 1)

	doc, err = parseTree(input, "")
	require.NoError(t, err)
	assert.Empty(t, doc.findAll("Placemark"))
}

func TestParseTreeRecovers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		names []string
	}{
		{
			name:  "unclosed at eof",
			input: `<kml><Document><Placemark><name>A</name><Placemark><name>B`,
			names: []string{"A", "B"},
		},
		{
			name:  "mismatched end tag",
			input: `<kml><Document><Placemark><name>A</Placemark><Placemark><name>B</name></Placemark></Document></kml>`,
			names: []string{"A", "B"},
		},
		{
			name:  "html entity and bare ampersand",
			input: `<kml><Placemark><name>Fish &amp; Chips &copy; R&D</name></Placemark></kml>`,
			names: []string{"Fish & Chips © R&D"},
		},
		{
			name:  "raw html in description",
			input: `<kml><Placemark><description>line<br>next<hr></description><name>C</name></Placemark></kml>`,
			names: []string{"C"},
		},
		{
			name:  "bare less-than in text",
			input: `<kml><Placemark><description>depth < 5m</description><name>A</name></Placemark><Placemark><name>B</name></Placemark></kml>`,
			names: []string{"A", "B"},
		},
		{
			name:  "bare less-than in name",
			input: `<kml><Placemark><name>x<y</name></Placemark><Placemark><name>C</name></Placemark></kml>`,
			names: []string{"x<y", "C"},
		},
		{
			name:  "trailing garbage",
			input: `<kml><Placemark><name>D</name></Placemark></kml><<<>>>`,
			names: []string{"D"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parseTree([]byte(tt.input), Namespace)
			require.NoError(t, err)
			var names []string
			for _, pm := range doc.findAll("Placemark") {
				names = append(names, extractName(pm))
			}
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestParseTreeKeepsTextAroundSyntaxError(t *testing.T) {
	doc, err := parseTree([]byte(`<kml><Placemark><description>depth < 5m</description></Placemark></kml>`), Namespace)
	require.NoError(t, err)
	require.Error(t, doc.syntaxErr)

	desc, ok := doc.findAll("Placemark")[0].childText("description")
	assert.True(t, ok)
	assert.Equal(t, "depth < 5m", desc)
}

func TestParseTreeCleanInput(t *testing.T) {
	doc, err := parseTree([]byte(`<kml><Placemark><name>A</name></Placemark></kml>`), Namespace)
	require.NoError(t, err)
	assert.NoError(t, doc.syntaxErr)
}

func TestParseTreeMalformed(t *testing.T) {
	for _, input := range []string{"", "   ", "just text", "<<<>>>"} {
		_, err := parseTree([]byte(input), Namespace)
		var xmlErr *MalformedXMLError
		assert.True(t, errors.As(err, &xmlErr), "input %q: got %v", input, err)
	}
}

func TestParseTreeCharset(t *testing.T) {
	// "Café" in ISO-8859-1
	input := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><kml><Placemark><name>Caf`), 0xe9)
	input = append(input, []byte(`</name></Placemark></kml>`)...)
	doc, err := parseTree(input, Namespace)
	require.NoError(t, err)
	pms := doc.findAll("Placemark")
	require.Len(t, pms, 1)
	assert.Equal(t, "Café", extractName(pms[0]))
}

func TestFind(t *testing.T) {
	doc, err := parseTree([]byte(`<kml><Placemark>
		<Polygon><outerBoundaryIs><LinearRing></LinearRing></outerBoundaryIs></Polygon>
		<Polygon><outerBoundaryIs><LinearRing><coordinates>1,2</coordinates></LinearRing></outerBoundaryIs></Polygon>
	</Placemark></kml>`), Namespace)
	require.NoError(t, err)
	pm := doc.findAll("Placemark")[0]

	el := pm.find("Polygon", "outerBoundaryIs", "LinearRing", "coordinates")
	require.NotNil(t, el)
	assert.Equal(t, "1,2", el.text)

	assert.Nil(t, pm.find("Point", "coordinates"))
	assert.Nil(t, pm.find())
}
