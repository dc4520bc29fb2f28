package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokml "github.com/twpayne/go-kml"
)

func TestStyleIndexResolve(t *testing.T) {
	data := buildKML(t,
		iconStyle("st1", "http://maps.example.com/yellow-dot.png"),
		iconStyle("st2", "  triangle-icon.png \n"),
		styleMap("sm1", "#st2", "#st1"),
		styleMap("smChain", "#sm1", "#st1"),
		gokml.SharedStyle("noIcon", gokml.LineStyle(gokml.Width(2))),
		gokml.Style(gokml.IconStyle(gokml.Icon(gokml.Href("anonymous.png")))),
	)
	root, err := parseTree(data, Namespace)
	require.NoError(t, err)
	idx := buildStyleIndex(root.node)

	styles, maps := idx.Len()
	assert.Equal(t, 2, styles)
	assert.Equal(t, 2, maps)

	tests := []struct {
		ref      string
		wantHref string
		wantOK   bool
	}{
		{"#st1", "http://maps.example.com/yellow-dot.png", true},
		{"st1", "http://maps.example.com/yellow-dot.png", true},
		{"#st2", "triangle-icon.png", true},
		{"#sm1", "triangle-icon.png", true},
		{"#smChain", "", false}, // one hop only: sm1 is not a Style
		{"#noIcon", "", false},
		{"#missing", "", false},
		{"", "", false},
		{"#", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			href, ok := idx.Resolve(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantHref, href)
		})
	}
}

func TestStyleIndexLaterDefinitionWins(t *testing.T) {
	data := buildKML(t,
		iconStyle("dup", "first.png"),
		gokml.Folder(iconStyle("dup", "second.png")),
	)
	root, err := parseTree(data, Namespace)
	require.NoError(t, err)

	href, ok := buildStyleIndex(root.node).Resolve("#dup")
	assert.True(t, ok)
	assert.Equal(t, "second.png", href)
}

func TestStyleMapPairs(t *testing.T) {
	root, err := parseTree([]byte(`<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
		<Style id="tri"><IconStyle><Icon><href>triangle.png</href></Icon></IconStyle></Style>
		<Style id="dot"><IconStyle><Icon><href>dot.png</href></Icon></IconStyle></Style>
		<StyleMap id="highlightOnly">
			<Pair><key>highlight</key><styleUrl>#tri</styleUrl></Pair>
		</StyleMap>
		<StyleMap id="spacedKey">
			<Pair><key> Normal </key><styleUrl>#tri</styleUrl></Pair>
		</StyleMap>
		<StyleMap id="emptyFirst">
			<Pair><key>normal</key><styleUrl></styleUrl></Pair>
			<Pair><key>normal</key><styleUrl>dot</styleUrl></Pair>
		</StyleMap>
		<StyleMap>
			<Pair><key>normal</key><styleUrl>#tri</styleUrl></Pair>
		</StyleMap>
		<StyleMap id="nested">
			<Wrapper><Pair><key>normal</key><styleUrl>#tri</styleUrl></Pair></Wrapper>
		</StyleMap>
	</Document></kml>`), Namespace)
	require.NoError(t, err)
	idx := buildStyleIndex(root.node)

	_, maps := idx.Len()
	assert.Equal(t, 2, maps)

	_, ok := idx.Resolve("#highlightOnly")
	assert.False(t, ok)

	href, ok := idx.Resolve("#spacedKey")
	assert.True(t, ok)
	assert.Equal(t, "triangle.png", href)

	href, ok = idx.Resolve("#emptyFirst")
	assert.True(t, ok)
	assert.Equal(t, "dot.png", href)

	_, ok = idx.Resolve("#nested")
	assert.False(t, ok)
}
