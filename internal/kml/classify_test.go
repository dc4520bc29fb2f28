package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmzexport/internal/geom"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in      string
		want    Symbol
		wantErr bool
	}{
		{"Purple Triangle", PurpleTriangle, false},
		{"purpletriangle", PurpleTriangle, false},
		{" YELLOW DOT ", YellowDot, false},
		{"red flag", RedFlag, false},
		{"RedFlag", RedFlag, false},
		{"blue square", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSymbol(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	styles := &StyleIndex{
		hrefs: map[string]string{
			"tri": "icons/Triangle_Purple.png",
			"dot": "icons/dot.png",
		},
		maps: map[string]string{"sm": "tri"},
	}
	triangle := geom.Ring{{0, 0}, {1, 0}, {0, 1}, {0, 0}}
	square := geom.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}

	tests := []struct {
		name string
		pm   placemark
		def  Symbol
		want Symbol
	}{
		{
			name: "triangle polygon",
			pm:   placemark{polygon: triangle, hasPolygon: true},
			want: PurpleTriangle,
		},
		{
			name: "triangle polygon beats flag description",
			pm:   placemark{polygon: triangle, hasPolygon: true, description: "flag"},
			want: PurpleTriangle,
		},
		{
			name: "square polygon falls through",
			pm:   placemark{polygon: square, hasPolygon: true},
			want: YellowDot,
		},
		{
			name: "direct style href",
			pm:   placemark{styleURL: "#tri"},
			want: PurpleTriangle,
		},
		{
			name: "style map href",
			pm:   placemark{styleURL: "#sm"},
			want: PurpleTriangle,
		},
		{
			name: "non triangle href then flag description",
			pm:   placemark{styleURL: "#dot", description: "Red FLAG here"},
			want: RedFlag,
		},
		{
			name: "description triangle beats flag",
			pm:   placemark{description: "flag near the TRIANGLE"},
			want: PurpleTriangle,
		},
		{
			name: "unresolved style uses default",
			pm:   placemark{styleURL: "#missing"},
			want: YellowDot,
		},
		{
			name: "configured default",
			pm:   placemark{},
			def:  RedFlag,
			want: RedFlag,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := tt.def
			if def == "" {
				def = YellowDot
			}
			c := classifier{styles: styles, def: def}
			assert.Equal(t, tt.want, c.classify(&tt.pm))
		})
	}
}
