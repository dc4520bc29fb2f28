package kml

import (
	"fmt"
	"strings"

	"kmzexport/internal/geom"
)

// Symbol is the map symbol assigned to an exported feature.
type Symbol string

const (
	PurpleTriangle Symbol = "Purple Triangle"
	YellowDot      Symbol = "Yellow Dot"
	RedFlag        Symbol = "Red Flag"
)

// Symbols lists every label the classifier can produce.
var Symbols = []Symbol{PurpleTriangle, YellowDot, RedFlag}

func (s Symbol) String() string { return string(s) }

// ParseSymbol accepts a label case-insensitively, with or without the space.
func ParseSymbol(s string) (Symbol, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "")
	for _, sym := range Symbols {
		if strings.ReplaceAll(strings.ToLower(string(sym)), " ", "") == norm {
			return sym, nil
		}
	}
	return "", fmt.Errorf("unknown symbol %q (want one of %q, %q, %q)", s, PurpleTriangle, YellowDot, RedFlag)
}

// rule maps one placemark to a symbol, or reports no match.
type rule func(pm *placemark, styles *StyleIndex) (Symbol, bool)

// rules is evaluated in order; the first rule that matches decides.
var rules = []rule{
	// polygon geometry with three distinct vertices
	func(pm *placemark, _ *StyleIndex) (Symbol, bool) {
		return PurpleTriangle, pm.hasPolygon && geom.IsTriangle(pm.polygon)
	},
	// icon href reached through styleUrl, directly or via a StyleMap
	func(pm *placemark, styles *StyleIndex) (Symbol, bool) {
		href, ok := styles.Resolve(pm.styleURL)
		return PurpleTriangle, ok && containsFold(href, "triangle")
	},
	// free-text hints in the description
	func(pm *placemark, _ *StyleIndex) (Symbol, bool) {
		switch {
		case containsFold(pm.description, "triangle"):
			return PurpleTriangle, true
		case containsFold(pm.description, "flag"):
			return RedFlag, true
		}
		return "", false
	},
}

// classifier assigns symbols using rules and falls back to def.
type classifier struct {
	styles *StyleIndex
	def    Symbol
}

func (c classifier) classify(pm *placemark) Symbol {
	for _, r := range rules {
		if sym, ok := r(pm, c.styles); ok {
			return sym
		}
	}
	return c.def
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
