package kml

import "strings"

// StyleIndex maps shared style ids to icon hrefs and StyleMap ids to the
// style id of their "normal" pair. It is built once per document and only
// read afterwards.
type StyleIndex struct {
	hrefs map[string]string
	maps  map[string]string
}

// buildStyleIndex indexes every Style and StyleMap below root in one pass.
// Entries without an id, a Style without IconStyle/Icon/href text and a
// StyleMap without a usable normal pair are left out. Later ids overwrite
// earlier ones.
func buildStyleIndex(root *node) *StyleIndex {
	idx := &StyleIndex{
		hrefs: make(map[string]string),
		maps:  make(map[string]string),
	}
	root.walk(func(n *node) bool {
		switch {
		case n.is("Style"):
			id := n.attrValue("id")
			if id == "" {
				return true
			}
			if href := n.find("IconStyle", "Icon", "href"); href != nil {
				if v := strings.TrimSpace(href.text); v != "" {
					idx.hrefs[id] = v
				}
			}
		case n.is("StyleMap"):
			id := n.attrValue("id")
			if id == "" {
				return true
			}
			if target, ok := normalPair(n); ok {
				idx.maps[id] = target
			}
		}
		return true
	})
	return idx
}

// normalPair returns the style id referenced by the StyleMap's first direct
// Pair whose key is "normal".
func normalPair(styleMap *node) (string, bool) {
	for _, pair := range styleMap.children {
		if !pair.is("Pair") {
			continue
		}
		key, _ := pair.childText("key")
		if !strings.EqualFold(key, "normal") {
			continue
		}
		url, _ := pair.childText("styleUrl")
		if url == "" {
			continue
		}
		return strings.TrimPrefix(url, "#"), true
	}
	return "", false
}

// Resolve returns the icon href for a styleUrl reference. A reference naming
// a StyleMap is replaced by that map's normal style once; StyleMaps pointing
// at other StyleMaps are not followed further.
func (idx *StyleIndex) Resolve(styleURL string) (string, bool) {
	ref := strings.TrimPrefix(strings.TrimSpace(styleURL), "#")
	if ref == "" {
		return "", false
	}
	if target, ok := idx.maps[ref]; ok {
		ref = target
	}
	href, ok := idx.hrefs[ref]
	return href, ok
}

// Len returns the number of indexed styles and style maps.
func (idx *StyleIndex) Len() (styles, styleMaps int) {
	return len(idx.hrefs), len(idx.maps)
}
