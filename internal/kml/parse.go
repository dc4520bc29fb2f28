package kml

import "kmzexport/internal/geom"

// Row is one exported feature. Name is kept verbatim; it is never
// reinterpreted as a number.
type Row struct {
	Lat    float64
	Lon    float64
	Name   string
	Symbol Symbol
}

type options struct {
	defaultSymbol   Symbol
	strictNamespace bool
}

// Option configures Parse and Load.
type Option func(*options)

// WithDefaultSymbol sets the symbol used when no classification rule
// matches. The default is YellowDot.
func WithDefaultSymbol(s Symbol) Option {
	return func(o *options) {
		if s != "" {
			o.defaultSymbol = s
		}
	}
}

// WithStrictNamespace only matches elements that are explicitly in the KML
// 2.2 namespace. By default a document that never declares a namespace is
// read as KML.
func WithStrictNamespace() Option {
	return func(o *options) {
		o.strictNamespace = true
	}
}

// Load converts a KML or KMZ buffer into feature rows. KMZ input is detected
// by its zip header and unwrapped first.
func Load(data []byte, opts ...Option) ([]Row, error) {
	if IsKMZ(data) {
		kmlData, err := UnwrapKMZ(data)
		if err != nil {
			return nil, err
		}
		data = kmlData
	}
	return Parse(data, opts...)
}

// Parse converts a KML document into feature rows, one per Placemark with a
// usable Point or Polygon, in document order.
//
// A Point always wins over a Polygon; a Polygon contributes its vertex mean.
// When no Placemark yields a row Parse returns a nil slice together with
// ErrNoUsableFeatures, or a MalformedXMLError when the parser had to step
// over broken markup to get there.
func Parse(data []byte, opts ...Option) ([]Row, error) {
	o := options{defaultSymbol: YellowDot}
	for _, opt := range opts {
		opt(&o)
	}

	defaultNS := Namespace
	if o.strictNamespace {
		defaultNS = ""
	}
	doc, err := parseTree(data, defaultNS)
	if err != nil {
		return nil, err
	}
	c := classifier{styles: buildStyleIndex(doc.node), def: o.defaultSymbol}

	var rows []Row
	for _, n := range doc.findAll("Placemark") {
		pm := extractPlacemark(n)
		var pos geom.Coordinate
		switch {
		case pm.point != nil:
			pos = *pm.point
		case pm.hasPolygon:
			pos = geom.Centroid(pm.polygon)
		default:
			continue
		}
		rows = append(rows, Row{
			Lat:    pos.Lat(),
			Lon:    pos.Lon(),
			Name:   pm.name,
			Symbol: c.classify(&pm),
		})
	}
	if len(rows) == 0 {
		if doc.syntaxErr != nil {
			return nil, &MalformedXMLError{Err: doc.syntaxErr}
		}
		return nil, ErrNoUsableFeatures
	}
	return rows, nil
}
