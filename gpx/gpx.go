// Package gpx writes and reads GPX 1.1 track documents.
//
// The output follows the flavour exported by the Strava Android app: a
// single track with one segment, where every point carries an elevation, a
// timestamp and a Garmin TrackPointExtension with a cadence value.
package gpx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/katalvlaran/pixtrail/geo"
)

// ErrNotGPX is returned by Decode when the document has no gpx root.
var ErrNotGPX = errors.New("gpx: document has no <gpx> root element")

const (
	creator     = "StravaGPX Android"
	activity    = "10"
	precision   = 1e7
	timeLayout  = "2006-01-02T15:04:05Z"
	nsGPX       = "http://www.topografix.com/GPX/1/1"
	nsXSI       = "http://www.w3.org/2001/XMLSchema-instance"
	nsGPXX      = "http://www.garmin.com/xmlschemas/GpxExtensions/v3"
	nsTPX       = "http://www.garmin.com/xmlschemas/TrackPointExtension/v1"
	schemaLocXS = nsGPX + " http://www.topografix.com/GPX/1/1/gpx.xsd " +
		nsGPXX + " http://www.garmin.com/xmlschemas/GpxExtensionsv3.xsd " +
		nsTPX + " http://www.garmin.com/xmlschemas/TrackPointExtensionv1.xsd"
)

// Track is a named sequence of track points.
type Track struct {
	Name   string
	Points []geo.TrackPoint
}

// Encode writes t to w as a GPX document. An empty track writes nothing.
// The track name is escaped for safe embedding.
func Encode(w io.Writer, t Track) error {
	if len(t.Points) == 0 {
		return nil
	}
	doc := Document(t)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("gpx: write: %w", err)
	}
	return nil
}

// Document builds the etree document for t.
func Document(t Track) *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalEndTags = true
	doc.WriteSettings.CanonicalText = true
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("gpx")
	root.CreateAttr("creator", creator)
	root.CreateAttr("xmlns:xsi", nsXSI)
	root.CreateAttr("xsi:schemaLocation", schemaLocXS)
	root.CreateAttr("version", "1.1")
	root.CreateAttr("xmlns", nsGPX)
	root.CreateAttr("xmlns:gpxtpx", nsTPX)
	root.CreateAttr("xmlns:gpxx", nsGPXX)

	if len(t.Points) > 0 {
		root.CreateElement("metadata").CreateElement("time").SetText(formatTime(t.Points[0].Time))
	}

	trk := root.CreateElement("trk")
	trk.CreateElement("name").SetText(t.Name)
	trk.CreateElement("type").SetText(activity)
	seg := trk.CreateElement("trkseg")
	for _, p := range t.Points {
		pt := seg.CreateElement("trkpt")
		pt.CreateAttr("lat", formatCoord(p.Lat))
		pt.CreateAttr("lon", formatCoord(p.Lon))
		pt.CreateElement("ele").SetText(strconv.FormatFloat(p.Elevation, 'f', -1, 64))
		pt.CreateElement("time").SetText(formatTime(p.Time))
		ext := pt.CreateElement("extensions").CreateElement("gpxtpx:TrackPointExtension")
		ext.CreateElement("gpxtpx:cad").SetText(strconv.Itoa(p.Cadence))
	}

	doc.Indent(1)
	return doc
}

// Decode parses a GPX document written by Encode. Empty input yields an
// empty Track. Only the first track and segment are read.
func Decode(r io.Reader) (Track, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Track{}, fmt.Errorf("gpx: read: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Track{}, nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return Track{}, fmt.Errorf("gpx: parse: %w", err)
	}
	root := doc.SelectElement("gpx")
	if root == nil {
		return Track{}, ErrNotGPX
	}

	var t Track
	trk := root.SelectElement("trk")
	if trk == nil {
		return t, nil
	}
	if name := trk.SelectElement("name"); name != nil {
		t.Name = name.Text()
	}
	for i, pt := range trk.FindElements("trkseg/trkpt") {
		p, err := decodePoint(pt)
		if err != nil {
			return Track{}, fmt.Errorf("gpx: trkpt %d: %w", i, err)
		}
		p.Cell.Ordinal = i
		t.Points = append(t.Points, p)
	}
	return t, nil
}

func decodePoint(pt *etree.Element) (geo.TrackPoint, error) {
	var p geo.TrackPoint
	var err error
	if p.Lat, err = strconv.ParseFloat(pt.SelectAttrValue("lat", ""), 64); err != nil {
		return p, fmt.Errorf("lat: %w", err)
	}
	if p.Lon, err = strconv.ParseFloat(pt.SelectAttrValue("lon", ""), 64); err != nil {
		return p, fmt.Errorf("lon: %w", err)
	}
	if ele := pt.SelectElement("ele"); ele != nil {
		if p.Elevation, err = strconv.ParseFloat(ele.Text(), 64); err != nil {
			return p, fmt.Errorf("ele: %w", err)
		}
	}
	if ts := pt.SelectElement("time"); ts != nil {
		if p.Time, err = time.Parse(time.RFC3339, ts.Text()); err != nil {
			return p, fmt.Errorf("time: %w", err)
		}
	}
	if cad := pt.FindElement("extensions/gpxtpx:TrackPointExtension/gpxtpx:cad"); cad != nil {
		if p.Cadence, err = strconv.Atoi(cad.Text()); err != nil {
			return p, fmt.Errorf("cad: %w", err)
		}
	}
	return p, nil
}

// formatCoord rounds to 1e-7 degrees and prints the shortest form.
func formatCoord(v float64) string {
	return strconv.FormatFloat(math.Round(v*precision)/precision, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
