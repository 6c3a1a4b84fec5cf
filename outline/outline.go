// Package outline reads sprite outlines from files.
//
// Two formats are supported: SVG documents, where every <polygon> element is
// an outline, and plain text with one "x y" point per line and a blank line
// between polygons. Outlines come back counterclockwise.
package outline

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/shatter/geom"
	"github.com/pkg/errors"
)

var ErrNoOutline = errors.New("no outline found")

// ReadSVG returns the <polygon> elements of an SVG document, in document
// order. This is not a general SVG reader: transforms and other shapes are
// ignored.
func ReadSVG(r io.Reader) ([]geom.Polygon, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, ErrNoOutline
	}

	polygons := make([]geom.Polygon, 0, len(elements))
	for i, el := range elements {
		poly, err := ParsePoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, poly.CCW())
	}
	return polygons, nil
}

// ParsePoints parses an SVG points attribute. Coordinates may be separated by
// commas, whitespace or both.
func ParsePoints(attr string) (geom.Polygon, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return geom.Polygon{}, errors.Errorf("odd number of coordinates in %q", attr)
	}

	points := make([]*geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geom.Polygon{}, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return geom.Polygon{}, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, &geom.Point{X: x, Y: y})
	}
	if len(points) < 3 {
		return geom.Polygon{}, errors.Errorf("polygon needs at least 3 points, got %d", len(points))
	}
	return geom.Polygon{Points: points}, nil
}

// ReadPoints reads newline separated points in the form "x y". Each polygon is
// ended by an empty line or the end of input.
func ReadPoints(r io.Reader) ([]geom.Polygon, error) {
	var polygons []geom.Polygon
	var points []*geom.Point
	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		if len(points) < 3 {
			return errors.Errorf("polygon %d has only %d points", len(polygons), len(points))
		}
		polygons = append(polygons, geom.Polygon{Points: points}.CCW())
		points = nil
		return nil
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// An empty line ends the current polygon
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, &point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if err := flush(); err != nil {
		return nil, err
	}
	if len(polygons) == 0 {
		return nil, ErrNoOutline
	}
	return polygons, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.Point{X: x, Y: y}, nil
}
