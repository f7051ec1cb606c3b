package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/osuushi/relate"
	"github.com/osuushi/relate/advanced"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the relate engine. Prints the DE-9IM matrix of two GeoJSON
// geometries, and optionally tests it against a pattern and draws the topology
// graph behind it.
//
//   relate --a '{"type":"Point","coordinates":[1,1]}' --b @square.json --pattern 'T*F**F***'
//
// Geometry arguments are GeoJSON text, or @path to read them from a file.
var (
	geometryA = kingpin.Flag("a", "First geometry, as GeoJSON or @path.").Required().String()
	geometryB = kingpin.Flag("b", "Second geometry, as GeoJSON or @path.").Required().String()
	pattern   = kingpin.Flag("pattern", "DE-9IM pattern to test the matrix against.").String()
	drawPath  = kingpin.Flag("draw", "Write a PNG of the topology graph to this path.").String()
	scale     = kingpin.Flag("scale", "Pixels per unit when drawing.").Default("10").Float64()
	verbose   = kingpin.Flag("verbose", "Log the relate phases.").Short('v').Bool()
)

func main() {
	kingpin.Parse()
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	a, err := readGeometry(*geometryA)
	kingpin.FatalIfError(err, "reading --a")
	b, err := readGeometry(*geometryB)
	kingpin.FatalIfError(err, "reading --b")

	if *drawPath == "" {
		im, err := relate.Relate(a, b)
		kingpin.FatalIfError(err, "")
		report(im)
		return
	}

	// Drawing needs the operation itself, not just its result
	op, err := advanced.NewRelateOperation(a, b)
	kingpin.FatalIfError(err, "relate")
	im, err := advanced.ComputeIntersectionMatrix(op)
	kingpin.FatalIfError(err, "relate")
	report(im)
	kingpin.FatalIfError(op.DrawGraph(*drawPath, *scale), "")
	fmt.Fprintf(os.Stderr, "Wrote %s\n", *drawPath)
}

func report(im relate.IntersectionMatrix) {
	fmt.Println(im)
	if *pattern == "" {
		return
	}
	matches, err := im.Matches(*pattern)
	kingpin.FatalIfError(err, "--pattern")
	fmt.Printf("%s: %v\n", *pattern, matches)
	if !matches {
		os.Exit(1)
	}
}

func readGeometry(arg string) (geom.Geom, error) {
	data := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		var err error
		data, err = ioutil.ReadFile(arg[1:])
		if err != nil {
			return nil, errors.Wrap(err, "reading geometry file")
		}
	}
	g, err := geojson.Decode(data)
	return g, errors.Wrap(err, "decoding GeoJSON")
}
