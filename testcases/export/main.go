// Command export writes the test cases, together with the split outlines,
// to JSON.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/tessellate/testcases"
)

func main() {
	outFile := flag.String("out", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Twist    float64       `json:"twist"`
	ScaleX   float64       `json:"scale_x"`
	ScaleY   float64       `json:"scale_y"`
	Slices   int           `json:"slices"`
	Mode     string        `json:"mode"`
	FN       float64       `json:"fn,omitempty"`
	FS       float64       `json:"fs,omitempty"`
	FA       float64       `json:"fa,omitempty"`
	Segments int           `json:"segments,omitempty"`
	Input    []jsonSegment `json:"input"`
	Output   []jsonSegment `json:"output"`
	Counts   []int         `json:"counts"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	split := tc.Split()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Twist:  tc.Extrude.Twist,
		ScaleX: tc.Extrude.ScaleX,
		ScaleY: tc.Extrude.ScaleY,
		Slices: tc.Extrude.Slices,
		Input:  pathToJSON(tc.Polygon().Path()),
		Output: pathToJSON(split.Path()),
	}
	for _, o := range split {
		jtc.Counts = append(jtc.Counts, o.Len())
	}

	switch m := tc.Mode.(type) {
	case testcases.Segments:
		jtc.Mode = "segments"
		jtc.Segments = m.N
	case testcases.Fragments:
		jtc.Mode = "fn"
		jtc.FN = m.FN
	case testcases.Length:
		jtc.Mode = "fs"
		jtc.FS = m.FS
		jtc.FA = m.FA
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

