// seehuhn.de/go/dcpath - vector paths and region algebra
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes all test cases to testdata/testcases.json, with
// the raster command stream of every path as it is handed to a rendering
// surface.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/dcpath/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
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
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	CTM      []float64     `json:"ctm,omitempty"`
	FillRule string        `json:"fill_rule"`
	BBox     []float64     `json:"bbox,omitempty"`
	Path     []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		FillRule: tc.Rule.String(),
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	if box, err := tc.Path.BoundingBox(); err == nil {
		jtc.BBox = []float64{box.LLx, box.LLy, box.URx, box.URy}
	}

	sink := &segmentSink{}
	tc.Path.ReplayTo(sink)
	jtc.Path = sink.segs
	return jtc
}

// segmentSink records replayed path commands as JSON segments.
type segmentSink struct {
	segs []jsonSegment
}

func (s *segmentSink) MoveTo(x, y float64) {
	s.segs = append(s.segs, jsonSegment{Cmd: "M", Pts: [][]float64{{x, y}}})
}

func (s *segmentSink) LineTo(x, y float64) {
	s.segs = append(s.segs, jsonSegment{Cmd: "L", Pts: [][]float64{{x, y}}})
}

func (s *segmentSink) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.segs = append(s.segs, jsonSegment{Cmd: "C", Pts: [][]float64{{x1, y1}, {x2, y2}, {x3, y3}}})
}

func (s *segmentSink) ClosePath() {
	s.segs = append(s.segs, jsonSegment{Cmd: "Z"})
}
