// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonmodel

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const simplySupportedPointLoadJSON = `{
  "nodes": {
    "1": {"number": 1, "point": {"x": 0, "z": 0}, "support": {"tx": true, "tz": true, "ry": false, "x_spring": 0, "z_spring": 0, "r_spring": 0}},
    "2": {"number": 2, "point": {"x": 4000, "z": 0}, "support": {"tx": true, "tz": true, "ry": false, "x_spring": 0, "z_spring": 0, "r_spring": 0}}
  },
  "elements": [
    {
      "number": 1, "node_start": 1, "node_end": 2,
      "profile": {"$type": "Standard", "data": {"name": "R100x100", "area": 10000, "i_major": 8333333.33, "centroid_z": 0}},
      "material": {"$type": "Steel", "data": {"e": 210000, "alpha": 0.000012}},
      "releases": {"s_tx": false, "s_tz": false, "s_ry": false, "e_tx": false, "e_tz": false, "e_ry": false}
    }
  ],
  "loads": [
    {"name": "P", "element_numbers": "1", "load_type": "Point", "offset_start": "L/2", "offset_end": "L/2", "strength": "10000", "rotation": -90, "comment": "", "is_moving_load": false, "moving_percent": 0, "load_group": ""}
  ],
  "load_combinations": [],
  "calc_settings": {"calc_split_interval": {"$type": "Absolute", "data": 500}, "calc_threaded": false}
}`

func TestCalculateRoundTrip(t *testing.T) {
	chk.PrintTitle("jsonmodel.Calculate: simply supported beam, central point load")

	out, err := Calculate([]byte(simplySupportedPointLoadJSON))
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	var combos []jsonCombinationResult
	if err := json.Unmarshal(out, &combos); err != nil {
		t.Fatalf("result did not decode: %v", err)
	}
	if len(combos) != 1 {
		t.Fatalf("expected 1 combination, got %d", len(combos))
	}

	var midspanM float64
	for _, e := range combos[0].Elements[0].Stations {
		if math.Abs(e.X-2000) < 1e-6 {
			midspanM = e.M
		}
	}
	// P*L/4 = 10000*4000/4
	chk.AnaNum(t, "midspan moment", 1e-6, 1.0e7, math.Abs(midspanM), true)
}

func TestCalculateJSONInvalidInput(t *testing.T) {
	chk.PrintTitle("jsonmodel.CalculateJSON: malformed JSON reports the FFI error prefix")

	out := CalculateJSON("{not valid json")
	if !strings.HasPrefix(out, invalidJSONPrefix) {
		t.Fatalf("expected %q prefix, got %q", invalidJSONPrefix, out)
	}
}

func TestExtractElementsFromLoadWildcard(t *testing.T) {
	chk.PrintTitle("ExtractElementsFromLoad resolves the -1 wildcard against the given elements")

	load := `{"name": "SW", "element_numbers": "-1", "load_type": "Line", "offset_start": "0", "offset_end": "L", "strength": "-5", "rotation": -90, "comment": "", "is_moving_load": false, "moving_percent": 0, "load_group": ""}`
	elements := `[{"number": 1}, {"number": 2}, {"number": 7}]`

	nums, err := ExtractElementsFromLoad([]byte(load), []byte(elements))
	if err != nil {
		t.Fatalf("ExtractElementsFromLoad failed: %v", err)
	}
	if len(nums) != 3 {
		t.Fatalf("expected all 3 elements, got %v", nums)
	}
}

func TestExtractElementsFromLoadSelector(t *testing.T) {
	chk.PrintTitle("ExtractElementsFromLoad resolves an explicit range selector")

	load := `{"name": "P", "element_numbers": "2..4", "load_type": "Point", "offset_start": "0", "offset_end": "0", "strength": "1000", "rotation": -90, "comment": "", "is_moving_load": false, "moving_percent": 0, "load_group": ""}`
	elements := `[{"number": 1}, {"number": 2}, {"number": 3}, {"number": 4}, {"number": 5}]`

	nums, err := ExtractElementsFromLoad([]byte(load), []byte(elements))
	if err != nil {
		t.Fatalf("ExtractElementsFromLoad failed: %v", err)
	}
	if len(nums) != 3 || nums[0] != 2 || nums[2] != 4 {
		t.Fatalf("expected [2 3 4], got %v", nums)
	}
}
