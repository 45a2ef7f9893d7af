// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonmodel is the JSON/FFI boundary described in spec.md §6: it
// decodes a serialized StructureModel into the fem package's in-process
// Model, drives a calculation, and encodes the resulting CalculationResults
// back to JSON. Tagged unions (Profile, Material, LoadCombination type,
// CalcSettings interval) use the {"$type": variant, "data": payload}
// convention verbatim, mirroring the original Rust source's serde tagging.
package jsonmodel

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"

	"github.com/VillePe/vefem-sub000/calcsettings"
	"github.com/VillePe/vefem-sub000/expr"
	"github.com/VillePe/vefem-sub000/fem"
	"github.com/VillePe/vefem-sub000/geom2d"
	"github.com/VillePe/vefem-sub000/loads"
	"github.com/VillePe/vefem-sub000/materials"
	"github.com/VillePe/vefem-sub000/profile"
	"github.com/VillePe/vefem-sub000/results"
	"github.com/VillePe/vefem-sub000/structure"
)

// invalidJSONPrefix is the FFI-boundary error prefix spec.md §6/§7
// mandates for JSON parse failures.
const invalidJSONPrefix = "Invalid JSON. Error: "

// tagged is the generic {"$type", "data"} envelope used throughout the
// serialized model.
type tagged struct {
	Type string          `json:"$type"`
	Data json.RawMessage `json:"data"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

type jsonSupport struct {
	Tx      bool    `json:"tx"`
	Tz      bool    `json:"tz"`
	Ry      bool    `json:"ry"`
	XSpring float64 `json:"x_spring"`
	ZSpring float64 `json:"z_spring"`
	RSpring float64 `json:"r_spring"`
}

type jsonNode struct {
	Number  int         `json:"number"`
	Point   jsonPoint   `json:"point"`
	Support jsonSupport `json:"support"`
}

type jsonReleases struct {
	STx bool `json:"s_tx"`
	STz bool `json:"s_tz"`
	SRy bool `json:"s_ry"`
	ETx bool `json:"e_tx"`
	ETz bool `json:"e_tz"`
	ERy bool `json:"e_ry"`
}

type jsonElement struct {
	Number    int          `json:"number"`
	NodeStart int          `json:"node_start"`
	NodeEnd   int          `json:"node_end"`
	Profile   tagged       `json:"profile"`
	Material  tagged       `json:"material"`
	Releases  jsonReleases `json:"releases"`
}

type jsonLoad struct {
	Name           string  `json:"name"`
	ElementNumbers string  `json:"element_numbers"`
	LoadType       string  `json:"load_type"`
	OffsetStart    string  `json:"offset_start"`
	OffsetEnd      string  `json:"offset_end"`
	Strength       string  `json:"strength"`
	Rotation       float64 `json:"rotation"`
	Comment        string  `json:"comment"`
	IsMovingLoad   bool    `json:"is_moving_load"`
	MovingPercent  float64 `json:"moving_percent"`
	LoadGroup      string  `json:"load_group"`
}

type jsonLoadCombination struct {
	Name            string             `json:"name"`
	CombinationType tagged             `json:"combination_type"`
	LoadsNFactors   map[string]float64 `json:"loads_n_factors"`
}

type jsonCalcSettings struct {
	CalcSplitInterval tagged `json:"calc_split_interval"`
	CalcThreaded      bool   `json:"calc_threaded"`
}

// jsonStructureModel is the top-level serialized shape described in
// spec.md §6.
type jsonStructureModel struct {
	Nodes            map[string]jsonNode   `json:"nodes"`
	Elements         []jsonElement         `json:"elements"`
	Loads            []jsonLoad            `json:"loads"`
	LoadCombinations []jsonLoadCombination `json:"load_combinations"`
	CalcSettings     jsonCalcSettings      `json:"calc_settings"`
}

// --- decoding: JSON -> in-process model -------------------------------

func decodeProfile(t tagged) (profile.Profile, error) {
	switch t.Type {
	case "Polygon":
		var d struct {
			Name     string      `json:"name"`
			Vertices []jsonPoint `json:"vertices"`
		}
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, chk.Err("profile Polygon: %v", err)
		}
		verts := make([]geom2d.Point, len(d.Vertices))
		for i, v := range d.Vertices {
			verts[i] = geomPointFromJSON(v)
		}
		return profile.Polygon{Name: d.Name, Vertices: verts}, nil
	case "Standard", "Custom":
		var d struct {
			Name      string  `json:"name"`
			Area      float64 `json:"area"`
			IMajor    float64 `json:"i_major"`
			CentroidZ float64 `json:"centroid_z"`
		}
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, chk.Err("profile %s: %v", t.Type, err)
		}
		if t.Type == "Standard" {
			return profile.Standard{Name: d.Name, AreaValue: d.Area, IMajorValue: d.IMajor, CentroidZ: d.CentroidZ}, nil
		}
		return profile.Custom{Name: d.Name, AreaValue: d.Area, IMajorValue: d.IMajor, CentroidZ: d.CentroidZ}, nil
	default:
		return nil, chk.Err("unknown profile $type %q", t.Type)
	}
}

func geomPointFromJSON(p jsonPoint) geom2d.Point {
	return geom2d.Point{X: p.X, Z: p.Z}
}

func decodeMaterial(t tagged) (materials.Material, error) {
	switch t.Type {
	case "Concrete":
		var d struct {
			E        float64 `json:"e"`
			Alpha    float64 `json:"alpha"`
			Fck      float64 `json:"fck"`
			CalcType string  `json:"calc_type"`
		}
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, chk.Err("material Concrete: %v", err)
		}
		ct := materials.Plain
		switch d.CalcType {
		case "WithReinforcement":
			ct = materials.WithReinforcement
		case "Cracked":
			ct = materials.Cracked
		}
		return materials.Concrete{ElasticModulus: d.E, ThermalExpCoef: d.Alpha, Fck: d.Fck, CalcType: ct}, nil
	case "Steel":
		var d struct {
			E     float64 `json:"e"`
			Alpha float64 `json:"alpha"`
		}
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, chk.Err("material Steel: %v", err)
		}
		return materials.Steel{ElasticModulus: d.E, ThermalExpCoef: d.Alpha}, nil
	case "Timber":
		var d struct {
			E     float64 `json:"e"`
			Alpha float64 `json:"alpha"`
		}
		if err := json.Unmarshal(t.Data, &d); err != nil {
			return nil, chk.Err("material Timber: %v", err)
		}
		return materials.Timber{ElasticModulus: d.E, ThermalExpCoef: d.Alpha}, nil
	default:
		return nil, chk.Err("unknown material $type %q", t.Type)
	}
}

func decodeLoadType(s string) loads.Type {
	switch s {
	case "Point":
		return loads.Point
	case "Line":
		return loads.Line
	case "Triangular":
		return loads.Triangular
	case "Trapezoid":
		return loads.Trapezoid
	case "Rotational":
		return loads.Rotational
	case "Strain":
		return loads.Strain
	case "Thermal":
		return loads.Thermal
	default:
		return loads.Line
	}
}

func decodeCombinationKind(t tagged) (loads.CombinationKind, bool) {
	autoExpand := false
	_ = json.Unmarshal(t.Data, &autoExpand)
	switch t.Type {
	case "ULS":
		return loads.ULS, autoExpand
	case "SLSc":
		return loads.SLSCharacteristic, autoExpand
	case "SLSf":
		return loads.SLSFrequent, autoExpand
	case "SLSqp":
		return loads.SLSQuasiPermanent, autoExpand
	default:
		return loads.ULS, autoExpand
	}
}

func decodeInterval(t tagged) calcsettings.Interval {
	var v float64
	_ = json.Unmarshal(t.Data, &v)
	if t.Type == "Relative" {
		return calcsettings.RelativeInterval(v)
	}
	return calcsettings.AbsoluteInterval(v)
}

// DecodeModel parses the spec.md §6 serialized StructureModel shape into
// an in-process fem.Model and calcsettings.CalcSettings.
func DecodeModel(data []byte) (fem.Model, calcsettings.CalcSettings, error) {
	var jm jsonStructureModel
	if err := json.Unmarshal(data, &jm); err != nil {
		return fem.Model{}, calcsettings.CalcSettings{}, err
	}

	nodes := make(structure.NodeMap, len(jm.Nodes))
	for _, jn := range jm.Nodes {
		nodes[jn.Number] = &structure.Node{
			Number: jn.Number,
			Point:  geom2d.Point{X: jn.Point.X, Z: jn.Point.Z},
			Support: structure.Support{
				Tx: jn.Support.Tx, Tz: jn.Support.Tz, Ry: jn.Support.Ry,
				Kx: jn.Support.XSpring, Kz: jn.Support.ZSpring, Kr: jn.Support.RSpring,
			},
		}
	}

	elements := make([]structure.Element, 0, len(jm.Elements))
	for _, je := range jm.Elements {
		prof, err := decodeProfile(je.Profile)
		if err != nil {
			return fem.Model{}, calcsettings.CalcSettings{}, err
		}
		mat, err := decodeMaterial(je.Material)
		if err != nil {
			return fem.Model{}, calcsettings.CalcSettings{}, err
		}
		elements = append(elements, structure.Element{
			Number:    je.Number,
			NodeStart: je.NodeStart,
			NodeEnd:   je.NodeEnd,
			Profile:   prof,
			Material:  mat,
			Releases: structure.Release{
				STx: je.Releases.STx, STz: je.Releases.STz, SRy: je.Releases.SRy,
				ETx: je.Releases.ETx, ETz: je.Releases.ETz, ERy: je.Releases.ERy,
			},
		})
	}

	rawLoads := make([]loads.Load, 0, len(jm.Loads))
	for _, jl := range jm.Loads {
		rawLoads = append(rawLoads, loads.Load{
			Name:           jl.Name,
			ElementNumbers: jl.ElementNumbers,
			Type:           decodeLoadType(jl.LoadType),
			OffsetStart:    jl.OffsetStart,
			OffsetEnd:      jl.OffsetEnd,
			Strength:       jl.Strength,
			Rotation:       jl.Rotation,
			Comment:        jl.Comment,
			IsMovingLoad:   jl.IsMovingLoad,
			MovingPercent:  jl.MovingPercent,
			LoadGroup:      jl.LoadGroup,
		})
	}

	combos := make([]loads.LoadCombination, 0, len(jm.LoadCombinations))
	for _, jc := range jm.LoadCombinations {
		kind, autoExpand := decodeCombinationKind(jc.CombinationType)
		combos = append(combos, loads.LoadCombination{
			Name: jc.Name, Kind: kind, LoadsNFactors: jc.LoadsNFactors, AutoExpand: autoExpand,
		})
	}

	settings := calcsettings.CalcSettings{
		Interval:     decodeInterval(jm.CalcSettings.CalcSplitInterval),
		CalcThreaded: jm.CalcSettings.CalcThreaded,
	}
	if settings.Interval.Value == 0 {
		settings.Interval = calcsettings.RelativeInterval(0.01)
	}

	return fem.Model{Nodes: nodes, Elements: elements, Loads: rawLoads, Combinations: combos}, settings, nil
}

// --- encoding: in-process results -> JSON -----------------------------

type jsonStation struct {
	X float64 `json:"x"`
	N float64 `json:"n"`
	V float64 `json:"v"`
	M float64 `json:"m"`
	W float64 `json:"w"`
	U float64 `json:"u"`
}

type jsonElementResult struct {
	ElementNumber int           `json:"element_number"`
	Stations      []jsonStation `json:"stations"`
}

type jsonNodeResult struct {
	NodeNumber int     `json:"node_number"`
	Dx         float64 `json:"dx"`
	Dz         float64 `json:"dz"`
	Ry         float64 `json:"ry"`
	Rx         float64 `json:"rx"`
	Rz         float64 `json:"rz"`
	Rm         float64 `json:"rm"`
}

type jsonCombinationResult struct {
	ParentNumber int                 `json:"parent_number"`
	SubNumber    int                 `json:"sub_number"`
	Name         string              `json:"name"`
	Nodes        []jsonNodeResult    `json:"nodes"`
	Elements     []jsonElementResult `json:"elements"`
}

// EncodeResults renders results.Results in the spec.md §6 serialized
// shape: an array of per-combination node/element result records.
func EncodeResults(r results.Results) ([]byte, error) {
	out := make([]jsonCombinationResult, 0, len(r.Combinations))
	for _, c := range r.Combinations {
		jc := jsonCombinationResult{ParentNumber: c.ParentNumber, SubNumber: c.SubNumber, Name: c.Name}
		for _, n := range c.Nodes {
			jc.Nodes = append(jc.Nodes, jsonNodeResult{
				NodeNumber: n.NodeNumber, Dx: n.Dx, Dz: n.Dz, Ry: n.Ry, Rx: n.Rx, Rz: n.Rz, Rm: n.Rm,
			})
		}
		for _, e := range c.Elements {
			je := jsonElementResult{ElementNumber: e.ElementNumber}
			for _, s := range e.Stations {
				je.Stations = append(je.Stations, jsonStation{X: s.X, N: s.N, V: s.V, M: s.M, W: s.W, U: s.U})
			}
			jc.Elements = append(jc.Elements, je)
		}
		out = append(out, jc)
	}
	return json.Marshal(out)
}

// --- public entry points (spec.md §6) ----------------------------------

// Calculate decodes modelJSON, runs the kernel, and encodes the results -
// the in-process half of the calculate(json_cstr) -> json_cstr FFI
// surface spec.md §6 describes.
func Calculate(modelJSON []byte) ([]byte, error) {
	model, settings, err := DecodeModel(modelJSON)
	if err != nil {
		return nil, err
	}
	res := fem.Calculate(model, expr.NewSimple(), settings)
	return EncodeResults(res)
}

// CalculateJSON is the FFI-boundary entry point: on any error it returns
// a string beginning with "Invalid JSON. Error: ", per spec.md §6/§7,
// instead of propagating a Go error across the FFI boundary.
func CalculateJSON(modelJSONCstr string) string {
	out, err := Calculate([]byte(modelJSONCstr))
	if err != nil {
		return invalidJSONPrefix + err.Error()
	}
	return string(out)
}

// elementNumber is the minimal shape extracted from a serialized element
// for the purposes of ExtractElementsFromLoad - only its number matters.
type elementNumber struct {
	Number int `json:"number"`
}

// ExtractElementsFromLoad is the spec.md §6
// extract_elements_from_load(load, [element]) -> [int] entry point: given
// a load and the universe of elements it might apply to, it returns the
// element numbers the load actually binds to (resolving the selector
// grammar's ranges and -1 wildcard against that real universe, rather than
// against whatever numbers happen to appear in the selector string).
func ExtractElementsFromLoad(loadJSON, elementsJSON []byte) ([]int, error) {
	var jl jsonLoad
	if err := json.Unmarshal(loadJSON, &jl); err != nil {
		return nil, err
	}
	var universe []elementNumber
	if err := json.Unmarshal(elementsJSON, &universe); err != nil {
		return nil, err
	}
	l := loads.Load{ElementNumbers: jl.ElementNumbers}
	var out []int
	for _, el := range universe {
		if loads.IsLinkedToElement(l, el.Number) {
			out = append(out, el.Number)
		}
	}
	return out, nil
}

// ExtractElementsFromLoadJSON is the FFI-boundary variant of
// ExtractElementsFromLoad, returning the spec.md §6/§7 error prefix on
// any decode failure instead of a Go error.
func ExtractElementsFromLoadJSON(loadJSONCstr, elementsJSONCstr string) string {
	nums, err := ExtractElementsFromLoad([]byte(loadJSONCstr), []byte(elementsJSONCstr))
	if err != nil {
		return invalidJSONPrefix + err.Error()
	}
	b, err := json.Marshal(nums)
	if err != nil {
		return invalidJSONPrefix + err.Error()
	}
	return string(b)
}
