// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package materials defines the material models used by the 2D frame
// analysis kernel: concrete, steel and timber. Each variant carries at
// least an elastic modulus E (MPa) and a thermal expansion coefficient
// Alpha (1/K).
package materials

// EsSteel is the elastic modulus of reinforcing steel (MPa), used when
// computing the elastic modular ratio Es/Ec for transformed concrete
// sections. NSCP-style default, matching common Grade 60 rebar.
const EsSteel = 200000.0

// ConcreteCalcType selects how a concrete profile's section properties
// are computed.
type ConcreteCalcType int

const (
	// Plain ignores reinforcement entirely: area/inertia come from the
	// gross concrete section.
	Plain ConcreteCalcType = iota
	// WithReinforcement adds the transformed-section contribution of any
	// reinforcement attached to the profile.
	WithReinforcement
	// Cracked should use the cracked-transformed inertia. Not implemented;
	// the source this was ported from does not implement it either -
	// falls back to the uncracked (WithReinforcement) value.
	// TODO(cracked): implement cracked-section neutral axis iteration.
	Cracked
)

// RebarDataProvider is implemented by the reinforcement package's Layout
// type. Declared here (rather than importing reinforcement) to avoid a
// materials<->reinforcement import cycle; profile binds the two together.
type RebarDataProvider interface {
	TotalArea() float64
	// CentroidOffset returns the rebar centroid's offset from the given
	// reference elevation (mm), signed consistently with the profile's
	// local y-axis.
	CentroidOffset(referenceY float64) float64
}

// Material is the tagged union of material kinds recognized by the kernel.
// Implementations are Concrete, Steel and Timber.
type Material interface {
	// E returns the elastic modulus in MPa.
	E() float64
	// Alpha returns the coefficient of thermal expansion in 1/K.
	Alpha() float64
	isMaterial()
}

// Concrete is a concrete material definition.
type Concrete struct {
	ElasticModulus float64 // MPa
	ThermalExpCoef float64 // 1/K
	Fck            float64 // characteristic compressive strength, MPa
	CalcType       ConcreteCalcType
}

func (c Concrete) E() float64     { return c.ElasticModulus }
func (c Concrete) Alpha() float64 { return c.ThermalExpCoef }
func (c Concrete) isMaterial()    {}

// NewConcrete returns a Concrete with a default thermal expansion
// coefficient (1e-5 / K, typical for normal-weight concrete) if none is
// given explicitly by the caller.
func NewConcrete(fck, elasticModulus float64, calcType ConcreteCalcType) Concrete {
	return Concrete{
		ElasticModulus: elasticModulus,
		ThermalExpCoef: 1.0e-5,
		Fck:            fck,
		CalcType:       calcType,
	}
}

// Steel is a structural steel material definition.
type Steel struct {
	ElasticModulus float64 // MPa, typically 210000 or 200000
	ThermalExpCoef float64 // 1/K, typically 1.2e-5
}

func (s Steel) E() float64     { return s.ElasticModulus }
func (s Steel) Alpha() float64 { return s.ThermalExpCoef }
func (s Steel) isMaterial()    {}

// DefaultSteel returns the commonly used S355/S235 structural steel
// constants (E=210000 MPa).
func DefaultSteel() Steel {
	return Steel{ElasticModulus: 210000.0, ThermalExpCoef: 1.2e-5}
}

// Timber is a timber material definition.
type Timber struct {
	ElasticModulus float64 // MPa
	ThermalExpCoef float64 // 1/K, typically near 0 along the grain
}

func (t Timber) E() float64     { return t.ElasticModulus }
func (t Timber) Alpha() float64 { return t.ThermalExpCoef }
func (t Timber) isMaterial()    {}

// IsConcrete reports whether m is a Concrete material and returns it.
func IsConcrete(m Material) (Concrete, bool) {
	c, ok := m.(Concrete)
	return c, ok
}
