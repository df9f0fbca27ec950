// Package compensation maps final skill estimates to monetary offers.
//
// The base value comes from a piecewise-linear curve over skill breakpoints;
// named adjustment terms are then applied in order. The model is a pure
// function of its configuration: no randomness, no hidden state.
package compensation

import (
	"fmt"

	"github.com/okian/hiresim/internal/domain/model"
)

// Mandatory curve endpoints: the curve must cover the whole skill domain.
const (
	domainLow  = 1.0
	domainHigh = 100.0
)

// Breakpoint is one (skill, compensation) point on the curve.
type Breakpoint struct {
	Skill float64
	Comp  float64
}

// Kind discriminates adjustment terms.
type Kind string

// Recognized adjustment kinds.
const (
	KindMultiply Kind = "multiply"
	KindAdd      Kind = "add"
)

// Adjustment is a named term applied to the base curve value.
type Adjustment struct {
	Name  string
	Kind  Kind
	Value float64
}

// Model evaluates offers against an immutable curve configuration.
type Model struct {
	curve       []Breakpoint
	adjustments []Adjustment
}

// New validates the curve and adjustment configuration eagerly, so a
// malformed model can never produce an offer.
func New(curve []Breakpoint, adjustments []Adjustment) (*Model, error) {
	if len(curve) < 2 {
		return nil, fmt.Errorf("%w: need at least two breakpoints, got %d", ErrInvalidCurve, len(curve))
	}
	if curve[0].Skill != domainLow {
		return nil, fmt.Errorf("%w: first breakpoint must sit at skill %v, got %v", ErrInvalidCurve, domainLow, curve[0].Skill)
	}
	if curve[len(curve)-1].Skill != domainHigh {
		return nil, fmt.Errorf("%w: last breakpoint must sit at skill %v, got %v", ErrInvalidCurve, domainHigh, curve[len(curve)-1].Skill)
	}
	for i := 1; i < len(curve); i++ {
		if curve[i].Skill <= curve[i-1].Skill {
			return nil, fmt.Errorf("%w: skill breakpoints must be strictly increasing at index %d", ErrInvalidCurve, i)
		}
		if curve[i].Comp <= curve[i-1].Comp {
			return nil, fmt.Errorf("%w: compensation values must be strictly increasing at index %d", ErrInvalidCurve, i)
		}
	}
	for _, a := range adjustments {
		if a.Kind != KindMultiply && a.Kind != KindAdd {
			return nil, fmt.Errorf("%w: %q on term %q", ErrUnknownAdjustment, a.Kind, a.Name)
		}
	}

	m := &Model{
		curve:       append([]Breakpoint(nil), curve...),
		adjustments: append([]Adjustment(nil), adjustments...),
	}
	return m, nil
}

// Default returns the model built from the published compensation bands
// with no adjustment terms.
func Default() *Model {
	m, err := New(DefaultCurve(), nil)
	if err != nil {
		// The built-in curve is statically valid.
		panic(err)
	}
	return m
}

// DefaultCurve returns the published compensation bands: minimum, p25,
// median, p75, p90 and ceiling.
func DefaultCurve() []Breakpoint {
	return []Breakpoint{
		{Skill: 1, Comp: 95_000},
		{Skill: 25, Comp: 192_000},
		{Skill: 50, Comp: 254_000},
		{Skill: 75, Comp: 348_000},
		{Skill: 90, Comp: 455_000},
		{Skill: 100, Comp: 600_000},
	}
}

// Offer computes the offer for a skill estimate. The input is clamped
// into [1,100] before lookup, since estimates arrive unclamped from the
// evaluation engine. Beyond the outermost breakpoints the curve value is
// held flat rather than extrapolated.
func (m *Model) Offer(skillEstimate float64) model.CompensationOffer {
	skill := clamp(skillEstimate, domainLow, domainHigh)

	base := m.base(skill)
	final := base
	for _, a := range m.adjustments {
		switch a.Kind {
		case KindMultiply:
			final *= a.Value
		case KindAdd:
			final += a.Value
		}
	}
	if final < 0 {
		final = 0
	}

	return model.CompensationOffer{
		SkillEstimate: skill,
		Base:          base,
		Final:         final,
	}
}

// base interpolates the curve at the given (already clamped) skill.
func (m *Model) base(skill float64) float64 {
	first := m.curve[0]
	if skill <= first.Skill {
		return first.Comp
	}
	last := m.curve[len(m.curve)-1]
	if skill >= last.Skill {
		return last.Comp
	}

	for i := 1; i < len(m.curve); i++ {
		lo, hi := m.curve[i-1], m.curve[i]
		if skill <= hi.Skill {
			return lerp(skill, lo.Skill, hi.Skill, lo.Comp, hi.Comp)
		}
	}
	return last.Comp
}

// lerp interpolates linearly between (x1,y1) and (x2,y2) at x.
func lerp(x, x1, x2, y1, y2 float64) float64 {
	return y1 + (y2-y1)*(x-x1)/(x2-x1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
