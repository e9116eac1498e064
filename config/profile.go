// Package config loads named search profiles from HCL files.
//
// A profile bundles the parameters of one search configuration so that the
// CLI and the HTTP server can refer to it by name:
//
//	profile "fast" {
//	  mode       = "sequential"
//	  weight     = 1.25
//	  weight2    = 2
//	  heuristics = ["pythagorean", "manhattan", "start-delta"]
//	}
//
// Omitted attributes take the defaults of the profile's mode.
package config

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/mhastar"
)

var (
	// ErrInvalidProfile indicates a profile whose attributes contradict its mode
	// or fall outside the accepted ranges.
	ErrInvalidProfile = errors.New("config: invalid profile")

	// ErrDuplicateProfile indicates two profiles with the same name in one file.
	ErrDuplicateProfile = errors.New("config: duplicate profile")

	// ErrUnknownProfile indicates a lookup for a name that is not defined.
	ErrUnknownProfile = errors.New("config: unknown profile")
)

// Profile is a resolved, validated search configuration.
type Profile struct {
	Name          string           `json:"name"`
	Mode          mhastar.Mode     `json:"mode"`
	Weight        float64          `json:"weight"`
	Weight2       float64          `json:"weight2"`
	Heuristics    []heuristic.Kind `json:"heuristics"`
	MaxExpansions int              `json:"max_expansions,omitempty"`
}

// Options converts p into mhastar options.
func (p *Profile) Options() []mhastar.Option {
	return []mhastar.Option{
		mhastar.WithWeight(p.Weight),
		mhastar.WithWeight2(p.Weight2),
		mhastar.WithHeuristics(p.Heuristics...),
		mhastar.WithMaxExpansions(p.MaxExpansions),
	}
}

// HeuristicNames returns the canonical names of p.Heuristics.
func (p *Profile) HeuristicNames() []string {
	out := make([]string, len(p.Heuristics))
	for i, k := range p.Heuristics {
		out[i] = k.String()
	}
	return out
}

// Profiles is a set of profiles addressed by name.
type Profiles struct {
	byName map[string]*Profile
}

func newProfiles() *Profiles {
	return &Profiles{byName: make(map[string]*Profile)}
}

// Builtin returns one profile per mode, each named after it:
// "astar", "weighted", "uniform" and "sequential".
func Builtin() *Profiles {
	ps := newProfiles()
	for _, m := range []mhastar.Mode{mhastar.ModeAStar, mhastar.ModeWeighted, mhastar.ModeUniform, mhastar.ModeSequential} {
		p, err := Params{Name: string(m), Mode: ptr(string(m))}.Resolve()
		if err != nil {
			panic(err)
		}
		ps.byName[p.Name] = p
	}
	return ps
}

// Get returns the profile called name.
func (ps *Profiles) Get(name string) (*Profile, error) {
	if p, ok := ps.byName[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Names returns every profile name in ascending order.
func (ps *Profiles) Names() []string {
	out := make([]string, 0, len(ps.byName))
	for name := range ps.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// All returns every profile ordered by name.
func (ps *Profiles) All() []*Profile {
	names := ps.Names()
	out := make([]*Profile, len(names))
	for i, name := range names {
		out[i] = ps.byName[name]
	}
	return out
}

// Len returns the number of profiles.
func (ps *Profiles) Len() int { return len(ps.byName) }

// Params are profile attributes as written by a user, before defaults. They
// decode from a profile block and from JSON; nil fields are unset.
type Params struct {
	Name          string   `hcl:"name,label" json:"-"`
	Mode          *string  `hcl:"mode,optional" json:"mode,omitempty"`
	Weight        *float64 `hcl:"weight,optional" json:"weight,omitempty"`
	Weight2       *float64 `hcl:"weight2,optional" json:"weight2,omitempty"`
	Heuristics    []string `hcl:"heuristics,optional" json:"heuristics,omitempty"`
	MaxExpansions *int     `hcl:"max_expansions,optional" json:"max_expansions,omitempty"`
}

// Resolve applies the mode defaults to raw and validates the outcome.
// The mode defaults to "astar".
func (raw Params) Resolve() (*Profile, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrInvalidProfile, raw.Name, fmt.Sprintf(format, args...))
	}

	p := &Profile{Name: raw.Name, Mode: mhastar.ModeAStar, Weight: 1, Weight2: 1}
	if raw.Mode != nil {
		m, err := mhastar.ParseMode(*raw.Mode)
		if err != nil {
			return nil, invalid("%v", err)
		}
		p.Mode = m
	}
	hs, err := heuristic.ParseList(raw.Heuristics)
	if err != nil {
		return nil, invalid("%v", err)
	}
	if raw.Weight2 != nil && p.Mode != mhastar.ModeSequential {
		return nil, invalid("weight2 only applies to mode %q", mhastar.ModeSequential)
	}

	switch p.Mode {
	case mhastar.ModeAStar:
		if raw.Weight != nil && *raw.Weight != 1 {
			return nil, invalid("mode %q runs with weight 1, got %v", p.Mode, *raw.Weight)
		}
		p.Heuristics, err = single(hs)
	case mhastar.ModeWeighted:
		p.Weight = mhastar.DefaultSequentialWeight
		p.Heuristics, err = single(hs)
	case mhastar.ModeUniform:
		if raw.Weight != nil && *raw.Weight != 0 {
			return nil, invalid("mode %q runs with weight 0, got %v", p.Mode, *raw.Weight)
		}
		if len(hs) > 1 || (len(hs) == 1 && hs[0] != heuristic.Uniform) {
			return nil, invalid("mode %q takes no heuristics", p.Mode)
		}
		p.Weight = 0
		p.Heuristics = []heuristic.Kind{heuristic.Uniform}
	case mhastar.ModeSequential:
		p.Weight = mhastar.DefaultSequentialWeight
		p.Weight2 = mhastar.DefaultSequentialWeight2
		p.Heuristics = hs
		if len(hs) == 0 {
			p.Heuristics = heuristic.All()
		}
		if len(p.Heuristics) < 2 {
			return nil, invalid("mode %q needs at least two heuristics", p.Mode)
		}
	}
	if err != nil {
		return nil, invalid("%v", err)
	}

	if raw.Weight != nil {
		p.Weight = *raw.Weight
	}
	if raw.Weight2 != nil {
		p.Weight2 = *raw.Weight2
	}
	if raw.MaxExpansions != nil {
		p.MaxExpansions = *raw.MaxExpansions
	}

	if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) || p.Weight < 0 {
		return nil, invalid("weight must be finite and ≥ 0, got %v", p.Weight)
	}
	if math.IsNaN(p.Weight2) || math.IsInf(p.Weight2, 0) || p.Weight2 < 1 {
		return nil, invalid("weight2 must be finite and ≥ 1, got %v", p.Weight2)
	}
	if p.MaxExpansions < 0 {
		return nil, invalid("max_expansions must be ≥ 0, got %d", p.MaxExpansions)
	}

	return p, nil
}

// single returns hs when it holds exactly one heuristic, and the Pythagorean
// default when it is empty.
func single(hs []heuristic.Kind) ([]heuristic.Kind, error) {
	switch len(hs) {
	case 0:
		return []heuristic.Kind{heuristic.Pythagorean}, nil
	case 1:
		return hs, nil
	default:
		return nil, fmt.Errorf("single-lane mode takes one heuristic, got %d", len(hs))
	}
}

func ptr[T any](v T) *T { return &v }
