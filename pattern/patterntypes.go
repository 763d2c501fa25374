// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// PatternTypes is the closed set of retinal activation patterns.
// Each variant selects a different set of retinal units to fire together
// on each simulation loop, controlling the correlation structure that
// drives map formation.
type PatternTypes int

//go:generate stringer -type=PatternTypes

var KiT_PatternTypes = kit.Enums.AddEnum(PatternTypesN, kit.NotBitFlag, nil)

func (ev PatternTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *PatternTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The retinal activation pattern types
const (
	// Pairs activates one random unit and one adjacent unit -- the
	// standard correlated-pair stimulus of the original model
	Pairs PatternTypes = iota

	// TwoPairs activates two disjoint adjacent pairs, introducing
	// partially uncorrelated activity
	TwoPairs

	// Singles activates one random unit -- no correlation, expected
	// not to form a map
	Singles

	// TwoSingles activates two distinct random units, uncorrelated
	TwoSingles

	// Squares activates a 2x2 block of adjacent units
	Squares

	// Sweep deterministically activates whole columns then whole rows
	// in sequence across loops
	Sweep

	// Strobe activates the entire retinal sheet at once
	Strobe

	// OcularDominance alternates between the left and right halves of
	// the sheet on even and odd loops
	OcularDominance

	PatternTypesN
)

// FromString sets the pattern type from its configuration token,
// returning an error for any unrecognized value -- there is no silent
// default.
func (ev *PatternTypes) FromString(s string) error {
	switch s {
	case "pairs":
		*ev = Pairs
	case "2_pairs":
		*ev = TwoPairs
	case "singles":
		*ev = Singles
	case "2_singles":
		*ev = TwoSingles
	case "squares":
		*ev = Squares
	case "sweep":
		*ev = Sweep
	case "strobe":
		*ev = Strobe
	case "ocular_dominance":
		*ev = OcularDominance
	default:
		return fmt.Errorf("pattern: unrecognized activity pattern: %q", s)
	}
	return nil
}
