// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polarity

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// MarkerTypes is the closed set of polarity marker seeding modes.
type MarkerTypes int

//go:generate stringer -type=MarkerTypes

var KiT_MarkerTypes = kit.Enums.AddEnum(MarkerTypesN, kit.NotBitFlag, nil)

func (tp MarkerTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(tp) }
func (tp *MarkerTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(tp, b) }

// The polarity marker types
const (
	// NoMarkers performs no seeding -- map orientation is left to chance
	NoMarkers MarkerTypes = iota

	// SquareMarkers strengthens the four matched synapses between a 2x2
	// block of retinal units and a 2x2 block of tectal units
	SquareMarkers

	// GradedMarkers strengthens every retino-tectal synapse by a linear
	// ramp of the distance between the two units' normalized sheet
	// positions, biasing the whole map toward the identity orientation
	GradedMarkers

	MarkerTypesN
)

// FromString sets the marker type from its configuration token, returning
// an error for any unrecognized value -- there is no silent default.
func (tp *MarkerTypes) FromString(s string) error {
	switch s {
	case "none":
		*tp = NoMarkers
	case "square":
		*tp = SquareMarkers
	case "graded":
		*tp = GradedMarkers
	default:
		return fmt.Errorf("polarity: unrecognized marker type: %q", s)
	}
	return nil
}
