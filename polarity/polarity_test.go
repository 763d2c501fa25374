// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polarity

import (
	"math"
	"testing"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
)

const difTol = 1.0e-12

func onesMatrix(nt, nr int) *etensor.Float64 {
	s := etensor.NewFloat64([]int{nt, nr}, nil, []string{"Tectal", "Retinal"})
	for i := range s.Values {
		s.Values[i] = 1
	}
	return s
}

func TestDefaultSquareMarkers(t *testing.T) {
	pp := Params{}
	pp.Defaults()
	s := onesMatrix(16, 16)
	if err := pp.Seed(s, 4, 4, 4, 4, erand.NewSysRand(1)); err != nil {
		t.Fatal(err)
	}
	block := [4]int{2, 3, 6, 7}
	marked := map[[2]int]bool{}
	for i := 0; i < 4; i++ {
		marked[[2]int{block[i], block[i]}] = true
	}
	for ti := 0; ti < 16; ti++ {
		for ri := 0; ri < 16; ri++ {
			want := 1.0
			if marked[[2]int{ti, ri}] {
				want = pp.Strength
			}
			if got := s.Value([]int{ti, ri}); got != want {
				t.Errorf("s[%d,%d] = %g, want %g", ti, ri, got, want)
			}
		}
	}
}

func TestRandomBlockIndexes(t *testing.T) {
	pp := Params{Type: SquareMarkers, Strength: 5}
	rnd := erand.NewSysRand(3)
	nx, ny := 6, 6
	for i := 0; i < 500; i++ {
		pm := pp.blockIndexes(nx, ny, rnd)
		for _, idx := range pm {
			if idx < 0 || idx >= nx*ny {
				t.Fatalf("block index %d out of bounds: %v", idx, pm)
			}
		}
		if pm[1] != pm[0]+1 || pm[3] != pm[2]+1 {
			t.Errorf("block rows not adjacent in x: %v", pm)
		}
		y1 := pm[0] / nx
		y3 := pm[2] / nx
		wantY3 := y1 - 1
		if wantY3 < 0 {
			wantY3 += ny
		}
		if y3 != wantY3 {
			t.Errorf("second block row y = %d, want %d: %v", y3, wantY3, pm)
		}
		if x1 := pm[0] % nx; x1 > nx-2 {
			t.Errorf("block origin x = %d exceeds %d", x1, nx-2)
		}
	}
}

func TestGradedMarkers(t *testing.T) {
	pp := Params{Type: GradedMarkers, Strength: 5}
	xr, yr, xt, yt := 4, 4, 4, 4
	s := onesMatrix(xt*yt, xr*yr)
	if err := pp.Seed(s, xt, yt, xr, yr, nil); err != nil {
		t.Fatal(err)
	}
	// aligned unit pairs are at zero normalized distance: full Strength
	for u := 0; u < 16; u++ {
		if got := s.Value([]int{u, u}); math.Abs(got-5) > difTol {
			t.Errorf("s[%d,%d] = %g, want 5", u, u, got)
		}
	}
	// opposite corners are beyond half the maximum distance: unchanged
	if got := s.Value([]int{15, 0}); got != 1 {
		t.Errorf("far corner synapse = %g, want 1", got)
	}
	// linear ramp: (0,0) retinal vs (0,2) tectal unit is at normalized
	// distance (2/4)/sqrt(2), so the multiplier is 5 - 8*d
	d := 0.5 / math.Sqrt2
	want := 5 - 8*d
	if got := s.Value([]int{2, 0}); math.Abs(got-want) > difTol {
		t.Errorf("ramp synapse = %g, want %g", got, want)
	}
}

func TestNoMarkers(t *testing.T) {
	pp := Params{Type: NoMarkers}
	s := onesMatrix(16, 16)
	if err := pp.Seed(s, 4, 4, 4, 4, nil); err != nil {
		t.Fatal(err)
	}
	for i, v := range s.Values {
		if v != 1 {
			t.Errorf("s[%d] = %g, want 1 (no-op)", i, v)
		}
	}
}

func TestInvalidType(t *testing.T) {
	pp := Params{Type: MarkerTypesN}
	s := onesMatrix(4, 4)
	if err := pp.Seed(s, 2, 2, 2, 2, nil); err == nil {
		t.Errorf("Seed with invalid type did not fail")
	}
}

func TestFromString(t *testing.T) {
	toks := map[string]MarkerTypes{
		"none":   NoMarkers,
		"square": SquareMarkers,
		"graded": GradedMarkers,
	}
	for tok, want := range toks {
		var mt MarkerTypes
		if err := mt.FromString(tok); err != nil {
			t.Errorf("FromString(%q): %v", tok, err)
		}
		if mt != want {
			t.Errorf("FromString(%q) = %v, want %v", tok, mt, want)
		}
	}
	var mt MarkerTypes
	if err := mt.FromString("radial"); err == nil {
		t.Errorf("FromString(\"radial\") did not fail")
	}
}
