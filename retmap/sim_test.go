// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"math"
	"testing"

	"github.com/emer/retinotopy/pattern"
	"github.com/emer/retinotopy/polarity"
)

func testSim(t *testing.T, dim int) *Sim {
	t.Helper()
	ss := &Sim{}
	ss.Defaults()
	ss.Config(dim, dim, dim, dim)
	ss.NumLoops = 10
	ss.RndSeed = 7
	return ss
}

func TestValidate(t *testing.T) {
	ss := testSim(t, 4)
	if err := ss.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	ss = testSim(t, 4)
	ss.Syn.Config(4, 6, 4, 4)
	if err := ss.Validate(); err == nil {
		t.Errorf("expected error for non-square tectal sheet")
	}

	ss = testSim(t, 4)
	ss.NumLoops = 5
	if err := ss.Validate(); err == nil {
		t.Errorf("expected error for NumLoops below minimum")
	}
	ss.NumLoops = 0
	if err := ss.Validate(); err != nil {
		t.Errorf("NumLoops 0 should be valid: %v", err)
	}

	ss = testSim(t, 4)
	ss.Pat.Type = pattern.PatternTypesN
	if err := ss.Validate(); err == nil {
		t.Errorf("expected error for invalid pattern type")
	}

	ss = testSim(t, 4)
	ss.Polarity.Type = polarity.MarkerTypesN
	if err := ss.Validate(); err == nil {
		t.Errorf("expected error for invalid marker type")
	}

	ss = testSim(t, 4)
	ss.Field.Dt = 0
	if err := ss.Validate(); err == nil {
		t.Errorf("expected error for zero Dt")
	}
}

func TestInitNormalized(t *testing.T) {
	ss := testSim(t, 4)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	for tu := 0; tu < ss.Syn.NTectal(); tu++ {
		rm := ss.Syn.RowMean(tu)
		if math.Abs(rm-ss.Syn.Init.Mean) > difTol {
			t.Errorf("tectal unit %d row mean %g after Init, expected %g", tu, rm, ss.Syn.Init.Mean)
		}
	}
}

func TestZeroLoops(t *testing.T) {
	ss := testSim(t, 4)
	ss.NumLoops = 0
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	before := make([]float64, len(ss.Syn.Wts.Values))
	copy(before, ss.Syn.Wts.Values)
	if err := ss.Run(); err != nil {
		t.Fatal(err)
	}
	for i, v := range ss.Syn.Wts.Values {
		if v != before[i] {
			t.Fatalf("weight %d changed in a zero-loop run", i)
		}
	}
}

func TestRunPairs(t *testing.T) {
	ss := testSim(t, 6)
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	if err := ss.Run(); err != nil {
		t.Fatal(err)
	}
	if ss.RelaxIters == 0 {
		t.Errorf("expected relaxation iterations to accumulate")
	}
	if ss.Pat.Trial.Cur != ss.NumLoops-1 {
		t.Errorf("trial counter %d after run, expected %d", ss.Pat.Trial.Cur, ss.NumLoops-1)
	}
	for tu := 0; tu < ss.Syn.NTectal(); tu++ {
		rm := ss.Syn.RowMean(tu)
		if math.Abs(rm-ss.Syn.Init.Mean) > difTol {
			t.Errorf("tectal unit %d row mean %g after run, expected %g", tu, rm, ss.Syn.Init.Mean)
		}
	}
}

func TestRunSweepScaled(t *testing.T) {
	ss := testSim(t, 4)
	ss.Pat.Type = pattern.Sweep
	ss.ApplyThresholdScale()
	if ss.Field.Theta != 40 {
		t.Fatalf("expected theta scaled to 40 for a 4-wide sweep, got %g", ss.Field.Theta)
	}
	if ss.Learn.Epsilon != 8 {
		t.Fatalf("expected epsilon scaled to 8 for a 4-wide sweep, got %g", ss.Learn.Epsilon)
	}
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	if err := ss.Run(); err != nil {
		t.Fatal(err)
	}
}

func TestRunDeterminism(t *testing.T) {
	run := func() []float64 {
		ss := testSim(t, 4)
		if err := ss.Init(); err != nil {
			t.Fatal(err)
		}
		if err := ss.Run(); err != nil {
			t.Fatal(err)
		}
		return ss.Syn.Wts.Values
	}
	w1 := run()
	w2 := run()
	for i := range w1 {
		if w1[i] != w2[i] {
			t.Fatalf("weight %d differs between identically seeded runs", i)
		}
	}
}

func TestSnapshots(t *testing.T) {
	ss := testSim(t, 4)
	ss.SnapInterval = 5
	var snaps []int
	ss.SnapFunc = func(loop int, sm *SynapseMatrix) error {
		snaps = append(snaps, loop)
		return nil
	}
	if err := ss.Init(); err != nil {
		t.Fatal(err)
	}
	if err := ss.Run(); err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 2 || snaps[0] != 5 || snaps[1] != 10 {
		t.Errorf("expected snapshots at loops 5 and 10, got %v", snaps)
	}
}
