// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
	"github.com/goki/mat32"
)

// COM computes each tectal unit's receptive field center of mass over
// the retinal sheet: the weight-weighted mean retinal x and y coordinate
// of its incoming synapses.  Returns the x and y coordinate grids, each
// shaped [YT, XT] to match the tectal sheet.  A well-ordered map has
// these grids varying smoothly and monotonically across the sheet.
func (sm *SynapseMatrix) COM() (comX, comY *etensor.Float32) {
	comX = etensor.NewFloat32([]int{sm.YT, sm.XT}, nil, []string{"Y", "X"})
	comY = etensor.NewFloat32([]int{sm.YT, sm.XT}, nil, []string{"Y", "X"})
	nr := sm.NRetinal()
	nt := sm.NTectal()
	for t := 0; t < nt; t++ {
		row := sm.Wts.Values[t*nr : (t+1)*nr]
		var sum, sx, sy float64
		for r, w := range row {
			sum += w
			sx += w * float64(r%sm.XR)
			sy += w * float64(r/sm.XR)
		}
		if sum != 0 {
			comX.Values[t] = float32(sx / sum)
			comY.Values[t] = float32(sy / sum)
		}
	}
	return
}

// Quality scores the receptive field centers against the ideal linear
// retinotopic projection, in which tectal unit (ty, tx) maps to retinal
// coordinates evenly spaced over [0, XR-1] x [0, YR-1].  Each unit's
// displacement from its ideal position is normalized by sqrt(XR+YR) and
// the mean normalized displacement is subtracted from 1, so a perfect
// map scores 1 and worse maps score lower.
func (sm *SynapseMatrix) Quality(comX, comY *etensor.Float32) float32 {
	dx := float32(sm.XR-1) / float32(sm.XT-1)
	dy := float32(sm.YR-1) / float32(sm.YT-1)
	norm := math32.Sqrt(float32(sm.XR + sm.YR))
	nt := sm.NTectal()
	disp := float32(0)
	for t := 0; t < nt; t++ {
		ideal := mat32.NewVec2(float32(t%sm.XT)*dx, float32(t/sm.XT)*dy)
		com := mat32.NewVec2(comX.Values[t], comY.Values[t])
		disp += com.Sub(ideal).Length() / norm
	}
	return 1 - disp/float32(nt)
}
