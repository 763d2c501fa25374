// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retmap

import (
	"github.com/emer/etable/v2/etensor"
	"github.com/emer/retinotopy/field"
)

// LearnParams are the Hebbian learning parameters applied after each
// relaxation of the tectal field.
type LearnParams struct {

	// learning rate h: increment per unit of suprathreshold activity
	Rate float64 `default:"0.0008" min:"0"`

	// modification threshold epsilon: only tectal units whose
	// thresholded activity exceeds this get their active synapses
	// strengthened.  Scale by the pattern generator's ThresholdScale
	// when the pattern co-activates more or fewer than 2 units.
	Epsilon float64 `default:"2" min:"0"`
}

func (lp *LearnParams) Defaults() {
	lp.Rate = 0.0008
	lp.Epsilon = 2
}

func (lp *LearnParams) Update() {
}

// Hebbian strengthens the synapses from the active retinal units onto
// every tectal unit whose thresholded converged activity exceeds Epsilon,
// by Rate times that activity.  h is the converged field from Relax and
// theta the firing threshold it was relaxed with.
func (lp *LearnParams) Hebbian(sm *SynapseMatrix, h *etensor.Float64, theta float64, active []int) {
	hstar := &etensor.Float64{}
	field.Threshold(hstar, h, theta)
	nr := sm.NRetinal()
	for t, v := range hstar.Values {
		if v <= lp.Epsilon {
			continue
		}
		dw := lp.Rate * v
		row := sm.Wts.Values[t*nr : (t+1)*nr]
		for _, r := range active {
			row[r] += dw
		}
	}
}
