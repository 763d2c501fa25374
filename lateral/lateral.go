// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lateral provides the fixed lateral-interaction kernel for the tectal
sheet, encoding short-range excitation and longer-range inhibition as a
function of Manhattan distance between tectal units, along with the zero-fill
2D convolution that applies it to a post-threshold activity grid.

Units at Manhattan distance 1 excite each other with weight Beta, distance 2
with weight Gamma, and distance 3 inhibit with (negative) weight Delta.
All other offsets, including the center, contribute nothing, giving the
classic 7x7 diamond profile used in the Willshaw & von der Malsburg (1976)
correlation-based model of retinotopic map formation.
*/
package lateral

import "github.com/emer/etable/v2/etensor"

// KernelSize is the full edge length of the interaction kernel.
// The kernel spans Manhattan distances 0..3 so it is 7x7.
const KernelSize = 7

// KernelRadius is the maximum Manhattan distance with a nonzero weight.
const KernelRadius = 3

// Params are the lateral interaction strengths by Manhattan distance.
// Defaults are the model parameters from Willshaw & von der Malsburg.
type Params struct {

	// excitatory coupling between tectal units at Manhattan distance 1
	Beta float64 `default:"0.05"`

	// excitatory coupling between tectal units at Manhattan distance 2
	Gamma float64 `default:"0.025"`

	// inhibitory coupling between tectal units at Manhattan distance 3 -- should be negative
	Delta float64 `default:"-0.06"`

	// the 7x7 kernel computed from the coupling strengths -- updated by Update
	Kern etensor.Float64 `view:"-" json:"-" xml:"-"`
}

func (lp *Params) Defaults() {
	lp.Beta = 0.05
	lp.Gamma = 0.025
	lp.Delta = -0.06
	lp.Update()
}

// Update recomputes the kernel from the current coupling strengths.
// Must be called after any change to Beta, Gamma, Delta.
func (lp *Params) Update() {
	lp.Kern.SetShape([]int{KernelSize, KernelSize}, nil, []string{"Y", "X"})
	for ky := 0; ky < KernelSize; ky++ {
		for kx := 0; kx < KernelSize; kx++ {
			dy := ky - KernelRadius
			dx := kx - KernelRadius
			md := abs(dy) + abs(dx)
			var w float64
			switch md {
			case 1:
				w = lp.Beta
			case 2:
				w = lp.Gamma
			case 3:
				w = lp.Delta
			}
			lp.Kern.Set([]int{ky, kx}, w)
		}
	}
}

// Convolve convolves src with the interaction kernel into dst, using
// zero-fill boundary handling: edge units simply see fewer neighbors,
// with no wraparound.  dst is reshaped to match src.  The kernel is
// symmetric so convolution and correlation coincide.
func (lp *Params) Convolve(dst, src *etensor.Float64) {
	ny := src.Dim(0)
	nx := src.Dim(1)
	dst.SetShape([]int{ny, nx}, nil, []string{"Y", "X"})
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			sum := 0.0
			for ky := 0; ky < KernelSize; ky++ {
				sy := y + ky - KernelRadius
				if sy < 0 || sy >= ny {
					continue
				}
				for kx := 0; kx < KernelSize; kx++ {
					sx := x + kx - KernelRadius
					if sx < 0 || sx >= nx {
						continue
					}
					kv := lp.Kern.Values[ky*KernelSize+kx]
					if kv == 0 {
						continue
					}
					sum += kv * src.Values[sy*nx+sx]
				}
			}
			dst.Values[y*nx+x] = sum
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
