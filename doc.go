// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package retinotopy is the overall repository for the Willshaw and von der
Malsburg model of retinotopic map formation, implemented in the Go
language (golang).

The model grows an ordered topographic projection from a retinal sheet to
a tectal sheet out of initially random synaptic weights, using only
locally correlated retinal activity, lateral interactions in the tectum,
Hebbian learning and synaptic normalization.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* retmap: the core model: the synapse matrix with its Gaussian
initialization and normalization, Hebbian learning, the simulation driver,
map quality statistics and weight file I/O.

* field: relaxation of the tectal activity field to its steady state under
lateral interactions, thresholding and decay.

* lateral: the short-range excitatory / long-range inhibitory lateral
interaction kernel and its convolution over the tectal sheet.

* pattern: generators for the retinal activation patterns, from adjacent
pairs through sweeps and whole-sheet strobe to alternating half-sheet
ocular dominance stimulation.

* polarity: initial polarity markers that bias the map into a consistent
orientation, as matched corner blocks or a graded alignment gradient.

* examples: these compile into runnable programs.  examples/retsim runs
the full simulation from a TOML config file and logs map quality.
*/
package retinotopy
