// Copyright 2024 lossgraph Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loss

import (
	"github.com/lossgraph-io/lossgraph/base/log"
	"github.com/lossgraph-io/lossgraph/common/floats"
	"github.com/lossgraph-io/lossgraph/dataset"
)

// WMRB approximates the weighted margin rank batch loss from
// http://ceur-ws.org/Vol-1905/recsys2017_poster3.pdf by ranking each positive
// item against a random sample of items. Interactions can be any positive
// values, but magnitude is ignored. Negative interactions are also ignored.
// The returned slice holds one margin per positive interaction. The final
// reduction is left to the caller.
type WMRB struct{}

func (w *WMRB) IsDense() bool {
	return true
}

func (w *WMRB) IsSampleBased() bool {
	return true
}

func (w *WMRB) Loss(in *Inputs) []float32 {
	return marginRank(in.Prediction, in.Interactions, in.SamplePredictions)
}

// WMRBAlignment is the WMRB loss computed over alignment scores in place of
// predictions. Interactions can be any positive values, but magnitude is
// ignored. Negative interactions are also ignored.
type WMRBAlignment struct{}

func (w *WMRBAlignment) IsDense() bool {
	return true
}

func (w *WMRBAlignment) IsSampleBased() bool {
	return true
}

func (w *WMRBAlignment) Loss(in *Inputs) []float32 {
	return marginRank(in.Alignment, in.Interactions, in.SampleAlignments)
}

func marginRank(prediction [][]float32, interactions *dataset.Interactions, samplePredictions [][]float32) []float32 {
	var nSampledItems float32
	if len(samplePredictions) > 0 {
		nSampledItems = float32(len(samplePredictions[0]))
	}
	sampleSum := make([]float32, len(samplePredictions))
	for u := range samplePredictions {
		sampleSum[u] = floats.Sum(samplePredictions[u])
	}
	// TODO: replace the sampled item count with a true irrelevant item count.
	// Using the sampled item count is an approximation for sparse interactions.
	irrelevantItemIndicator := nSampledItems
	margins := make([]float32, 0, interactions.Count())
	interactions.ForEach(func(user, item int32, value float32) {
		if value <= 0 {
			return
		}
		positivePrediction := prediction[user][item]
		margins = append(margins, nSampledItems-nSampledItems*positivePrediction+sampleSum[user]+irrelevantItemIndicator)
	})
	if len(margins) == 0 {
		log.Logger().Warn("margin rank loss requires positive interactions")
	}
	// The log dampening term log(margin + 1) is omitted. It degraded results
	// in experiments.
	return margins
}
