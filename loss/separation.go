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
	"math"

	"github.com/lossgraph-io/lossgraph/base/log"
	"github.com/lossgraph-io/lossgraph/common/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Separation models the predictions of positive and non-positive interactions
// as two normal distributions and returns the probability of overlap between
// them. Interactions can be any positive or negative values, but magnitude is
// ignored: entries are grouped into {i > 0} and {i <= 0}.
type Separation struct{}

func (s *Separation) IsDense() bool {
	return false
}

func (s *Separation) IsSampleBased() bool {
	return false
}

func (s *Separation) Loss(in *Inputs) []float32 {
	var positive, negative []float32
	for i, interaction := range in.InteractionSerial {
		if interaction > 0 {
			positive = append(positive, in.PredictionSerial[i])
		} else {
			negative = append(negative, in.PredictionSerial[i])
		}
	}
	if len(positive) == 0 || len(negative) == 0 {
		log.Logger().Warn("separation loss requires both positive and non-positive interactions")
	}
	posMean, posVar := floats.Moments(positive)
	negMean, negVar := floats.Moments(negative)
	overlap := distuv.Normal{
		Mu:    float64(negMean - posMean),
		Sigma: math.Sqrt(float64(negVar + posVar)),
	}
	return []float32{1 - float32(overlap.CDF(0))}
}
