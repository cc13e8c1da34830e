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
	"github.com/chewxy/math32"
	"github.com/lossgraph-io/lossgraph/base"
	"github.com/lossgraph-io/lossgraph/common/floats"
)

// RMSE is the root mean square error between serial predictions and the true
// interactions. Interactions can be any positive or negative values, and this
// loss is sensitive to magnitude.
type RMSE struct{}

func (r *RMSE) IsDense() bool {
	return false
}

func (r *RMSE) IsSampleBased() bool {
	return false
}

func (r *RMSE) Loss(in *Inputs) []float32 {
	residual := make([]float32, len(in.PredictionSerial))
	floats.SubTo(in.InteractionSerial, in.PredictionSerial, residual)
	return []float32{math32.Sqrt(floats.Dot(residual, residual) / float32(len(residual)))}
}

// RMSEDense is the root mean square error between predictions and the true
// interactions over the full [n_users x n_items] grid, counting all
// non-interacted entries as zeros. Interactions can be any positive or
// negative values, and this loss is sensitive to magnitude.
type RMSEDense struct{}

func (r *RMSEDense) IsDense() bool {
	return true
}

func (r *RMSEDense) IsSampleBased() bool {
	return false
}

func (r *RMSEDense) Loss(in *Inputs) []float32 {
	nUsers := len(in.Prediction)
	residual := base.NewMatrix32(nUsers, len(in.Prediction[0]))
	for u := range in.Prediction {
		floats.MulConstTo(in.Prediction[u], -1, residual[u])
	}
	in.Interactions.ForEach(func(user, item int32, value float32) {
		residual[user][item] += value
	})
	var sum float32
	var count int
	for u := range residual {
		sum += floats.Dot(residual[u], residual[u])
		count += len(residual[u])
	}
	return []float32{math32.Sqrt(sum / float32(count))}
}
