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

// Package loss provides pluggable loss functions for matrix factorization
// models. A loss graph is selected at configuration time and invoked once per
// training step with the tensors listed in Inputs. The two capability methods
// tell the training loop which optional tensors it must materialize before
// invocation.
package loss

import (
	"reflect"
	"sort"

	"github.com/juju/errors"
	"github.com/lossgraph-io/lossgraph/dataset"
	"github.com/samber/lo"
)

// Inputs bundles every tensor a loss graph may read. Each graph reads only
// the fields it needs and ignores the rest. Fields required by a graph are
// determined by its capability methods: Prediction and Interactions must be
// set for dense graphs, SamplePredictions and SampleAlignments for
// sample-based graphs.
type Inputs struct {
	// PredictionSerial is the recommendation scores of sampled (user, item)
	// pairs with shape [n_samples].
	PredictionSerial []float32
	// InteractionSerial is the observed interaction strengths aligned with
	// PredictionSerial, with shape [n_samples].
	InteractionSerial []float32
	// Prediction is the recommendation scores with shape [n_users x n_items].
	Prediction [][]float32
	// Interactions is the sparse observed interaction matrix with shape
	// [n_users x n_items].
	Interactions *dataset.Interactions
	// Rankings is the item ranks with shape [n_users x n_items].
	Rankings [][]float32
	// Alignment is the item alignment scores with shape [n_users x n_items].
	Alignment [][]float32
	// SamplePredictions is the recommendation scores of sampled negative
	// items with shape [n_users x n_sampled_items].
	SamplePredictions [][]float32
	// SampleAlignments is the alignment scores of sampled negative items
	// with shape [n_users x n_sampled_items].
	SampleAlignments [][]float32
}

// Graph is the contract between a loss function and the training loop. Loss
// is a stateless pure computation: no tensor is mutated and the same inputs
// always produce the same output. Malformed shapes are not validated here,
// mismatches panic in the underlying kernels.
type Graph interface {
	// IsDense returns true if the dense interaction matrix must be supplied.
	IsDense() bool
	// IsSampleBased returns true if sampled negative item scores must be
	// supplied.
	IsSampleBased() bool
	// Loss computes the loss. Scalar losses return a single element. Margin
	// rank losses return one element per positive interaction and leave the
	// final reduction to the caller.
	Loss(in *Inputs) []float32
}

var graphs = map[string]func() Graph{
	"rmse":           func() Graph { return &RMSE{} },
	"rmse_dense":     func() Graph { return &RMSEDense{} },
	"separation":     func() Graph { return &Separation{} },
	"wmrb":           func() Graph { return &WMRB{} },
	"wmrb_alignment": func() Graph { return &WMRBAlignment{} },
}

// New creates a loss graph by name.
func New(name string) (Graph, error) {
	if create, exist := graphs[name]; exist {
		return create(), nil
	}
	return nil, errors.NotFoundf("loss graph %q", name)
}

// Names returns the names of all registered loss graphs in sorted order.
func Names() []string {
	names := lo.Keys(graphs)
	sort.Strings(names)
	return names
}

// GetGraphName returns the registered name of a loss graph.
func GetGraphName(g Graph) string {
	switch g.(type) {
	case *RMSE:
		return "rmse"
	case *RMSEDense:
		return "rmse_dense"
	case *Separation:
		return "separation"
	case *WMRB:
		return "wmrb"
	case *WMRBAlignment:
		return "wmrb_alignment"
	default:
		return reflect.TypeOf(g).String()
	}
}
