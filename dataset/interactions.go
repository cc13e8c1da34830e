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

package dataset

import "github.com/lossgraph-io/lossgraph/base"

// Interactions is a sparse matrix of signed interaction strengths with shape
// [users x items]. A positive value indicates affinity of a user for an item,
// a negative value indicates disaffinity, and absent entries are unobserved.
// Entries are stored as aligned (user, item, value) triples in insertion order.
type Interactions struct {
	users  []int32
	items  []int32
	values []float32
	nUsers int
	nItems int
}

// NewInteractions creates an empty interaction matrix with shape [nUsers x nItems].
func NewInteractions(nUsers, nItems int) *Interactions {
	return &Interactions{
		nUsers: nUsers,
		nItems: nItems,
	}
}

// Add a new observed interaction.
func (m *Interactions) Add(user, item int32, value float32) {
	m.users = append(m.users, user)
	m.items = append(m.items, item)
	m.values = append(m.values, value)
}

// Count returns the number of observed interactions.
func (m *Interactions) Count() int {
	return len(m.values)
}

// NumUsers returns the number of rows.
func (m *Interactions) NumUsers() int {
	return m.nUsers
}

// NumItems returns the number of columns.
func (m *Interactions) NumItems() int {
	return m.nItems
}

// Values returns the serial form of observed interaction strengths, aligned
// with insertion order.
func (m *Interactions) Values() []float32 {
	return m.values
}

// ForEach iterates observed interactions in insertion order.
func (m *Interactions) ForEach(f func(user, item int32, value float32)) {
	for i := range m.values {
		f(m.users[i], m.items[i], m.values[i])
	}
}

// ToDense materializes the dense grid. Unobserved entries are zeros.
func (m *Interactions) ToDense() [][]float32 {
	dense := base.NewMatrix32(m.nUsers, m.nItems)
	m.ForEach(func(user, item int32, value float32) {
		dense[user][item] = value
	})
	return dense
}
