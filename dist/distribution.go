/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dist

import (
	"github.com/fentec-project/godist/data"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Evaluator evaluates the log-density and the log-CDF of a
// distribution at value, broadcast against the parameters.
//
// Both methods return a *DomainError, together with the fully
// computed result, when the parameters are outside of their domain.
// Values outside of the support evaluate to negative infinity.
type Evaluator interface {
	LogProb(value data.Array) (data.Array, error)
	LogCDF(value data.Array) (data.Array, error)
}

// Sampler draws arrays of variates from an explicit random source.
// A nil shape draws one value per element of the broadcast
// parameters.
type Sampler interface {
	Sample(src rand.Source, shape data.Shape) (data.Array, error)
}

// Distribution is implemented by every distribution of this package.
type Distribution interface {
	Evaluator
	Sampler

	// Name returns a human readable name of the distribution.
	Name() string
	// Params returns the parameters in their declared order.
	Params() []data.Array
	// Moment returns a representative location of the distribution,
	// used as a starting value for inference. It is broadcast to
	// shape unless shape is nil.
	Moment(shape data.Shape) (data.Array, error)
}

// checkShapes returns an error if params cannot be broadcast together.
func checkShapes(params ...data.Array) error {
	shapes := make([]data.Shape, len(params))
	for i, p := range params {
		shapes[i] = p.Shape()
	}
	_, err := data.Broadcast(shapes...)

	return err
}

// fill broadcasts m to shape, or returns m when shape is nil.
func fill(m data.Array, shape data.Shape) (data.Array, error) {
	if shape == nil {
		return m, nil
	}
	res, err := m.BroadcastTo(shape)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot compute moment")
	}

	return res, nil
}
