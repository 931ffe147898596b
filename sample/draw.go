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

package sample

import (
	"github.com/fentec-project/godist/data"
	gofe "github.com/fentec-project/godist/internal"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Variate draws a single value from rnd given the scalar parameters
// of one output element. The slice p must not be retained.
type Variate func(rnd *rand.Rand, p []float64) float64

// ResolveShape returns the shape a draw with the given parameters
// produces. A nil shape resolves to the broadcast shape of the
// parameters; otherwise every parameter has to broadcast to shape.
func ResolveShape(shape data.Shape, params ...data.Array) (data.Shape, error) {
	shapes := make([]data.Shape, len(params))
	for i, p := range params {
		shapes[i] = p.Shape()
	}
	if shape == nil {
		return data.Broadcast(shapes...)
	}

	out, err := data.Broadcast(append(shapes, shape)...)
	if err != nil {
		return nil, err
	}
	if !out.Equal(shape) {
		return nil, errors.Wrapf(gofe.MalformedShape,
			"parameters of shape %v do not fit sample shape %v", shapes, shape)
	}

	return shape.Copy(), nil
}

// Draw returns a new Array of the given shape with elements produced
// by v. The parameters are broadcast to the resolved shape (see
// ResolveShape) and the elements are drawn in row-major order from a
// single stream over src.
func Draw(src rand.Source, shape data.Shape, v Variate, params ...data.Array) (data.Array, error) {
	out, err := ResolveShape(shape, params...)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "error while sampling")
	}

	full := make([][]float64, len(params))
	for i, p := range params {
		b, err := p.BroadcastTo(out)
		if err != nil {
			return data.Array{}, errors.Wrap(err, "error while sampling")
		}
		full[i] = b.Values()
	}

	rnd := rand.New(src)
	vals := make([]float64, out.Size())
	args := make([]float64, len(params))
	for i := range vals {
		for k := range full {
			args[k] = full[k][i]
		}
		vals[i] = v(rnd, args)
	}

	return data.NewArray(out, vals)
}
