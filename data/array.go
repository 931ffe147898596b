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

package data

import (
	"fmt"
	"strings"

	gofe "github.com/fentec-project/godist/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Array is an immutable n-dimensional array of float64 values stored
// in row-major order. All operations return a new Array.
type Array struct {
	shape Shape
	vals  []float64
}

// NewArray returns a new Array instance with the given shape.
// The values are copied. It returns an error if the number of values
// does not match the shape.
func NewArray(shape Shape, vals []float64) (Array, error) {
	if err := shape.check(); err != nil {
		return Array{}, err
	}
	if len(vals) != shape.Size() {
		return Array{}, errors.Wrapf(gofe.MalformedShape,
			"%d values do not fill shape %v", len(vals), shape)
	}
	v := make([]float64, len(vals))
	copy(v, vals)

	return Array{shape: shape.Copy(), vals: v}, nil
}

// Scalar returns a zero-dimensional Array holding x.
func Scalar(x float64) Array {
	return Array{shape: Shape{}, vals: []float64{x}}
}

// NewVector returns a one-dimensional Array holding a copy of vals.
func NewVector(vals []float64) Array {
	v := make([]float64, len(vals))
	copy(v, vals)

	return Array{shape: Shape{len(vals)}, vals: v}
}

// NewConstantArray returns a new Array of the given shape with all
// elements set to c.
func NewConstantArray(shape Shape, c float64) Array {
	vals := make([]float64, shape.Size())
	for i := range vals {
		vals[i] = c
	}

	return Array{shape: shape.Copy(), vals: vals}
}

// Shape returns the shape of a.
func (a Array) Shape() Shape {
	return a.shape.Copy()
}

// Size returns the number of elements of a.
func (a Array) Size() int {
	return len(a.vals)
}

// At returns the i-th element of a in row-major order.
func (a Array) At(i int) float64 {
	return a.vals[i]
}

// Values returns a copy of the elements of a in row-major order.
func (a Array) Values() []float64 {
	v := make([]float64, len(a.vals))
	copy(v, a.vals)
	return v
}

// Copy creates a new array with the same shape and values.
func (a Array) Copy() Array {
	return Array{shape: a.shape.Copy(), vals: a.Values()}
}

// Apply applies an element-wise function f to array a.
// The result is returned in a new Array.
func (a Array) Apply(f func(float64) float64) Array {
	res := make([]float64, len(a.vals))
	for i, v := range a.vals {
		res[i] = f(v)
	}

	return Array{shape: a.shape.Copy(), vals: res}
}

// MulScalar multiplies array a by a given scalar x.
// The result is returned in a new Array.
func (a Array) MulScalar(x float64) Array {
	res := a.Copy()
	floats.Scale(x, res.vals)

	return res
}

// Test evaluates predicate f on every element of a.
func (a Array) Test(f func(float64) bool) Cond {
	res := make([]bool, len(a.vals))
	for i, v := range a.vals {
		res[i] = f(v)
	}

	return Cond{shape: a.shape.Copy(), vals: res}
}

// BroadcastTo expands a to the given shape. It returns an error if
// the shape of a does not broadcast to shape.
func (a Array) BroadcastTo(shape Shape) (Array, error) {
	out, err := Broadcast(a.shape, shape)
	if err != nil {
		return Array{}, err
	}
	if !out.Equal(shape) {
		return Array{}, errors.Wrapf(gofe.MalformedShape,
			"cannot broadcast %v to %v", a.shape, shape)
	}

	res := make([]float64, out.Size())
	eachIndex(out, []Shape{a.shape}, func(i int, pos []int) {
		res[i] = a.vals[pos[0]]
	})

	return Array{shape: out, vals: res}, nil
}

// String produces a string representation of an array.
func (a Array) String() string {
	vals := make([]string, len(a.vals))
	for i, v := range a.vals {
		vals[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("%v[%s]", a.shape, strings.Join(vals, " "))
}

// Map broadcasts the given arrays against each other and evaluates f
// on every element of the result. The i-th entry of the slice passed
// to f holds the element of arrays[i]; f must not retain the slice.
//
// It returns an error if the arrays cannot be broadcast together.
func Map(f func(v []float64) float64, arrays ...Array) (Array, error) {
	shapes := make([]Shape, len(arrays))
	for i, a := range arrays {
		shapes[i] = a.shape
	}
	out, err := Broadcast(shapes...)
	if err != nil {
		return Array{}, err
	}

	res := make([]float64, out.Size())
	args := make([]float64, len(arrays))
	eachIndex(out, shapes, func(i int, pos []int) {
		for k, p := range pos {
			args[k] = arrays[k].vals[p]
		}
		res[i] = f(args)
	})

	return Array{shape: out, vals: res}, nil
}

// Mul multiplies arrays a and b element-wise under broadcasting.
func Mul(a, b Array) (Array, error) {
	return Map(func(v []float64) float64 {
		return v[0] * v[1]
	}, a, b)
}

// Add adds arrays a and b element-wise under broadcasting.
func Add(a, b Array) (Array, error) {
	return Map(func(v []float64) float64 {
		return v[0] + v[1]
	}, a, b)
}
