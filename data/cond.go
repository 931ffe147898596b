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

import "math"

// Cond holds the element-wise result of a boolean predicate.
type Cond struct {
	shape Shape
	vals  []bool
}

// NewCond returns a Cond of the given shape with every element set
// to v.
func NewCond(shape Shape, v bool) Cond {
	vals := make([]bool, shape.Size())
	for i := range vals {
		vals[i] = v
	}

	return Cond{shape: shape.Copy(), vals: vals}
}

// Shape returns the shape of c.
func (c Cond) Shape() Shape {
	return c.shape.Copy()
}

// At returns the i-th element of c in row-major order.
func (c Cond) At(i int) bool {
	return c.vals[i]
}

// All reports whether the predicate holds for every element.
func (c Cond) All() bool {
	for _, v := range c.vals {
		if !v {
			return false
		}
	}

	return true
}

// And combines c and other element-wise under broadcasting.
func (c Cond) And(other Cond) (Cond, error) {
	out, err := Broadcast(c.shape, other.shape)
	if err != nil {
		return Cond{}, err
	}

	res := make([]bool, out.Size())
	eachIndex(out, []Shape{c.shape, other.shape}, func(i int, pos []int) {
		res[i] = c.vals[pos[0]] && other.vals[pos[1]]
	})

	return Cond{shape: out, vals: res}, nil
}

// Select picks, element-wise, the value of a where c holds and the
// value of b elsewhere. Both a and b are fully evaluated before the
// selection, so the result never depends on short-circuiting.
func Select(c Cond, a, b Array) (Array, error) {
	out, err := Broadcast(c.shape, a.shape, b.shape)
	if err != nil {
		return Array{}, err
	}

	res := make([]float64, out.Size())
	eachIndex(out, []Shape{c.shape, a.shape, b.shape}, func(i int, pos []int) {
		if c.vals[pos[0]] {
			res[i] = a.vals[pos[1]]
		} else {
			res[i] = b.vals[pos[2]]
		}
	})

	return Array{shape: out, vals: res}, nil
}

// OrNegInf keeps a where c holds and replaces the remaining elements
// with negative infinity.
func OrNegInf(c Cond, a Array) (Array, error) {
	return Select(c, a, Scalar(math.Inf(-1)))
}
