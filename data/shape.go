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

// Package data provides the array types distributions are evaluated
// over: Shape, Array and Cond, together with numpy-style broadcasting
// and element-wise evaluation.
package data

import (
	"fmt"
	"strings"

	gofe "github.com/fentec-project/godist/internal"
	"github.com/pkg/errors"
)

// Shape holds the dimensions of a row-major array.
//
// An empty, non-nil Shape describes a scalar. A nil Shape is used by
// the callers of this package to mean that no shape was requested.
type Shape []int

// Size returns the number of elements of an array with shape s.
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Equal reports whether s and other have the same dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Copy returns a new Shape with the same dimensions. Copy of a nil
// Shape is an empty scalar shape.
func (s Shape) Copy() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// check returns an error if any of the dimensions is negative.
func (s Shape) check() error {
	for _, d := range s {
		if d < 0 {
			return errors.Wrapf(gofe.MalformedShape, "negative dimension in %v", s)
		}
	}

	return nil
}

// String produces a string representation of a shape, e.g. (2, 3).
func (s Shape) String() string {
	dims := make([]string, len(s))
	for i, d := range s {
		dims[i] = fmt.Sprint(d)
	}
	if len(s) == 1 {
		return "(" + dims[0] + ",)"
	}

	return "(" + strings.Join(dims, ", ") + ")"
}

// Broadcast returns the shape obtained by broadcasting all the given
// shapes against each other. Shapes are aligned on their trailing
// dimensions; two dimensions are compatible when they are equal or
// one of them is 1.
//
// It returns an error if the shapes are not compatible.
func Broadcast(shapes ...Shape) (Shape, error) {
	rank := 0
	for _, s := range shapes {
		if err := s.check(); err != nil {
			return nil, err
		}
		if len(s) > rank {
			rank = len(s)
		}
	}

	out := make(Shape, rank)
	for i := 1; i <= rank; i++ {
		d := 1
		for _, s := range shapes {
			if len(s) < i {
				continue
			}
			v := s[len(s)-i]
			switch {
			case v == 1:
			case d == 1:
				d = v
			case v != d:
				return nil, errors.Wrapf(gofe.MalformedShape,
					"shapes %v cannot be broadcast together", shapes)
			}
		}
		out[rank-i] = d
	}

	return out, nil
}

// eachIndex walks over every element of an array of shape out in
// row-major order. For each element it calls fn with the flat
// positions of the corresponding elements of arrays with shapes ins,
// which must broadcast to out. The slice passed to fn is reused.
func eachIndex(out Shape, ins []Shape, fn func(i int, pos []int)) {
	rank := len(out)
	strides := make([][]int, len(ins))
	for k, in := range ins {
		st := make([]int, rank)
		step := 1
		for d := len(in) - 1; d >= 0; d-- {
			if in[d] != 1 {
				st[d+rank-len(in)] = step
			}
			step *= in[d]
		}
		strides[k] = st
	}

	pos := make([]int, len(ins))
	idx := make([]int, rank)
	n := out.Size()
	for i := 0; i < n; i++ {
		fn(i, pos)

		for d := rank - 1; d >= 0; d-- {
			idx[d]++
			for k := range pos {
				pos[k] += strides[k][d]
			}
			if idx[d] < out[d] {
				break
			}
			for k := range pos {
				pos[k] -= strides[k][d] * out[d]
			}
			idx[d] = 0
		}
	}
}
