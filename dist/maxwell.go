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
)

// NewMaxwell returns the Maxwell-Boltzmann distribution with scale
// a > 0, the distribution of a times a Chi(3) variate. Its density is
//
//	f(x) = sqrt(2/pi) x^2/a^3 exp(-x^2/(2a^2)),  x > 0
//
// with mean 2a*sqrt(2/pi) and variance a^2(3pi - 8)/pi.
//
// Samples default to the shape of a. The scale is broadcast to the
// sample shape and checked before the Chi(3) variates are drawn.
func NewMaxwell(a data.Array) (*Transformed, error) {
	chi, err := NewChi(data.Scalar(3))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create Maxwell distribution")
	}

	return NewTransformed("Maxwell", []data.Array{a}, chi, Scale{A: a})
}
