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
)

// NewChi returns the chi distribution with nu > 0 degrees of freedom,
// the distribution of the square root of a ChiSquared(nu) variate.
// Its density is
//
//	f(x) = x^(nu-1) exp(-x^2/2) / (2^(nu/2-1) Gamma(nu/2)),  x >= 0.
//
// It returns an error if nu is malformed.
func NewChi(nu data.Array) (*Transformed, error) {
	return NewTransformed("Chi", []data.Array{nu}, NewChiSquared(nu), Sqrt{})
}

// ChiTransform returns the transform under which a chi distributed
// variable is sampled by gradient based inference: Log for latent
// variables, and nil for observed ones, which are never transformed.
func ChiTransform(observed bool) Transform {
	if observed {
		return nil
	}
	return Log{}
}
