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
	"math"

	"golang.org/x/exp/rand"
)

// GenExtreme samples a random value from the generalized extreme
// value distribution with location loc, scale scale and shape c by
// inversion of its CDF.
//
// The shape follows the scipy convention, where c is the negated tail
// index of Coles (2001): c > 0 gives a bounded upper tail.
// With E = -log(U) for U uniform on (0, 1) the standard variate is
// (1 - E^c)/c, and -log(E) for c = 0.
func GenExtreme(rnd *rand.Rand, loc, scale, c float64) float64 {
	e := -math.Log(OpenUniform(rnd))

	var x float64
	if c == 0 {
		x = -math.Log(e)
	} else {
		x = -math.Expm1(c*math.Log(e)) / c
	}

	return loc + scale*x
}
