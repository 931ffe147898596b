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
	"gonum.org/v1/gonum/stat/distuv"
)

// GenNorm samples a random value from the generalized normal
// distribution with location loc, scale alpha and shape beta.
//
// The magnitude |z| = G^(1/beta) is drawn first, with G following
// Gamma(1/beta, 1), and the sign is drawn from the same stream
// afterwards.
func GenNorm(rnd *rand.Rand, loc, alpha, beta float64) float64 {
	g := distuv.Gamma{Alpha: 1 / beta, Beta: 1, Src: rnd}.Rand()
	z := math.Pow(g, 1/beta) * Sign(rnd)

	return loc + alpha*z
}
