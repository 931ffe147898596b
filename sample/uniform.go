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

import "golang.org/x/exp/rand"

// OpenUniform samples a random value from the open interval (0, 1).
func OpenUniform(rnd *rand.Rand) float64 {
	for {
		if u := rnd.Float64(); u > 0 {
			return u
		}
	}
}

// Sign returns -1 or 1 with equal probability.
func Sign(rnd *rand.Rand) float64 {
	if rnd.Uint64()&1 == 0 {
		return 1
	}
	return -1
}
