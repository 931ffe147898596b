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

package internal

import "math"

// Tolerances used by IsClose, equal to the numpy defaults.
const (
	closeAbsTol = 1e-8
	closeRelTol = 1e-5
)

// IsClose reports whether a and b are equal within the absolute
// and relative tolerances of numpy.isclose.
func IsClose(a, b float64) bool {
	return math.Abs(a-b) <= closeAbsTol+closeRelTol*math.Abs(b)
}

// Select returns a if cond holds and b otherwise. Both arguments are
// evaluated by the caller, so neither branch may panic on values that
// belong to the other one.
func Select(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

// Sign returns -1, 0 or 1 according to the sign of x, and NaN for NaN.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x == 0:
		return 0
	}
	return math.NaN()
}

// XLogY returns x*log(y), and 0 when x is 0 and y is not NaN.
func XLogY(x, y float64) float64 {
	if x == 0 && !math.IsNaN(y) {
		return 0
	}
	return x * math.Log(y)
}
