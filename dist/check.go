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

// CheckParameters passes result through when every condition holds
// for every element, and flags the whole call with a *DomainError
// carrying msg otherwise.
//
// The result is returned unmodified in both cases. Conditions are
// evaluated by the caller over the parameter arrays, so all elements
// of result are computed even when some of them stem from invalid
// parameters.
func CheckParameters(result data.Array, msg string, conds ...data.Cond) (data.Array, error) {
	for _, c := range conds {
		if !c.All() {
			return result, &DomainError{Msg: msg}
		}
	}

	return result, nil
}

func positive(x float64) bool {
	return x > 0
}
