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

// Package dist implements continuous probability distributions that
// are missing from common probabilistic toolkits: the generalized
// extreme value (GEV) distribution, the generalized normal
// distribution, and the Chi and Maxwell distributions.
//
// Every distribution implements the Distribution interface: a
// log-density, a log-CDF, a moment used to initialise inference, and
// a sampling procedure that draws from an explicit random source.
// Evaluation is element-wise over data.Array values broadcast
// against the parameters.
//
// GEV and GeneralizedNormal are primitives evaluated from closed-form
// expressions. Chi and Maxwell are compositions: a ChiSquared
// primitive followed by a square root, and a Chi(3) variate scaled by
// a. Their densities follow from the change of variables performed
// by Transformed.
//
// Parameters outside their domain (for example a non-positive scale)
// are reported at evaluation time as a *DomainError, returned next to
// the fully evaluated result. Observed values outside the support of
// a distribution are not errors; they evaluate to negative infinity.
package dist
