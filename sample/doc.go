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

// Package sample includes the random sources and variate generators
// the distributions of this module draw from.
//
// Randomness is never global: every generator takes an explicit
// *rand.Rand built over a rand.Source supplied by the caller, and
// Draw fills whole arrays from a single source in row-major order.
// Two draws from sources in the same state therefore produce
// identical arrays.
//
// Sources can be created from a seed with NewSource, or from a
// 32-byte key with NewKeyedSource, in which case the stream is the
// XSalsa20 key stream determined by the key.
package sample
