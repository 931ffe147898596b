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
	gofe "github.com/fentec-project/godist/internal"
	"github.com/pkg/errors"
)

var (
	// ErrShape is returned when arrays cannot be broadcast together.
	ErrShape = gofe.MalformedShape

	// ErrArity is returned when a distribution is constructed with
	// the wrong number of parameters.
	ErrArity = gofe.MalformedParams

	// ErrUnknownKind is returned for a Kind this package does not
	// define.
	ErrUnknownKind = gofe.UnknownVariant

	// ErrDomain is matched by every *DomainError.
	ErrDomain = gofe.OutOfDomain
)

// DomainError reports parameters outside of the domain of a
// distribution. Msg describes the violated constraint, for example
// "sigma > 0 or -1 < xi < 1".
type DomainError struct {
	Msg string
}

// Error returns the violated constraint prefixed by ErrDomain.
func (e *DomainError) Error() string {
	return gofe.OutOfDomain.Error() + ": " + e.Msg
}

// Unwrap makes errors.Is(err, ErrDomain) hold for every DomainError.
func (e *DomainError) Unwrap() error {
	return gofe.OutOfDomain
}

// IsDomainError reports whether err was caused by a domain violation.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
