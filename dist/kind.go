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
	"fmt"
	"strings"

	"github.com/fentec-project/godist/data"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Kind identifies one of the distributions of this package.
type Kind int

const (
	KindGEV Kind = iota
	KindGeneralizedNormal
	KindChi
	KindMaxwell
)

type kindInfo struct {
	name   string
	params []string
	build  func(p []data.Array) (Distribution, error)
}

var kinds = map[Kind]kindInfo{
	KindGEV: {
		name:   "GEV",
		params: []string{"mu", "sigma", "xi"},
		build: func(p []data.Array) (Distribution, error) {
			return NewGEV(p[0], p[1], p[2], false)
		},
	},
	KindGeneralizedNormal: {
		name:   "GeneralizedNormal",
		params: []string{"mu", "alpha", "beta"},
		build: func(p []data.Array) (Distribution, error) {
			return NewGeneralizedNormal(p[0], p[1], p[2])
		},
	},
	KindChi: {
		name:   "Chi",
		params: []string{"nu"},
		build: func(p []data.Array) (Distribution, error) {
			return NewChi(p[0])
		},
	},
	KindMaxwell: {
		name:   "Maxwell",
		params: []string{"a"},
		build: func(p []data.Array) (Distribution, error) {
			return NewMaxwell(p[0])
		},
	},
}

// String returns the name of k.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arity returns the number of parameters of k, or -1 for an unknown
// Kind.
func (k Kind) Arity() int {
	if info, ok := kinds[k]; ok {
		return len(info.params)
	}
	return -1
}

// ParamNames returns the names of the parameters of k in order.
func (k Kind) ParamNames() []string {
	return append([]string(nil), kinds[k].params...)
}

// New constructs the distribution of the given kind from params,
// given in the order of ParamNames.
//
// It returns an error wrapping ErrUnknownKind for an undefined kind,
// ErrArity if the number of parameters is wrong and ErrShape if they cannot be broadcast together. No
// parameter values are validated here; domain checks happen when the
// distribution is evaluated.
func New(kind Kind, params ...data.Array) (Distribution, error) {
	info, ok := kinds[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "cannot create %v", kind)
	}
	if len(params) != len(info.params) {
		return nil, errors.Wrapf(ErrArity, "%s expects %d parameters (%s), got %d",
			info.name, len(info.params), strings.Join(info.params, ", "), len(params))
	}

	return info.build(params)
}

// LogProb evaluates the log-density of the distribution of the given
// kind at value.
func LogProb(kind Kind, value data.Array, params ...data.Array) (data.Array, error) {
	d, err := New(kind, params...)
	if err != nil {
		return data.Array{}, err
	}
	return d.LogProb(value)
}

// LogCDF evaluates the log-CDF of the distribution of the given kind
// at value.
func LogCDF(kind Kind, value data.Array, params ...data.Array) (data.Array, error) {
	d, err := New(kind, params...)
	if err != nil {
		return data.Array{}, err
	}
	return d.LogCDF(value)
}

// Moment returns the moment of the distribution of the given kind,
// broadcast to shape unless shape is nil.
func Moment(kind Kind, shape data.Shape, params ...data.Array) (data.Array, error) {
	d, err := New(kind, params...)
	if err != nil {
		return data.Array{}, err
	}
	return d.Moment(shape)
}

// Sample draws variates of the distribution of the given kind from
// src.
func Sample(kind Kind, src rand.Source, shape data.Shape, params ...data.Array) (data.Array, error) {
	d, err := New(kind, params...)
	if err != nil {
		return data.Array{}, err
	}
	return d.Sample(src, shape)
}
