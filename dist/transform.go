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
	"math"

	"github.com/fentec-project/godist/data"
	"github.com/fentec-project/godist/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Transform is a monotonically increasing, element-wise bijection
// y = Forward(x) from the support of a base distribution onto the
// support of a derived one.
type Transform interface {
	// Params returns the parameters of the transform, if any.
	Params() []data.Array
	// Check validates the parameters of the transform broadcast to
	// shape, or in their own shape when shape is nil.
	Check(shape data.Shape) error
	Forward(x data.Array) (data.Array, error)
	Backward(y data.Array) (data.Array, error)
	// LogJacDet returns log |dBackward(y)/dy|.
	LogJacDet(y data.Array) (data.Array, error)
	// Support reports where y lies in the image of Forward.
	Support(y data.Array) data.Cond
}

// sqrtLogProber is implemented by base distributions that evaluate
// the log-density of the square root of their variate directly.
// Transformed uses it for Sqrt, where the change of variables adds
// infinities of opposite sign at the support edge.
type sqrtLogProber interface {
	sqrtLogProb(y data.Array) (data.Array, error)
}

// Transformed is the distribution of Forward(X) for X following Base.
// It holds no formulas of its own: sampling applies Forward to draws
// of Base, and densities follow from Base by a change of variables.
type Transformed struct {
	name   string
	params []data.Array
	base   Distribution
	t      Transform
}

// NewTransformed returns the distribution of t.Forward(X) for X
// following base. The params are reported by Params and are the
// parameters the derived distribution is constructed from.
//
// It returns an error if the parameters of base and t cannot be
// broadcast together.
func NewTransformed(name string, params []data.Array, base Distribution, t Transform) (*Transformed, error) {
	if err := checkShapes(append(base.Params(), t.Params()...)...); err != nil {
		return nil, errors.Wrapf(err, "cannot create %s distribution", name)
	}

	return &Transformed{
		name:   name,
		params: params,
		base:   base,
		t:      t,
	}, nil
}

// Name returns the name the distribution was created with.
func (d *Transformed) Name() string {
	return d.name
}

// Params returns the parameters the distribution was created from.
func (d *Transformed) Params() []data.Array {
	return append([]data.Array(nil), d.params...)
}

// Base returns the wrapped distribution.
func (d *Transformed) Base() Distribution {
	return d.base
}

// Transform returns the transform applied to the base distribution.
func (d *Transformed) Transform() Transform {
	return d.t
}

// Sample resolves the sample shape, validates the transform against
// it and only then draws from the base distribution with the same
// src, applying Forward to the draws.
func (d *Transformed) Sample(src rand.Source, shape data.Shape) (data.Array, error) {
	out, err := sample.ResolveShape(shape, append(d.base.Params(), d.t.Params()...)...)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "error while sampling")
	}
	if err := d.t.Check(out); err != nil {
		return data.Array{}, err
	}

	x, err := d.base.Sample(src, out)
	if err != nil {
		return data.Array{}, err
	}

	return d.t.Forward(x)
}

// LogProb computes log p(Backward(y)) + log |dBackward(y)/dy|, and
// negative infinity outside of the image of the transform. For Sqrt
// over a base that folds the Jacobian into its own density, the
// folded density is used instead.
func (d *Transformed) LogProb(value data.Array) (data.Array, error) {
	if _, ok := d.t.(Sqrt); ok {
		if b, ok := d.base.(sqrtLogProber); ok {
			return b.sqrtLogProb(value)
		}
	}

	x, err := d.t.Backward(value)
	if err != nil {
		return data.Array{}, err
	}
	lp, domErr := d.base.LogProb(x)
	if domErr != nil && !IsDomainError(domErr) {
		return data.Array{}, domErr
	}
	jac, err := d.t.LogJacDet(value)
	if err != nil {
		return data.Array{}, err
	}
	sum, err := data.Add(lp, jac)
	if err != nil {
		return data.Array{}, err
	}
	res, err := data.OrNegInf(d.t.Support(value), sum)
	if err != nil {
		return data.Array{}, err
	}

	return res, d.checkTransform(domErr)
}

// LogCDF computes log F(Backward(y)), and negative infinity outside
// of the image of the transform.
func (d *Transformed) LogCDF(value data.Array) (data.Array, error) {
	x, err := d.t.Backward(value)
	if err != nil {
		return data.Array{}, err
	}
	lc, domErr := d.base.LogCDF(x)
	if domErr != nil && !IsDomainError(domErr) {
		return data.Array{}, domErr
	}
	res, err := data.OrNegInf(d.t.Support(value), lc)
	if err != nil {
		return data.Array{}, err
	}

	return res, d.checkTransform(domErr)
}

// Moment maps the moment of the base distribution through Forward.
func (d *Transformed) Moment(shape data.Shape) (data.Array, error) {
	m, err := d.base.Moment(shape)
	if err != nil {
		return data.Array{}, err
	}
	res, err := d.t.Forward(m)
	if err != nil {
		return data.Array{}, err
	}

	return fill(res, shape)
}

// checkTransform returns the first domain violation of the base and
// the transform.
func (d *Transformed) checkTransform(baseErr error) error {
	if baseErr != nil {
		return baseErr
	}

	return d.t.Check(nil)
}

// Sqrt is the transform y = sqrt(x) on x >= 0.
type Sqrt struct{}

// Params returns nil, Sqrt has no parameters.
func (Sqrt) Params() []data.Array {
	return nil
}

// Check always succeeds.
func (Sqrt) Check(data.Shape) error {
	return nil
}

// Forward returns sqrt(x).
func (Sqrt) Forward(x data.Array) (data.Array, error) {
	return x.Apply(math.Sqrt), nil
}

// Backward returns y^2.
func (Sqrt) Backward(y data.Array) (data.Array, error) {
	return y.Apply(func(v float64) float64 { return v * v }), nil
}

// LogJacDet returns log(2y).
func (Sqrt) LogJacDet(y data.Array) (data.Array, error) {
	return y.Apply(func(v float64) float64 { return math.Log(2 * v) }), nil
}

// Support holds for y >= 0.
func (Sqrt) Support(y data.Array) data.Cond {
	return y.Test(func(v float64) bool { return v >= 0 })
}

// Scale is the transform y = A*x with A > 0.
type Scale struct {
	A data.Array
}

// Params returns A.
func (s Scale) Params() []data.Array {
	return []data.Array{s.A}
}

// Check broadcasts A to shape and checks a > 0.
func (s Scale) Check(shape data.Shape) error {
	a := s.A
	if shape != nil {
		var err error
		if a, err = a.BroadcastTo(shape); err != nil {
			return errors.Wrap(err, "cannot check scale")
		}
	}
	_, err := CheckParameters(a, "a > 0", a.Test(positive))

	return err
}

// Forward returns A*x.
func (s Scale) Forward(x data.Array) (data.Array, error) {
	return data.Mul(x, s.A)
}

// Backward returns y/A.
func (s Scale) Backward(y data.Array) (data.Array, error) {
	return data.Map(func(v []float64) float64 {
		return v[0] / v[1]
	}, y, s.A)
}

// LogJacDet returns -log(A), broadcast against y.
func (s Scale) LogJacDet(y data.Array) (data.Array, error) {
	return data.Map(func(v []float64) float64 {
		return -math.Log(v[1])
	}, y, s.A)
}

// Support holds everywhere.
func (s Scale) Support(y data.Array) data.Cond {
	return y.Test(func(float64) bool { return true })
}

// Log is the transform y = log(x) from the positive reals onto the
// real line. It maps positive variables to the unconstrained space
// used by gradient based inference.
type Log struct{}

// Params returns nil, Log has no parameters.
func (Log) Params() []data.Array {
	return nil
}

// Check always succeeds.
func (Log) Check(data.Shape) error {
	return nil
}

// Forward returns log(x).
func (Log) Forward(x data.Array) (data.Array, error) {
	return x.Apply(math.Log), nil
}

// Backward returns exp(y).
func (Log) Backward(y data.Array) (data.Array, error) {
	return y.Apply(math.Exp), nil
}

// LogJacDet returns y.
func (Log) LogJacDet(y data.Array) (data.Array, error) {
	return y.Copy(), nil
}

// Support holds for every y except NaN.
func (Log) Support(y data.Array) data.Cond {
	return y.Test(func(v float64) bool { return !math.IsNaN(v) })
}
