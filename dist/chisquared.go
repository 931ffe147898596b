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
	gofe "github.com/fentec-project/godist/internal"
	"github.com/fentec-project/godist/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ChiSquared is the chi-squared distribution with nu > 0 degrees of
// freedom. It is the primitive Chi is built from.
type ChiSquared struct {
	nu data.Array
}

// NewChiSquared returns an instance of the ChiSquared distribution.
func NewChiSquared(nu data.Array) *ChiSquared {
	return &ChiSquared{nu: nu}
}

// Name returns "Chi-Squared".
func (c *ChiSquared) Name() string {
	return "Chi-Squared"
}

// Params returns nu.
func (c *ChiSquared) Params() []data.Array {
	return []data.Array{c.nu}
}

func (c *ChiSquared) check(result data.Array) (data.Array, error) {
	return CheckParameters(result, "nu > 0", c.nu.Test(positive))
}

// LogProb computes the log-density at value. At x = 0 it is +Inf for
// nu < 2, -log(2) for nu = 2 and -Inf for nu > 2.
func (c *ChiSquared) LogProb(value data.Array) (data.Array, error) {
	lp, err := data.Map(func(v []float64) float64 {
		return chiSquaredLogProb(v[0], v[1])
	}, value, c.nu)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot evaluate chi-squared log-density")
	}

	return c.check(lp)
}

// sqrtLogProb computes the log-density of the square root of a
// chi-squared variate, the chi distribution, at value. It is the
// change of variables through Sqrt with the factor y^(nu-2) of the
// base density folded into the Jacobian 2y, so the support edge
// y = 0 stays well defined.
func (c *ChiSquared) sqrtLogProb(value data.Array) (data.Array, error) {
	lp, err := data.Map(func(v []float64) float64 {
		return chiLogProb(v[0], v[1])
	}, value, c.nu)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot evaluate chi log-density")
	}

	return c.check(lp)
}

func chiSquaredLogProb(x, nu float64) float64 {
	switch {
	case !(nu > 0) || math.IsNaN(x):
		return math.NaN()
	case x < 0 || math.IsInf(x, 1):
		return math.Inf(-1)
	case x == 0:
		lg, _ := math.Lgamma(nu / 2)
		return gofe.XLogY(nu/2-1, x) - nu/2*math.Ln2 - lg
	}
	return distuv.ChiSquared{K: nu}.LogProb(x)
}

func chiLogProb(y, nu float64) float64 {
	switch {
	case !(nu > 0) || math.IsNaN(y):
		return math.NaN()
	case y < 0 || math.IsInf(y, 1):
		return math.Inf(-1)
	}
	lg, _ := math.Lgamma(nu / 2)
	return gofe.XLogY(nu-1, y) - y*y/2 - (nu/2-1)*math.Ln2 - lg
}

// LogCDF computes the log of the cumulative distribution function at
// value.
func (c *ChiSquared) LogCDF(value data.Array) (data.Array, error) {
	lc, err := data.Map(func(v []float64) float64 {
		x, nu := v[0], v[1]
		switch {
		case !(nu > 0) || math.IsNaN(x):
			return math.NaN()
		case x <= 0:
			return math.Inf(-1)
		case math.IsInf(x, 1):
			return 0
		}
		return math.Log(distuv.ChiSquared{K: nu}.CDF(x))
	}, value, c.nu)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot evaluate chi-squared log-CDF")
	}

	return c.check(lc)
}

// Moment returns nu, the mean of the distribution.
func (c *ChiSquared) Moment(shape data.Shape) (data.Array, error) {
	return fill(c.nu, shape)
}

// Sample draws chi-squared variates. The parameters are checked
// before any value is drawn from src.
func (c *ChiSquared) Sample(src rand.Source, shape data.Shape) (data.Array, error) {
	if _, err := c.check(data.Scalar(0)); err != nil {
		return data.Array{}, err
	}

	return sample.Draw(src, shape, func(rnd *rand.Rand, p []float64) float64 {
		return sample.ChiSquared(rnd, p[0])
	}, c.nu)
}
