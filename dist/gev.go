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
)

const gevDomainMsg = "sigma > 0 or -1 < xi < 1"

// GEV is the generalized extreme value distribution with location mu,
// scale sigma > 0 and shape -1 < xi < 1. Its CDF is
//
//	G(x) = exp(-(1 + xi*z)^(-1/xi)),  z = (x - mu)/sigma
//
// on the support 1 + xi*z > 0, and exp(-exp(-z)) in the limit xi = 0.
//
// The shape follows Coles (2001), An Introduction to the Statistical
// Modeling of Extreme Values, which differs from scipy in its sign.
type GEV struct {
	mu    data.Array
	sigma data.Array
	xi    data.Array
}

// NewGEV returns an instance of the GEV distribution. When scipy is
// true, xi is read in the scipy convention and negated once here.
//
// It returns an error if the parameters cannot be broadcast together.
func NewGEV(mu, sigma, xi data.Array, scipy bool) (*GEV, error) {
	if scipy {
		xi = xi.MulScalar(-1)
	}
	if err := checkShapes(mu, sigma, xi); err != nil {
		return nil, errors.Wrap(err, "cannot create GEV distribution")
	}

	return &GEV{
		mu:    mu,
		sigma: sigma,
		xi:    xi,
	}, nil
}

// StandardGEV returns the GEV distribution with mu = 0, sigma = 1 and
// xi = 0, i.e. the standard Gumbel distribution.
func StandardGEV() *GEV {
	return &GEV{
		mu:    data.Scalar(0),
		sigma: data.Scalar(1),
		xi:    data.Scalar(0),
	}
}

// Name returns "Generalized Extreme Value".
func (g *GEV) Name() string {
	return "Generalized Extreme Value"
}

// Params returns mu, sigma and xi, with xi in the Coles convention.
func (g *GEV) Params() []data.Array {
	return []data.Array{g.mu, g.sigma, g.xi}
}

func (g *GEV) check(result data.Array) (data.Array, error) {
	return CheckParameters(result, gevDomainMsg,
		g.sigma.Test(positive),
		g.xi.Test(func(x float64) bool { return x > -1 && x < 1 }),
	)
}

// LogProb computes the log-density at value.
func (g *GEV) LogProb(value data.Array) (data.Array, error) {
	lp, err := data.Map(func(v []float64) float64 {
		return gevLogProb(v[0], v[1], v[2], v[3])
	}, value, g.mu, g.sigma, g.xi)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot evaluate GEV log-density")
	}

	return g.check(lp)
}

// LogCDF computes the log of the cumulative distribution function at
// value.
func (g *GEV) LogCDF(value data.Array) (data.Array, error) {
	lc, err := data.Map(func(v []float64) float64 {
		return gevLogCDF(v[0], v[1], v[2], v[3])
	}, value, g.mu, g.sigma, g.xi)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot evaluate GEV log-CDF")
	}

	return g.check(lc)
}

// Moment returns the mode of the distribution. The mean is not used
// since it is infinite for xi >= 1.
func (g *GEV) Moment(shape data.Shape) (data.Array, error) {
	mode, err := data.Map(func(v []float64) float64 {
		mu, sigma, xi := v[0], v[1], v[2]
		return gofe.Select(gofe.IsClose(xi, 0),
			mu,
			mu+sigma*(math.Pow(1+xi, -xi)-1)/xi)
	}, g.mu, g.sigma, g.xi)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot compute GEV mode")
	}

	return fill(mode, shape)
}

// Sample draws GEV variates. The parameters are checked before any
// value is drawn from src.
func (g *GEV) Sample(src rand.Source, shape data.Shape) (data.Array, error) {
	if _, err := g.check(data.Scalar(0)); err != nil {
		return data.Array{}, err
	}

	// the generator uses the scipy sign of the shape
	return sample.Draw(src, shape, func(rnd *rand.Rand, p []float64) float64 {
		return sample.GenExtreme(rnd, p[0], p[1], -p[2])
	}, g.mu, g.sigma, g.xi)
}

// gevLogProb evaluates both branches before selecting one, and
// returns negative infinity outside of the support for either branch.
func gevLogProb(x, mu, sigma, xi float64) float64 {
	z := (x - mu) / sigma
	t := 1 + xi*z

	gumbel := -math.Log(sigma) - z - math.Exp(-z)
	general := -math.Log(sigma) - ((xi+1)/xi)*math.Log1p(xi*z) - math.Exp(-math.Log1p(xi*z)/xi)
	lp := gofe.Select(gofe.IsClose(xi, 0), gumbel, general)

	return gofe.Select(t > 0, lp, math.Inf(-1))
}

func gevLogCDF(x, mu, sigma, xi float64) float64 {
	z := (x - mu) / sigma
	t := 1 + xi*z

	lc := gofe.Select(gofe.IsClose(xi, 0),
		-math.Exp(-z),
		-math.Exp(-math.Log1p(xi*z)/xi))

	return gofe.Select(t > 0, lc, math.Inf(-1))
}
