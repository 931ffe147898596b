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
	"gonum.org/v1/gonum/mathext"
)

const gennormDomainMsg = "alpha > 0, beta > 0"

// GeneralizedNormal is the generalized normal distribution with
// location mu, scale alpha > 0 and shape beta > 0, with density
//
//	f(x) = beta/(2*alpha*Gamma(1/beta)) * exp(-|(x - mu)/alpha|^beta).
//
// beta = 2 gives a normal distribution with standard deviation
// alpha/sqrt(2), beta = 1 the Laplace distribution with scale alpha.
// The parametrization is the one of scipy.stats.gennorm.
type GeneralizedNormal struct {
	mu    data.Array
	alpha data.Array
	beta  data.Array
}

// NewGeneralizedNormal returns an instance of the GeneralizedNormal
// distribution.
//
// It returns an error if the parameters cannot be broadcast together.
func NewGeneralizedNormal(mu, alpha, beta data.Array) (*GeneralizedNormal, error) {
	if err := checkShapes(mu, alpha, beta); err != nil {
		return nil, errors.Wrap(err, "cannot create generalized normal distribution")
	}

	return &GeneralizedNormal{
		mu:    mu,
		alpha: alpha,
		beta:  beta,
	}, nil
}

// Name returns "Generalized Normal".
func (g *GeneralizedNormal) Name() string {
	return "Generalized Normal"
}

// Params returns mu, alpha and beta.
func (g *GeneralizedNormal) Params() []data.Array {
	return []data.Array{g.mu, g.alpha, g.beta}
}

func (g *GeneralizedNormal) check(result data.Array) (data.Array, error) {
	return CheckParameters(result, gennormDomainMsg,
		g.alpha.Test(positive),
		g.beta.Test(positive),
	)
}

// LogProb computes the log-density at value.
func (g *GeneralizedNormal) LogProb(value data.Array) (data.Array, error) {
	lp, err := data.Map(func(v []float64) float64 {
		x, mu, alpha, beta := v[0], v[1], v[2], v[3]
		z := (x - mu) / alpha
		lg, _ := math.Lgamma(1 / beta)
		return math.Log(0.5*beta) - math.Log(alpha) - lg - math.Pow(math.Abs(z), beta)
	}, value, g.mu, g.alpha, g.beta)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot evaluate generalized normal log-density")
	}

	return g.check(lp)
}

// LogCDF computes the log of the cumulative distribution function
//
//	F(x) = 1/2 + sign(x - mu)/2 * P(1/beta, |(x - mu)/alpha|^beta)
//
// where P is the regularized lower incomplete gamma function.
//
// The logarithm is taken of F itself, so far in the lower tail F
// underflows to 0 and the result is negative infinity.
func (g *GeneralizedNormal) LogCDF(value data.Array) (data.Array, error) {
	lc, err := data.Map(func(v []float64) float64 {
		return gennormLogCDF(v[0], v[1], v[2], v[3])
	}, value, g.mu, g.alpha, g.beta)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot evaluate generalized normal log-CDF")
	}

	return g.check(lc)
}

// Moment returns the mean, which equals mu for every beta.
func (g *GeneralizedNormal) Moment(shape data.Shape) (data.Array, error) {
	mean, err := data.Map(func(v []float64) float64 {
		return v[0]
	}, g.mu, g.alpha, g.beta)
	if err != nil {
		return data.Array{}, errors.Wrap(err, "cannot compute generalized normal mean")
	}

	return fill(mean, shape)
}

// Sample draws generalized normal variates. The parameters are
// checked before any value is drawn from src.
func (g *GeneralizedNormal) Sample(src rand.Source, shape data.Shape) (data.Array, error) {
	if _, err := g.check(data.Scalar(0)); err != nil {
		return data.Array{}, err
	}

	return sample.Draw(src, shape, func(rnd *rand.Rand, p []float64) float64 {
		return sample.GenNorm(rnd, p[0], p[1], p[2])
	}, g.mu, g.alpha, g.beta)
}

func gennormLogCDF(x, mu, alpha, beta float64) float64 {
	// the incomplete gamma function panics outside of its domain
	if !(alpha > 0 && beta > 0) || math.IsNaN(x) || math.IsNaN(mu) {
		return math.NaN()
	}

	z := math.Abs((x - mu) / alpha)
	p := 1.0
	if !math.IsInf(z, 0) {
		p = mathext.GammaIncReg(1/beta, math.Pow(z, beta))
	}
	cdf := 0.5 + 0.5*gofe.Sign(x-mu)*p

	return math.Log(cdf)
}
