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

package dist_test

import (
	"math"
	"testing"

	"github.com/fentec-project/godist/data"
	"github.com/fentec-project/godist/dist"
	"github.com/fentec-project/godist/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func newGenNorm(t *testing.T, mu, alpha, beta float64) *dist.GeneralizedNormal {
	g, err := dist.NewGeneralizedNormal(data.Scalar(mu), data.Scalar(alpha), data.Scalar(beta))
	require.NoError(t, err)
	return g
}

func TestGeneralizedNormal_Normalized(t *testing.T) {
	var tests = []struct {
		mu    float64
		alpha float64
		beta  float64
	}{
		{mu: 0, alpha: 1, beta: 0.8},
		{mu: -2, alpha: 0.5, beta: 1},
		{mu: 1, alpha: 2, beta: 2},
		{mu: 3, alpha: 1.5, beta: 4},
	}

	for _, test := range tests {
		g := newGenNorm(t, test.mu, test.alpha, test.beta)
		pdf := func(x float64) float64 {
			lp, err := g.LogProb(data.Scalar(x))
			require.NoError(t, err)
			return math.Exp(lp.At(0))
		}

		// beyond |z|^beta = 60 the tails are negligible
		width := test.alpha * math.Pow(60, 1/test.beta)
		total := quad.Fixed(pdf, test.mu-width, test.mu, 2000, nil, 0) +
			quad.Fixed(pdf, test.mu, test.mu+width, 2000, nil, 0)
		assert.InDelta(t, 1, total, 1e-4, "beta = %v", test.beta)
	}
}

func TestGeneralizedNormal_SpecialCases(t *testing.T) {
	x := linspace(-6, 8, 29)

	// beta = 2 is a normal distribution with sigma = alpha/sqrt(2)
	normal := distuv.Normal{Mu: 1, Sigma: 2 / math.Sqrt2}
	g := newGenNorm(t, 1, 2, 2)
	lp, err := g.LogProb(x)
	require.NoError(t, err)
	lc, err := g.LogCDF(x)
	require.NoError(t, err)
	for i := 0; i < x.Size(); i++ {
		assert.InDelta(t, normal.LogProb(x.At(i)), lp.At(i), 1e-10)
		assert.InDelta(t, math.Log(normal.CDF(x.At(i))), lc.At(i), 1e-7)
	}

	// beta = 1 is a Laplace distribution with scale alpha
	laplace := distuv.Laplace{Mu: 1, Scale: 2}
	g = newGenNorm(t, 1, 2, 1)
	lp, err = g.LogProb(x)
	require.NoError(t, err)
	lc, err = g.LogCDF(x)
	require.NoError(t, err)
	for i := 0; i < x.Size(); i++ {
		assert.InDelta(t, laplace.LogProb(x.At(i)), lp.At(i), 1e-10)
		assert.InDelta(t, math.Log(laplace.CDF(x.At(i))), lc.At(i), 1e-7)
	}
}

func TestGeneralizedNormal_LogCDF(t *testing.T) {
	g := newGenNorm(t, 0, 1, 3)

	lc, err := g.LogCDF(data.NewVector([]float64{0, math.Inf(1), math.Inf(-1)}))
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.5), lc.At(0), 1e-12)
	assert.Equal(t, 0.0, lc.At(1))
	assert.True(t, math.IsInf(lc.At(2), -1))

	// symmetric around mu
	both, err := g.LogCDF(data.NewVector([]float64{-0.7, 0.7}))
	require.NoError(t, err)
	assert.InDelta(t, 1, math.Exp(both.At(0))+math.Exp(both.At(1)), 1e-12)

	// far in the lower tail the CDF underflows before the logarithm
	normal := newGenNorm(t, 0, 1, 2)
	tail, err := normal.LogCDF(data.Scalar(-40))
	require.NoError(t, err)
	assert.True(t, math.IsInf(tail.At(0), -1))
}

func TestGeneralizedNormal_DomainViolation(t *testing.T) {
	x := data.NewVector([]float64{-1, 0, 1})

	for _, p := range [][2]float64{{0, 1}, {-1, 1}, {1, 0}, {1, -2}} {
		g := newGenNorm(t, 0, p[0], p[1])

		lp, err := g.LogProb(x)
		assert.True(t, dist.IsDomainError(err), "alpha = %v, beta = %v", p[0], p[1])
		assert.Contains(t, err.Error(), "alpha > 0, beta > 0")
		assert.Equal(t, 3, lp.Size())

		_, err = g.LogCDF(x)
		assert.True(t, dist.IsDomainError(err))

		_, err = g.Sample(sample.NewSource(1), nil)
		assert.True(t, dist.IsDomainError(err))
	}
}

func TestGeneralizedNormal_Moment(t *testing.T) {
	alpha := data.NewVector([]float64{1, 2, 3})
	g, err := dist.NewGeneralizedNormal(data.Scalar(-1.5), alpha, data.Scalar(2))
	require.NoError(t, err)

	m, err := g.Moment(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, -1.5, -1.5}, m.Values())

	m, err = g.Moment(data.Shape{4, 3})
	require.NoError(t, err)
	assert.True(t, data.Shape{4, 3}.Equal(m.Shape()))
	for _, v := range m.Values() {
		assert.Equal(t, -1.5, v)
	}
}

func TestGeneralizedNormal_Sample(t *testing.T) {
	// variance is alpha^2 Gamma(3/beta)/Gamma(1/beta)
	g := newGenNorm(t, 2, 1.5, 4)
	draws, err := g.Sample(sample.NewKeyedSource(&[32]byte{1}), data.Shape{20000})
	require.NoError(t, err)

	me, v := stat.MeanVariance(draws.Values(), nil)
	expectVar := 1.5 * 1.5 * math.Gamma(0.75) / math.Gamma(0.25)
	assert.InDelta(t, 2, me, 0.03)
	assert.InDelta(t, expectVar, v, 0.05*expectVar)
}
