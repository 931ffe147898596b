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

package sample_test

import (
	"math"
	"testing"

	"github.com/fentec-project/godist/sample"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

type paramBounds struct {
	meanLow  float64
	meanHigh float64
	varLow   float64
	varHigh  float64
}

func testVariate(t *testing.T, gen func(rnd *rand.Rand) float64, expect paramBounds) {
	rnd := rand.New(sample.NewSource(2018))
	vec := make([]float64, 20000)
	for i := range vec {
		vec[i] = gen(rnd)
	}
	me, v := stat.MeanVariance(vec, nil)

	assert.True(t, me < expect.meanHigh, "mean value of the distribution is too big: %v", me)
	assert.True(t, me > expect.meanLow, "mean value of the distribution is too small: %v", me)
	assert.True(t, v < expect.varHigh, "variance of the distribution is too big: %v", v)
	assert.True(t, v > expect.varLow, "variance of the distribution is too small: %v", v)
}

func TestGenExtreme(t *testing.T) {
	const eulerGamma = 0.5772156649015329

	var tests = []struct {
		name   string
		loc    float64
		scale  float64
		c      float64
		expect paramBounds
	}{
		{
			// Gumbel: mean loc + scale*gamma, variance (pi*scale)^2/6
			name:  "Gumbel, scale 2",
			loc:   1,
			scale: 2,
			c:     0,
			expect: paramBounds{
				meanLow:  1 + 2*eulerGamma - 0.1,
				meanHigh: 1 + 2*eulerGamma + 0.1,
				varLow:   4 * math.Pi * math.Pi / 6 * 0.9,
				varHigh:  4 * math.Pi * math.Pi / 6 * 1.1,
			},
		},
		{
			// bounded upper tail: mean (1 - Gamma(1+c))/c,
			// variance (Gamma(1+2c) - Gamma(1+c)^2)/c^2
			name:  "Weibull type, c 0.5",
			loc:   0,
			scale: 1,
			c:     0.5,
			expect: paramBounds{
				meanLow:  (1-math.Gamma(1.5))/0.5 - 0.05,
				meanHigh: (1-math.Gamma(1.5))/0.5 + 0.05,
				varLow:   (math.Gamma(2) - math.Pow(math.Gamma(1.5), 2)) / 0.25 * 0.9,
				varHigh:  (math.Gamma(2) - math.Pow(math.Gamma(1.5), 2)) / 0.25 * 1.1,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testVariate(t, func(rnd *rand.Rand) float64 {
				return sample.GenExtreme(rnd, test.loc, test.scale, test.c)
			}, test.expect)
		})
	}
}

func TestGenExtreme_UpperBound(t *testing.T) {
	rnd := rand.New(sample.NewSource(3))
	// c > 0 bounds the support from above by loc + scale/c
	for i := 0; i < 1000; i++ {
		assert.True(t, sample.GenExtreme(rnd, 1, 2, 0.5) <= 1+2/0.5)
	}
}

func TestGenNorm(t *testing.T) {
	var tests = []struct {
		name   string
		loc    float64
		alpha  float64
		beta   float64
		expect paramBounds
	}{
		{
			// normal with variance alpha^2/2
			name:  "Beta 2",
			loc:   3,
			alpha: 2,
			beta:  2,
			expect: paramBounds{
				meanLow:  2.95,
				meanHigh: 3.05,
				varLow:   1.9,
				varHigh:  2.1,
			},
		},
		{
			// Laplace with variance 2*alpha^2
			name:  "Beta 1",
			loc:   0,
			alpha: 1,
			beta:  1,
			expect: paramBounds{
				meanLow:  -0.1,
				meanHigh: 0.1,
				varLow:   1.8,
				varHigh:  2.2,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testVariate(t, func(rnd *rand.Rand) float64 {
				return sample.GenNorm(rnd, test.loc, test.alpha, test.beta)
			}, test.expect)
		})
	}
}

func TestChiSquared(t *testing.T) {
	testVariate(t, func(rnd *rand.Rand) float64 {
		return sample.ChiSquared(rnd, 4)
	}, paramBounds{
		meanLow:  3.85,
		meanHigh: 4.15,
		varLow:   7.2,
		varHigh:  8.8,
	})
}
