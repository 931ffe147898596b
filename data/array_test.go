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

package data_test

import (
	"math"
	"testing"

	"github.com/fentec-project/godist/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6}
	a, err := data.NewArray(data.Shape{2, 3}, vals)
	require.NoError(t, err)

	vals[0] = 100
	assert.Equal(t, 1.0, a.At(0), "array should not share caller values")
	assert.Equal(t, 6, a.Size())
	assert.True(t, data.Shape{2, 3}.Equal(a.Shape()))

	_, err = data.NewArray(data.Shape{2, 2}, []float64{1, 2, 3})
	assert.Error(t, err)

	doubled := a.MulScalar(2)
	assert.Equal(t, []float64{2, 4, 6, 8, 10, 12}, doubled.Values())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Values(), "MulScalar should not modify the receiver")

	sq := a.Apply(func(x float64) float64 { return x * x })
	assert.Equal(t, []float64{1, 4, 9, 16, 25, 36}, sq.Values())

	c := data.NewConstantArray(data.Shape{2}, 7)
	assert.Equal(t, []float64{7, 7}, c.Values())
}

func TestMap_Broadcast(t *testing.T) {
	col, err := data.NewArray(data.Shape{2, 1}, []float64{10, 20})
	require.NoError(t, err)
	row := data.NewVector([]float64{1, 2, 3})

	sum, err := data.Add(col, row)
	require.NoError(t, err)
	assert.True(t, data.Shape{2, 3}.Equal(sum.Shape()))
	assert.Equal(t, []float64{11, 12, 13, 21, 22, 23}, sum.Values())

	prod, err := data.Mul(row, data.Scalar(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, prod.Values())

	_, err = data.Add(row, data.NewVector([]float64{1, 2}))
	assert.Error(t, err)
}

func TestArray_BroadcastTo(t *testing.T) {
	a := data.NewVector([]float64{1, 2})

	b, err := a.BroadcastTo(data.Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2}, b.Values())

	_, err = a.BroadcastTo(data.Shape{3})
	assert.Error(t, err)

	// broadcasting must not shrink the array
	m := data.NewConstantArray(data.Shape{3, 2}, 1)
	_, err = m.BroadcastTo(data.Shape{2})
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	x := data.NewVector([]float64{-1, 0, 2})
	c := x.Test(func(v float64) bool { return v > 0 })
	assert.False(t, c.All())

	logs := x.Apply(math.Log)
	res, err := data.OrNegInf(c, logs)
	require.NoError(t, err)
	assert.Equal(t, []float64{math.Inf(-1), math.Inf(-1), math.Log(2)}, res.Values())

	res, err = data.Select(c, x, data.Scalar(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 2}, res.Values())

	both, err := c.And(data.NewCond(data.Shape{2, 1}, true))
	require.NoError(t, err)
	assert.True(t, data.Shape{2, 3}.Equal(both.Shape()))
	assert.False(t, both.At(0))
	assert.True(t, both.At(5))

	assert.True(t, data.NewCond(data.Shape{}, true).All())
}
