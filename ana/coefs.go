// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Coefs holds the coefficients of a Williams series keyed by the order n
//  Note: A[i] and B[i] correspond to Orders[i]; i.e. the container is an ordered map n => (a_n, b_n)
type Coefs struct {
	Orders []int     `json:"orders" yaml:"orders"` // orders n. ex: [-1, 0, 1, 2, 3]
	A      []float64 `json:"a"      yaml:"a"`      // [norders] mode-I coefficients a_n
	B      []float64 `json:"b"      yaml:"b"`      // [norders] mode-II coefficients b_n
}

// NewCoefs returns a set of coefficients for the given orders with all values undefined (NaN)
func NewCoefs(orders []int) (o Coefs) {
	o.Orders = append([]int{}, orders...)
	o.A = make([]float64, len(orders))
	o.B = make([]float64, len(orders))
	for i := range orders {
		o.A[i] = math.NaN()
		o.B[i] = math.NaN()
	}
	return
}

// SplitCoefs splits a vector of coefficients x = {a_n..., b_n...} into a_n and b_n
func SplitCoefs(orders []int, x []float64) (o Coefs, err error) {
	n := len(orders)
	if len(x) != 2*n {
		return o, chk.Err("number of coefficients (%d) must be twice the number of orders (%d)", len(x), n)
	}
	o.Orders = append([]int{}, orders...)
	o.A = append([]float64{}, x[:n]...)
	o.B = append([]float64{}, x[n:]...)
	return
}

// Index returns the position of order n or -1 if n is not available
func (o Coefs) Index(n int) int {
	for i, m := range o.Orders {
		if m == n {
			return i
		}
	}
	return -1
}

// Get returns a_n and b_n
func (o Coefs) Get(n int) (a, b float64, err error) {
	i := o.Index(n)
	if i < 0 {
		return math.NaN(), math.NaN(), chk.Err("Williams order n=%d is not available in %v", n, o.Orders)
	}
	return o.A[i], o.B[i], nil
}

// Vector returns {a_n..., b_n...}
func (o Coefs) Vector() (x []float64) {
	x = make([]float64, 0, len(o.A)+len(o.B))
	x = append(x, o.A...)
	return append(x, o.B...)
}

// Clone returns a deep copy
func (o Coefs) Clone() Coefs {
	return Coefs{
		Orders: append([]int{}, o.Orders...),
		A:      append([]float64{}, o.A...),
		B:      append([]float64{}, o.B...),
	}
}
