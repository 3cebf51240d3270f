// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package dpmath holds the small numeric helpers shared by every DP
// engine: a very negative sentinel standing in for -Inf over the score
// type, and tie-break-aware max/min helpers.
package dpmath

import "golang.org/x/exp/constraints"

// NegInf is a sentinel standing in for -Infinity for ordered numeric
// types used as DP cell scores. It is not the true minimum of the type
// so that NegInf-(penalty) cannot wrap around.
func NegInf[T constraints.Signed | constraints.Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		v := -1e18
		return T(v)
	default:
		v := -1 << 40
		return T(v)
	}
}

// Max2 returns the larger of a, b, preferring a on a tie (first
// argument wins): callers pass branches in priority order so ties
// resolve deterministically.
func Max2[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Max3 returns the largest of a, b, c, preferring a, then b, then c on
// ties.
func Max3[T constraints.Ordered](a, b, c T) T {
	return Max2(Max2(a, b), c)
}

// Min2 returns the smaller of a, b, preferring a on a tie.
func Min2[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Min3 returns the smallest of a, b, c, preferring a, then b, then c.
func Min3[T constraints.Ordered](a, b, c T) T {
	return Min2(Min2(a, b), c)
}
