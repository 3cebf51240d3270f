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

package pairalign

import "sync"

// Buffer pools for the DP engines: repeated PairAlign calls reuse the
// same flat H/E/F and traceback arrays instead of churning the
// allocator on every call.

var poolFloats = sync.Pool{New: func() interface{} {
	s := make([]float64, 0, 1024)
	return &s
}}

var poolBytesSlice = sync.Pool{New: func() interface{} {
	s := make([]byte, 0, 1024)
	return &s
}}

// getFloats returns a []float64 of length n from the pool.
func getFloats(n int) []float64 {
	p := poolFloats.Get().(*[]float64)
	s := *p
	if cap(s) < n {
		s = make([]float64, n)
	} else {
		s = s[:n]
	}
	*p = s
	return s
}

func putFloats(s []float64) {
	p := &s
	poolFloats.Put(p)
}

// getBytes returns a []byte of length n from the pool.
func getBytes(n int) []byte {
	p := poolBytesSlice.Get().(*[]byte)
	s := *p
	if cap(s) < n {
		s = make([]byte, n)
	} else {
		s = s[:n]
	}
	*p = s
	return s
}

func putBytes(s []byte) {
	p := &s
	poolBytesSlice.Put(p)
}
