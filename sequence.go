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

// Sequence is the minimal interface the DP engines require of a, b.
// Positions are 1-based: At(1) is the first symbol. Symbols must be
// usable as keys into a SubstitutionMatrix.
type Sequence interface {
	At(i int) byte
	Len() int
}

// Bytes adapts a plain byte slice to Sequence.
type Bytes []byte

// At returns the 1-based i-th symbol.
func (b Bytes) At(i int) byte { return b[i-1] }

// Len returns the number of symbols.
func (b Bytes) Len() int { return len(b) }

// SubstitutionMatrix looks up the score or cost of aligning x against y.
type SubstitutionMatrix interface {
	At(x, y byte) float64
}
