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

import "errors"

// Error kinds returned at call boundaries. Each is a sentinel tested
// with errors.Is; call sites wrap them with fmt.Errorf("...: %w", ...)
// to add position/value context.
var (
	// ErrInvalidOperationCode is returned constructing an Operation
	// from an unknown letter or numeric code.
	ErrInvalidOperationCode = errors.New("invalid operation code")

	// ErrInvalidAnchors is returned when Alignment construction
	// violates the anchor invariants (out-of-order positions,
	// op/delta mismatch, missing or misplaced START, two consecutive
	// anchors sharing a non-START op).
	ErrInvalidAnchors = errors.New("invalid anchors")

	// ErrBandExcludesEndpoints is returned by a banded global call
	// whose (0,0) or (m,n) cell falls outside the requested band.
	ErrBandExcludesEndpoints = errors.New("band excludes endpoints")

	// ErrLengthMismatch is returned by Hamming distance when the two
	// sequences have different lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrCigarParseError is returned by Parse on a malformed CIGAR
	// string.
	ErrCigarParseError = errors.New("cigar parse error")

	// ErrUnknownRegime is returned by PairAlign for a regime value
	// outside the closed set in Regime's const block.
	ErrUnknownRegime = errors.New("unknown alignment regime")
)
