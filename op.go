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

import "fmt"

// Operation is a tagged enumeration over the alignment operations an
// Alignment can be built from.
type Operation byte

const (
	INVALID Operation = iota
	START             // no letter; only valid as A[0].Op
	MATCH             // generic match/mismatch, letter 'M'
	SEQ_MATCH         // sequence match, letter '='
	SEQ_MISMATCH      // sequence mismatch, letter 'X'
	INSERT            // consumes query only, letter 'I'
	DELETE            // consumes reference only, letter 'D'
	SKIP              // reference skip, letter 'N'
	SOFT_CLIP         // letter 'S'
	HARD_CLIP         // letter 'H'
	PAD               // letter 'P'
)

// opLetters is the bijection between Operation and its CIGAR letter.
// START has no letter and is never looked up here.
var opLetters = [...]byte{
	INVALID:      0,
	START:        0,
	MATCH:        'M',
	SEQ_MATCH:    '=',
	SEQ_MISMATCH: 'X',
	INSERT:       'I',
	DELETE:       'D',
	SKIP:         'N',
	SOFT_CLIP:    'S',
	HARD_CLIP:    'H',
	PAD:          'P',
}

// letterToOp is a 256-entry lookup table for strict, fast CIGAR parsing,
// the same shape as a SAM/BAM CIGAR-op table.
var letterToOp [256]Operation

func init() {
	for i := range letterToOp {
		letterToOp[i] = INVALID
	}
	for op, b := range opLetters {
		if b != 0 {
			letterToOp[b] = Operation(op)
		}
	}
}

// Letter returns the CIGAR letter for op, or an error if op has none
// (INVALID and START have no letter).
func (op Operation) Letter() (byte, error) {
	if int(op) >= len(opLetters) {
		return 0, fmt.Errorf("pairalign: %w: operation code %d", ErrInvalidOperationCode, op)
	}
	b := opLetters[op]
	if b == 0 {
		return 0, fmt.Errorf("pairalign: %w: operation %v has no CIGAR letter", ErrInvalidOperationCode, op)
	}
	return b, nil
}

// OperationFromLetter parses a single CIGAR letter into an Operation.
func OperationFromLetter(b byte) (Operation, error) {
	op := letterToOp[b]
	if op == INVALID {
		return INVALID, fmt.Errorf("pairalign: %w: unknown CIGAR letter %q", ErrInvalidOperationCode, b)
	}
	return op, nil
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	switch op {
	case INVALID:
		return "INVALID"
	case START:
		return "START"
	default:
		if b, err := op.Letter(); err == nil {
			return string(b)
		}
		return "INVALID"
	}
}

// IsMatchOp reports whether op consumes one position of both sequences.
func IsMatchOp(op Operation) bool {
	return op == MATCH || op == SEQ_MATCH || op == SEQ_MISMATCH
}

// IsInsertOp reports whether op consumes the query only.
func IsInsertOp(op Operation) bool {
	return op == INSERT || op == SOFT_CLIP
}

// IsDeleteOp reports whether op consumes the reference only.
func IsDeleteOp(op Operation) bool {
	return op == DELETE || op == SKIP
}
