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

import (
	"fmt"
	"strconv"
)

// Emit encodes the alignment as a CIGAR string: each run after START is
// written as "<length><letter>" using the operation letters of the
// Operation enum. START itself has no letter and is omitted.
func Emit(a *Alignment) (string, error) {
	anchors := a.Anchors()
	var buf []byte
	prev := anchors[0]
	for _, cur := range anchors[1:] {
		ds := cur.SeqPos - prev.SeqPos
		dr := cur.RefPos - prev.RefPos
		length := ds
		if dr > length {
			length = dr
		}
		letter, err := cur.Op.Letter()
		if err != nil {
			return "", err
		}
		buf = append(buf, []byte(strconv.Itoa(length))...)
		buf = append(buf, letter)
		prev = cur
	}
	return string(buf), nil
}

// Parse reconstructs an Alignment from a CIGAR string and the
// alignment's 1-based starting offsets, converting them to the
// 0-based offsets the anchor model uses. Parsing is strict: an
// unrecognized letter or a malformed run fails with
// ErrCigarParseError.
func Parse(cigar string, seqStart1, refStart1 int) (*Alignment, error) {
	seqStart, refStart := seqStart1-1, refStart1-1
	anchors := []AlignmentAnchor{{SeqPos: seqStart, RefPos: refStart, Op: START}}
	seqPos, refPos := seqStart, refStart

	i := 0
	for i < len(cigar) {
		start := i
		for i < len(cigar) && cigar[i] >= '0' && cigar[i] <= '9' {
			i++
		}
		if i == start {
			return nil, fmt.Errorf("pairalign: %w: expected a run length at offset %d in %q", ErrCigarParseError, start, cigar)
		}
		n, err := strconv.Atoi(cigar[start:i])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("pairalign: %w: invalid run length %q", ErrCigarParseError, cigar[start:i])
		}
		if i == len(cigar) {
			return nil, fmt.Errorf("pairalign: %w: run length %d at end of string has no operation letter", ErrCigarParseError, n)
		}
		op, err := OperationFromLetter(cigar[i])
		if err != nil {
			return nil, fmt.Errorf("pairalign: %w: %v", ErrCigarParseError, err)
		}
		i++

		var ds, dr int
		switch {
		case IsMatchOp(op):
			ds, dr = n, n
		case IsInsertOp(op):
			ds, dr = n, 0
		case IsDeleteOp(op):
			dr = n
		case op == PAD || op == HARD_CLIP:
			// consumes neither sequence.
		default:
			return nil, fmt.Errorf("pairalign: %w: operation %v cannot appear in a CIGAR run", ErrCigarParseError, op)
		}
		seqPos += ds
		refPos += dr
		anchors = append(anchors, AlignmentAnchor{SeqPos: seqPos, RefPos: refPos, Op: op})
	}

	aln, err := NewAlignment(anchors)
	if err != nil {
		return nil, fmt.Errorf("pairalign: %w: %v", ErrCigarParseError, err)
	}
	return aln, nil
}
