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

// traceback origin codes, packed two bits per matrix into one byte per
// cell. Bits 0-1 hold the H origin, bits 2-3 hold the E origin, bits
// 4-5 hold the F origin.
const (
	hFromDiag byte = 0
	hFromE    byte = 1
	hFromF    byte = 2

	eFromOpen   byte = 0
	eFromExtend byte = 1

	fFromOpen   byte = 0
	fFromExtend byte = 1
)

func packTB(hOrigin, eOrigin, fOrigin byte) byte {
	return hOrigin | eOrigin<<2 | fOrigin<<4
}

func unpackH(tb byte) byte { return tb & 0x3 }
func unpackE(tb byte) byte { return (tb >> 2) & 0x1 }
func unpackF(tb byte) byte { return (tb >> 4) & 0x1 }

// tbMode is which of the three matrices the traceback walk is
// currently reading from.
type tbMode int

const (
	modeH tbMode = iota
	modeE
	modeF
)

// compressOpsToAlignment takes the forward (already correctly ordered,
// start-to-end) stream of single-position operations and the
// alignment's starting offsets, and groups consecutive identical ops
// into anchors.
func compressOpsToAlignment(ops []Operation, startSeq, startRef int) (*Alignment, error) {
	anchors := make([]AlignmentAnchor, 1, len(ops)+1)
	anchors[0] = AlignmentAnchor{SeqPos: startSeq, RefPos: startRef, Op: START}

	seqPos, refPos := startSeq, startRef
	var curOp Operation = INVALID
	for _, op := range ops {
		var ds, dr int
		switch {
		case IsMatchOp(op):
			ds, dr = 1, 1
		case IsInsertOp(op):
			ds, dr = 1, 0
		case IsDeleteOp(op):
			ds, dr = 0, 1
		}
		seqPos += ds
		refPos += dr
		if op == curOp {
			anchors[len(anchors)-1].SeqPos = seqPos
			anchors[len(anchors)-1].RefPos = refPos
		} else {
			anchors = append(anchors, AlignmentAnchor{SeqPos: seqPos, RefPos: refPos, Op: op})
			curOp = op
		}
	}
	return NewAlignment(anchors)
}

// reverseOps reverses ops in place, since traceback walks are
// generated end-to-start.
func reverseOps(ops []Operation) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}
