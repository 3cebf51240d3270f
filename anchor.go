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

// AlignmentAnchor marks a boundary between two runs of identical
// operations in an Alignment. SeqPos and RefPos are cumulative consumed
// lengths of the query and the reference at this anchor; Op describes
// the run of operations ending at this anchor. The first anchor of an
// Alignment always carries START and records the alignment's starting
// 0-based offsets instead of a run.
type AlignmentAnchor struct {
	SeqPos int
	RefPos int
	Op     Operation
}

// Alignment is an ordered, validated sequence of anchors. It is
// immutable after construction; use NewAlignment or Parse to produce
// one.
type Alignment struct {
	anchors []AlignmentAnchor
}

// Anchors returns the alignment's anchors. The returned slice must not
// be mutated.
func (a *Alignment) Anchors() []AlignmentAnchor { return a.anchors }

// StartSeq and StartRef return the 0-based starting offsets recorded on
// the leading START anchor.
func (a *Alignment) StartSeq() int { return a.anchors[0].SeqPos }
func (a *Alignment) StartRef() int { return a.anchors[0].RefPos }

// NewAlignment validates anchors against the ordering, delta, and
// compression invariants and returns an immutable Alignment, or
// ErrInvalidAnchors.
func NewAlignment(anchors []AlignmentAnchor) (*Alignment, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("pairalign: %w: empty anchor list", ErrInvalidAnchors)
	}
	if anchors[0].Op != START {
		return nil, fmt.Errorf("pairalign: %w: first anchor must be START, got %v", ErrInvalidAnchors, anchors[0].Op)
	}
	for k := 1; k < len(anchors); k++ {
		cur, prev := anchors[k], anchors[k-1]
		if cur.Op == START {
			return nil, fmt.Errorf("pairalign: %w: START anchor at index %d, only index 0 may be START", ErrInvalidAnchors, k)
		}
		if cur.SeqPos < prev.SeqPos || cur.RefPos < prev.RefPos {
			return nil, fmt.Errorf("pairalign: %w: anchor %d is not monotone: (%d,%d) after (%d,%d)",
				ErrInvalidAnchors, k, cur.SeqPos, cur.RefPos, prev.SeqPos, prev.RefPos)
		}
		ds := cur.SeqPos - prev.SeqPos
		dr := cur.RefPos - prev.RefPos
		if err := checkDelta(cur.Op, ds, dr); err != nil {
			return nil, fmt.Errorf("pairalign: %w: anchor %d: %v", ErrInvalidAnchors, k, err)
		}
		if k > 1 && cur.Op == prev.Op {
			return nil, fmt.Errorf("pairalign: %w: anchor %d repeats op %v of anchor %d, anchors must be compressed", ErrInvalidAnchors, k, cur.Op, k-1)
		}
	}
	return &Alignment{anchors: append([]AlignmentAnchor(nil), anchors...)}, nil
}

// checkDelta enforces the per-family delta rules: match-family anchors
// consume query and reference equally, insert-family anchors consume
// query only, delete-family anchors consume reference only, and
// PAD/HARD_CLIP anchors consume neither.
func checkDelta(op Operation, ds, dr int) error {
	switch {
	case IsMatchOp(op):
		if ds != dr || ds <= 0 {
			return fmt.Errorf("match-family op %v needs ds==dr>0, got ds=%d dr=%d", op, ds, dr)
		}
	case IsInsertOp(op):
		if ds <= 0 || dr != 0 {
			return fmt.Errorf("insert-family op %v needs ds>0 dr==0, got ds=%d dr=%d", op, ds, dr)
		}
	case IsDeleteOp(op):
		if ds != 0 || dr <= 0 {
			return fmt.Errorf("delete-family op %v needs ds==0 dr>0, got ds=%d dr=%d", op, ds, dr)
		}
	case op == PAD || op == HARD_CLIP:
		if ds != 0 || dr != 0 {
			return fmt.Errorf("%v op needs ds==0 dr==0, got ds=%d dr=%d", op, ds, dr)
		}
	default:
		return fmt.Errorf("unrecognized operation %v", op)
	}
	return nil
}

// Stats summarizes the aligned region described by an Alignment.
type Stats struct {
	AlignLen   int
	Matches    int
	Mismatches int
	Gaps       int
	GapRegions int
}

// Stats walks the anchors and tallies run lengths by operation family.
func (a *Alignment) Stats() Stats {
	var st Stats
	prev := a.anchors[0]
	for _, cur := range a.anchors[1:] {
		n := (cur.SeqPos - prev.SeqPos) + (cur.RefPos - prev.RefPos)
		switch {
		case IsMatchOp(cur.Op):
			length := cur.SeqPos - prev.SeqPos
			st.AlignLen += length
			if cur.Op == SEQ_MISMATCH {
				st.Mismatches += length
			} else {
				st.Matches += length
			}
		case IsInsertOp(cur.Op) || IsDeleteOp(cur.Op):
			st.AlignLen += n
			st.Gaps += n
			st.GapRegions++
		}
		prev = cur
	}
	return st
}

// AlignedSequence pairs a query sequence with an Alignment and exposes
// the 1-based reference positions of the alignment's extent.
type AlignedSequence struct {
	Query     Sequence
	Alignment *Alignment
}

// First returns the 1-based reference position of the first
// reference-consuming operation.
func (as *AlignedSequence) First() int {
	anchors := as.Alignment.anchors
	prev := anchors[0]
	for _, cur := range anchors[1:] {
		if IsMatchOp(cur.Op) || IsDeleteOp(cur.Op) {
			return prev.RefPos + 1
		}
		prev = cur
	}
	return prev.RefPos + 1
}

// Last returns the 1-based reference position of the last
// reference-consuming operation.
func (as *AlignedSequence) Last() int {
	anchors := as.Alignment.anchors
	return anchors[len(anchors)-1].RefPos
}

// String renders the three-line query/marker/reference text block,
// with '-' marking inserts (query on top, no reference base) and
// deletes (reference on bottom, no query base).
func (as *AlignedSequence) String(ref Sequence) string {
	q, a, r := renderAlignmentText(as.Query, ref, as.Alignment)
	return string(q) + "\n" + string(a) + "\n" + string(r)
}

func renderAlignmentText(q, r Sequence, aln *Alignment) ([]byte, []byte, []byte) {
	anchors := aln.anchors
	var qb, ab, rb []byte
	v, h := anchors[0].SeqPos, anchors[0].RefPos
	for _, cur := range anchors[1:] {
		switch {
		case IsMatchOp(cur.Op):
			for v < cur.SeqPos {
				qc, rc := q.At(v+1), r.At(h+1)
				qb = append(qb, qc)
				rb = append(rb, rc)
				if qc == rc {
					ab = append(ab, '|')
				} else {
					ab = append(ab, ' ')
				}
				v++
				h++
			}
		case IsInsertOp(cur.Op):
			for v < cur.SeqPos {
				qb = append(qb, q.At(v+1))
				ab = append(ab, ' ')
				rb = append(rb, '-')
				v++
			}
		case IsDeleteOp(cur.Op):
			for h < cur.RefPos {
				qb = append(qb, '-')
				ab = append(ab, ' ')
				rb = append(rb, r.At(h+1))
				h++
			}
		}
	}
	return qb, ab, rb
}
