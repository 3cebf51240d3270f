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

	"github.com/shenwei356/pairalign/internal/dpmath"
)

// edit-distance traceback origin codes: which branch of the three-way
// min won, tie-broken substitution, then deletion, then insertion.
const (
	editFromSub byte = 0
	editFromDel byte = 1
	editFromIns byte = 2
)

// alignEditDistance runs the single-matrix edit-distance recurrence,
// generalized to a full matrix with traceback when distanceOnly is
// false.
func alignEditDistance(a, b Sequence, model *CostModel, distanceOnly bool) (float64, *Alignment, error) {
	m, n := a.Len(), b.Len()

	if distanceOnly {
		return editDistanceOnly(a, b, model), nil, nil
	}

	d := getFloats((m + 1) * (n + 1))
	defer putFloats(d)
	tb := getBytes((m + 1) * (n + 1))
	defer putBytes(tb)

	d[idx(0, 0, n)] = 0
	for j := 1; j <= n; j++ {
		d[idx(0, j, n)] = float64(j) * model.InsertionCost
	}
	for i := 1; i <= m; i++ {
		d[idx(i, 0, n)] = float64(i) * model.DeletionCost
	}

	for i := 1; i <= m; i++ {
		ai := a.At(i)
		for j := 1; j <= n; j++ {
			bj := b.At(j)
			sub := d[idx(i-1, j-1, n)] + model.Submat.At(ai, bj)
			del := d[idx(i-1, j, n)] + model.DeletionCost
			ins := d[idx(i, j-1, n)] + model.InsertionCost

			best, origin := sub, editFromSub
			if del < best {
				best, origin = del, editFromDel
			}
			if ins < best {
				best, origin = ins, editFromIns
			}
			d[idx(i, j, n)] = best
			tb[idx(i, j, n)] = origin
		}
	}

	score := d[idx(m, n, n)]
	aln, err := traceEditDistance(a, b, tb, m, n)
	if err != nil {
		return score, nil, err
	}
	return score, aln, nil
}

func traceEditDistance(a, b Sequence, tb []byte, m, n int) (*Alignment, error) {
	i, j := m, n
	var ops []Operation
	for i > 0 || j > 0 {
		var origin byte
		switch {
		case i == 0:
			origin = editFromIns
		case j == 0:
			origin = editFromDel
		default:
			origin = tb[idx(i, j, n)]
		}
		// a deletion-cost step consumes a (the query) alone, an insert in
		// the anchor model; an insertion-cost step consumes b alone.
		switch origin {
		case editFromSub:
			if a.At(i) == b.At(j) {
				ops = append(ops, SEQ_MATCH)
			} else {
				ops = append(ops, SEQ_MISMATCH)
			}
			i, j = i-1, j-1
		case editFromDel:
			ops = append(ops, INSERT)
			i--
		case editFromIns:
			ops = append(ops, DELETE)
			j--
		}
	}
	reverseOps(ops)
	return compressOpsToAlignment(ops, 0, 0)
}

// editDistanceOnly computes D[m,n] with a two-row rolling buffer, an
// O(n) space option (n = b.Len()) for score-only calls.
func editDistanceOnly(a, b Sequence, model *CostModel) float64 {
	m, n := a.Len(), b.Len()
	prev := getFloats(n + 1)
	cur := getFloats(n + 1)
	defer putFloats(prev)
	defer putFloats(cur)

	for j := 0; j <= n; j++ {
		prev[j] = float64(j) * model.InsertionCost
	}
	for i := 1; i <= m; i++ {
		cur[0] = float64(i) * model.DeletionCost
		ai := a.At(i)
		for j := 1; j <= n; j++ {
			sub := prev[j-1] + model.Submat.At(ai, b.At(j))
			del := prev[j] + model.DeletionCost
			ins := cur[j-1] + model.InsertionCost
			cur[j] = dpmath.Min3(sub, del, ins)
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

// alignLevenshtein specializes alignEditDistance to the fixed
// substitution-cost-1/insertion-cost-1/deletion-cost-1 model.
func alignLevenshtein(a, b Sequence, distanceOnly bool) (float64, *Alignment, error) {
	return alignEditDistance(a, b, &levenshteinModel, distanceOnly)
}

// alignHamming requires equal-length sequences; the distance is the
// mismatch count, and the "alignment" is a single match-family run
// covering every position.
func alignHamming(a, b Sequence) (int, *Alignment, error) {
	m, n := a.Len(), b.Len()
	if m != n {
		return 0, nil, fmt.Errorf("pairalign: %w: sequences have lengths %d and %d", ErrLengthMismatch, m, n)
	}
	dist := 0
	for i := 1; i <= m; i++ {
		if a.At(i) != b.At(i) {
			dist++
		}
	}
	if m == 0 {
		aln, err := NewAlignment([]AlignmentAnchor{{SeqPos: 0, RefPos: 0, Op: START}})
		return dist, aln, err
	}
	aln, err := NewAlignment([]AlignmentAnchor{
		{SeqPos: 0, RefPos: 0, Op: START},
		{SeqPos: m, RefPos: m, Op: MATCH},
	})
	return dist, aln, err
}
