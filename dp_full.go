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

import "github.com/shenwei356/pairalign/internal/dpmath"

// regimeKind selects which boundary/clamping policy the shared
// full-matrix Gotoh engine applies.
type regimeKind int

const (
	kindGlobal regimeKind = iota
	kindSemiGlobal
	kindLocal
)

// fullResult carries the score plus everything needed to run a
// traceback; tb is nil when scoreOnly was requested.
type fullResult struct {
	score      float64
	tb         []byte // (m+1)*(n+1) packed traceback bytes, nil if score-only
	h          []float64
	m, n       int
	endI, endJ int // traceback start cell
	empty      bool
}

func idx(i, j, n int) int { return i*(n+1) + j }

// runFullDP fills H/E/F over the whole (m+1)x(n+1) grid following the
// Gotoh affine-gap recurrence, with boundary and clamping rules
// switched by kind, into three explicit matrices with a packed-byte
// traceback.
func runFullDP(a, b Sequence, model *AffineGapScoreModel, kind regimeKind, scoreOnly bool) *fullResult {
	m, n := a.Len(), b.Len()
	negInf := dpmath.NegInf[float64]()
	go_, ge := model.GapOpen, model.GapExtend
	openCost := go_ + ge

	h := getFloats((m + 1) * (n + 1))
	e := getFloats((m + 1) * (n + 1))
	f := getFloats((m + 1) * (n + 1))
	defer putFloats(e)
	defer putFloats(f)

	var tb []byte
	if !scoreOnly {
		tb = getBytes((m + 1) * (n + 1))
	}

	// boundary: row 0 and column 0.
	h[idx(0, 0, n)] = 0
	for j := 1; j <= n; j++ {
		switch kind {
		case kindSemiGlobal, kindLocal:
			h[idx(0, j, n)] = 0
		default:
			h[idx(0, j, n)] = -(go_ + float64(j)*ge)
		}
		e[idx(0, j, n)] = negInf
		f[idx(0, j, n)] = negInf
	}
	for i := 1; i <= m; i++ {
		switch kind {
		case kindLocal:
			h[idx(i, 0, n)] = 0
		default:
			h[idx(i, 0, n)] = -(go_ + float64(i)*ge)
		}
		e[idx(i, 0, n)] = negInf
		f[idx(i, 0, n)] = negInf
	}

	for i := 1; i <= m; i++ {
		ai := a.At(i)
		for j := 1; j <= n; j++ {
			bj := b.At(j)

			// E: best score ending with a gap in a (b[j] alone, a delete).
			eOpenScore := h[idx(i, j-1, n)] - openCost
			eExtScore := e[idx(i, j-1, n)] - ge
			eVal := dpmath.Max2(eOpenScore, eExtScore)
			var eOrigin byte = eFromOpen
			if eExtScore > eOpenScore {
				eOrigin = eFromExtend
			}

			// F: best score ending with a gap in b (a[i] alone, an insert).
			fOpenScore := h[idx(i-1, j, n)] - openCost
			fExtScore := f[idx(i-1, j, n)] - ge
			fVal := dpmath.Max2(fOpenScore, fExtScore)
			var fOrigin byte = fFromOpen
			if fExtScore > fOpenScore {
				fOrigin = fFromExtend
			}

			diagScore := h[idx(i-1, j-1, n)] + model.Submat.At(ai, bj)
			hVal := diagScore
			var hOrigin byte = hFromDiag
			if eVal > hVal {
				hVal, hOrigin = eVal, hFromE
			}
			if fVal > hVal {
				hVal, hOrigin = fVal, hFromF
			}
			if kind == kindLocal && 0 > hVal {
				hVal = 0
				// hOrigin left as whichever branch was the (unused)
				// winner; the traceback stops at H==0 cells anyway.
			}

			h[idx(i, j, n)] = hVal
			e[idx(i, j, n)] = eVal
			f[idx(i, j, n)] = fVal
			if tb != nil {
				tb[idx(i, j, n)] = packTB(hOrigin, eOrigin, fOrigin)
			}
		}
	}

	res := &fullResult{tb: tb, h: h, m: m, n: n}
	switch kind {
	case kindGlobal:
		res.score = h[idx(m, n, n)]
		res.endI, res.endJ = m, n
	case kindSemiGlobal:
		bestJ, bestScore := 0, negInf
		for j := 0; j <= n; j++ {
			if v := h[idx(m, j, n)]; v > bestScore {
				bestScore, bestJ = v, j
			}
		}
		res.score = bestScore
		res.endI, res.endJ = m, bestJ
	case kindLocal:
		bestI, bestJ, bestScore := 0, 0, 0.0
		for i := 0; i <= m; i++ {
			for j := 0; j <= n; j++ {
				if v := h[idx(i, j, n)]; v > bestScore {
					bestScore, bestI, bestJ = v, i, j
				}
			}
		}
		res.score = bestScore
		res.endI, res.endJ = bestI, bestJ
		res.empty = bestScore == 0
	}
	return res
}

// traceFull walks the packed traceback matrix from (endI,endJ) back to
// the regime-specific stop condition.
func traceFull(a, b Sequence, res *fullResult, kind regimeKind) (*Alignment, error) {
	if kind == kindLocal && res.empty {
		empty, err := NewAlignment([]AlignmentAnchor{{SeqPos: 0, RefPos: 0, Op: START}})
		return empty, err
	}

	n := res.n
	i, j := res.endI, res.endJ
	mode := modeH
	var ops []Operation

	stop := func() bool {
		switch kind {
		case kindGlobal:
			return i == 0 && j == 0
		case kindSemiGlobal:
			return i == 0
		case kindLocal:
			return res.h[idx(i, j, n)] == 0
		}
		return true
	}

	for !stop() || mode != modeH {
		tb := res.tb[idx(i, j, n)]
		switch mode {
		case modeH:
			if i == 0 || j == 0 { // boundary cells carry no traceback byte
				if j == 0 {
					ops, i = append(ops, INSERT), i-1
				} else {
					ops, j = append(ops, DELETE), j-1
				}
				continue
			}
			switch unpackH(tb) {
			case hFromDiag:
				if a.At(i) == b.At(j) {
					ops = append(ops, SEQ_MATCH)
				} else {
					ops = append(ops, SEQ_MISMATCH)
				}
				i, j = i-1, j-1
			case hFromE:
				mode = modeE
			case hFromF:
				mode = modeF
			}
		case modeE:
			ops = append(ops, DELETE)
			origin := unpackE(tb)
			j--
			if origin == eFromOpen {
				mode = modeH
			}
		case modeF:
			ops = append(ops, INSERT)
			origin := unpackF(tb)
			i--
			if origin == fFromOpen {
				mode = modeH
			}
		}
	}

	reverseOps(ops)
	return compressOpsToAlignment(ops, i, j)
}

// alignFull runs the full-matrix engine for kind and, unless scoreOnly
// is set, reconstructs the Alignment via traceback.
func alignFull(a, b Sequence, model *AffineGapScoreModel, kind regimeKind, scoreOnly bool) (float64, *Alignment, error) {
	res := runFullDP(a, b, model, kind, scoreOnly)
	defer putFloats(res.h)
	if scoreOnly {
		return res.score, nil, nil
	}
	defer putBytes(res.tb)
	aln, err := traceFull(a, b, res, kind)
	if err != nil {
		return res.score, nil, err
	}
	return res.score, aln, nil
}
