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

// bandDP is the banded-storage arena for the global banded engine: a
// single rectangular (m+1)x(U-L+1) arena addressed through a
// diagonal-offset coordinate transform, rather than a full
// (m+1)x(n+1) matrix.
type bandDP struct {
	L, U  int
	width int
	m, n  int
	h, e, f []float64
	tb      []byte
}

func newBandDP(m, n, lower, upper int) *bandDP {
	width := upper - lower + 1
	size := (m + 1) * width
	negInf := dpmath.NegInf[float64]()
	h := getFloats(size)
	e := getFloats(size)
	f := getFloats(size)
	for i := range h {
		h[i], e[i], f[i] = negInf, negInf, negInf
	}
	return &bandDP{L: lower, U: upper, width: width, m: m, n: n, h: h, e: e, f: f}
}

func (bd *bandDP) inBand(i, j int) bool {
	if i < 0 || i > bd.m || j < 0 || j > bd.n {
		return false
	}
	d := j - i
	return d >= bd.L && d <= bd.U
}

func (bd *bandDP) idx(i, j int) int { return i*bd.width + (j - i - bd.L) }

func (bd *bandDP) getH(i, j int) float64 {
	if !bd.inBand(i, j) {
		return dpmath.NegInf[float64]()
	}
	return bd.h[bd.idx(i, j)]
}

func (bd *bandDP) getE(i, j int) float64 {
	if !bd.inBand(i, j) {
		return dpmath.NegInf[float64]()
	}
	return bd.e[bd.idx(i, j)]
}

func (bd *bandDP) getF(i, j int) float64 {
	if !bd.inBand(i, j) {
		return dpmath.NegInf[float64]()
	}
	return bd.f[bd.idx(i, j)]
}

func (bd *bandDP) rowRange(i int) (loJ, hiJ int) {
	loJ = i + bd.L
	if loJ < 0 {
		loJ = 0
	}
	hiJ = i + bd.U
	if hiJ > bd.n {
		hiJ = bd.n
	}
	return
}

// alignGlobalBanded runs the diagonal-banded Gotoh recurrence.
// lower <= 0 <= upper; the call fails with ErrBandExcludesEndpoints if
// (0,0) or (m,n) falls outside the band.
func alignGlobalBanded(a, b Sequence, model *AffineGapScoreModel, lower, upper int, scoreOnly bool) (float64, *Alignment, error) {
	m, n := a.Len(), b.Len()
	if lower > 0 || upper < 0 {
		return 0, nil, fmt.Errorf("pairalign: %w: band [%d,%d] does not satisfy lower<=0<=upper", ErrBandExcludesEndpoints, lower, upper)
	}
	if d := n - m; d < lower || d > upper {
		return 0, nil, fmt.Errorf("pairalign: %w: terminal cell (%d,%d) has diagonal offset %d outside band [%d,%d]", ErrBandExcludesEndpoints, m, n, d, lower, upper)
	}

	bd := newBandDP(m, n, lower, upper)
	defer putFloats(bd.e)
	defer putFloats(bd.f)

	go_, ge := model.GapOpen, model.GapExtend
	openCost := go_ + ge

	if !scoreOnly {
		bd.tb = getBytes(len(bd.h))
	}

	bd.h[bd.idx(0, 0)] = 0
	for j := 1; j <= upper && j <= n; j++ {
		bd.h[bd.idx(0, j)] = -(go_ + float64(j)*ge)
	}
	for i := 1; i <= m && -i >= lower; i++ {
		bd.h[bd.idx(i, 0)] = -(go_ + float64(i)*ge)
	}

	for i := 1; i <= m; i++ {
		ai := a.At(i)
		loJ, hiJ := bd.rowRange(i)
		if loJ == 0 {
			loJ = 1 // column 0 is boundary, already filled above
		}
		for j := loJ; j <= hiJ; j++ {
			bj := b.At(j)

			eOpenScore := bd.getH(i, j-1) - openCost
			eExtScore := bd.getE(i, j-1) - ge
			eVal := dpmath.Max2(eOpenScore, eExtScore)
			var eOrigin byte = eFromOpen
			if eExtScore > eOpenScore {
				eOrigin = eFromExtend
			}

			fOpenScore := bd.getH(i-1, j) - openCost
			fExtScore := bd.getF(i-1, j) - ge
			fVal := dpmath.Max2(fOpenScore, fExtScore)
			var fOrigin byte = fFromOpen
			if fExtScore > fOpenScore {
				fOrigin = fFromExtend
			}

			diagScore := bd.getH(i-1, j-1) + model.Submat.At(ai, bj)
			hVal := diagScore
			var hOrigin byte = hFromDiag
			if eVal > hVal {
				hVal, hOrigin = eVal, hFromE
			}
			if fVal > hVal {
				hVal, hOrigin = fVal, hFromF
			}

			k := bd.idx(i, j)
			bd.h[k] = hVal
			bd.e[k] = eVal
			bd.f[k] = fVal
			if bd.tb != nil {
				bd.tb[k] = packTB(hOrigin, eOrigin, fOrigin)
			}
		}
	}

	score := bd.getH(m, n)
	if scoreOnly {
		putFloats(bd.h)
		return score, nil, nil
	}
	defer putFloats(bd.h)
	defer putBytes(bd.tb)

	aln, err := traceBanded(a, b, bd)
	if err != nil {
		return score, nil, err
	}
	return score, aln, nil
}

func traceBanded(a, b Sequence, bd *bandDP) (*Alignment, error) {
	i, j := bd.m, bd.n
	mode := modeH
	var ops []Operation

	for !(i == 0 && j == 0) || mode != modeH {
		tb := bd.tb[bd.idx(i, j)]
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
	return compressOpsToAlignment(ops, 0, 0)
}
