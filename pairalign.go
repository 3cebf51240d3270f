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

// Regime selects one of the six alignment/distance algorithms this
// package implements. Regimes are a closed, finite set dispatched
// through the single PairAlign entry point rather than a type
// hierarchy, since the set is fixed at build time.
type Regime int

const (
	GlobalAlignment Regime = iota
	SemiGlobalAlignment
	LocalAlignment
	EditDistance
	LevenshteinDistance
	HammingDistance
)

func (r Regime) String() string {
	switch r {
	case GlobalAlignment:
		return "GlobalAlignment"
	case SemiGlobalAlignment:
		return "SemiGlobalAlignment"
	case LocalAlignment:
		return "LocalAlignment"
	case EditDistance:
		return "EditDistance"
	case LevenshteinDistance:
		return "LevenshteinDistance"
	case HammingDistance:
		return "HammingDistance"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// Options carries the recognized per-call options. Banded/Lower/Upper
// are meaningful for GlobalAlignment only.
type Options struct {
	ScoreOnly    bool
	DistanceOnly bool
	Banded       bool
	Lower, Upper int
}

// AlignmentResult is the result of a PairAlign call: the score (or
// distance) and, unless a score-only/distance-only option was set, the
// reconstructed Alignment.
type AlignmentResult struct {
	Regime    Regime
	Score     float64
	Alignment *Alignment
	Query     Sequence
	Reference Sequence
}

// AlignedSequence pairs the result's query with its Alignment. Returns
// nil if the result was computed score-only/distance-only.
func (r *AlignmentResult) AlignedSequence() *AlignedSequence {
	if r.Alignment == nil {
		return nil
	}
	return &AlignedSequence{Query: r.Query, Alignment: r.Alignment}
}

// CIGAR returns the result's alignment as a CIGAR string, or an error
// if the result has no alignment.
func (r *AlignmentResult) CIGAR() (string, error) {
	if r.Alignment == nil {
		return "", fmt.Errorf("pairalign: result has no alignment (score-only/distance-only)")
	}
	return Emit(r.Alignment)
}

// PairAlign is the single dispatch entry point. model must be an
// *AffineGapScoreModel for GlobalAlignment/SemiGlobalAlignment/
// LocalAlignment, a *CostModel for EditDistance, and nil for
// LevenshteinDistance/HammingDistance.
func PairAlign(regime Regime, a, b Sequence, model interface{}, opts Options) (*AlignmentResult, error) {
	res := &AlignmentResult{Regime: regime, Query: a, Reference: b}

	switch regime {
	case GlobalAlignment, SemiGlobalAlignment, LocalAlignment:
		m, ok := model.(*AffineGapScoreModel)
		if !ok || m == nil {
			return nil, fmt.Errorf("pairalign: %v requires a non-nil *AffineGapScoreModel", regime)
		}

		if regime == GlobalAlignment && opts.Banded {
			score, aln, err := alignGlobalBanded(a, b, m, opts.Lower, opts.Upper, opts.ScoreOnly)
			if err != nil {
				return nil, err
			}
			res.Score, res.Alignment = score, aln
			return res, nil
		}
		if opts.Banded && regime != GlobalAlignment {
			return nil, fmt.Errorf("pairalign: banded is only meaningful for GlobalAlignment, got %v", regime)
		}

		kind := kindGlobal
		if regime == SemiGlobalAlignment {
			kind = kindSemiGlobal
		} else if regime == LocalAlignment {
			kind = kindLocal
		}
		score, aln, err := alignFull(a, b, m, kind, opts.ScoreOnly)
		if err != nil {
			return nil, err
		}
		res.Score, res.Alignment = score, aln
		return res, nil

	case EditDistance:
		m, ok := model.(*CostModel)
		if !ok || m == nil {
			return nil, fmt.Errorf("pairalign: EditDistance requires a non-nil *CostModel")
		}
		dist, aln, err := alignEditDistance(a, b, m, opts.DistanceOnly)
		if err != nil {
			return nil, err
		}
		res.Score, res.Alignment = dist, aln
		return res, nil

	case LevenshteinDistance:
		dist, aln, err := alignLevenshtein(a, b, opts.DistanceOnly)
		if err != nil {
			return nil, err
		}
		res.Score, res.Alignment = dist, aln
		return res, nil

	case HammingDistance:
		dist, aln, err := alignHamming(a, b)
		if err != nil {
			return nil, err
		}
		res.Score = float64(dist)
		if !opts.DistanceOnly {
			res.Alignment = aln
		}
		return res, nil

	default:
		return nil, fmt.Errorf("pairalign: %w: %d", ErrUnknownRegime, int(regime))
	}
}
