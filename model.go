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

func errGapPenalty(a, b float64) error {
	return fmt.Errorf("pairalign: gap/cost penalties must be non-negative magnitudes, got %v and %v", a, b)
}

// dichotomousMatrix scores x==y as Match and everything else as
// Mismatch.
type dichotomousMatrix struct {
	Match, Mismatch float64
}

func (m dichotomousMatrix) At(x, y byte) float64 {
	if x == y {
		return m.Match
	}
	return m.Mismatch
}

// DichotomousSubstitutionMatrix returns a SubstitutionMatrix that
// yields match for equal symbols and mismatch otherwise.
func DichotomousSubstitutionMatrix(match, mismatch float64) SubstitutionMatrix {
	return dichotomousMatrix{Match: match, Mismatch: mismatch}
}

// AffineGapScoreModel is the scoring model for the scoring regimes
// (global, semi-global, local). GapOpen and GapExtend are non-negative
// magnitudes; a gap of length L costs GapOpen + L*GapExtend.
type AffineGapScoreModel struct {
	Submat    SubstitutionMatrix
	GapOpen   float64
	GapExtend float64
}

// NewAffineGapScoreModel builds a model after checking the penalties
// are non-negative magnitudes.
func NewAffineGapScoreModel(submat SubstitutionMatrix, gapOpen, gapExtend float64) (*AffineGapScoreModel, error) {
	if gapOpen < 0 || gapExtend < 0 {
		return nil, errGapPenalty(gapOpen, gapExtend)
	}
	return &AffineGapScoreModel{Submat: submat, GapOpen: gapOpen, GapExtend: gapExtend}, nil
}

// CostModel is the cost model for edit distance. Submat[x,y] is 0 on
// match and positive on mismatch.
type CostModel struct {
	Submat        SubstitutionMatrix
	InsertionCost float64
	DeletionCost  float64
}

// NewCostModel builds a CostModel after checking the costs are
// non-negative.
func NewCostModel(submat SubstitutionMatrix, insertionCost, deletionCost float64) (*CostModel, error) {
	if insertionCost < 0 || deletionCost < 0 {
		return nil, errGapPenalty(insertionCost, deletionCost)
	}
	return &CostModel{Submat: submat, InsertionCost: insertionCost, DeletionCost: deletionCost}, nil
}

// levenshteinModel is the fixed 0/1 substitution, unit insertion and
// deletion CostModel backing LevenshteinDistance.
var levenshteinModel = CostModel{
	Submat:        DichotomousSubstitutionMatrix(0, 1),
	InsertionCost: 1,
	DeletionCost:  1,
}
