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

package main

import (
	"fmt"

	"github.com/shenwei356/pairalign"
)

// alignRequest is the shared shape behind both the CLI positional-args
// path and the -serve HTTP handler's JSON body.
type alignRequest struct {
	Query, Target string
	Regime        string

	Match, Mismatch, GapOpen, GapExtend float64
	InsertCost, DeleteCost              float64

	ScoreOnly, DistanceOnly bool
	Banded                  bool
	Lower, Upper            int
}

type alignResponse struct {
	Regime    string  `json:"regime"`
	Score     float64 `json:"score"`
	CIGAR     string  `json:"cigar,omitempty"`
	Alignment string  `json:"alignment,omitempty"`
}

func runAlignment(req alignRequest) (*alignResponse, error) {
	regime, err := parseRegime(req.Regime)
	if err != nil {
		return nil, err
	}

	a := pairalign.Bytes(req.Query)
	b := pairalign.Bytes(req.Target)

	var model interface{}
	switch regime {
	case pairalign.GlobalAlignment, pairalign.SemiGlobalAlignment, pairalign.LocalAlignment:
		submat := pairalign.DichotomousSubstitutionMatrix(req.Match, req.Mismatch)
		m, err := pairalign.NewAffineGapScoreModel(submat, req.GapOpen, req.GapExtend)
		if err != nil {
			return nil, err
		}
		model = m
	case pairalign.EditDistance:
		submat := pairalign.DichotomousSubstitutionMatrix(0, 1)
		m, err := pairalign.NewCostModel(submat, req.InsertCost, req.DeleteCost)
		if err != nil {
			return nil, err
		}
		model = m
	}

	result, err := pairalign.PairAlign(regime, a, b, model, pairalign.Options{
		ScoreOnly:    req.ScoreOnly,
		DistanceOnly: req.DistanceOnly,
		Banded:       req.Banded,
		Lower:        req.Lower,
		Upper:        req.Upper,
	})
	if err != nil {
		return nil, err
	}

	resp := &alignResponse{Regime: req.Regime, Score: result.Score}
	if result.Alignment != nil {
		cigar, err := result.CIGAR()
		if err != nil {
			return nil, fmt.Errorf("pairalign: %w", err)
		}
		resp.CIGAR = cigar
		resp.Alignment = result.AlignedSequence().String(b)
	}
	return resp, nil
}
