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
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/profile"

	"github.com/shenwei356/pairalign"
)

var version = "0.1.0"

func main() {
	app := filepath.Base(os.Args[0])
	usage := fmt.Sprintf(`
pairalign: pairwise sequence alignment

 Author: Wei Shen <shenwei356@gmail.com>
Version: v%s

Usage:
  %s [options] <query seq> <target seq>

Options/Flags:
`, version, app)

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	help := flag.Bool("h", false, "print help message")
	regime := flag.String("r", "global", "regime: global, semiglobal, local, edit, levenshtein, hamming")
	match := flag.Float64("match", 0, "match score (scoring regimes)")
	mismatch := flag.Float64("mismatch", 6, "mismatch penalty magnitude (scoring regimes)")
	gapOpen := flag.Float64("gap-open", 5, "gap open penalty magnitude (scoring regimes)")
	gapExtend := flag.Float64("gap-extend", 3, "gap extend penalty magnitude (scoring regimes)")
	insertCost := flag.Float64("insertion-cost", 1, "insertion cost (edit distance)")
	deleteCost := flag.Float64("deletion-cost", 1, "deletion cost (edit distance)")
	scoreOnly := flag.Bool("score-only", false, "skip traceback, print only the score/distance")
	banded := flag.Bool("banded", false, "use the banded global engine")
	lower := flag.Int("lower", 0, "band lower offset (banded global only, <= 0)")
	upper := flag.Int("upper", 0, "band upper offset (banded global only, >= 0)")

	pprofCPU := flag.Bool("p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	pprofMem := flag.Bool("m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")
	serve := flag.String("serve", "", "run an HTTP server on this address instead of aligning args")

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if *pprofCPU {
		defer profile.Start(profile.CPUProfile).Stop()
	} else if *pprofMem {
		defer profile.Start(profile.MemProfile).Stop()
	}

	if *serve != "" {
		if err := runServer(*serve); err != nil {
			log.Fatalf("pairalign: %v", err)
		}
		return
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}

	regimeValue, err := parseRegime(*regime)
	if err != nil {
		log.Fatalf("pairalign: %v", err)
	}

	req := alignRequest{
		Query:        args[0],
		Target:       args[1],
		Regime:       *regime,
		Match:        *match,
		Mismatch:     -*mismatch,
		GapOpen:      *gapOpen,
		GapExtend:    *gapExtend,
		InsertCost:   *insertCost,
		DeleteCost:   *deleteCost,
		ScoreOnly:    *scoreOnly,
		DistanceOnly: *scoreOnly,
		Banded:       *banded,
		Lower:        *lower,
		Upper:        *upper,
	}

	resp, err := runAlignment(req)
	if err != nil {
		log.Fatalf("pairalign: %v", err)
	}

	fmt.Printf("regime: %s\nscore: %v\n", regimeValue, resp.Score)
	if resp.CIGAR != "" {
		fmt.Printf("cigar: %s\n", resp.CIGAR)
	}
	if resp.Alignment != "" {
		fmt.Println(resp.Alignment)
	}
}

func parseRegime(s string) (pairalign.Regime, error) {
	switch s {
	case "global":
		return pairalign.GlobalAlignment, nil
	case "semiglobal":
		return pairalign.SemiGlobalAlignment, nil
	case "local":
		return pairalign.LocalAlignment, nil
	case "edit":
		return pairalign.EditDistance, nil
	case "levenshtein":
		return pairalign.LevenshteinDistance, nil
	case "hamming":
		return pairalign.HammingDistance, nil
	default:
		return 0, fmt.Errorf("unknown regime %q", s)
	}
}
