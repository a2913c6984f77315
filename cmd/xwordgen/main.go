// Command xwordgen builds a filled crossword from a word list.
//
// Words come from the command line arguments, or one per line on stdin
// when no arguments are given:
//
//	xwordgen -seed 7 cat car tiger
//	xwordgen -v -timeout 500ms < words.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/njcad/crossword/xword"
)

func main() {
	seed := flag.Int64("seed", 0, "RNG seed; 0 keeps the fixed default stream")
	steps := flag.Int("steps", xword.DefaultMaxSteps, "Per-attempt search step budget")
	timeout := flag.Duration("timeout", 0, "Per-attempt wall-clock budget (0 = none)")
	attempts := flag.Int("attempts", xword.DefaultAttempts, "Independent restarts; densest result wins")
	parallel := flag.Int("p", 1, "Goroutines for the attempt fan-out")
	verbose := flag.Bool("v", false, "Narrate candidate attempts and backtracks")

	flag.Parse()

	words := flag.Args()
	if len(words) == 0 {
		var err error
		if words, err = readWords(os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, "Error reading words:", err)
			os.Exit(1)
		}
	}

	opts := []xword.Option{
		xword.WithSeed(*seed),
		xword.WithMaxSteps(*steps),
		xword.WithTimeLimit(*timeout),
		xword.WithAttempts(*attempts),
		xword.WithParallelism(*parallel),
	}
	if *verbose {
		opts = append(opts, xword.WithVerbose())
	}

	res, err := xword.Generate(words, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating crossword:", err)
		os.Exit(1)
	}

	for _, row := range res.Grid {
		fmt.Println(string(row))
	}
	fmt.Printf("placed %d/%d words\n", res.Placed(), len(words))

	indices := make([]int, 0, len(res.Placements))
	for idx := range res.Placements {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		p := res.Placements[idx]
		fmt.Printf("%3d  %-16s (%d,%d) %s\n", idx, p.Word, p.Row, p.Col, p.Dir)
	}
}

// readWords collects non-blank lines from r, one word per line.
func readWords(r *os.File) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}

	return words, sc.Err()
}
