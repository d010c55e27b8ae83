// Command qbalance applies quadratic scaling to 3D vectors.
//
// Usage:
//
//	qbalance [flags]
//
// Input is whitespace-separated "x y z" triples, one per line, read from
// stdin or from a file given with -in. Each vector is expanded (multiplied
// by q²) or contracted (divided by q²) and written back as aligned columns.
//
// Examples:
//
//	echo "1 2 3" | qbalance -q 2
//	qbalance -q 2 -expand -in vectors.txt
//	qbalance -q 1.5 -stats -in trajectory.txt
//
// Defaults for -q, -expand, and -in can come from QBALANCE_* environment
// variables or a config/config.<env>.yaml file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-geom/field"
	"github.com/cwbudde/algo-geom/internal/config"
	"github.com/cwbudde/algo-geom/stats"
	"github.com/cwbudde/algo-geom/vec3"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "qbalance: %v\n", err)
		os.Exit(1)
	}

	defQ := cfg.GetScaleFactor()
	if defQ == 0 {
		defQ = 1
	}

	q := flag.Float64("q", defQ, "scale factor (applied as q²)")
	expand := flag.Bool("expand", cfg.GetExpand(), "expand (multiply by q²) instead of contract (divide by q²)")
	showStats := flag.Bool("stats", false, "print per-axis statistics of the scaled vectors instead of the vectors")
	inPath := flag.String("in", cfg.GetInputPath(), "input file (default stdin)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qbalance [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Scales x y z triples by q² (expand) or 1/q² (contract).\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	in := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "qbalance: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	vectors, err := readVectors(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qbalance: %v\n", err)
		os.Exit(1)
	}

	f := field.FromVectors(vectors)
	f.BalanceInPlaceParallel(*q, *expand)

	if *showStats {
		printStats(os.Stdout, stats.Calculate(f))
		return
	}

	printVectors(os.Stdout, f)
}

// readVectors parses whitespace-separated x y z triples, one per line.
// Blank lines and #-comments are skipped.
func readVectors(r io.Reader) ([]vec3.Vec3, error) {
	var out []vec3.Vec3

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want 3 components, got %d", line, len(fields))
		}

		var c [3]float64
		for i, s := range fields {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			c[i] = v
		}
		out = append(out, vec3.New(c[0], c[1], c[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func printVectors(w io.Writer, f *field.Field) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := 0; i < f.Len(); i++ {
		v := f.At(i)
		fmt.Fprintf(tw, "%g\t%g\t%g\t\n", v.X, v.Y, v.Z)
	}
	tw.Flush()
}

func printStats(w io.Writer, s stats.Stats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "axis\tmean\trms\tmin\tmax\tpeak\tvariance\t\n")
	for _, row := range []struct {
		name string
		a    stats.Axis
	}{
		{"x", s.X},
		{"y", s.Y},
		{"z", s.Z},
		{"|v|", s.Magnitude},
	} {
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t\n",
			row.name, row.a.Mean, row.a.RMS, row.a.Min, row.a.Max, row.a.Peak, row.a.Variance)
	}
	tw.Flush()
}
