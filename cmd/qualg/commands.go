// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"math/rand/v2"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qualg/codec"
	"github.com/katalvlaran/qualg/matrix"
	"github.com/katalvlaran/qualg/measure"
	"github.com/katalvlaran/qualg/operator"
	"github.com/katalvlaran/qualg/povm"
	"github.com/katalvlaran/qualg/scalar"
	"github.com/katalvlaran/qualg/state"
)

// matrixTolerance is the slack for the Hermiticity and completeness checks.
const matrixTolerance = 1e-9

type app struct {
	configPath string
	logLevel   string
	pretty     bool

	cfg Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: defaultConfig(), log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "qualg",
		Short:         "Symbolic quantum algebra: POVM generation and operator dumps",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = a.logLevel
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Log.Pretty = a.pretty
			}
			a.cfg = cfg
			a.log = newLogger(cfg.Log, cmd.ErrOrStderr())
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVar(&a.pretty, "pretty", false, "human-readable console logs")

	root.AddCommand(a.povmCmd(), a.matrixCmd(), a.measureCmd())
	return root
}

func (a *app) povmCmd() *cobra.Command {
	var (
		maxA, maxB, workers int
		subset, out         string
	)
	cmd := &cobra.Command{
		Use:   "povm",
		Short: "Generate the photon-counting POVM after a 50:50 beam splitter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			if f.Changed("max-a") {
				a.cfg.MaxA = maxA
			}
			if f.Changed("max-b") {
				a.cfg.MaxB = maxB
			}
			if f.Changed("workers") {
				a.cfg.Workers = workers
			}
			if f.Changed("subset") {
				a.cfg.Subset = subset
			}
			if err := a.cfg.validate(); err != nil {
				return err
			}
			sub, _ := parseSubset(a.cfg.Subset)

			opts := []povm.Option{povm.WithLogger(a.log), povm.WithSubset(sub)}
			if a.cfg.Workers > 0 {
				opts = append(opts, povm.WithWorkers(a.cfg.Workers))
			}
			elems, err := povm.Generate(cmd.Context(), a.cfg.MaxA, a.cfg.MaxB, opts...)
			if err != nil {
				return err
			}
			entries := make([]codec.Entry, len(elems))
			for i, e := range elems {
				entries[i] = codec.Entry{Key: e.Key.String(), Op: e.Op}
			}
			return withOutput(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return codec.Write(w, entries)
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&maxA, "max-a", 1, "largest photon number in input mode a")
	f.IntVar(&maxB, "max-b", 1, "largest photon number in input mode b")
	f.IntVar(&workers, "workers", 0, "elements computed at once (0: GOMAXPROCS)")
	f.StringVar(&subset, "subset", "all", "click patterns: all, leq or greater")
	f.StringVarP(&out, "output", "o", "", "dump file (default stdout)")
	return cmd
}

func (a *app) matrixCmd() *cobra.Command {
	var visibility float64
	cmd := &cobra.Command{
		Use:   "matrix DUMP",
		Short: "Print the matrices of a dump at a given visibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("visibility") {
				a.cfg.Visibility = visibility
			}
			if err := a.cfg.validate(); err != nil {
				return err
			}
			entries, err := readDump(args[0])
			if err != nil {
				return err
			}
			return a.printMatrices(cmd.OutOrStdout(), entries)
		},
	}
	cmd.Flags().Float64Var(&visibility, "visibility", 1, "value of the overlap <phi|psi>")
	return cmd
}

func (a *app) printMatrices(w io.Writer, entries []codec.Entry) error {
	convert := povm.Visibility(a.cfg.Visibility)
	var (
		total *mat.CDense
		mixed bool
	)
	for _, e := range entries {
		m, err := e.Op.ToMatrix(convert)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}
		rep, err := inspect(m)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Key, err)
		}
		fmt.Fprintf(w, "%s hermitian=%t positive=%t projector=%t trace=%s\n",
			e.Key, rep.hermitian, rep.positive, rep.projector, formatComplex(rep.trace))
		writeMatrix(w, m)

		switch {
		case mixed:
		case total == nil:
			total = m
		default:
			if total, err = matrix.Add(total, m); err != nil {
				if !errors.Is(err, matrix.ErrDimensionMismatch) {
					return fmt.Errorf("%s: %w", e.Key, err)
				}
				// Mixed dimensions: the dump is not a single measurement.
				total, mixed = nil, true
			}
		}
	}

	switch {
	case mixed:
		fmt.Fprintln(w, "complete=n/a mixed dimensions")
		a.log.Warn().Int("elements", len(entries)).Msg("dump mixes matrix dimensions")
	case total != nil:
		deviation, err := completenessDeviation(total)
		if err != nil {
			return err
		}
		complete, err := matrix.IsIdentity(total, matrixTolerance)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "complete=%t deviation=%.3g\n", complete, deviation)
		a.log.Info().
			Int("elements", len(entries)).
			Float64("visibility", a.cfg.Visibility).
			Bool("complete", complete).
			Msg("matrices printed")
	}
	return nil
}

type report struct {
	hermitian, positive, projector bool
	trace                          complex128
}

func inspect(m *mat.CDense) (report, error) {
	var (
		r   report
		err error
	)
	if r.hermitian, err = matrix.IsHermitian(m, matrixTolerance); err != nil {
		return r, err
	}
	if r.positive, err = matrix.IsPositiveDiagonal(m, matrixTolerance); err != nil {
		return r, err
	}
	if r.projector, err = matrix.IsIdempotent(m, matrixTolerance); err != nil {
		return r, err
	}
	r.trace, err = matrix.Trace(m)
	return r, err
}

// completenessDeviation is the largest entry of I - total.
func completenessDeviation(total *mat.CDense) (float64, error) {
	n, c := total.Dims()
	if n != c {
		return 0, fmt.Errorf("complete: %w", matrix.ErrNonSquare)
	}
	ident := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		ident.Set(i, i, 1)
	}
	diff, err := matrix.Sub(ident, total)
	if err != nil {
		return 0, err
	}
	var worst float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			worst = math.Max(worst, cmplx.Abs(diff.At(i, j)))
		}
	}
	return worst, nil
}

func (a *app) measureCmd() *cobra.Command {
	var (
		dump       string
		shots      int
		seed       uint64
		visibility float64
	)
	cmd := &cobra.Command{
		Use:   "measure LABEL...",
		Short: "Sample outcomes of a uniform superposition of qubit basis states",
		Long: "Prepares the equal superposition of the given qubit labels and samples\n" +
			"outcomes. Without --dump the register is measured in the computational\n" +
			"basis; with --dump every entry is a Kraus operator keyed by its outcome.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("visibility") {
				a.cfg.Visibility = visibility
			}
			if err := a.cfg.validate(); err != nil {
				return err
			}
			if shots < 1 {
				return fmt.Errorf("measure: shots must be positive, got %d", shots)
			}
			s, err := superposition(args)
			if err != nil {
				return err
			}
			kraus, err := krausSet(dump, len(args[0]))
			if err != nil {
				return err
			}
			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, seed))
			}
			return a.sample(cmd.OutOrStdout(), rng, s, kraus, shots)
		},
	}
	f := cmd.Flags()
	f.StringVar(&dump, "dump", "", "Kraus operators (default computational basis)")
	f.IntVar(&shots, "shots", 1, "number of samples")
	f.Uint64Var(&seed, "seed", 0, "seed for reproducible sampling")
	f.Float64Var(&visibility, "visibility", 1, "value of the overlap <phi|psi>")
	return cmd
}

func (a *app) sample(w io.Writer, rng *rand.Rand, s *state.State, kraus []measure.Kraus, shots int) error {
	opt := measure.WithConverter(povm.Visibility(a.cfg.Visibility))
	if shots == 1 {
		res, err := measure.Measure(rng, s, kraus, opt)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s p=%.6g post=%s\n", res.Outcome, res.Probability, res.State)
		return nil
	}

	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		res, err := measure.Measure(rng, s, kraus, opt)
		if err != nil {
			return err
		}
		counts[res.Outcome]++
	}
	outcomes := make([]string, 0, len(counts))
	for k := range counts {
		outcomes = append(outcomes, k)
	}
	sort.Strings(outcomes)
	for _, k := range outcomes {
		fmt.Fprintf(w, "%s %d\n", k, counts[k])
	}
	a.log.Debug().Int("shots", shots).Int("outcomes", len(outcomes)).Msg("sampling done")
	return nil
}

// superposition returns the normalized equal superposition of qubit labels.
func superposition(labels []string) (*state.State, error) {
	bases := make([]state.Base, len(labels))
	coefs := make([]scalar.Scalar, len(labels))
	amp := scalar.Real(1 / math.Sqrt(float64(len(labels))))
	for i, l := range labels {
		q, err := state.NewQubit(l)
		if err != nil {
			return nil, err
		}
		bases[i], coefs[i] = q, amp
	}
	s, err := state.New(bases, coefs)
	if err != nil {
		return nil, err
	}
	if s.Len() != len(labels) {
		return nil, fmt.Errorf("measure: repeated label in %v", labels)
	}
	return s, nil
}

// krausSet reads the operators of dump, or builds the computational-basis
// projectors on n qubits when dump is empty.
func krausSet(dump string, n int) ([]measure.Kraus, error) {
	if dump != "" {
		entries, err := readDump(dump)
		if err != nil {
			return nil, err
		}
		kraus := make([]measure.Kraus, len(entries))
		for i, e := range entries {
			kraus[i] = measure.Kraus{Outcome: e.Key, Op: e.Op}
		}
		return kraus, nil
	}
	kraus := make([]measure.Kraus, 0, 1<<n)
	for x := 0; x < 1<<n; x++ {
		label := strconv.FormatInt(int64(x), 2)
		label = strings.Repeat("0", n-len(label)) + label
		q, err := state.NewQubit(label)
		if err != nil {
			return nil, err
		}
		kraus = append(kraus, measure.Kraus{
			Outcome: label,
			Op:      operator.FromBase(operator.Base{Left: q, Right: q}),
		})
	}
	return kraus, nil
}

func readDump(path string) ([]codec.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return codec.Read(f)
}

// withOutput runs fn against path, or against fallback when path is empty.
func withOutput(fallback io.Writer, path string, fn func(io.Writer) error) (err error) {
	if path == "" {
		return fn(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

func writeMatrix(w io.Writer, m *mat.CDense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		cells := make([]string, c)
		for j := 0; j < c; j++ {
			cells[j] = formatComplex(m.At(i, j))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}

func formatComplex(c complex128) string {
	if imag(c) == 0 {
		return strconv.FormatFloat(real(c), 'g', 6, 64)
	}
	return strconv.FormatComplex(c, 'g', 6, 128)
}
