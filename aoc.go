// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a runner that checks each part against its sample before
// touching the real input, plus the parsing and container helpers the
// solutions share. (forked from maisem/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
)

var (
	ErrUnknownDay     = errors.New("unknown day")
	ErrUnknownPart    = errors.New("unknown part")
	ErrSampleMismatch = errors.New("sample mismatch")
	ErrNoSample       = errors.New("no sample")
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples parses src and returns the samples declared in the doc
// comments of its funcs, keyed by func name. A sample without input reuses
// the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers. It gives each part access to its input,
// which is the sample while SampleMode is set.
type Puzzle struct {
	day        day
	SampleMode bool
	Log        zerolog.Logger

	cfg     Config
	solver  partSolver
	samples map[string]sample

	inputOnce sync.Once
	input     []byte
	inputErr  error
}

// InputPath is the file the real input is read from.
func (p *Puzzle) InputPath() string {
	return filepath.Join(p.cfg.InputDir, fmt.Sprintf("day%d.txt", p.day.day))
}

// Input returns the puzzle input. The file is read once per day.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	p.inputOnce.Do(func() {
		p.input, p.inputErr = os.ReadFile(p.InputPath())
	})
	return p.input, p.inputErr
}

func (p *Puzzle) Scanner() (*bufio.Scanner, error) {
	in, err := p.Input()
	if err != nil {
		return nil, err
	}
	return bufio.NewScanner(bytes.NewReader(in)), nil
}

// ForLinesY calls onLine for each line of input. The y value is the row
// number, starting with 0. It stops at the first error onLine returns.
func (p *Puzzle) ForLinesY(onLine func(y int, line string) error) error {
	s, err := p.Scanner()
	if err != nil {
		return err
	}
	y := -1
	for s.Scan() {
		y++
		if err := onLine(y, s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string) error) error {
	return p.ForLinesY(func(_ int, line string) error { return onLine(line) })
}

// Lines returns all lines of input.
func (p *Puzzle) Lines() ([]string, error) {
	var lines []string
	err := p.ForLines(func(line string) error {
		lines = append(lines, line)
		return nil
	})
	return lines, err
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.Log.Debug().Bool("sample", p.SampleMode).Msgf(format, args...)
}

func (p *Puzzle) Sample() (sample, error) {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		return sample{}, fmt.Errorf("%w for %v", ErrNoSample, p.solver.Name)
	}
	return s, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("register: %s has type %v; want func() (any, error)", mn, v.Method(i).Type())
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("register: %s: %w", mn, err)
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run; all days if unset")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run; all parts if unset")
}

var initFlags = sync.OnceFunc(func() {
	if !flag.Parsed() {
		flag.Parse()
	}
})

// options is what a run is driven by; it is filled from flags by Run and
// directly by tests.
type options struct {
	day        int
	part       string
	onlySample bool
	skipSample bool
}

func (o options) selectPart(d day) ([]partSolver, error) {
	if o.part == "" {
		return d.parts, nil
	}
	for _, ps := range d.parts {
		if ps.Part == o.part {
			return []partSolver{ps}, nil
		}
	}
	return nil, fmt.Errorf("%w %q for day %d", ErrUnknownPart, o.part, d.day)
}

func runDay(slvr any, p *Puzzle, opts options) error {
	fmt.Println("Running day", p.day.day)
	parts, err := opts.selectPart(p.day)
	if err != nil {
		return err
	}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range parts {
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if !sm && opts.onlySample {
				continue
			} else if sm && opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if sm {
				if _, err := p.Sample(); err != nil {
					p.Log.Warn().Str("part", ps.Part).Msg("no sample; skipping sample run")
					continue
				}
			} else if _, err := p.Input(); err != nil {
				// Prime the input.
				return fmt.Errorf("day %d: reading input: %w", p.day.day, err)
			}
			t0 := time.Now()
			got, err := ps.fn()
			if err != nil {
				return fmt.Errorf("day %d part %s (sample=%v): %w", p.day.day, ps.Part, sm, err)
			}
			took := time.Since(t0).Round(time.Microsecond)
			if sm {
				s, _ := p.Sample()
				if fmt.Sprint(got) != s.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, s.want)
					return fmt.Errorf("day %d part %s: %w: got %v, want %v", p.day.day, ps.Part, ErrSampleMismatch, got, s.want)
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, took)
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, took)
			}
			p.Log.Debug().Int("day", p.day.day).Str("part", ps.Part).Bool("sample", sm).Dur("took", took).Msg("solved")
		}
	}
	return nil
}

// Run registers the D{day}p{part} methods of slvr, extracts their samples
// from src and runs the day and part selected on the command line.
func Run(year int, src []byte, slvr any) error {
	initFlags()
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}
	return run(year, src, slvr, cfg, options{
		day:        flagCurDay,
		part:       flagPart,
		onlySample: flagOnlySample,
		skipSample: flagSkipSample,
	})
}

func run(year int, src []byte, slvr any, cfg Config, opts options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.LogLevel, os.Stderr)
	newPuzzle := func(d day) *Puzzle {
		return &Puzzle{
			day:     d,
			cfg:     cfg,
			samples: samples,
			Log:     logger.With().Int("year", year).Int("day", d.day).Logger(),
		}
	}

	if opts.day != -1 {
		d, ok := days[opts.day]
		if !ok {
			return fmt.Errorf("%w %d", ErrUnknownDay, opts.day)
		}
		return runDay(slvr, newPuzzle(d), opts)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := runDay(slvr, newPuzzle(days[d]), opts); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
