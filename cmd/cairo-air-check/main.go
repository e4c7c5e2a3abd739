// cairo-air-check reads a Cairo program as JSON lines from stdin, runs it
// through the toy executor in internal/cairoair/vm, builds the AIR's
// main and auxiliary traces, and reports whether every transition and
// boundary constraint is satisfied. It exists to exercise the AIR
// end-to-end from the command line; the AIR contract itself has no CLI
// surface.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/vybium/cairo-air/internal/cairoair/air"
	"github.com/vybium/cairo-air/internal/cairoair/channel"
	"github.com/vybium/cairo-air/internal/cairoair/config"
	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
	"github.com/vybium/cairo-air/internal/cairoair/vm"
)

// ProgramInput is one line of stdin: a Cairo program as hex-string
// field elements (with or without a leading "0x"), plus an execution
// budget. FieldModulusHex and
// ExtensionFactor are optional overrides of the default config; leaving
// both unset runs the Stark-252 field with a blowup of 4.
type ProgramInput struct {
	Program         []string `json:"program"`
	MaxSteps        int      `json:"max_steps"`
	FieldModulusHex string   `json:"field_modulus_hex,omitempty"`
	ExtensionFactor int      `json:"extension_factor,omitempty"`
}

// CheckResult is the JSON object written to stdout.
type CheckResult struct {
	OK                bool     `json:"ok"`
	NumSteps          int      `json:"num_steps"`
	TraceLength       int      `json:"trace_length"`
	FailedConstraints []int    `json:"failed_constraints,omitempty"`
	BoundaryFailures  []string `json:"boundary_failures,omitempty"`
	Error             string   `json:"error,omitempty"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		fatal("failed to read program input")
	}

	var input ProgramInput
	if err := json.Unmarshal(scanner.Bytes(), &input); err != nil {
		fatal(fmt.Sprintf("failed to parse program input: %v", err))
	}

	result, err := check(input)
	if err != nil {
		result = &CheckResult{OK: false, Error: err.Error()}
	}

	out, err := json.Marshal(result)
	if err != nil {
		fatal(fmt.Sprintf("failed to serialize result: %v", err))
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

func check(input ProgramInput) (*CheckResult, error) {
	cfg := config.DefaultConfig()
	if input.FieldModulusHex != "" {
		modulus, ok := new(big.Int).SetString(strings.TrimPrefix(input.FieldModulusHex, "0x"), 16)
		if !ok {
			return nil, fmt.Errorf("invalid field_modulus_hex: %s", input.FieldModulusHex)
		}
		cfg = cfg.WithFieldModulus(modulus)
	}
	if input.ExtensionFactor != 0 {
		cfg = cfg.WithExtensionFactor(input.ExtensionFactor)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	field, err := cfg.Field()
	if err != nil {
		return nil, fmt.Errorf("failed to build field: %w", err)
	}

	program := make([]*core.FieldElement, len(input.Program))
	for i, s := range input.Program {
		elem, err := field.NewElementFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("program[%d]: %w", i, err)
		}
		program[i] = elem
	}

	maxSteps := input.MaxSteps
	if maxSteps == 0 {
		maxSteps = 4096
	}

	logStderr(fmt.Sprintf("executing program of %d words for up to %d steps", len(program), maxSteps))
	regTrace, memory, err := vm.Run(field, program, maxSteps)
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w", err)
	}

	nonPadded, err := vm.BuildExecutionTrace(field, regTrace, memory)
	if err != nil {
		return nil, fmt.Errorf("failed to build execution trace: %w", err)
	}

	public := &air.PublicInputs{
		PcInit:   regTrace[0].Pc,
		ApInit:   regTrace[0].Ap,
		FpInit:   regTrace[0].Fp,
		PcFinal:  regTrace[len(regTrace)-1].Pc,
		ApFinal:  regTrace[len(regTrace)-1].Ap,
		Program:  program,
		NumSteps: len(regTrace),
	}

	ctx := air.NewContext(len(program), public.NumSteps)

	mainTrace, err := air.BuildMainTrace(nonPadded, ctx.TraceLength)
	if err != nil {
		return nil, fmt.Errorf("failed to build main trace: %w", err)
	}

	ch := channel.New(field)
	challenges := air.BuildRAPChallenges(ch)

	auxTrace, err := air.BuildAuxiliaryTrace(mainTrace, challenges, public)
	if err != nil {
		return nil, fmt.Errorf("failed to build auxiliary trace: %w", err)
	}

	combinedCols := make([][]*core.FieldElement, air.NumTotalColumns)
	for c := 0; c < air.NumMainColumns; c++ {
		combinedCols[c] = mainTrace.Column(c)
	}
	for c := 0; c < air.NumAuxColumns; c++ {
		combinedCols[air.NumMainColumns+c] = auxTrace.Column(c)
	}
	combined, err := trace.NewFromColumns(field, combinedCols)
	if err != nil {
		return nil, fmt.Errorf("failed to combine traces: %w", err)
	}

	failed := map[int]bool{}
	for row := 0; row < ctx.TraceLength; row++ {
		frame, err := air.NewFrame(combined, row)
		if err != nil {
			return nil, fmt.Errorf("failed to build frame at row %d: %w", row, err)
		}
		evaluations := air.ComputeTransition(frame, challenges)
		for k, value := range evaluations {
			if row >= ctx.TraceLength-ctx.TransitionExemptions[k] {
				continue
			}
			if !value.IsZero() {
				failed[k] = true
			}
		}
	}

	var failedList []int
	for k := range failed {
		failedList = append(failedList, k)
	}

	boundary := air.BuildBoundaryConstraints(ctx, challenges, public)
	var boundaryFailures []string
	for _, bc := range boundary.Constraints {
		actual := combined.Get(bc.Row, bc.Column)
		if !actual.Equal(bc.Value) {
			boundaryFailures = append(boundaryFailures, fmt.Sprintf("column %d row %d", bc.Column, bc.Row))
		}
	}

	return &CheckResult{
		OK:                len(failedList) == 0 && len(boundaryFailures) == 0,
		NumSteps:          public.NumSteps,
		TraceLength:       ctx.TraceLength,
		FailedConstraints: failedList,
		BoundaryFailures:  boundaryFailures,
	}, nil
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "cairo-air-check:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
