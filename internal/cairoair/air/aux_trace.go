package air

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vybium/cairo-air/internal/cairoair/core"
	"github.com/vybium/cairo-air/internal/cairoair/trace"
)

// ErrProgramTooLarge is returned (wrapped) when the program image does
// not fit the memory stream it is spliced into — a caller bug, not a
// probabilistic failure, and distinct from a degenerate RAP challenge.
var ErrProgramTooLarge = errors.New("program does not fit the memory stream it is spliced into")

// BuildAuxiliaryTrace builds the auxiliary permutation trace: it extracts
// the original memory address/value streams from the main trace, splices
// the program image into the public region, stably sorts by address,
// builds the grand product permutation column, and repacks everything
// into a 12-column trace with the same row count as the main trace.
func BuildAuxiliaryTrace(main *trace.Table, challenges *RAPChallenges, public *PublicInputs) (*trace.Table, error) {
	if main.NumCols() != NumMainColumns {
		return nil, fmt.Errorf("main trace must have %d columns, got %d", NumMainColumns, main.NumCols())
	}

	field := main.Field()

	addressesOriginal := main.GetColumns(MemoryAddressColumns[:])
	valuesOriginal := main.GetColumns(MemoryValueColumns[:])

	addressesSpliced, valuesSpliced, err := spliceProgramIntoPublicSection(addressesOriginal, valuesOriginal, public)
	if err != nil {
		return nil, err
	}

	addressesSorted, valuesSorted := sortByMemoryAddress(addressesSpliced, valuesSpliced)

	permutationColumn, err := generatePermutationArgumentColumn(
		addressesOriginal, valuesOriginal, addressesSorted, valuesSorted, challenges,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build permutation argument column: %w", err)
	}

	n := len(addressesSorted)
	if n%4 != 0 {
		return nil, fmt.Errorf("sorted memory stream length %d is not a multiple of 4", n)
	}

	columns := make([][]*core.FieldElement, NumAuxColumns)
	for c := 0; c < NumAuxColumns; c++ {
		columns[c] = make([]*core.FieldElement, n/4)
	}

	for i := 0; i < n; i += 4 {
		row := i / 4
		for k := 0; k < 4; k++ {
			columns[k][row] = addressesSorted[i+k]
			columns[4+k][row] = valuesSorted[i+k]
			columns[8+k][row] = permutationColumn[i+k]
		}
	}
	return trace.NewFromColumns(field, columns)
}

// spliceProgramIntoPublicSection replaces the final |program| entries of
// the address/value streams with the continuous sequence 1..=P and the
// program image itself (step 2).
func spliceProgramIntoPublicSection(
	addresses, values []*core.FieldElement, public *PublicInputs,
) ([]*core.FieldElement, []*core.FieldElement, error) {
	p := len(public.Program)
	if p > len(addresses) {
		return nil, nil, fmt.Errorf("%w: program of size %d larger than memory stream of length %d", ErrProgramTooLarge, p, len(addresses))
	}

	field := addresses[0].Field()
	splicePoint := len(addresses) - p

	outAddr := append([]*core.FieldElement(nil), addresses[:splicePoint]...)
	outVal := append([]*core.FieldElement(nil), values[:splicePoint]...)

	for i := 0; i < p; i++ {
		outAddr = append(outAddr, field.NewElementFromUint64(uint64(i+1)))
		outVal = append(outVal, public.Program[i])
	}

	return outAddr, outVal, nil
}

// sortByMemoryAddress stable-sorts (address, value) pairs by the
// address's canonical integer representative (step 3).
func sortByMemoryAddress(addresses, values []*core.FieldElement) ([]*core.FieldElement, []*core.FieldElement) {
	n := len(addresses)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return addresses[indices[i]].Big().Cmp(addresses[indices[j]].Big()) < 0
	})

	sortedAddr := make([]*core.FieldElement, n)
	sortedVal := make([]*core.FieldElement, n)
	for i, idx := range indices {
		sortedAddr[i] = addresses[idx]
		sortedVal[i] = values[idx]
	}
	return sortedAddr, sortedVal
}

// generatePermutationArgumentColumn builds the running grand product
// p[i] = p[i-1] * f(a[i],v[i],a'[i],v'[i]) where
// f(a,v,a',v') = (z-(a+alpha*v)) / (z-(a'+alpha*v')) (step 4). The
// batch inversion amortizes the cost of the per-row division.
func generatePermutationArgumentColumn(
	addressesOriginal, valuesOriginal, addressesSorted, valuesSorted []*core.FieldElement,
	challenges *RAPChallenges,
) ([]*core.FieldElement, error) {
	n := len(addressesSorted)
	field := challenges.Z.Field()
	numerators := make([]*core.FieldElement, n)
	denominators := make([]*core.FieldElement, n)

	for i := 0; i < n; i++ {
		numerators[i] = challenges.Z.Sub(addressesOriginal[i].Add(challenges.Alpha.Mul(valuesOriginal[i])))
		denominators[i] = challenges.Z.Sub(addressesSorted[i].Add(challenges.Alpha.Mul(valuesSorted[i])))
	}

	invDenominators, err := field.BatchInversion(denominators)
	if err != nil {
		return nil, fmt.Errorf("degenerate challenge during grand product construction: %w", err)
	}

	permutationColumn := make([]*core.FieldElement, n)
	permutationColumn[0] = numerators[0].Mul(invDenominators[0])
	for i := 1; i < n; i++ {
		term := numerators[i].Mul(invDenominators[i])
		permutationColumn[i] = permutationColumn[i-1].Mul(term)
	}

	return permutationColumn, nil
}
