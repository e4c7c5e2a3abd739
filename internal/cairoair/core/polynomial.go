package core

import "fmt"

// Polynomial represents a polynomial with coefficients in a finite field.
type Polynomial struct {
	coefficients []*FieldElement
	field        *Field
}

// NewPolynomial creates a new polynomial from field elements, trimming
// leading zero coefficients.
func NewPolynomial(coefficients []*FieldElement) (*Polynomial, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("polynomial must have at least one coefficient")
	}

	field := coefficients[0].Field()
	for i, coeff := range coefficients {
		if !coeff.Field().Equals(field) {
			return nil, fmt.Errorf("coefficient %d is from a different field", i)
		}
	}

	trimmed := coefficients
	for len(trimmed) > 1 && trimmed[len(trimmed)-1].IsZero() {
		trimmed = trimmed[:len(trimmed)-1]
	}

	return &Polynomial{coefficients: trimmed, field: field}, nil
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Field returns the field the polynomial is defined over.
func (p *Polynomial) Field() *Field {
	return p.field
}

// Coefficient returns the coefficient of the given degree, or zero if out
// of range.
func (p *Polynomial) Coefficient(degree int) *FieldElement {
	if degree < 0 || degree >= len(p.coefficients) {
		return p.field.Zero()
	}
	return p.coefficients[degree]
}

// Coefficients returns a copy of the polynomial's coefficients, low degree
// first.
func (p *Polynomial) Coefficients() []*FieldElement {
	coeffs := make([]*FieldElement, len(p.coefficients))
	copy(coeffs, p.coefficients)
	return coeffs
}

// Eval evaluates the polynomial at the given point by Horner's method.
func (p *Polynomial) Eval(point *FieldElement) *FieldElement {
	if !point.Field().Equals(p.field) {
		panic("cannot evaluate polynomial at point from different field")
	}

	result := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = result.Mul(point).Add(p.coefficients[i])
	}
	return result
}

// Add adds two polynomials.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("cannot add polynomials from different fields")
	}

	maxDegree := p.Degree()
	if other.Degree() > maxDegree {
		maxDegree = other.Degree()
	}

	coefficients := make([]*FieldElement, maxDegree+1)
	for i := 0; i <= maxDegree; i++ {
		coefficients[i] = p.Coefficient(i).Add(other.Coefficient(i))
	}

	return NewPolynomial(coefficients)
}

// Mul multiplies two polynomials.
func (p *Polynomial) Mul(other *Polynomial) (*Polynomial, error) {
	if !p.field.Equals(other.field) {
		return nil, fmt.Errorf("cannot multiply polynomials from different fields")
	}

	coefficients := make([]*FieldElement, p.Degree()+other.Degree()+1)
	for i := range coefficients {
		coefficients[i] = p.field.Zero()
	}

	for i, coeff1 := range p.coefficients {
		for j, coeff2 := range other.coefficients {
			coefficients[i+j] = coefficients[i+j].Add(coeff1.Mul(coeff2))
		}
	}

	return NewPolynomial(coefficients)
}

// MulScalar multiplies the polynomial by a scalar.
func (p *Polynomial) MulScalar(scalar *FieldElement) (*Polynomial, error) {
	if !scalar.Field().Equals(p.field) {
		return nil, fmt.Errorf("cannot multiply by scalar from different field")
	}

	coefficients := make([]*FieldElement, len(p.coefficients))
	for i, coeff := range p.coefficients {
		coefficients[i] = coeff.Mul(scalar)
	}
	return NewPolynomial(coefficients)
}

// Interpolate returns the unique lowest-degree polynomial passing through
// (domain[i], values[i]) for all i, via Lagrange interpolation. Nothing in
// the AIR or its tests interpolates trace columns with it; only this
// package's own tests call it.
func Interpolate(domain, values []*FieldElement) (*Polynomial, error) {
	if len(domain) != len(values) {
		return nil, fmt.Errorf("domain and values length mismatch")
	}
	if len(domain) == 0 {
		return nil, fmt.Errorf("cannot interpolate an empty domain")
	}

	field := domain[0].Field()
	result, err := NewPolynomial([]*FieldElement{field.Zero()})
	if err != nil {
		return nil, err
	}

	for i := range domain {
		basis, err := lagrangeBasis(i, domain)
		if err != nil {
			return nil, fmt.Errorf("lagrange basis %d: %w", i, err)
		}
		scaled, err := basis.MulScalar(values[i])
		if err != nil {
			return nil, err
		}
		result, err = result.Add(scaled)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func lagrangeBasis(i int, domain []*FieldElement) (*Polynomial, error) {
	field := domain[i].Field()
	result, err := NewPolynomial([]*FieldElement{field.One()})
	if err != nil {
		return nil, err
	}

	xi := domain[i]
	for j, xj := range domain {
		if j == i {
			continue
		}

		denominator := xi.Sub(xj)
		if denominator.IsZero() {
			return nil, fmt.Errorf("duplicate domain points: x_%d = x_%d", i, j)
		}
		invDenominator, err := denominator.Inv()
		if err != nil {
			return nil, err
		}

		linear, err := NewPolynomial([]*FieldElement{xj.Neg(), field.One()})
		if err != nil {
			return nil, err
		}
		scaled, err := linear.MulScalar(invDenominator)
		if err != nil {
			return nil, err
		}
		result, err = result.Mul(scaled)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
