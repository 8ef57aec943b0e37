package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mathspeak/pkg/mathtypes"
)

func defaultOpts() Options {
	return Options{Audience: mathtypes.AudienceUndergraduate, Context: mathtypes.ContextGeneral}
}

func TestCalculusHandler(t *testing.T) {
	h := Calculus()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "derivative operator",
			input:    `\frac{d}{dx}`,
			expected: "the derivative with respect to x of",
		},
		{
			name:     "derivative of a function",
			input:    `\frac{df}{dx}`,
			expected: "the derivative of f with respect to x",
		},
		{
			name:     "partial derivative",
			input:    `\frac{\partial f}{\partial x}`,
			expected: "the partial derivative of f with respect to x",
		},
		{
			name:     "mixed second partial",
			input:    `\frac{\partial^2 f}{\partial x \partial y}`,
			expected: "the second partial derivative of f with respect to x and y",
		},
		{
			name:     "second derivative operator",
			input:    `\frac{d^2}{dx^2}`,
			expected: "the second derivative with respect to x of",
		},
		{
			name:     "slash derivative",
			input:    `d/dt`,
			expected: "the derivative with respect to t of",
		},
		{
			name:     "prime",
			input:    `f'`,
			expected: "f prime",
		},
		{
			name:     "double prime",
			input:    `f''`,
			expected: "f double prime",
		},
		{
			name:     "definite integral with differential",
			input:    `\int_0^1 g dx`,
			expected: "the integral from 0 to 1 of g with respect to x",
		},
		{
			name:     "indefinite integral",
			input:    `\int g dx`,
			expected: "the integral of g with respect to x",
		},
		{
			name:     "limit",
			input:    `\lim_{x \to 0}`,
			expected: "the limit as x approaches 0 of",
		},
		{
			name:     "bounded sum",
			input:    `\sum_{i=1}^{n}`,
			expected: "the sum from i equals 1 to n of",
		},
		{
			name:     "bounded product",
			input:    `\prod_{k=1}^{m}`,
			expected: "the product from k equals 1 to m of",
		},
		{
			name:     "gradient",
			input:    `\nabla f`,
			expected: "the gradient of f",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, h.Process(tc.input, defaultOpts()))
		})
	}
}

func TestCalculusArrowByContext(t *testing.T) {
	h := Calculus()

	analysis := h.Process(`x \to 0`, Options{Context: mathtypes.ContextCalculus})
	assert.Equal(t, "x approaches 0", analysis)

	definition := h.Process(`f: A \to B`, Options{Context: mathtypes.ContextDefinition})
	assert.Equal(t, "f: A maps to B", definition)
}

func TestArithmeticHandler(t *testing.T) {
	h := Arithmetic()
	testCases := []struct {
		name     string
		input    string
		context  mathtypes.Context
		expected string
	}{
		{
			name:     "one half",
			input:    `\frac{1}{2}`,
			context:  mathtypes.ContextGeneral,
			expected: "one half",
		},
		{
			name:     "three quarters",
			input:    `\frac{3}{4}`,
			context:  mathtypes.ContextGeneral,
			expected: "three quarters",
		},
		{
			name:     "two thirds",
			input:    `\frac{2}{3}`,
			context:  mathtypes.ContextGeneral,
			expected: "two thirds",
		},
		{
			name:     "unnamed numeric fraction falls back to over",
			input:    `\frac{22}{7}`,
			context:  mathtypes.ContextGeneral,
			expected: "22 over 7",
		},
		{
			name:     "generic fraction",
			input:    `\frac{a}{b}`,
			context:  mathtypes.ContextGeneral,
			expected: "a over b",
		},
		{
			name:     "mixed number",
			input:    `2 \frac{1}{2}`,
			context:  mathtypes.ContextGeneral,
			expected: "2 and one half",
		},
		{
			name:     "equals reads as is in arithmetic context",
			input:    `2 + 2 = 4`,
			context:  mathtypes.ContextArithmetic,
			expected: "2  plus  2  is  4",
		},
		{
			name:     "equals elsewhere",
			input:    `y = 4`,
			context:  mathtypes.ContextGeneral,
			expected: "y  equals  4",
		},
		{
			name:     "binary minus",
			input:    `5 - 3`,
			context:  mathtypes.ContextGeneral,
			expected: "5 minus 3",
		},
		{
			name:     "division sign",
			input:    `6 \div 2`,
			context:  mathtypes.ContextGeneral,
			expected: "6  divided by  2",
		},
		{
			name:     "plus or minus",
			input:    `a \pm b`,
			context:  mathtypes.ContextGeneral,
			expected: "a plus or minus b",
		},
		{
			name:     "percent",
			input:    `50\%`,
			context:  mathtypes.ContextGeneral,
			expected: "50 percent",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{Audience: mathtypes.AudienceUndergraduate, Context: tc.context}
			assert.Equal(t, tc.expected, h.Process(tc.input, opts))
		})
	}
}

func TestAlgebraHandler(t *testing.T) {
	h := Algebra()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "squared",
			input:    `x^2`,
			expected: "x squared",
		},
		{
			name:     "cubed",
			input:    `y^3`,
			expected: "y cubed",
		},
		{
			name:     "higher power does not trigger squared",
			input:    `x^25`,
			expected: "x to the power of 25",
		},
		{
			name:     "braced power",
			input:    `x^{n+1}`,
			expected: "x to the power of n+1",
		},
		{
			name:     "square root",
			input:    `\sqrt{16}`,
			expected: "the square root of 16",
		},
		{
			name:     "cube root",
			input:    `\sqrt[3]{8}`,
			expected: "the cube root of 8",
		},
		{
			name:     "subscript",
			input:    `x_1`,
			expected: "x sub 1",
		},
		{
			name:     "natural log",
			input:    `\ln x`,
			expected: "the natural log of x",
		},
		{
			name:     "log with base",
			input:    `\log_2 n`,
			expected: "log base 2 of n",
		},
		{
			name:     "sine with argument",
			input:    `\sin(x)`,
			expected: "the sine of x",
		},
		{
			name:     "inverse tangent",
			input:    `\arctan(y)`,
			expected: "the inverse tangent of y",
		},
		{
			name:     "absolute value",
			input:    `|x|`,
			expected: "the absolute value of x",
		},
		{
			name:     "function application",
			input:    `f(x)`,
			expected: "f of x",
		},
		{
			name:     "two-argument function",
			input:    `g(x, y)`,
			expected: "g of x, y",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, h.Process(tc.input, defaultOpts()))
		})
	}
}

func TestAlgebraPowerPhrasingByAudience(t *testing.T) {
	h := Algebra()

	undergrad := h.Process(`x^{n}`, Options{Audience: mathtypes.AudienceUndergraduate})
	assert.Equal(t, "x to the power of n", undergrad)

	research := h.Process(`x^{n}`, Options{Audience: mathtypes.AudienceResearch})
	assert.Equal(t, "x to the n", research)
}

func TestSetTheoryHandler(t *testing.T) {
	h := SetTheory()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "membership",
			input:    `x \in A`,
			expected: "x is an element of A",
		},
		{
			name:     "union and intersection",
			input:    `A \cup B \cap C`,
			expected: "A union B intersect C",
		},
		{
			name:     "subset",
			input:    `A \subseteq B`,
			expected: "A is a subset of or equal to B",
		},
		{
			name:     "reals",
			input:    `\mathbb{R}`,
			expected: "the real numbers",
		},
		{
			name:     "set literal",
			input:    `\{1, 2, 3\}`,
			expected: "the set containing 1, 2, 3",
		},
		{
			name:     "set builder",
			input:    `\{x \mid x > 0\}`,
			expected: "the set of x such that x > 0",
		},
		{
			name:     "quantifiers",
			input:    `\forall x \exists y`,
			expected: "for all x there exists y",
		},
		{
			name:     "not equal",
			input:    `a \neq b`,
			expected: "a is not equal to b",
		},
		{
			name:     "implication",
			input:    `p \implies q`,
			expected: "p implies q",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, h.Process(tc.input, defaultOpts()))
		})
	}
}

func TestProbabilityHandler(t *testing.T) {
	h := Probability()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "conditional probability",
			input:    `P(A|B)`,
			expected: "the probability of A given B",
		},
		{
			name:     "plain probability",
			input:    `P(A)`,
			expected: "the probability of A",
		},
		{
			name:     "expected value",
			input:    `E[X]`,
			expected: "the expected value of X",
		},
		{
			name:     "variance",
			input:    `Var(X)`,
			expected: "the variance of X",
		},
		{
			name:     "binomial coefficient",
			input:    `\binom{5}{2}`,
			expected: "5 choose 2",
		},
		{
			name:     "factorial",
			input:    `n!`,
			expected: "n factorial",
		},
		{
			name:     "distribution tilde",
			input:    `X \sim N`,
			expected: "X is distributed as N",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, h.Process(tc.input, defaultOpts()))
		})
	}
}

func TestLinearAlgebraHandler(t *testing.T) {
	h := LinearAlgebra()
	testCases := []struct {
		name     string
		input    string
		context  mathtypes.Context
		expected string
	}{
		{
			name:     "two by two matrix",
			input:    `\begin{pmatrix} 1 & 2 \\ 3 & 4 \end{pmatrix}`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "the two by two matrix with row one: 1, 2, row two: 3, 4",
		},
		{
			name:     "determinant",
			input:    `\det A`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "the determinant of A",
		},
		{
			name:     "vector arrow",
			input:    `\vec{v}`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "vector v",
		},
		{
			name:     "transpose",
			input:    `A^T`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "A transpose",
		},
		{
			name:     "inverse",
			input:    `A^{-1}`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "A inverse",
		},
		{
			name:     "norm",
			input:    `\|v\|`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "the norm of v",
		},
		{
			name:     "dot product in linear algebra context",
			input:    `u \cdot v`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "u dot v",
		},
		{
			name:     "cdot reads times outside linear algebra",
			input:    `2 \cdot 3`,
			context:  mathtypes.ContextArithmetic,
			expected: "2 times 3",
		},
		{
			name:     "cross product in linear algebra context",
			input:    `u \times v`,
			context:  mathtypes.ContextLinearAlgebra,
			expected: "u cross v",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Options{Audience: mathtypes.AudienceUndergraduate, Context: tc.context}
			assert.Equal(t, tc.expected, h.Process(tc.input, opts))
		})
	}
}

func TestSymbolsHandler(t *testing.T) {
	h := Symbols()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "greek letters",
			input:    `\alpha \beta \gamma`,
			expected: "alpha beta gamma",
		},
		{
			name:     "capital greek",
			input:    `\Sigma`,
			expected: "capital sigma",
		},
		{
			name:     "variant epsilon",
			input:    `\varepsilon`,
			expected: "epsilon",
		},
		{
			name:     "infinity",
			input:    `\infty`,
			expected: "infinity",
		},
		{
			name:     "pi is not eaten by varpi",
			input:    `\pi \varpi`,
			expected: "pi pi",
		},
		{
			name:     "adjacent commands stay separate words",
			input:    `\alpha\beta`,
			expected: "alpha beta",
		},
		{
			name:     "residual braces become spaces",
			input:    `\unknowncmd{x}`,
			expected: `\unknowncmd x`,
		},
	}

	// Guard spaces in the replacements leave runs that cleanup collapses
	// downstream; compare collapsed here.
	collapse := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, collapse(h.Process(tc.input, defaultOpts())))
		})
	}
}

func TestCrossDomainPrePass(t *testing.T) {
	h := CrossDomain()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sizing commands removed",
			input:    `\left( x \right)`,
			expected: `( x )`,
		},
		{
			name:     "dfrac canonicalized",
			input:    `\dfrac{1}{2}`,
			expected: `\frac{1}{2}`,
		},
		{
			name:     "ascii not-equal canonicalized",
			input:    `a != b`,
			expected: `a \neq b`,
		},
		{
			name:     "text block unwrapped",
			input:    `\text{speed} = v`,
			expected: ` speed  = v`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, h.Process(tc.input, defaultOpts()))
		})
	}
}
