package rules

import (
	"regexp"
	"strconv"
	"strings"

	"mathspeak/pkg/mathtypes"
)

// LinearAlgebra builds the handler for matrix, vector, and product notation.
// It also owns \cdot and \times, because whether they read as "dot"/"cross"
// or plain "times" is a phrasing decision driven by the detected context.
func LinearAlgebra() *Handler {
	return NewHandler(DomainLinearAlgebra, []PatternRule{
		{
			Matcher:     regexp.MustCompile(`(?s)\\begin\{[pbvBV]?matrix\}(.*?)\\end\{[pbvBV]?matrix\}`),
			Replacement: Computed(speakMatrix),
			Priority:    100,
			Description: "matrix environment",
		},
		{
			Matcher:     regexp.MustCompile(`\\det\s*`),
			Replacement: Literal("the determinant of "),
			Priority:    90,
			Description: "determinant",
		},
		{
			Matcher:     regexp.MustCompile(`\\vec\{([^{}]+)\}`),
			Replacement: Literal("vector ${1}"),
			Priority:    88,
			Description: "vector arrow",
		},
		{
			Matcher:     regexp.MustCompile(`\\mathbf\{([a-zA-Z])\}`),
			Replacement: Literal("vector ${1}"),
			Priority:    86,
			Description: "bold single-letter vector",
		},
		{
			Matcher:     regexp.MustCompile(`\\hat\{([^{}]+)\}`),
			Replacement: Literal("${1} hat"),
			Priority:    84,
			Description: "unit vector hat",
		},
		{
			Matcher:     regexp.MustCompile(`([a-zA-Z])\^\{?(?:T|\\top|\\intercal)\}?`),
			Replacement: Literal("${1} transpose"),
			Priority:    82,
			Description: "transpose superscript",
		},
		{
			Matcher:     regexp.MustCompile(`([A-Za-z])\^\{?-1\}?`),
			Replacement: Literal("${1} inverse"),
			Priority:    80,
			Description: "inverse superscript",
		},
		{
			Matcher:     regexp.MustCompile(`\\langle\s*([^{}]+?)\s*,\s*([^{}]+?)\s*\\rangle`),
			Replacement: Literal("the inner product of ${1} and ${2}"),
			Priority:    78,
			Description: "inner product brackets",
		},
		{
			Matcher:     regexp.MustCompile(`\\\|([^|]+)\\\|`),
			Replacement: Literal("the norm of ${1}"),
			Priority:    76,
			Description: "norm bars",
		},
		{
			Matcher:     regexp.MustCompile(`\\operatorname\{rank\}|\\rank\b`),
			Replacement: Literal("the rank of"),
			Priority:    74,
			Description: "rank",
		},
		{
			Matcher:     regexp.MustCompile(`\\operatorname\{tr\}|\\tr\b`),
			Replacement: Literal("the trace of"),
			Priority:    72,
			Description: "trace",
		},
		{
			Matcher: regexp.MustCompile(`\\cdot\b`),
			Replacement: Computed(func(_ []string, opts Options) string {
				if opts.Context == mathtypes.ContextLinearAlgebra {
					return "dot"
				}
				return "times"
			}),
			Priority:    40,
			Description: "centered dot",
		},
		{
			Matcher: regexp.MustCompile(`\\times\b`),
			Replacement: Computed(func(_ []string, opts Options) string {
				if opts.Context == mathtypes.ContextLinearAlgebra {
					return "cross"
				}
				return "times"
			}),
			Priority:    40,
			Description: "times sign",
		},
	})
}

// speakMatrix renders a matrix environment body row by row. The body uses
// \\ as the row separator and & as the column separator.
func speakMatrix(captures []string, _ Options) string {
	body := strings.TrimSpace(captures[1])
	if body == "" {
		return "an empty matrix"
	}
	rawRows := strings.Split(body, `\\`)
	rows := make([][]string, 0, len(rawRows))
	cols := 0
	for _, raw := range rawRows {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		cells := strings.Split(raw, "&")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if len(cells) > cols {
			cols = len(cells)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return "an empty matrix"
	}

	var b strings.Builder
	b.WriteString("the ")
	b.WriteString(CardinalWord(strconv.Itoa(len(rows))))
	b.WriteString(" by ")
	b.WriteString(CardinalWord(strconv.Itoa(cols)))
	b.WriteString(" matrix with ")
	for i, cells := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("row ")
		b.WriteString(CardinalWord(strconv.Itoa(i + 1)))
		b.WriteString(": ")
		b.WriteString(strings.Join(cells, ", "))
	}
	return b.String()
}
