package engine

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"mathspeak/pkg/mathtypes"
)

// goldenCorpus is the canonical expression set. The fixture records the full
// observable result for each entry so any phrasing drift shows up as a diff.
var goldenCorpus = []string{
	`\frac{1}{2}`,
	`\frac{d}{dx} f(x)`,
	`x^2 + y^2 = r^2`,
	`2 + 2 = 4`,
	`f(x) = x + 1`,
	`\int_0^1 x^2 dx`,
	`\lim_{x \to 0} \frac{\sin(x)}{x}`,
	`\sum_{i=1}^{n} i^2`,
	`x \in \mathbb{R}`,
	`P(A|B)`,
	`\sqrt{2} \approx 1.414`,
	`\begin{pmatrix} 1 & 2 \\ 3 & 4 \end{pmatrix}`,
}

func TestGoldenPipeline(t *testing.T) {
	eng := newTestEngine()

	var buf bytes.Buffer
	for _, input := range goldenCorpus {
		result := eng.Process(input, mathtypes.AudienceUndergraduate)
		fmt.Fprintf(&buf, "input:   %s\ncontext: %s\nspeech:  %s\n\n",
			input, result.Context, result.Processed)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "pipeline", buf.Bytes())
}
