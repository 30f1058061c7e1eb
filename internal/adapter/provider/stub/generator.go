// Package stub provides a deterministic offline letter generator for local
// runs and tests.
package stub

import (
	"context"
	"strings"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// Model is recorded as modelUsed for stub letters.
const Model = "stub"

// Generator writes filler text of a length in the middle of the requested range.
type Generator struct{}

// New creates a stub generator.
func New() *Generator { return &Generator{} }

// Generate honours ctx cancellation and is otherwise instantaneous.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := req.WordRange.Min + (req.WordRange.Max-req.WordRange.Min)/2
	if target <= 0 {
		target = 100
	}

	vocab := strings.Fields(req.Prompt)
	if len(vocab) == 0 {
		vocab = []string{"letter"}
	}

	var b strings.Builder
	b.WriteString("Dear Visa Officer,\n\n")
	written := 3
	for i := 0; written < target; i++ {
		if i > 0 && i%80 == 0 {
			b.WriteString("\n\n")
		} else if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(vocab[i%len(vocab)])
		written++
	}

	content := b.String()
	return &domain.GenerationResult{
		Content:   content,
		Model:     Model,
		WordCount: domain.CountWords(content),
	}, nil
}
