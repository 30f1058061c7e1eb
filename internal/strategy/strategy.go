// Package strategy holds the per-(country, letter type) letter generators.
//
// Every strategy is a value of the same variant type, so the set is closed
// and adding a country means adding a variant to the registry, never
// touching the orchestrator. Variants hold no mutable state and are safe for
// concurrent use.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// Generator is the text-generation service boundary.
type Generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// Key identifies a strategy.
type Key struct {
	Country    domain.Country
	LetterType domain.LetterType
}

func (k Key) String() string {
	return string(k.Country) + "/" + string(k.LetterType)
}

// Draft is a generated, not yet persisted, letter.
type Draft struct {
	Title     string
	Content   string
	Model     string
	WordCount int
	WordRange domain.WordRange
}

// InRange reports whether the draft meets its strategy's word-count contract.
func (d *Draft) InRange() bool {
	return d.WordRange.Contains(d.WordCount)
}

// Strategy produces one kind of letter for one country.
type Strategy interface {
	Key() Key
	TitleFor(profile *domain.StudentProfile) string
	WordCountRange() domain.WordRange
	Generate(ctx context.Context, gen Generator, profile *domain.StudentProfile) (*Draft, error)
}

var errEmptyContent = errors.New("generator returned empty content")

// variant is the single concrete Strategy implementation. Each registered
// (country, letter type) pair is one variant value.
type variant struct {
	key       Key
	document  string // e.g. "Genuine Student statement"
	authority string // who reads the letter
	words     domain.WordRange
	sections  []string
	guidance  []string
}

var _ Strategy = variant{}

func (v variant) Key() Key                         { return v.key }
func (v variant) WordCountRange() domain.WordRange { return v.words }

func (v variant) TitleFor(profile *domain.StudentProfile) string {
	return fmt.Sprintf("%s - %s (%s)", v.document, applicantName(profile), v.key.Country.DisplayName())
}

func (v variant) Generate(ctx context.Context, gen Generator, profile *domain.StudentProfile) (*Draft, error) {
	req := domain.GenerationRequest{
		System:    v.systemPrompt(),
		Prompt:    v.userPrompt(profile),
		WordRange: v.words,
		MaxTokens: maxTokensFor(v.words),
	}

	res, err := gen.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", v.key, err)
	}

	content := strings.TrimSpace(res.Content)
	if content == "" {
		return nil, fmt.Errorf("strategy %s: %w", v.key, errEmptyContent)
	}

	wc := res.WordCount
	if wc == 0 {
		wc = domain.CountWords(content)
	}

	return &Draft{
		Title:     v.TitleFor(profile),
		Content:   content,
		Model:     res.Model,
		WordCount: wc,
		WordRange: v.words,
	}, nil
}

// maxTokensFor leaves headroom above the upper word bound
// (English prose averages about 1.4 tokens per word).
func maxTokensFor(r domain.WordRange) int {
	return r.Max*2 + 256
}

func applicantName(profile *domain.StudentProfile) string {
	for _, key := range []string{"fullName", "name"} {
		if n := strings.TrimSpace(profile.StringField(key)); n != "" {
			return n
		}
	}
	first := strings.TrimSpace(profile.StringField("firstName"))
	last := strings.TrimSpace(profile.StringField("lastName"))
	if n := strings.TrimSpace(first + " " + last); n != "" {
		return n
	}
	return "Applicant"
}
