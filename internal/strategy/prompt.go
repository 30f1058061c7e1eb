package strategy

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

func (v variant) systemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an experienced education migration consultant writing a %s for %s.\n", v.document, v.authority)
	b.WriteString("Write in the first person as the applicant, in formal British or American English as appropriate for the destination.\n")
	b.WriteString("Use only facts present in the applicant profile. Never invent dates, amounts, institutions or family details.\n")
	b.WriteString("Return only the letter text, with no preamble, headings in markdown, or commentary.\n")
	for _, g := range v.guidance {
		b.WriteString(g)
		b.WriteByte('\n')
	}
	return b.String()
}

func (v variant) userPrompt(profile *domain.StudentProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s for a student applying to study in %s.\n", v.document, v.key.Country.DisplayName())
	fmt.Fprintf(&b, "Length: between %d and %d words.\n\n", v.words.Min, v.words.Max)

	if len(v.sections) > 0 {
		b.WriteString("Cover these sections in order:\n")
		for i, s := range v.sections {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
		b.WriteByte('\n')
	}

	b.WriteString("Applicant profile:\n")
	writeProfile(&b, profile.Data)
	return b.String()
}

// writeProfile renders profile data as sorted "key: value" lines.
// Nested values are rendered as compact JSON.
func writeProfile(b *strings.Builder, data map[string]any) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		val := data[k]
		if val == nil {
			continue
		}
		switch tv := val.(type) {
		case string:
			if strings.TrimSpace(tv) == "" {
				continue
			}
			fmt.Fprintf(b, "- %s: %s\n", k, tv)
		case bool, float64, int, int64:
			fmt.Fprintf(b, "- %s: %v\n", k, tv)
		default:
			raw, err := json.Marshal(tv)
			if err != nil {
				fmt.Fprintf(b, "- %s: %v\n", k, tv)
				continue
			}
			fmt.Fprintf(b, "- %s: %s\n", k, raw)
		}
	}
}
