package suggest

import (
	"context"
	"strings"
	"unicode"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/timesheet"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexical is a word-overlap stand-in for a zero-shot classifier. It
// scores each candidate label by how many of its words occur in the task
// text and returns the best one. Ties go to the earlier candidate.
type Lexical struct {
	lang language.Tag
}

func NewLexical(lang language.Tag) *Lexical {
	return &Lexical{lang: lang}
}

var _ timesheet.ProjectSuggester = (*Lexical)(nil)

// Suggest implements timesheet.ProjectSuggester.
func (l *Lexical) Suggest(ctx context.Context, taskText string, candidateLabels []string) (string, error) {
	if strings.TrimSpace(taskText) == "" || len(candidateLabels) == 0 {
		return "", timesheet.ErrNoSuggestion
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// cases.Caser keeps state, so each call gets its own.
	lower := cases.Lower(l.lang)

	words := make(map[string]struct{})
	for _, w := range tokenize(lower, taskText) {
		words[w] = struct{}{}
	}

	best, bestScore := "", -1.0
	for _, label := range candidateLabels {
		tokens := tokenize(lower, label)
		if len(tokens) == 0 {
			continue
		}
		hits := 0
		for _, tok := range tokens {
			if _, ok := words[tok]; ok {
				hits++
			}
		}
		score := float64(hits) / float64(len(tokens))
		if score > bestScore {
			best, bestScore = label, score
		}
	}

	if best == "" {
		return "", timesheet.ErrNoSuggestion
	}
	return best, nil
}

func tokenize(lower cases.Caser, s string) []string {
	return strings.FieldsFunc(lower.String(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
