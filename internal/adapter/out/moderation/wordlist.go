package moderation

import (
	"context"
	"strings"
	"unicode"

	"postboard/internal/service"
)

// WordlistClassifier flags text containing any blocked word. Matching is
// case-insensitive and works on whole words.
type WordlistClassifier struct {
	blocked map[string]struct{}
}

func NewWordlistClassifier(words []string) *WordlistClassifier {
	blocked := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			blocked[w] = struct{}{}
		}
	}
	return &WordlistClassifier{blocked: blocked}
}

func (c *WordlistClassifier) Classify(ctx context.Context, text string) (service.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return service.VerdictUnknown, err
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if _, ok := c.blocked[w]; ok {
			return service.VerdictOffensive, nil
		}
	}
	return service.VerdictAcceptable, nil
}
