// Package prompt collects the interactive answers needed before generation.
//
// All prompting goes through the Asker interface so the origin decision can
// be tested with canned answers and driven non-interactively from flags.
package prompt

import (
	"strings"

	goprompt "github.com/c-bata/go-prompt"
)

// Asker supplies answers to pre-generation questions.
type Asker interface {
	Ask(question string, suggestions ...string) string
}

// Terminal asks on the controlling terminal, offering the given suggestions
// as inline completions.
type Terminal struct{}

// Ask blocks until the user submits a line and returns it trimmed.
func (Terminal) Ask(question string, suggestions ...string) string {
	completer := func(d goprompt.Document) []goprompt.Suggest {
		sug := make([]goprompt.Suggest, 0, len(suggestions))
		for _, s := range suggestions {
			sug = append(sug, goprompt.Suggest{Text: s})
		}
		return goprompt.FilterHasPrefix(sug, d.GetWordBeforeCursor(), true)
	}
	return strings.TrimSpace(goprompt.Input(question+" ", completer))
}
