package matcher

import (
	"strings"
)

// knownLanguages are the programming languages the detector recognizes
// in free-form project text.
var knownLanguages = []string{
	"javascript", "python", "java", "c#", "c++", "typescript", "php", "ruby",
	"swift", "kotlin", "go", "rust", "scala", "dart", "r",
}

// knownFrameworks are the frameworks and libraries the detector recognizes.
var knownFrameworks = []string{
	"react", "angular", "vue", "svelte", "node", "express", "django", "flask",
	"spring", "laravel", "ruby on rails", "next.js", "nuxt", "flutter",
	"android", "ios", "tensorflow", "pytorch", "scikit-learn", "pandas",
}

// fallbackLanguages is assumed for catalog generation when the text
// names no language at all.
var fallbackLanguages = []string{"javascript", "python"}

// Technologies holds the languages and frameworks detected in project text
type Technologies struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
}

// DetectTechnologies scans free-form text for known language and framework
// names. Single-token terms match whole words only, so "r" and "go" do not
// fire on every word containing those letters; multi-word terms match as
// substrings. Both sets stay empty when the text names nothing known.
func DetectTechnologies(text string) Technologies {
	lower := strings.ToLower(text)
	words := wordSet(lower)

	var languages []string
	for _, lang := range knownLanguages {
		if termPresent(lower, words, lang) {
			languages = append(languages, lang)
		}
	}

	var frameworks []string
	for _, framework := range knownFrameworks {
		if termPresent(lower, words, framework) {
			frameworks = append(frameworks, framework)
		}
	}

	return Technologies{Languages: languages, Frameworks: frameworks}
}

// WithFallback assumes a generic web stack when no language was detected.
// Catalog generation applies it so the canned set is never empty; matching
// passes the raw sets through so an untagged project matches anything.
func (t Technologies) WithFallback() Technologies {
	if len(t.Languages) > 0 {
		return t
	}
	t.Languages = append([]string(nil), fallbackLanguages...)
	return t
}

func termPresent(text string, words map[string]struct{}, term string) bool {
	if strings.Contains(term, " ") {
		return strings.Contains(text, term)
	}
	_, ok := words[term]
	return ok
}

func wordSet(lower string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(lower) {
		words[strings.Trim(word, ".,!?;:()[]\"'")] = struct{}{}
	}
	return words
}
