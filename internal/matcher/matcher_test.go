package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTechnologies(t *testing.T) {
	tests := []struct {
		name               string
		text               string
		expectedLanguages  []string
		expectedFrameworks []string
	}{
		{
			name:               "react app with node",
			text:               "A React app with Node and MongoDB",
			expectedLanguages:  nil,
			expectedFrameworks: []string{"react", "node"},
		},
		{
			name:               "python with django",
			text:               "A Python dashboard built on Django",
			expectedLanguages:  []string{"python"},
			expectedFrameworks: []string{"django"},
		},
		{
			name:               "no technologies mentioned",
			text:               "A platform connecting farmers to local markets",
			expectedLanguages:  nil,
			expectedFrameworks: nil,
		},
		{
			name:               "case insensitive",
			text:               "TypeScript frontend with ANGULAR",
			expectedLanguages:  []string{"typescript"},
			expectedFrameworks: []string{"angular"},
		},
		{
			name:               "multiple languages",
			text:               "Backend in Go and Rust with a Flutter client",
			expectedLanguages:  []string{"go", "rust"},
			expectedFrameworks: []string{"flutter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := DetectTechnologies(tt.text)
			assert.Equal(t, tt.expectedLanguages, tech.Languages)
			assert.Equal(t, tt.expectedFrameworks, tech.Frameworks)
		})
	}
}

func TestWithFallback(t *testing.T) {
	assumed := DetectTechnologies("nothing recognizable").WithFallback()
	assert.Equal(t, []string{"javascript", "python"}, assumed.Languages)

	detected := Technologies{Languages: []string{"go"}}.WithFallback()
	assert.Equal(t, []string{"go"}, detected.Languages)
}

func TestWithFallbackIsCopied(t *testing.T) {
	first := DetectTechnologies("nothing recognizable").WithFallback()
	first.Languages[0] = "mutated"

	again := DetectTechnologies("still nothing").WithFallback()
	assert.Equal(t, []string{"javascript", "python"}, again.Languages)
}

func TestBuildCatalogGeneralOnly(t *testing.T) {
	catalog := BuildCatalog(nil, Technologies{})

	assert.Len(t, catalog, 3)
	for _, resource := range catalog {
		assert.NotEmpty(t, resource.URL)
		assert.Empty(t, resource.Languages)
		assert.Empty(t, resource.Frameworks)
	}
}

func TestBuildCatalogSDGArticles(t *testing.T) {
	catalog := BuildCatalog([]int64{3, 4}, Technologies{})

	urls := make([]string, 0, len(catalog))
	for _, resource := range catalog {
		urls = append(urls, resource.URL)
	}
	assert.Contains(t, urls, "https://sdgs.un.org/goals/goal3")
	assert.Contains(t, urls, "https://sdgs.un.org/goals/goal4")
	assert.NotContains(t, urls, "https://sdgs.un.org/goals/goal2")
}

func TestBuildCatalogTechnologyDocs(t *testing.T) {
	tech := Technologies{
		Languages:  []string{"javascript", "python"},
		Frameworks: []string{"react", "node"},
	}
	catalog := BuildCatalog([]int64{}, tech)

	urls := make([]string, 0, len(catalog))
	for _, resource := range catalog {
		urls = append(urls, resource.URL)
	}
	assert.Contains(t, urls, "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide")
	assert.Contains(t, urls, "https://docs.python.org/3/")
	assert.Contains(t, urls, "https://react.dev/")
	assert.Contains(t, urls, "https://nodejs.org/en/docs/")

	// node and express share one entry, so no duplicate URLs
	seen := make(map[string]bool)
	for _, url := range urls {
		assert.False(t, seen[url], "duplicate url %s", url)
		seen[url] = true
	}
}
