package matcher

import (
	"github.com/lib/pq"

	"campus-collab-backend/internal/database/models"
)

// BuildCatalog assembles the canned resource set for a project: the
// general starter resources, SDG-themed articles, and per-technology
// documentation for the detected stack. Callers attribute and dedupe.
func BuildCatalog(sdgs []int64, tech Technologies) []models.Resource {
	resources := generalResources(sdgs)
	resources = append(resources, languageResources(tech.Languages)...)
	resources = append(resources, frameworkResources(tech.Frameworks)...)
	return resources
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func containsInt64(haystack []int64, needle int64) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func generalResources(sdgs []int64) []models.Resource {
	resources := []models.Resource{
		{
			Title:       "GitHub - The Complete Guide",
			Description: "Learn everything you need to know about Git and GitHub for effective collaboration and version control in software development.",
			Type:        models.ResourceTypeTutorial,
			URL:         "https://docs.github.com/en/get-started/quickstart",
			Topics:      pq.StringArray{"version control", "collaboration", "git"},
			Level:       models.ResourceLevelBeginner,
			Rating:      5,
		},
		{
			Title:       "Visual Studio Code - Editor Setup and Productivity Tips",
			Description: "Make the most of VS Code with extensions, shortcuts, and configurations to boost your development workflow.",
			Type:        models.ResourceTypeArticle,
			URL:         "https://code.visualstudio.com/docs/getstarted/tips-and-tricks",
			Topics:      pq.StringArray{"tools", "productivity", "editor"},
			Level:       models.ResourceLevelBeginner,
			Rating:      5,
		},
		{
			Title:       "The Pragmatic Programmer: Your Journey to Mastery",
			Description: "Essential reading for all developers focused on practical advice and best practices for writing maintainable, high-quality code.",
			Type:        models.ResourceTypeBook,
			URL:         "https://pragprog.com/titles/tpp20/the-pragmatic-programmer-20th-anniversary-edition/",
			Topics:      pq.StringArray{"best practices", "software engineering", "career"},
			Level:       models.ResourceLevelIntermediate,
			Rating:      5,
		},
	}

	if containsInt64(sdgs, 1) || containsInt64(sdgs, 2) {
		resources = append(resources, models.Resource{
			Title:       "Technology Solutions for Zero Hunger",
			Description: "Explore how technology is being used to address SDG 2: Zero Hunger through agricultural innovations, supply chain improvements, and more.",
			Type:        models.ResourceTypeArticle,
			URL:         "https://sdgs.un.org/goals/goal2",
			Topics:      pq.StringArray{"sustainability", "agriculture", "food security"},
			SDGs:        pq.Int64Array{1, 2},
			Level:       models.ResourceLevelIntermediate,
			Rating:      4,
		})
	}

	if containsInt64(sdgs, 3) {
		resources = append(resources, models.Resource{
			Title:       "Digital Health Innovations for Global Health",
			Description: "Learn about healthcare technologies and digital solutions addressing SDG 3: Good Health and Well-being globally.",
			Type:        models.ResourceTypeArticle,
			URL:         "https://sdgs.un.org/goals/goal3",
			Topics:      pq.StringArray{"healthcare", "digital health", "telemedicine"},
			SDGs:        pq.Int64Array{3},
			Level:       models.ResourceLevelIntermediate,
			Rating:      4,
		})
	}

	if containsInt64(sdgs, 4) {
		resources = append(resources, models.Resource{
			Title:       "EdTech Resources for Quality Education",
			Description: "Discover educational technologies that support SDG 4: Quality Education through accessible, engaging learning platforms.",
			Type:        models.ResourceTypeArticle,
			URL:         "https://sdgs.un.org/goals/goal4",
			Topics:      pq.StringArray{"education", "edtech", "e-learning"},
			SDGs:        pq.Int64Array{4},
			Level:       models.ResourceLevelIntermediate,
			Rating:      4,
		})
	}

	return resources
}

func languageResources(languages []string) []models.Resource {
	var resources []models.Resource

	if containsString(languages, "javascript") {
		resources = append(resources,
			models.Resource{
				Title:       "MDN JavaScript Guide",
				Description: "Comprehensive JavaScript reference and tutorials from Mozilla Developer Network.",
				Type:        models.ResourceTypeDocumentation,
				URL:         "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide",
				Topics:      pq.StringArray{"web development", "frontend"},
				Languages:   pq.StringArray{"javascript"},
				Level:       models.ResourceLevelBeginner,
				Rating:      5,
			},
			models.Resource{
				Title:       "JavaScript - The Good Parts",
				Description: "Classic book focusing on the best features of JavaScript while avoiding its pitfalls.",
				Type:        models.ResourceTypeBook,
				URL:         "https://www.oreilly.com/library/view/javascript-the-good/9780596517748/",
				Topics:      pq.StringArray{"web development", "best practices"},
				Languages:   pq.StringArray{"javascript"},
				Level:       models.ResourceLevelIntermediate,
				Rating:      5,
			},
		)
	}

	if containsString(languages, "python") {
		resources = append(resources,
			models.Resource{
				Title:       "Python Official Documentation",
				Description: "Comprehensive guides, tutorials, and library references for Python programming.",
				Type:        models.ResourceTypeDocumentation,
				URL:         "https://docs.python.org/3/",
				Topics:      pq.StringArray{"programming", "data science"},
				Languages:   pq.StringArray{"python"},
				Level:       models.ResourceLevelBeginner,
				Rating:      5,
			},
			models.Resource{
				Title:       "Automate the Boring Stuff with Python",
				Description: "Practical programming for beginners using Python to automate everyday tasks.",
				Type:        models.ResourceTypeBook,
				URL:         "https://automatetheboringstuff.com/",
				Topics:      pq.StringArray{"automation", "productivity"},
				Languages:   pq.StringArray{"python"},
				Level:       models.ResourceLevelBeginner,
				Rating:      5,
			},
		)
	}

	if containsString(languages, "java") {
		resources = append(resources, models.Resource{
			Title:       "Oracle Java Tutorial",
			Description: "Official tutorials for Java programming covering all aspects of the language and platform.",
			Type:        models.ResourceTypeDocumentation,
			URL:         "https://docs.oracle.com/javase/tutorial/",
			Topics:      pq.StringArray{"enterprise", "mobile"},
			Languages:   pq.StringArray{"java"},
			Level:       models.ResourceLevelBeginner,
			Rating:      4,
		})
	}

	return resources
}

func frameworkResources(frameworks []string) []models.Resource {
	var resources []models.Resource

	if containsString(frameworks, "react") {
		resources = append(resources,
			models.Resource{
				Title:       "React Official Documentation",
				Description: "Learn React from its official documentation with interactive examples and comprehensive guides.",
				Type:        models.ResourceTypeDocumentation,
				URL:         "https://react.dev/",
				Topics:      pq.StringArray{"web development", "frontend", "UI"},
				Languages:   pq.StringArray{"javascript"},
				Frameworks:  pq.StringArray{"react"},
				Level:       models.ResourceLevelBeginner,
				Rating:      5,
			},
			models.Resource{
				Title:       "React Patterns and Best Practices",
				Description: "Advanced techniques and patterns for building scalable React applications.",
				Type:        models.ResourceTypeArticle,
				URL:         "https://reactpatterns.com/",
				Topics:      pq.StringArray{"web development", "architecture"},
				Languages:   pq.StringArray{"javascript"},
				Frameworks:  pq.StringArray{"react"},
				Level:       models.ResourceLevelIntermediate,
				Rating:      4,
			},
		)
	}

	if containsString(frameworks, "node") || containsString(frameworks, "express") {
		resources = append(resources, models.Resource{
			Title:       "Node.js Documentation",
			Description: "Official documentation for Node.js runtime and APIs.",
			Type:        models.ResourceTypeDocumentation,
			URL:         "https://nodejs.org/en/docs/",
			Topics:      pq.StringArray{"backend", "server", "api"},
			Languages:   pq.StringArray{"javascript"},
			Frameworks:  pq.StringArray{"node"},
			Level:       models.ResourceLevelBeginner,
			Rating:      5,
		})
	}

	if containsString(frameworks, "django") || containsString(frameworks, "flask") {
		resources = append(resources, models.Resource{
			Title:       "Django for Beginners",
			Description: "Comprehensive guide to building web applications with Django and Python.",
			Type:        models.ResourceTypeTutorial,
			URL:         "https://djangoforbeginners.com/",
			Topics:      pq.StringArray{"web development", "backend"},
			Languages:   pq.StringArray{"python"},
			Frameworks:  pq.StringArray{"django"},
			Level:       models.ResourceLevelBeginner,
			Rating:      4,
		})
	}

	return resources
}
