package synthesis

import (
	"slices"

	"github.com/eleven-am/marketplace-analytics/internal/shared"
)

// ModelTemplate seeds one synthetic marketplace listing.
type ModelTemplate struct {
	Name        string
	Description string
	Category    shared.ModelCategory
}

// Catalog is the immutable list of templates synthetic dashboards draw from.
type Catalog struct {
	templates []ModelTemplate
}

func NewCatalog(templates []ModelTemplate) Catalog {
	return Catalog{templates: slices.Clone(templates)}
}

func (c Catalog) Len() int { return len(c.templates) }

// At wraps around so any index maps to a template.
func (c Catalog) At(i int) ModelTemplate {
	return c.templates[i%len(c.templates)]
}

func (c Catalog) Templates() []ModelTemplate {
	return slices.Clone(c.templates)
}

func DefaultCatalog() Catalog {
	return NewCatalog([]ModelTemplate{
		{Name: "Customer Support Assistant", Description: "Answers product questions and triages tickets", Category: shared.ModelCategoryAssistant},
		{Name: "Code Review Helper", Description: "Reviews pull requests and suggests fixes", Category: shared.ModelCategoryDeveloper},
		{Name: "Marketing Copywriter", Description: "Drafts campaign copy in a configurable brand voice", Category: shared.ModelCategoryCreative},
		{Name: "Legal Document Analyzer", Description: "Summarizes contracts and flags risky clauses", Category: shared.ModelCategoryResearch},
		{Name: "Language Tutor", Description: "Conversational practice with corrections", Category: shared.ModelCategoryEducation},
		{Name: "Financial Report Summarizer", Description: "Extracts key figures from quarterly reports", Category: shared.ModelCategoryFinance},
		{Name: "Meeting Notes Taker", Description: "Turns transcripts into action items", Category: shared.ModelCategoryProductivity},
		{Name: "Health Coach", Description: "Daily check-ins and habit tracking", Category: shared.ModelCategoryHealth},
	})
}
