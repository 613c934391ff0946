package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		term string
		want types.Tier
	}{
		// exact hints
		{"qa", types.TierCritical},
		{"sql", types.TierCritical},
		{"rest api", types.TierCritical},
		{"ci/cd", types.TierCritical},
		{"jira", types.TierImportant},
		{"documentation", types.TierImportant},
		{"teams", types.TierNice},
		{"communication", types.TierNice},

		// critical keyword containment
		{"automated test pipeline", types.TierCritical},
		{"api gateway", types.TierCritical},
		{"azure functions", types.TierCritical},
		{"terraform modules", types.TierCritical},

		// important keyword containment
		{"database administration", types.TierImportant},
		{"troubleshooting guides", types.TierImportant},
		{"linux servers", types.TierImportant},

		// default
		{"team leadership", types.TierNice},
		{"stakeholder management", types.TierNice},
		{"excel", types.TierNice},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.term))
		})
	}
}

func TestCategorize_FoldsInput(t *testing.T) {
	assert.Equal(t, types.TierCritical, Categorize("  QA  "))
	assert.Equal(t, types.TierImportant, Categorize("JIRA"))
}

func TestCategorize_CriticalWinsOverImportant(t *testing.T) {
	// Contains both "test" (critical) and "document" (important).
	assert.Equal(t, types.TierCritical, Categorize("test documentation"))
}
