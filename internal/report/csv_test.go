package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestWriteCSV(t *testing.T) {
	result := &types.ScoreResult{
		Records: []types.MatchRecord{
			{Term: "qa", Category: types.TierCritical, Matched: true, Method: types.MethodExact, Weight: 3, Earned: 3},
			{Term: "jira", Category: types.TierImportant, Matched: false, Method: types.MethodNone, Weight: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, result))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"term", "category", "matched", "method", "weight", "earned"}, rows[0])
	assert.Equal(t, []string{"qa", "critical", "true", "exact", "3.00", "3.00"}, rows[1])
	assert.Equal(t, []string{"jira", "important", "false", "none", "2.00", "0.00"}, rows[2])
}

func TestWriteCSV_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &types.ScoreResult{}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
