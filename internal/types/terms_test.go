package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermSet_AddSkipsEmpty(t *testing.T) {
	s := NewTermSet("qa", "", "sql")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("qa"))
	assert.False(t, s.Contains(""))
}

func TestTermSet_Deduplicates(t *testing.T) {
	s := NewTermSet("qa", "qa", "qa")
	assert.Equal(t, 1, s.Len())
}

func TestTermSet_SortedIsStable(t *testing.T) {
	s := NewTermSet("sql", "qa", "rest api")

	assert.Equal(t, []string{"qa", "rest api", "sql"}, s.Sorted())
	assert.Equal(t, s.Sorted(), s.Sorted())
}
