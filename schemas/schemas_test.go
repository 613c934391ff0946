package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/score"
	"github.com/jonathan/resume-matcher/internal/synonyms"
	"github.com/jonathan/resume-matcher/internal/types"
)

var schemaFiles = []string{
	"config.schema.json",
	"score_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			loader := gojsonschema.NewBytesLoader(data)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "file should compile as a JSON Schema: %s", schemaFile)
		})
	}
}

func TestScoreResult_ConformsToSchema(t *testing.T) {
	syns := synonyms.NewMap(nil)
	engine := score.NewEngine(syns, types.DefaultTierTable())

	jd := types.NewTermSet("qa", "rest api", "sql")
	resume := types.NewTermSet("qa", "database")
	result := engine.Score(jd, resume, "QA engineer with database experience")
	result.AnalysisID = "test-analysis"

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	err = schemas.ValidateBytes("score_result.schema.json", payload)
	assert.NoError(t, err, "serialized ScoreResult should conform to its schema")
}

func TestConfigDocument_ConformsToSchema(t *testing.T) {
	doc := []byte(`{
		"weights": {"critical": 3.0, "important": 2.0, "nice": 1.0},
		"thresholds": {"critical": 88, "important": 82, "nice": 75},
		"synonyms": {"kobo toolbox": "commcare"},
		"stop_phrases": ["equal opportunity employer"],
		"max_document_bytes": 2097152
	}`)

	err := schemas.ValidateBytes("config.schema.json", doc)
	assert.NoError(t, err)
}

func TestConfigDocument_RejectsWrongTypes(t *testing.T) {
	doc := []byte(`{"weights": {"critical": "high"}}`)

	err := schemas.ValidateBytes("config.schema.json", doc)
	require.Error(t, err)

	var ve *schemas.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}
