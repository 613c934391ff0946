package textsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRead_PlainText(t *testing.T) {
	path := writeFile(t, "resume.txt", []byte("QA engineer with SQL experience"))

	text, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "QA engineer with SQL experience", text)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)

	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestRead_Latin1Fallback(t *testing.T) {
	// "résumé" in ISO-8859-1: é is the single byte 0xE9, invalid as UTF-8.
	raw := []byte{'r', 0xE9, 's', 'u', 'm', 0xE9}
	path := writeFile(t, "resume.txt", raw)

	text, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "résumé", text)
}

func TestRead_HTMLStripped(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style>
<script>alert("hi");</script></head>
<body><h1>Jane Doe</h1><p>Automated testing with Selenium.</p></body></html>`
	path := writeFile(t, "resume.html", []byte(html))

	text, err := Read(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Automated testing with Selenium.")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "<h1>")
}

func TestRead_HTMLFragment(t *testing.T) {
	path := writeFile(t, "jd.htm", []byte("<p>SQL and REST API skills required.</p>"))

	text, err := Read(path)
	require.NoError(t, err)
	assert.Contains(t, text, "SQL and REST API skills required.")
}
