package textsource

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/encoding/charmap"
)

// Read loads a document as plain text. HTML files (.html/.htm) are stripped
// of markup; everything else is treated as text with an ISO-8859-1 fallback
// when the bytes are not valid UTF-8.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Message: "failed to read file", Cause: err}
	}

	text := decode(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return stripHTML(path, text)
	default:
		return text, nil
	}
}

// decode returns the bytes as a string, re-decoding from ISO-8859-1 when they
// are not valid UTF-8. Latin-1 decoding cannot fail, so the fallback always
// yields usable text.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

// stripHTML extracts the visible text of an HTML document, dropping script
// and style contents.
func stripHTML(path, html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &ReadError{Path: path, Message: "failed to parse HTML", Cause: err}
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fragment without a body element; take the whole document text.
		text = doc.Text()
	}
	return text, nil
}
