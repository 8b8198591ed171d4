package catalog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Excerpt returns the first n runes of the description's visible text, with
// whitespace collapsed. Unparseable markup yields an empty string.
func Excerpt(html string, n int) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
