package importer

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/tagsearch/internal/model"
)

// Result is what ParseHTMLSearches found in a bookmark file.
type Result struct {
	Searches []model.TaggedSearch
	// Skipped counts anchors that were not searches for the template.
	Skipped int
}

// ParseHTMLSearches parses Netscape bookmark HTML and returns every bookmark
// whose URL starts with searchURL as a search. The anchor text is the tag and
// the decoded rest of the URL is the query. Folders are flattened.
func ParseHTMLSearches(r io.Reader, searchURL string) (Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Result{}, err
	}

	var res Result

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
			if s, ok := searchFromAnchor(n, searchURL); ok {
				res.Searches = append(res.Searches, s)
			} else {
				res.Skipped++
			}
			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return res, nil
}

func searchFromAnchor(n *html.Node, searchURL string) (model.TaggedSearch, bool) {
	href := getAttr(n, "href")
	if searchURL == "" || !strings.HasPrefix(href, searchURL) {
		return model.TaggedSearch{}, false
	}

	query, err := url.PathUnescape(strings.TrimPrefix(href, searchURL))
	if err != nil {
		return model.TaggedSearch{}, false
	}

	s := model.TaggedSearch{Tag: getTextContent(n), Query: query}
	return s, s.Valid()
}

// getTextContent returns the text content of a node.
// Whitespace is kept: a tag is compared as an exact string.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return text.String()
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
