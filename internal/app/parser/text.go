package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	digitRunRe   = regexp.MustCompile(`\d+`)
	hasDigitRe   = regexp.MustCompile(`\d`)
)

// normalizeText collapses runs of whitespace into single spaces and trims.
func normalizeText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// strippedStrings returns the non-empty, whitespace-normalized text nodes of
// the selection in document order, one entry per node. EduPage cells separate
// lesson fields with <br>, so each line comes back as its own entry.
func strippedStrings(sel *goquery.Selection) []string {
	var lines []string
	for _, node := range sel.Nodes {
		collectTextNodes(node, &lines)
	}
	return lines
}

func collectTextNodes(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		if text := normalizeText(n.Data); text != "" {
			*out = append(*out, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectTextNodes(c, out)
	}
}

// flatText returns the whole text content of a selection as one
// whitespace-normalized line.
func flatText(sel *goquery.Selection) string {
	return normalizeText(strings.Join(strippedStrings(sel), " "))
}

// isPeriodLabel reports whether a header label looks like a time-slot label
// rather than a day name. Exports sometimes put days on rows instead of
// columns; every header cell containing a digit is the tell.
func isPeriodLabel(text string) bool {
	return hasDigitRe.MatchString(text)
}
