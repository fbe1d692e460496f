package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLLoader converts HTML into markdown-like text: headings become `#`
// markers, list items become bullets, anchors become links, tables become
// pipe rows and <pre> becomes a fenced block.
type HTMLLoader struct{}

func (l *HTMLLoader) Load(r io.Reader, filename string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var blocks []string
	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			blocks = append(blocks, s)
		}
	}

	if title := findTitle(doc); title != "" && findFirst(doc, "h1") == nil {
		emit(headingMarker(1, title))
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				if t := inlineText(n); t != "" {
					emit(headingMarker(level, t))
				}
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "head":
				return
			case "p", "blockquote":
				emit(inlineText(n))
				return
			case "ul", "ol":
				emit(listText(n))
				return
			case "pre":
				emit("```\n" + strings.Trim(textContent(n, false), "\n") + "\n```")
				return
			case "table":
				emit(tableText(n))
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findFirst(doc, "body"); body != nil {
		walk(body)
	} else {
		walk(doc)
	}
	return strings.Join(blocks, "\n\n"), nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

// inlineText flattens a node to one line, keeping anchors and emphasis as
// markdown syntax.
func inlineText(n *html.Node) string {
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.Data {
			case "a":
				if href := attr(n, "href"); href != "" {
					buf.WriteString("[" + collapse(textContent(n, true)) + "](" + href + ")")
					return
				}
			case "strong", "b":
				buf.WriteString("**" + collapse(textContent(n, true)) + "**")
				return
			case "em", "i":
				buf.WriteString("*" + collapse(textContent(n, true)) + "*")
				return
			case "code":
				buf.WriteString("`" + collapse(textContent(n, true)) + "`")
				return
			case "br":
				buf.WriteString(" ")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapse(buf.String())
}

func listText(n *html.Node) string {
	ordered := n.Data == "ol"
	var lines []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", len(lines)+1)
		}
		lines = append(lines, marker+inlineText(c))
	}
	return strings.Join(lines, "\n")
}

func tableText(n *html.Node) string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, strings.ReplaceAll(inlineText(c), "|", "/"))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	if len(rows) == 0 {
		return ""
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	var b strings.Builder
	writeRow(&b, rows[0], width)
	sep := make([]string, width)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&b, sep, width)
	for _, row := range rows[1:] {
		writeRow(&b, row, width)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func textContent(n *html.Node, trim bool) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	if trim {
		return strings.TrimSpace(buf.String())
	}
	return buf.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findTitle(n *html.Node) string {
	if t := findFirst(n, "title"); t != nil {
		return collapse(textContent(t, true))
	}
	return ""
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}
