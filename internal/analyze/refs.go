package analyze

import (
	"regexp"
	"strings"
)

// Relation is a link from one document to another.
type Relation struct {
	Path        string `json:"path"`
	Description string `json:"description"`
}

// DocumentExtensions are the link-target suffixes treated as documents.
// Matching is case-sensitive.
var DocumentExtensions = []string{".md", ".markdown", ".mdx"}

var linkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`)

// ExtractRelations returns every document link in text, in order, duplicates
// included. Labels are taken literally.
func ExtractRelations(text string) []Relation {
	relations := []Relation{}
	for _, m := range linkRe.FindAllStringSubmatch(text, -1) {
		target := m[2]
		if !IsDocumentTarget(target) {
			continue
		}
		relations = append(relations, Relation{Path: target, Description: m[1]})
	}
	return relations
}

// IsDocumentTarget reports whether a link target names a local document.
func IsDocumentTarget(target string) bool {
	if strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:") {
		return false
	}
	for _, ext := range DocumentExtensions {
		if strings.HasSuffix(target, ext) {
			return true
		}
	}
	return false
}
