package analyze

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Complexity is a coarse structural-density rating.
type Complexity string

const (
	Simple   Complexity = "simple"
	Moderate Complexity = "moderate"
	Complex  Complexity = "complex"
)

const (
	maxTopics         = 5
	topicsPerHeading  = 3
	minTopicLength    = 3
	summaryLength     = 200
	summaryEllipsis   = "..."
	defaultLanguage   = "markdown"
	moderateThreshold = 10
	complexThreshold  = 25
)

// ContentProfile is a heuristic classification of a document.
type ContentProfile struct {
	Language        string     `json:"language"`
	Topics          []string   `json:"topics"`
	Summary         string     `json:"summary"`
	Complexity      Complexity `json:"complexity"`
	ComplexityScore int        `json:"complexityScore"`
	HasCode         bool       `json:"hasCode"`
	HasImages       bool       `json:"hasImages"`
	HasTables       bool       `json:"hasTables"`
	HasMath         bool       `json:"hasMath"`
}

// languageMarkers is checked in order; the first language with any marker
// present anywhere in the text wins.
var languageMarkers = []struct {
	name    string
	markers []string
}{
	{"javascript", []string{"```javascript", "```js"}},
	{"typescript", []string{"```typescript", "```ts"}},
	{"python", []string{"```python", "```py"}},
	{"java", []string{"```java"}},
	{"cpp", []string{"```cpp", "```c++"}},
	{"csharp", []string{"```csharp"}},
	{"go", []string{"```go"}},
	{"rust", []string{"```rust"}},
}

var (
	headingLineRe = regexp.MustCompile(`(?m)^#{1,6}[ \t]+(.+)$`)
	anyLinkRe     = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
	imageRe       = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	tableLineRe   = regexp.MustCompile(`(?m)^[ \t]*\|.*\|[ \t]*$`)
	inlineMathRe  = regexp.MustCompile(`\$[^$\n]+\$`)
	frontMatterRe = regexp.MustCompile(`^---\n(?s:.*?)\n---`)
)

// Classify builds a ContentProfile from raw text. It is deterministic.
func Classify(text string) ContentProfile {
	text = normalizeNewlines(text)

	codeBlocks := len(fenceRe.FindAllStringIndex(text, -1))
	headings := headingLineRe.FindAllStringSubmatch(text, -1)
	images := len(imageRe.FindAllStringIndex(text, -1))
	links := len(anyLinkRe.FindAllStringIndex(text, -1)) - images
	tableRows := len(tableLineRe.FindAllStringIndex(text, -1))

	score := 2*codeBlocks + len(headings) + links + images + 3*tableRows

	return ContentProfile{
		Language:        DetectLanguage(text),
		Topics:          extractTopics(headings),
		Summary:         Summarize(text),
		Complexity:      ClassifyComplexity(score),
		ComplexityScore: score,
		HasCode:         codeBlocks > 0,
		HasImages:       images > 0,
		HasTables:       tableRows > 0,
		HasMath:         strings.Contains(text, "$$") || inlineMathRe.MatchString(text),
	}
}

// DetectLanguage returns the first language in priority order whose fence
// marker occurs in text, or "markdown".
func DetectLanguage(text string) string {
	for _, lang := range languageMarkers {
		for _, m := range lang.markers {
			if strings.Contains(text, m) {
				return lang.name
			}
		}
	}
	return defaultLanguage
}

func extractTopics(headings [][]string) []string {
	topics := []string{}
	seen := map[string]bool{}
	for _, h := range headings {
		taken := 0
		for _, tok := range strings.Fields(h[1]) {
			if taken == topicsPerHeading {
				break
			}
			if utf8.RuneCountInString(tok) < minTopicLength {
				continue
			}
			taken++
			if seen[tok] {
				continue
			}
			seen[tok] = true
			topics = append(topics, tok)
		}
	}
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

// Summarize strips code and a leading metadata block, then keeps the first
// 200 characters. A cut at exactly 200 gets an ellipsis.
func Summarize(text string) string {
	text = normalizeNewlines(text)
	text = frontMatterRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(StripFences(text))

	runes := []rune(text)
	if len(runes) > summaryLength {
		runes = runes[:summaryLength]
	}
	summary := string(runes)
	if len(runes) == summaryLength {
		summary += summaryEllipsis
	}
	return summary
}

// ClassifyComplexity maps a score to its rating.
func ClassifyComplexity(score int) Complexity {
	switch {
	case score >= complexThreshold:
		return Complex
	case score >= moderateThreshold:
		return Moderate
	default:
		return Simple
	}
}
