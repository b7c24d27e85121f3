package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/summaries/\d+$`), Template: "/summaries/:id"},
	// 不正なIDも422を返すルートなので同じラベルに集約する
	{Pattern: regexp.MustCompile(`^/summaries/[^/]+$`), Template: "/summaries/:id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// Query parameters and a trailing slash are stripped before matching.
//
// Examples:
//
//	NormalizePath("/summaries/123/")     // "/summaries/:id"
//	NormalizePath("/summaries/abc")      // "/summaries/:id"
//	NormalizePath("/summaries/")         // "/summaries"
//	NormalizePath("/swagger/index.html") // "/swagger/*"
//	NormalizePath("/health")             // "/health" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// ルート以外は末尾スラッシュを除去
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization: one per template plus the static endpoints
// (/summaries, /health, /ready, /live, /metrics).
func GetExpectedCardinality() int {
	templates := map[string]struct{}{}
	for _, p := range pathPatterns {
		templates[p.Template] = struct{}{}
	}
	const staticCount = 5
	return len(templates) + staticCount
}
