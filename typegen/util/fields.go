package util

import (
	"go/ast"
	"strings"
)

// ExtractFieldComment extracts the comment lines of a field.
// It prefers doc comments (before the field) over inline comments (after the field).
func ExtractFieldComment(field *ast.Field) []string {
	if lines := CommentLines(field.Doc); len(lines) > 0 {
		return lines
	}
	return CommentLines(field.Comment)
}

// CommentLines returns the text of a comment group, one entry per line,
// without comment markers. Directives such as //go:generate are dropped.
func CommentLines(group *ast.CommentGroup) []string {
	if group == nil {
		return nil
	}
	var lines []string
	for _, comment := range group.List {
		if strings.HasPrefix(comment.Text, "//go:") || strings.HasPrefix(comment.Text, "//nolint") {
			continue
		}
		for _, line := range strings.Split(CleanCommentText(comment.Text), "\n") {
			line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// CleanCommentText removes comment markers and trims whitespace
func CleanCommentText(text string) string {
	text = strings.TrimPrefix(text, "//")
	// Handle both /** and /* block comments
	text = strings.TrimPrefix(text, "/**")
	text = strings.TrimPrefix(text, "/*")
	text = strings.TrimSuffix(text, "*/")
	return strings.TrimSpace(text)
}
