// ABOUTME: Markdown rendering for post bodies
// ABOUTME: Converts stored markdown to HTML for detail responses

package server

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// renderMarkdown converts post markdown to HTML. On conversion failure the
// raw markdown is dropped and an empty string returned; the caller still has
// the plain content field.
func (s *Server) renderMarkdown(content string) string {
	var htmlBuf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &htmlBuf); err != nil {
		s.logger.Error("failed to convert markdown", "error", err)
		return ""
	}
	return htmlBuf.String()
}
