package notes

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Title returns a display title for the note with the given
// identifier: the first markdown heading if the note has one,
// otherwise its first non-empty line. Unresolvable notes yield "".
func (s *Store) Title(id string) string {
	content, err := s.Read(id)
	if err != nil {
		return ""
	}
	return titleOf([]byte(content))
}

func titleOf(content []byte) string {
	reader := text.NewReader(content)
	doc := goldmark.DefaultParser().Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			title = string(h.Text(content))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if title != "" {
		return title
	}

	for _, line := range strings.Split(string(content), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
