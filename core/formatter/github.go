package formatter

import (
	"fmt"
	"io"
	"strings"
)

// GitHubFormatter emits GitHub Actions workflow annotations, one
// ::error:: line per issue. A passing report produces no output, which is
// what CI log conventions expect.
type GitHubFormatter struct{}

// NewGitHubFormatter creates a new GitHub annotations formatter.
func NewGitHubFormatter() *GitHubFormatter {
	return &GitHubFormatter{}
}

// Name returns the formatter name.
func (f *GitHubFormatter) Name() string {
	return "github"
}

// Description returns the formatter description.
func (f *GitHubFormatter) Description() string {
	return "GitHub Actions annotation output"
}

// Format writes one annotation per failing entry.
func (f *GitHubFormatter) Format(w io.Writer, rep *Report, opts Options) error {
	for _, e := range rep.Issues() {
		fmt.Fprintf(w, "::error title=ENV validation (%s)::%s: %s\n",
			e.Status, e.Key, escapeAnnotation(e.Message))
	}
	return nil
}

// escapeAnnotation escapes the characters the annotation syntax reserves.
func escapeAnnotation(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}
