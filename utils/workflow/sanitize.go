package workflow

import (
	"regexp"
	"strings"

	"github.com/victorrathore/flowgen/utils/config"
)

var (
	// Opening fence markers may carry a language tag, e.g. ```yaml
	fenceRegex = regexp.MustCompile("```[a-zA-Z]*")

	// A top-level YAML key: identifier followed by a colon
	keyRegex = regexp.MustCompile(`^\w+:`)
)

// Sanitize normalizes raw model output into a YAML candidate. It strips
// code-fence markers, applies the known action-reference corrections,
// and drops lines that do not look like part of a YAML document.
//
// The line filter is a heuristic for removing conversational prose the
// model wraps around the YAML body. It keeps blank lines, key-shaped
// lines, dash list items, and indented continuations; it is not
// YAML-aware and can drop unusual but legitimate constructs such as
// flow-style mappings.
func Sanitize(raw string) string {
	text := fenceRegex.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)

	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if keepLine(line) {
			kept = append(kept, strings.TrimRight(line, " \t"))
		} else {
			config.DebugLog("[Sanitize] Dropped line: %q", line)
		}
	}

	return strings.Join(kept, "\n")
}

// keepLine reports whether a line looks like part of a YAML document.
func keepLine(line string) bool {
	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return true
	}
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return true
	}
	if keyRegex.MatchString(stripped) {
		return true
	}
	return strings.HasPrefix(stripped, "- ")
}
