package workflow

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/victorrathore/flowgen/utils/config"
)

// Fallback is the hard-coded workflow used whenever the model's output
// fails validation. It must always pass Validate.
const Fallback = `name: Deploy Static Site

on:
  push:
    branches:
      - main

jobs:
  deploy:
    runs-on: ubuntu-latest
    steps:
      - name: Checkout code
        uses: actions/checkout@v3

      - name: Deploy to GitHub Pages
        uses: peaceiris/actions-gh-pages@v3
        with:
          github_token: ${{ secrets.GITHUB_TOKEN }}
          publish_dir: ./
`

// Validate parses the candidate as YAML and checks the required
// structure: a top-level "jobs" mapping containing a "deploy" key.
// A parse failure and a missing key are treated identically.
func Validate(candidate string) error {
	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(candidate), &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if len(doc) == 0 {
		return fmt.Errorf("empty workflow document")
	}

	jobs, ok := doc["jobs"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("workflow is missing a top-level 'jobs' mapping")
	}
	if _, ok := jobs["deploy"]; !ok {
		return fmt.Errorf("workflow 'jobs' mapping is missing the 'deploy' job")
	}

	return nil
}

// Finalize sanitizes raw model output and validates the result. On any
// validation failure the fallback document is substituted verbatim; no
// partial repair is attempted. The returned flag reports whether the
// fallback was used.
func Finalize(raw string) (string, bool) {
	candidate := Sanitize(raw)

	if err := Validate(candidate); err != nil {
		config.VerboseLog("[Workflow] Rejected generated workflow: %v", err)
		return Fallback, true
	}

	return candidate, false
}
