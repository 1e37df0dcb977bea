// Package workflow turns free-form model output into a valid GitHub
// Actions deployment workflow, falling back to a known-good document
// when the output cannot be salvaged.
package workflow

// Prompt is the fixed instruction sent to the model for workflow generation.
const Prompt = `Generate a GitHub Actions workflow YAML file for a static HTML site.

Rules:
- MUST trigger on push to main branch.
- MUST use actions/checkout@v3.
- MUST use peaceiris/actions-gh-pages@v3 for deployment.
- MUST NOT use any other deploy action.
- MUST NOT include Node.js or npm steps.
- Output ONLY valid YAML without code fences or explanations.
`

// replacement is a literal substring swap applied during sanitization.
type replacement struct {
	old string
	new string
}

// replacements are known corrections for action references the model
// tends to get wrong: deprecated artifact action versions and a
// non-existent name for the GitHub Pages deploy action.
var replacements = []replacement{
	{"actions/upload-artifact@v3", "actions/upload-artifact@v4"},
	{"actions/download-artifact@v3", "actions/download-artifact@v4"},
	{"actions-gh-pages/action", "peaceiris/actions-gh-pages"},
}
