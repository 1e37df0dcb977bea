package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/victorrathore/flowgen/utils/fileutil"
	"github.com/victorrathore/flowgen/utils/gitops"
	"github.com/victorrathore/flowgen/utils/models"
	"github.com/victorrathore/flowgen/utils/workflow"
)

// Placeholder content for the site's index.html when none exists yet.
const placeholderIndex = `<!DOCTYPE html><html><body><h1>Hello from flowgen!</h1></body></html>`

// Relative path of the workflow file inside the target repository.
var workflowRelPath = filepath.Join(".github", "workflows", "deploy.yml")

var (
	generateModelName string
	generateRemoteURL string
	generateNoPush    bool
	generateTimeout   time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Generate the deploy workflow and publish it",
	Long: `Generate a GitHub Actions deployment workflow for the static site in
the given directory (default: current directory) and publish it.

The model's response is sanitized into YAML and validated; if it cannot
be salvaged, a hard-coded known-good workflow is written instead. The
result always lands in .github/workflows/deploy.yml. If the working
tree is dirty afterwards, everything is committed and pushed.`,
	Example: `  # Generate and publish in the current directory
  flowgen generate

  # Generate for another checkout, without pushing
  flowgen generate ~/sites/my-site --no-push

  # Generate with a specific model
  flowgen generate -m gpt-4o-mini`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runGenerate(dir)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateModelName, "model", "m", "", "Model to use for workflow generation (optional, uses default if not set)")
	generateCmd.Flags().StringVar(&generateRemoteURL, "remote", "", "URL the push remote is created with if absent (optional)")
	generateCmd.Flags().BoolVar(&generateNoPush, "no-push", false, "write the workflow but skip commit and push")
	generateCmd.Flags().DurationVar(&generateTimeout, "timeout", 2*time.Minute, "timeout for the model call")
}

// runGenerate drives the whole publish flow for the target directory.
func runGenerate(dir string) error {
	dir, err := fileutil.ExpandPath(dir)
	if err != nil {
		return fmt.Errorf("invalid target directory: %w", err)
	}

	modelName := generateModelName
	if modelName == "" {
		modelName = envConfig.GenerationModel
	}
	remoteURL := generateRemoteURL
	if remoteURL == "" {
		remoteURL = envConfig.RemoteURL
	}

	log.Printf("Generating deploy workflow using model: %s\n", modelName)

	// Preconditions: placeholder content and a repository on the
	// publish branch, before any model call is made.
	if err := gitops.EnsurePlaceholder(filepath.Join(dir, "index.html"), placeholderIndex); err != nil {
		return err
	}

	repo, err := gitops.Open(dir)
	if err != nil {
		return err
	}
	if err := repo.EnsureBranch(envConfig.Branch); err != nil {
		return err
	}

	text, err := generateWorkflow(modelName)
	if err != nil {
		return err
	}

	workflowFile := filepath.Join(dir, workflowRelPath)
	if err := os.MkdirAll(filepath.Dir(workflowFile), 0755); err != nil {
		return fmt.Errorf("failed to create workflow directory: %w", err)
	}
	if err := os.WriteFile(workflowFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write workflow to '%s': %w", workflowFile, err)
	}
	log.Printf("Workflow ready at: %s\n", workflowFile)

	if generateNoPush {
		log.Println("Skipping commit and push (--no-push).")
		return nil
	}

	published, err := repo.Publish(envConfig.CommitMessage, envConfig.RemoteName, remoteURL, envConfig.Branch)
	if err != nil {
		return err
	}
	if published {
		log.Println("Changes committed and pushed.")
	} else {
		log.Println("No changes to commit.")
	}

	return nil
}

// generateWorkflow asks the model for a workflow and sanitizes and
// validates the response, substituting the fallback document when the
// output cannot be salvaged.
func generateWorkflow(modelName string) (string, error) {
	provider := models.DetectProvider(modelName)
	if provider == nil {
		return "", fmt.Errorf("could not detect provider for model: %s", modelName)
	}

	if err := provider.Configure(envConfig.APIKey); err != nil {
		return "", fmt.Errorf("failed to configure provider %s: %w", provider.Name(), err)
	}
	provider.SetVerbose(verbose)

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	raw, err := provider.SendPrompt(ctx, modelName, workflow.Prompt)
	if err != nil {
		return "", fmt.Errorf("model call failed for '%s': %w", modelName, err)
	}

	text, usedFallback := workflow.Finalize(raw)
	if usedFallback {
		log.Println("Generated workflow failed validation. Using fallback workflow.")
	} else {
		log.Println("Generated workflow accepted.")
	}

	// The workflow file always ends with a newline
	if text == "" || text[len(text)-1] != '\n' {
		text += "\n"
	}

	return text, nil
}
