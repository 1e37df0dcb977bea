package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Defaults used when neither the environment nor flags override them.
const (
	DefaultGenerationModel = "gpt-4o"
	DefaultRemoteName      = "origin"
	DefaultRemoteURL       = "https://github.com/victorrathore/autogen-github-site.git"
	DefaultBranch          = "main"
	DefaultCommitMessage   = "flowgen update: index.html + workflow"
)

// EnvConfig holds the environment configuration for a run
type EnvConfig struct {
	APIKey          string // OpenAI API key, required
	GenerationModel string // model used for workflow generation
	RemoteName      string // git remote to push to
	RemoteURL       string // URL the remote is created with if absent
	Branch          string // branch committed to and pushed
	CommitMessage   string // fixed commit message for publish commits
}

// GetEnvPath returns the path to the environment file.
// FLOWGEN_ENV overrides the default of .env in the working directory.
func GetEnvPath() string {
	if path := os.Getenv("FLOWGEN_ENV"); path != "" {
		return path
	}
	return ".env"
}

// LoadEnvConfig loads the environment file at the given path (if it
// exists) and builds an EnvConfig from the process environment.
// A missing OPENAI_API_KEY is an error: no work may start without it.
func LoadEnvConfig(path string) (*EnvConfig, error) {
	if err := godotenv.Load(path); err != nil {
		// The env file is optional; variables may come from the
		// process environment directly.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading env file %s: %w", path, err)
		}
		DebugLog("[Config] No env file at %s, using process environment", path)
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not found in environment or %s", path)
	}

	cfg := &EnvConfig{
		APIKey:          apiKey,
		GenerationModel: getEnvOrDefault("FLOWGEN_MODEL", DefaultGenerationModel),
		RemoteName:      getEnvOrDefault("FLOWGEN_REMOTE", DefaultRemoteName),
		RemoteURL:       getEnvOrDefault("FLOWGEN_REMOTE_URL", DefaultRemoteURL),
		Branch:          getEnvOrDefault("FLOWGEN_BRANCH", DefaultBranch),
		CommitMessage:   getEnvOrDefault("FLOWGEN_COMMIT_MESSAGE", DefaultCommitMessage),
	}

	DebugLog("[Config] Loaded configuration: model=%s remote=%s branch=%s",
		cfg.GenerationModel, cfg.RemoteName, cfg.Branch)

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
