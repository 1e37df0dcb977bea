package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/victorrathore/flowgen/utils/config"
)

// version is a placeholder for the version string, set at build time via ldflags.
var version string

var verbose bool
var debug bool

// envConfig holds the loaded environment configuration, available to all commands
var envConfig *config.EnvConfig

// logFile holds the log file handle for proper cleanup
var logFile *os.File

var rootCmd = &cobra.Command{
	Use:   "flowgen",
	Short: "Generate and publish a CI deploy workflow for a static site",
	Long: `Flowgen asks a language model for a GitHub Actions workflow that
deploys a static HTML site to GitHub Pages, sanitizes the response into
valid YAML, falls back to a known-good workflow when the model output
cannot be salvaged, and commits and pushes the result.

Getting Started:
  1. Put OPENAI_API_KEY in your environment or a .env file
  2. flowgen generate [dir]   Generate and publish the workflow`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Remove timestamps for cleaner CLI output
		log.SetFlags(0)

		// Optional: file-based logging for debugging sessions
		if logFileName := os.Getenv("FLOWGEN_LOG_FILE"); logFileName != "" {
			if file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666); err == nil {
				logFile = file
				log.SetOutput(file)
				log.Printf("[INFO] Logging session started at %s\n", time.Now().Format(time.RFC3339))
			} else {
				log.Printf("[WARN] Failed to open log file '%s': %v. Continuing with stdout logging.\n", logFileName, err)
			}
		}

		config.Verbose = verbose
		config.Debug = debug

		envPath := config.GetEnvPath()
		if verbose {
			log.Printf("[DEBUG] Loading environment configuration from %s\n", envPath)
		}

		var err error
		envConfig, err = config.LoadEnvConfig(envPath)
		if err != nil {
			return fmt.Errorf("error loading environment configuration: %w", err)
		}

		if verbose {
			log.Println("[DEBUG] Environment configuration loaded successfully")
		}

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// getVersion returns the version string set at build time, if any.
func getVersion() string {
	if version != "" {
		return version
	}
	return "unknown (build with: go build -ldflags \"-X 'github.com/victorrathore/flowgen/cmd.version=vX.Y.Z'\")"
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the current Flowgen version.`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Printf("Flowgen version: %s\n", getVersion())
	},
}

func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}

	if logFile != nil {
		log.Printf("[INFO] Logging session ended at %s\n", time.Now().Format(time.RFC3339))
		logFile.Sync()
		logFile.Close()
	}
}
