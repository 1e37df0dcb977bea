package retry

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/victorrathore/flowgen/utils/config"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries  int           // Maximum number of retry attempts
	InitialWait time.Duration // Initial wait time before first retry
	MaxWait     time.Duration // Maximum wait time between retries
	Factor      float64       // Exponential backoff factor
}

// DefaultRetryConfig provides sensible defaults for retry operations
var DefaultRetryConfig = RetryConfig{
	MaxRetries:  3,
	InitialWait: 1 * time.Second,
	MaxWait:     30 * time.Second,
	Factor:      2.0,
}

// WithRetry executes the given function with retry logic.
// The operation is retried while it returns an error accepted by shouldRetry.
func WithRetry(operation func() (interface{}, error), shouldRetry func(error) bool, cfg RetryConfig) (interface{}, error) {
	var result interface{}
	var err error
	var wait = cfg.InitialWait

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, err = operation()

		// If no error or error doesn't match retry criteria, return immediately
		if err == nil || !shouldRetry(err) {
			return result, err
		}

		if attempt == cfg.MaxRetries {
			return nil, fmt.Errorf("operation failed after %d retries: %w", cfg.MaxRetries, err)
		}

		retryWait := time.Duration(math.Min(float64(wait), float64(cfg.MaxWait)))

		// Honor a retry time embedded in the error message if present
		if retryTime := extractRetryTime(err.Error()); retryTime > 0 {
			retryWait = retryTime
		}

		config.DebugLog("[Retry] Received retryable error: %v. Retrying in %v (attempt %d/%d)",
			err, retryWait, attempt+1, cfg.MaxRetries)
		log.Printf("Rate limit detected, retrying in %v (attempt %d/%d)...\n",
			retryWait, attempt+1, cfg.MaxRetries)

		time.Sleep(retryWait)
		wait = time.Duration(float64(wait) * cfg.Factor)
	}

	// Unreachable: the loop always returns
	return nil, fmt.Errorf("unexpected error in retry logic")
}

// Is429Error checks if the error is a rate limit (429) error
func Is429Error(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "429") ||
		strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "quota exceeded") ||
		strings.Contains(errMsg, "too many requests")
}

// extractRetryTime attempts to extract a retry time from an error message.
// Returns 0 if no retry time could be extracted.
func extractRetryTime(errMsg string) time.Duration {
	// Look for patterns like "retry in 18s" or "try again in 30 seconds"
	retryPatterns := []string{
		"retry in ",
		"retry after ",
		"try again in ",
		"try again after ",
	}

	for _, pattern := range retryPatterns {
		idx := strings.Index(strings.ToLower(errMsg), pattern)
		if idx < 0 {
			continue
		}
		timeStr := errMsg[idx+len(pattern):]

		var seconds int
		if _, err := fmt.Sscanf(timeStr, "%ds", &seconds); err == nil {
			return time.Duration(seconds) * time.Second
		}
		if _, err := fmt.Sscanf(timeStr, "%d seconds", &seconds); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	return 0
}
