package api

import "time"

// environment constants
const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

// base URLs per environment
const (
	SandboxBaseURL    = "https://api.sandbox.solvent.dev/v0"
	ProductionBaseURL = "https://api.solvent.dev/v0"
)

// DefaultTimeout is the per-request budget applied when the caller does not
// configure one.
const DefaultTimeout = 30 * time.Second

// resolveBaseURL picks the base URL for a client. An explicit override always
// wins; otherwise the environment selects it, defaulting to sandbox.
func resolveBaseURL(environment, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	switch environment {
	case "", EnvironmentSandbox:
		return SandboxBaseURL, nil
	case EnvironmentProduction:
		return ProductionBaseURL, nil
	default:
		return "", &InvalidConfigError{Field: "environment", Reason: "must be \"sandbox\" or \"production\""}
	}
}
