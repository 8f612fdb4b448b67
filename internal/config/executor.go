package config

import "time"

// ExecutorConfig holds everything the execution client needs to reach
// the sandbox service. Injected at construction time; the adapter does
// no ambient environment lookups of its own.
type ExecutorConfig struct {
	Host            string
	APIKey          string
	PollInterval    time.Duration
	MaxPollAttempts int
}

func NewExecutorConfig() *ExecutorConfig {
	return &ExecutorConfig{
		Host:            getEnv("JUDGE0_API_HOST", "https://judge0-ce.p.rapidapi.com"),
		APIKey:          getEnv("JUDGE0_API_KEY", ""),
		PollInterval:    time.Duration(getIntEnv("JUDGE0_POLL_INTERVAL_SEC", 1)) * time.Second,
		MaxPollAttempts: getIntEnv("JUDGE0_MAX_POLL_ATTEMPTS", 30),
	}
}
