package config

// JudgeConfig holds the resource ceilings applied on top of whatever
// limits the sandbox enforces server-side.
type JudgeConfig struct {
	TimeLimitSec  float64
	MemoryLimitKB float64
}

func NewJudgeConfig() *JudgeConfig {
	return &JudgeConfig{
		TimeLimitSec:  getFloatEnv("JUDGE_TIME_LIMIT_SEC", 2),
		MemoryLimitKB: getFloatEnv("JUDGE_MEMORY_LIMIT_KB", 256000),
	}
}
