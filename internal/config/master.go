package config

import "os"

type AppConfig struct {
	DebugMode      bool
	Port           int
	PostgresConfig *PostgresConfig
	RedisConfig    *RedisConfig
	ExecutorConfig *ExecutorConfig
	JudgeConfig    *JudgeConfig
	JwtConfig      *JwtConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		Port:           getIntEnv("HTTP_PORT", 8082),
		PostgresConfig: NewPostgresConfig(),
		RedisConfig:    NewRedisConfig(),
		ExecutorConfig: NewExecutorConfig(),
		JudgeConfig:    NewJudgeConfig(),
		JwtConfig:      NewJwtConfig(),
	}
}
