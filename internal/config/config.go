package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Survey     SurveyConfig
	ElevenLabs ElevenLabsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
	SessionEventsTopic string
}

type DatabaseConfig struct {
	// Empty connection string means the in-memory session store is used.
	Connection string
}

type SurveyConfig struct {
	ConfigPath string
}

type ElevenLabsConfig struct {
	APIKey  string
	AgentId string
	BaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "logs/session_events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			SessionEventsTopic: getEnv("SESSION_EVENTS_TOPIC_NAME", "SESSION_EVENTS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Survey: SurveyConfig{
			ConfigPath: getEnv("SURVEY_CONFIG_PATH", "config/survey.yaml"),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:  getEnv("ELEVENLABS_API_KEY", ""),
			AgentId: getEnv("ELEVENLABS_AGENT_ID", ""),
			BaseURL: getEnv("ELEVENLABS_BASE_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
