package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// #region config
// Config is the full runtime configuration. Values come from the
// environment (optionally seeded from a .env file), with the abuse lexicon
// and reply templates overridable through a yaml data file: those are
// editable data, not code.
type Config struct {
	TelegramToken string
	CuratorChatID int64
	CourseName    string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	KnowledgeAddr string

	LogsPath        string
	MirrorDBPath    string
	MirrorExcelPath string

	TopK        int
	CandidateK  int
	CallTimeout time.Duration
	SessionTTL  time.Duration

	// Data overrides (empty = package defaults apply).
	Lexicon   []string
	Templates map[string]string
}

// #endregion config

// #region data-file
// dataFile is the yaml override file layout.
type dataFile struct {
	CourseName string            `yaml:"course_name"`
	Lexicon    []string          `yaml:"lexicon"`
	Templates  map[string]string `yaml:"templates"`
}

// #endregion data-file

// #region load
// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; CURATOR_DATA_FILE points at an
// optional yaml file with lexicon/template overrides.
func Load() (Config, error) {
	_ = godotenv.Load() // absent .env is fine

	cfg := Config{
		TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		CourseName:      envOr("COURSE_NAME", "ОбучAI"),
		LLMBaseURL:      os.Getenv("LLM_BASE_URL"),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMModel:        envOr("LLM_MODEL", "GigaChat:latest"),
		KnowledgeAddr:   envOr("KNOWLEDGE_ADDR", "localhost:50051"),
		LogsPath:        envOr("LOGS_PATH", "./logs"),
		MirrorDBPath:    envOr("MIRROR_DB", "./logs/curator.db"),
		MirrorExcelPath: envOr("MIRROR_XLSX", "./logs/logs.xlsx"),
		TopK:            envInt("RAG_TOP_K", 4),
		CandidateK:      envInt("RAG_CANDIDATE_K", 12),
		CallTimeout:     envDuration("LLM_CALL_TIMEOUT", 30*time.Second),
		SessionTTL:      envDuration("SESSION_TTL", 2*time.Hour),
	}

	if v := os.Getenv("CURATOR_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("CURATOR_CHAT_ID: %w", err)
		}
		cfg.CuratorChatID = id
	}

	if path := os.Getenv("CURATOR_DATA_FILE"); path != "" {
		if err := cfg.applyDataFile(path); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

func (c *Config) applyDataFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read data file: %w", err)
	}
	var df dataFile
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return fmt.Errorf("parse data file %s: %w", path, err)
	}
	if df.CourseName != "" {
		c.CourseName = df.CourseName
	}
	if len(df.Lexicon) > 0 {
		c.Lexicon = df.Lexicon
	}
	if len(df.Templates) > 0 {
		c.Templates = df.Templates
	}
	return nil
}

// #endregion load

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// #endregion helpers
