package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. It is loaded once at startup
// and passed into components at construction; nothing mutates it afterwards.
type Config struct {
	Database    DatabaseConfig
	OCR         OCRConfig
	LLM         LLMConfig
	Eligibility EligibilityConfig
	Queue       QueueConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Driver           string // "postgres" | "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// OCRConfig holds text-recognition configuration.
type OCRConfig struct {
	Tesseract     string // binary name or absolute path
	Pdftoppm      string
	TesseractLang string
	DPI           int // rasterization DPI for PDFs (144 = 2x zoom)
	MaxPages      int // 0 = no limit
	TessdataDir   string
}

// LLMConfig holds inference-service configuration.
type LLMConfig struct {
	BaseURL         string // Ollama endpoint
	ExtractModel    string // multimodal/extraction model
	DecisionModel   string // decision-run model identifier
	Temperature     float32
	MaxTokens       int
	ExtractTimeout  time.Duration
	DecisionTimeout time.Duration
	MaxRetries      int
}

// EligibilityConfig holds the decision-engine thresholds. Read once per
// decision run; never mutated mid-run.
type EligibilityConfig struct {
	IncomeThresholdAED    float64
	BalanceThresholdAED   float64
	ConfidenceThreshold   float64
	AutoApprovalThreshold float64
	Currency              string
	Frequency             string
	FullBenefitAED        float64
	ReducedBenefitAED     float64
	ModelVersion          string
}

// QueueConfig holds worker-pool configuration.
type QueueConfig struct {
	Workers    int
	Size       int
	JobTimeout time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 144),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
		},
		LLM: LLMConfig{
			BaseURL:         getEnv("OLLAMA_URL", "http://localhost:11434"),
			ExtractModel:    getEnv("EXTRACT_MODEL", "moondream:1.8b"),
			DecisionModel:   getEnv("DECISION_MODEL", "qwen2:1.5b"),
			Temperature:     getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 1024),
			ExtractTimeout:  getEnvAsDuration("EXTRACT_TIMEOUT", 300*time.Second),
			DecisionTimeout: getEnvAsDuration("DECISION_TIMEOUT", 90*time.Second),
			MaxRetries:      getEnvAsInt("LLM_MAX_RETRIES", 3),
		},
		Eligibility: EligibilityConfig{
			IncomeThresholdAED:    getEnvAsFloat64("INCOME_THRESHOLD_AED", 4000),
			BalanceThresholdAED:   getEnvAsFloat64("BALANCE_THRESHOLD_AED", 1500),
			ConfidenceThreshold:   getEnvAsFloat64("CONFIDENCE_THRESHOLD", 0.7),
			AutoApprovalThreshold: getEnvAsFloat64("AUTO_APPROVAL_THRESHOLD", 0.8),
			Currency:              getEnv("BENEFIT_CURRENCY", "AED"),
			Frequency:             getEnv("BENEFIT_FREQUENCY", "monthly"),
			FullBenefitAED:        getEnvAsFloat64("FULL_BENEFIT_AED", 2500),
			ReducedBenefitAED:     getEnvAsFloat64("REDUCED_BENEFIT_AED", 2000),
			ModelVersion:          getEnv("DECISION_MODEL_VERSION", "1.0"),
		},
		Queue: QueueConfig{
			Workers:    getEnvAsInt("QUEUE_WORKERS", 4),
			Size:       getEnvAsInt("QUEUE_SIZE", 256),
			JobTimeout: getEnvAsDuration("QUEUE_JOB_TIMEOUT", 10*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		return NewAppError("CONFIG_ERROR", "DB_DRIVER must be postgres or sqlite", ErrInvalidInput)
	}
	if c.LLM.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "OLLAMA_URL is required", ErrInvalidInput)
	}
	if c.Eligibility.IncomeThresholdAED < 0 || c.Eligibility.BalanceThresholdAED < 0 {
		return NewAppError("CONFIG_ERROR", "thresholds must be non-negative", ErrInvalidInput)
	}
	return nil
}
