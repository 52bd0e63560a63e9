package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultAddress        = ":9090"
	defaultTimeoutSec     = 30
	defaultCacheDB        = 0
	defaultBloomBitSize   = 10000000
	defaultPageSize       = 50
	defaultCommentMaxLen  = 0 // 0 disables the cap
	defaultChatEndpoint   = "https://api.groq.com/openai/v1/chat/completions"
	defaultChatModel      = "llama3-8b-8192"
)

// Config collects every knob the process reads from the environment.
// It is resolved once in main and injected into the components.
type Config struct {
	DatabaseHost string `validate:"required"`
	DatabasePort string `validate:"required"`
	DatabaseUser string `validate:"required"`
	DatabasePass string
	DatabaseName string `validate:"required"`

	CacheHost string `validate:"required"`
	CachePort string `validate:"required"`
	CachePass string
	CacheDB   int

	ServerAddress  string `validate:"required"`
	JWTSecret      string `validate:"required"`
	ContextTimeout time.Duration

	PageSize      int `validate:"gt=0"`
	CommentMaxLen int `validate:"gte=0"`
	BloomBitSize  uint64

	ChatEndpoint string
	ChatModel    string
	ChatAPIKey   string
}

// Load reads the environment into a validated Config.
func Load() (Config, error) {
	cfg := Config{
		DatabaseHost: os.Getenv("DATABASE_HOST"),
		DatabasePort: os.Getenv("DATABASE_PORT"),
		DatabaseUser: os.Getenv("DATABASE_USER"),
		DatabasePass: os.Getenv("DATABASE_PASS"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		CacheHost: os.Getenv("CACHE_HOST"),
		CachePort: os.Getenv("CACHE_PORT"),
		CachePass: os.Getenv("CACHE_PASS"),
		CacheDB:   intEnv("CACHE_DB", defaultCacheDB),

		ServerAddress:  stringEnv("SERVER_ADDRESS", defaultAddress),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ContextTimeout: time.Duration(intEnv("CONTEXT_TIMEOUT", defaultTimeoutSec)) * time.Second,

		PageSize:      intEnv("PAGE_SIZE", defaultPageSize),
		CommentMaxLen: intEnv("COMMENT_MAX_LENGTH", defaultCommentMaxLen),
		BloomBitSize:  uintEnv("BLOOM_FILTER_SIZE", defaultBloomBitSize),

		ChatEndpoint: stringEnv("CHAT_API_ENDPOINT", defaultChatEndpoint),
		ChatModel:    stringEnv("CHAT_MODEL", defaultChatModel),
		ChatAPIKey:   os.Getenv("CHAT_API_KEY"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DSN builds the MySQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=1",
		c.DatabaseUser, c.DatabasePass, c.DatabaseHost, c.DatabasePort, c.DatabaseName)
}

// CacheAddr builds the redis address.
func (c Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func uintEnv(key string, fallback uint64) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
