package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"treasury-curve/internal/domain"
)

const lockTTLMarginSecs = 5

type Config struct {
	HTTPPort int

	RedisURL           string
	RefreshLockTTLSecs int

	CNBCBaseURL      string
	CurveSymbols     []string
	CurvePrefix      string
	SlopePairs       []domain.SlopePair
	FetchTimeoutSecs int

	TelegramBotToken string

	SSHPort        int
	SSHHostKeyPath string

	MCPTransport string
	MCPHTTPBind  string
	MCPHTTPPort  int

	OpenAIAPIKey string
	OpenAIModel  string
}

func Load() *Config {
	cfg := &Config{
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		CNBCBaseURL:      strings.TrimSpace(os.Getenv("CNBC_BASE_URL")),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
	}

	cfg.HTTPPort = positiveInt("HTTP_PORT", 8080)

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, refresh lock will be in-process")
	}
	cfg.RefreshLockTTLSecs = positiveInt("REFRESH_LOCK_TTL_SECS", 30)

	cfg.CurveSymbols = ParseSymbols(os.Getenv("CURVE_SYMBOLS"))
	if len(cfg.CurveSymbols) == 0 {
		cfg.CurveSymbols = append([]string(nil), domain.TreasurySymbols...)
	}

	cfg.CurvePrefix = strings.TrimSpace(os.Getenv("CURVE_PREFIX"))
	if cfg.CurvePrefix == "" {
		cfg.CurvePrefix = domain.TreasuryPrefix
	}

	cfg.SlopePairs = ParseSlopePairs(os.Getenv("SLOPE_PAIRS"))
	if len(cfg.SlopePairs) == 0 {
		cfg.SlopePairs = append([]domain.SlopePair(nil), domain.DefaultSlopePairs...)
	}

	cfg.FetchTimeoutSecs = positiveInt("FETCH_TIMEOUT_SECS", 15)

	// The lock must outlive the slowest fetch or a second refresh can slip in.
	if minTTL := cfg.FetchTimeoutSecs + lockTTLMarginSecs; cfg.RefreshLockTTLSecs < minTTL {
		log.Printf("Warning: REFRESH_LOCK_TTL_SECS=%d does not cover FETCH_TIMEOUT_SECS=%d, using %d",
			cfg.RefreshLockTTLSecs, cfg.FetchTimeoutSecs, minTTL)
		cfg.RefreshLockTTLSecs = minTTL
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}

	cfg.SSHPort = positiveInt("SSH_PORT", 2222)
	cfg.SSHHostKeyPath = strings.TrimSpace(os.Getenv("SSH_HOST_KEY_PATH"))
	if cfg.SSHHostKeyPath == "" {
		cfg.SSHHostKeyPath = ".ssh/id_ed25519"
	}

	cfg.MCPTransport = strings.ToLower(strings.TrimSpace(os.Getenv("MCP_TRANSPORT")))
	if cfg.MCPTransport == "" {
		cfg.MCPTransport = "stdio"
	}
	if cfg.MCPTransport != "stdio" && cfg.MCPTransport != "http" {
		log.Printf("Warning: unsupported MCP_TRANSPORT=%q, defaulting to stdio", cfg.MCPTransport)
		cfg.MCPTransport = "stdio"
	}

	cfg.MCPHTTPBind = strings.TrimSpace(os.Getenv("MCP_HTTP_BIND"))
	if cfg.MCPHTTPBind == "" {
		cfg.MCPHTTPBind = "127.0.0.1"
	}
	cfg.MCPHTTPPort = positiveInt("MCP_HTTP_PORT", 8090)

	if cfg.OpenAIAPIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set, curve commentary will be disabled")
	}
	cfg.OpenAIModel = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}

	return cfg
}

// ParseSymbols splits a "US2Y|US10Y" or "US2Y,US10Y" list, dropping blanks.
func ParseSymbols(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '|' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.ToUpper(strings.TrimSpace(f)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ParseSlopePairs reads "2s10s:US2Y:US10Y,3m10y:US3M:US10Y". Malformed
// entries are logged and dropped.
func ParseSlopePairs(raw string) []domain.SlopePair {
	var pairs []domain.SlopePair
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			log.Printf("Warning: ignoring SLOPE_PAIRS entry %q, want name:SHORT:LONG", entry)
			continue
		}
		name := strings.TrimSpace(parts[0])
		short := strings.ToUpper(strings.TrimSpace(parts[1]))
		long := strings.ToUpper(strings.TrimSpace(parts[2]))
		if name == "" || short == "" || long == "" || short == long {
			log.Printf("Warning: ignoring SLOPE_PAIRS entry %q", entry)
			continue
		}
		pairs = append(pairs, domain.SlopePair{Name: name, Short: short, Long: long})
	}
	return pairs
}

func positiveInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
