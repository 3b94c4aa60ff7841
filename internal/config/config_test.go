package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected StorageDriver: %s", cfg.StorageDriver)
	}
	if cfg.SleeperSeasonWeeks != 17 {
		t.Fatalf("unexpected SleeperSeasonWeeks: %d", cfg.SleeperSeasonWeeks)
	}
	if cfg.SleeperDefaultLeagueID != DefaultSleeperLeagueID {
		t.Fatalf("unexpected SleeperDefaultLeagueID: %s", cfg.SleeperDefaultLeagueID)
	}
	if cfg.AwardsCacheTTL != 15*time.Minute {
		t.Fatalf("unexpected AwardsCacheTTL: %s", cfg.AwardsCacheTTL)
	}
	if cfg.AwardsRefreshTimezone.String() != "America/Los_Angeles" {
		t.Fatalf("unexpected AwardsRefreshTimezone: %s", cfg.AwardsRefreshTimezone)
	}
	if cfg.ActiveTeamCookieSecure {
		t.Fatalf("expected insecure cookie outside prod by default")
	}
	if !cfg.SleeperCircuit.Enabled || cfg.SleeperCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected SleeperCircuit: %+v", cfg.SleeperCircuit)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_ProdSecuresCookieByDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ACTIVE_TEAM_COOKIE_SECURE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.ActiveTeamCookieSecure {
		t.Fatalf("expected secure cookie in prod")
	}
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "storage driver", key: "STORAGE_DRIVER", value: "sqlite"},
		{name: "season weeks too large", key: "SLEEPER_SEASON_WEEKS", value: "19"},
		{name: "season weeks not a number", key: "SLEEPER_SEASON_WEEKS", value: "many"},
		{name: "negative retries", key: "SLEEPER_MAX_RETRIES", value: "-1"},
		{name: "zero cache ttl", key: "CACHE_TTL", value: "0s"},
		{name: "unknown timezone", key: "AWARDS_REFRESH_TIMEZONE", value: "Mars/Olympus_Mons"},
		{name: "breaker threshold", key: "ANUBIS_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "bool", key: "AWARDS_REFRESH_ENABLED", value: "sometimes"},
		{name: "log level", key: "APP_LOG_LEVEL", value: "loud"},
		{name: "cors", key: "CORS_ALLOWED_ORIGINS", value: " , "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "s1765114.eu-fsn-3.betterstackdata.com")
	t.Setenv("BETTERSTACK_TOKEN", "token-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "4s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.BetterStackEnabled || cfg.BetterStackToken != "token-123" {
		t.Fatalf("unexpected better stack config: %+v", cfg)
	}
	if cfg.BetterStackTimeout != 4*time.Second {
		t.Fatalf("unexpected BetterStackTimeout: %s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel.String() != "warn" {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel.String())
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "binetime-stage")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "https://profiles.example.com")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "binetime-stage" {
		t.Fatalf("unexpected PyroscopeAppName: %s", cfg.PyroscopeAppName)
	}
}

func TestLoad_SleeperAndAwardsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("SLEEPER_SEASON_WEEKS", "14")
	t.Setenv("SLEEPER_FETCH_WORKERS", "3")
	t.Setenv("SLEEPER_CIRCUIT_ENABLED", "false")
	t.Setenv("AWARDS_REFRESH_ENABLED", "true")
	t.Setenv("AWARDS_REFRESH_TIMEZONE", "UTC")
	t.Setenv("ACCOUNT_AUTO_REGISTER", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected StorageDriver: %s", cfg.StorageDriver)
	}
	if cfg.SleeperSeasonWeeks != 14 || cfg.SleeperFetchWorkers != 3 {
		t.Fatalf("unexpected sleeper config: weeks=%d workers=%d", cfg.SleeperSeasonWeeks, cfg.SleeperFetchWorkers)
	}
	if cfg.SleeperCircuit.Enabled {
		t.Fatalf("expected sleeper circuit disabled")
	}
	if !cfg.AwardsRefreshEnabled || cfg.AwardsRefreshTimezone != time.UTC {
		t.Fatalf("unexpected awards refresh config: %v %v", cfg.AwardsRefreshEnabled, cfg.AwardsRefreshTimezone)
	}
	if !cfg.AccountAutoRegister {
		t.Fatalf("expected AccountAutoRegister=true")
	}
}
