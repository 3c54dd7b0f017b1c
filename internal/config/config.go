// Package config loads the service configuration from the environment.
// Values are consumed as opaque strings; validation is presence-only.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SHOWREEL"

// Config is the full environment-provided configuration surface.
type Config struct {
	Addr          string
	LogLevel      string
	PublicBaseURL string

	VimeoToken      string
	VimeoRootFolder string
	VimeoTeamID     string
	VimeoBaseURL    string

	HTTPTimeout time.Duration
	CacheTTL    time.Duration

	RedisAddr      string // empty selects the in-memory backends
	AdminJWTSecret string // empty disables the refresh endpoint
}

// Load reads configuration from SHOWREEL_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("vimeo_base_url", "https://api.vimeo.com")
	v.SetDefault("http_timeout", "15s")
	v.SetDefault("cache_ttl", "5m")

	cfg := &Config{
		Addr:            v.GetString("addr"),
		LogLevel:        v.GetString("log_level"),
		PublicBaseURL:   strings.TrimRight(v.GetString("public_base_url"), "/"),
		VimeoToken:      v.GetString("vimeo_token"),
		VimeoRootFolder: v.GetString("vimeo_root_folder"),
		VimeoTeamID:     v.GetString("vimeo_team_id"),
		VimeoBaseURL:    v.GetString("vimeo_base_url"),
		HTTPTimeout:     v.GetDuration("http_timeout"),
		CacheTTL:        v.GetDuration("cache_ttl"),
		RedisAddr:       v.GetString("redis_addr"),
		AdminJWTSecret:  v.GetString("admin_jwt_secret"),
	}

	var missing []string
	if cfg.VimeoToken == "" {
		missing = append(missing, envPrefix+"_VIMEO_TOKEN")
	}
	if cfg.VimeoRootFolder == "" {
		missing = append(missing, envPrefix+"_VIMEO_ROOT_FOLDER")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config: missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
