package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// minRefreshInterval guards against unitless values such as NETRA_REFRESH_INTERVAL=30,
// which parse as nanoseconds.
const minRefreshInterval = time.Second

func setDefaults() {
	viper.SetDefault("unleash_path", "http://localhost:4242/api")
	viper.SetDefault("service_name", "netra-portal")
	viper.SetDefault("app_version", "dev")
	viper.SetDefault("listen_port", "8081")
	viper.SetDefault("backend_url", "http://localhost:8000")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("refresh_interval", "30s")
	viper.SetDefault("csrf_key", "")
	viper.SetDefault("secure_cookies", false)
}

// loadConfig applies defaults then lets NETRA_* environment variables override them,
// e.g. NETRA_BACKEND_URL.
func loadConfig() {
	setDefaults()
	viper.SetEnvPrefix("netra")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// refreshInterval returns the validated dashboard refresh period.
func refreshInterval() (time.Duration, error) {
	d := viper.GetDuration("refresh_interval")
	if d < minRefreshInterval {
		return 0, errors.Errorf("refresh interval %q is too short: use a duration of at least %s, e.g. 30s",
			viper.GetString("refresh_interval"), minRefreshInterval)
	}
	return d, nil
}
