package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays cfg with DOMAINKEEPER_* environment variables declared
// via the struct's env tags. Unset variables leave the current value alone.
func parseEnv(cfg *Config) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		panic(err)
	}
}
