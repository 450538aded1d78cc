// Package config handles configuration for the reference sync server,
// including defaults, JSON overlay, environment variables and command-line
// flags.
package config

// Config holds runtime settings for the sync server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DataDir: directory holding the stored payload blob.
//   - Username / Password: the credential pair every client call must carry.
//   - TLSCertFile / TLSKeyFile: server certificate and key in PEM format.
type Config struct {
	EndpointAddrGRPC string `env:"DOMAINKEEPER_ADDRESS"`
	DataDir          string `env:"DOMAINKEEPER_DATA_DIR"`
	Username         string `env:"DOMAINKEEPER_USERNAME"`
	Password         string `env:"DOMAINKEEPER_PASSWORD"`
	TLSCertFile      string `env:"DOMAINKEEPER_TLS_CERT"`
	TLSKeyFile       string `env:"DOMAINKEEPER_TLS_KEY"`
}

// LoadDefaults populates Config with development defaults. The credential
// pair has no default; a server without configured credentials refuses to
// start.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DataDir = "data"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
