package config

import (
	"flag"
	"os"

	"github.com/avoronov84/domainkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   bind address for the gRPC endpoint
//	-d string   data directory for the stored payload
//	-u string   expected client username
//	-p string   expected client password
//	-tls-cert / -tls-key   server certificate and key files (PEM)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-u", "-p", "-tls-cert", "-tls-key"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to bind the gRPC endpoint")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the stored payload")
	fs.StringVar(&cfg.Username, "u", cfg.Username, "expected client username")
	fs.StringVar(&cfg.Password, "p", cfg.Password, "expected client password")
	fs.StringVar(&cfg.TLSCertFile, "tls-cert", cfg.TLSCertFile, "server TLS certificate file (PEM)")
	fs.StringVar(&cfg.TLSKeyFile, "tls-key", cfg.TLSKeyFile, "server TLS key file (PEM)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
