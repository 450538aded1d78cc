package config

import (
	"encoding/json"
	"os"

	"github.com/avoronov84/domainkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; parsed values
// are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC *string `json:"address"`
	DataDir          *string `json:"data_dir"`
	Username         *string `json:"username"`
	Password         *string `json:"password"`
	TLSCertFile      *string `json:"tls_cert_file"`
	TLSKeyFile       *string `json:"tls_key_file"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Absent keys leave the current value in place. Read or
// unmarshal errors panic; there is no sensible way to continue with a half
// applied configuration.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddrGRPC != nil {
		cfg.EndpointAddrGRPC = *jc.EndpointAddrGRPC
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.Username != nil {
		cfg.Username = *jc.Username
	}
	if jc.Password != nil {
		cfg.Password = *jc.Password
	}
	if jc.TLSCertFile != nil {
		cfg.TLSCertFile = *jc.TLSCertFile
	}
	if jc.TLSKeyFile != nil {
		cfg.TLSKeyFile = *jc.TLSKeyFile
	}
}
