package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/peakhub/peakhub/internal/flagx"
	"github.com/peakhub/peakhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the latency either as a string
// like "500ms" or as integer nanoseconds.
type JsonConfig struct {
	StorePath    string         `json:"store_path"`
	LoginLatency timex.Duration `json:"login_latency"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. When no file is given the function is a no-op; read or
// unmarshal errors panic, since a present-but-broken config file is a setup
// mistake the user has to fix.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.LoginLatency.Duration != 0 {
		cfg.LoginLatency = time.Duration(jc.LoginLatency.Duration)
	}
}
