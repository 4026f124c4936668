package config

import (
	"encoding/json"
	"os"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed values
// are copied into the runtime Config; absent fields leave the earlier layers
// untouched.
type JsonConfig struct {
	AuthAPIBase     string `json:"auth_api_base"`
	FinanzasAPIBase string `json:"finanzas_api_base"`
	SessionFile     string `json:"session_file"`
	Debug           *bool  `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given no JSON is
// loaded. Read or unmarshal errors panic, matching the fail-fast behavior
// of the other config layers.
func parseJson(cfg *Config) {
	jsonConfigFile := jsonConfigFlags()
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

	if jc.AuthAPIBase != "" {
		cfg.AuthAPIBase = jc.AuthAPIBase
	}
	if jc.FinanzasAPIBase != "" {
		cfg.FinanzasAPIBase = jc.FinanzasAPIBase
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
