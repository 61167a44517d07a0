package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] with JSON tags and string-friendly
// durations for the optional config file.
type jsonConfig struct {
	App struct {
		AutoLockTimeout Duration `json:"auto_lock_timeout"`
		FlushInterval   Duration `json:"flush_interval"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Remote struct {
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &Config{
		App: App{
			AutoLockTimeout: time.Duration(jsonCfg.App.AutoLockTimeout),
			FlushInterval:   time.Duration(jsonCfg.App.FlushInterval),
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Remote: Remote{
			Endpoint:       jsonCfg.Remote.Endpoint,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
	}, nil
}

// Duration wraps time.Duration to support JSON unmarshaling both from
// strings like "1h30m" and from raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		*d = Duration(tmp)
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}

	return nil
}
