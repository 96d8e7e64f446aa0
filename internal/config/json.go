package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for decoding the optional
// JSON configuration file.
type StructuredJSONConfig struct {
	Server struct {
		Host           string   `json:"host"`
		Port           int      `json:"port"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		LeaksDB struct {
			Path string `json:"path"`
		} `json:"leaks_db,omitempty"`

		Uploads struct {
			Dir       string `json:"dir"`
			MaxMemory int64  `json:"max_memory"`
		} `json:"uploads,omitempty"`
	} `json:"storage,omitempty"`

	Importer struct {
		Executable     string   `json:"executable"`
		NotifyURL      string   `json:"notify_url"`
		Timeout        Duration `json:"timeout"`
		Serialize      bool     `json:"serialize"`
		FailOnExitCode bool     `json:"fail_on_exit_code"`
	} `json:"importer,omitempty"`

	Workers struct {
		UploadSweepInterval Duration `json:"upload_sweep_interval"`
		UploadTTL           Duration `json:"upload_ttl"`
	} `json:"workers,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Host:           jsonCfg.Server.Host,
			Port:           jsonCfg.Server.Port,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			LeaksDB: LeaksDB{
				Path: jsonCfg.Storage.LeaksDB.Path,
			},
			Uploads: Uploads{
				Dir:       jsonCfg.Storage.Uploads.Dir,
				MaxMemory: jsonCfg.Storage.Uploads.MaxMemory,
			},
		},
		Importer: Importer{
			Executable:     jsonCfg.Importer.Executable,
			NotifyURL:      jsonCfg.Importer.NotifyURL,
			Timeout:        time.Duration(jsonCfg.Importer.Timeout),
			Serialize:      jsonCfg.Importer.Serialize,
			FailOnExitCode: jsonCfg.Importer.FailOnExitCode,
		},
		Workers: Workers{
			UploadSweepInterval: time.Duration(jsonCfg.Workers.UploadSweepInterval),
			UploadTTL:           time.Duration(jsonCfg.Workers.UploadTTL),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
