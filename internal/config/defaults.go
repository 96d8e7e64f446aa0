package config

import (
	"os"
	"time"
)

const (
	DefaultHost               = "0.0.0.0"
	DefaultPort               = 55545
	DefaultImporterExecutable = "import"
	DefaultUploadsMaxMemory   = 32 << 20
	DefaultUploadTTL          = 24 * time.Hour
	DefaultAdapterHTTPAddress = "http://0.0.0.0:55545"
	DefaultAdapterTimeout     = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Storage: Storage{
			Uploads: Uploads{
				Dir:       os.TempDir(),
				MaxMemory: DefaultUploadsMaxMemory,
			},
		},
		Importer: Importer{
			Executable: DefaultImporterExecutable,
		},
		Workers: Workers{
			UploadTTL: DefaultUploadTTL,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterHTTPAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
