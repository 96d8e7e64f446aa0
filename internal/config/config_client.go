package config

import (
	"flag"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the bridge.
	HTTPAddress string
	// RequestTimeout is the timeout for one submission.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the bridge address and timeout.
	Adapter ClientAdapter
}

// ClientFlags keeps the values of the client configuration flags registered
// on a caller-owned flag set.
type ClientFlags struct {
	httpAddress    string
	requestTimeout time.Duration
}

// RegisterClientFlags registers the client configuration flags on fs.
// The caller parses fs and then hands the result to [GetClientConfig].
//
// Flags:
//
//	-a bridge base URL (e.g., http://0.0.0.0:55545)
//	-request-timeout submission timeout (e.g., 5m)
func RegisterClientFlags(fs *flag.FlagSet) *ClientFlags {
	f := &ClientFlags{}
	fs.StringVar(&f.httpAddress, "a", "", "Bridge base URL")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Submission timeout (e.g., 5m)")
	return f
}

// GetClientConfig builds and validates a client-specific config view from
// the .env file, environment variables and already parsed flags.
func GetClientConfig(flags *ClientFlags) (*ClientConfig, error) {
	b := newConfigBuilder().
		withDotEnv().
		withEnv()

	if flags != nil {
		b.configs = append(b.configs, &StructuredConfig{
			Adapter: Adapter{
				HTTPAddress:    flags.httpAddress,
				RequestTimeout: flags.requestTimeout,
			},
		})
	}

	cfg, err := b.build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
