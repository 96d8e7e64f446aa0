package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request header timeout (e.g., "30s", "1m")
//	-d leaks database path
//	-uploads-dir directory for uploaded leak files
//	-max-memory multipart in-memory limit in bytes
//	-importer importer executable
//	-notify-url URL forwarded to the importer
//	-importer-timeout importer timeout (e.g., "10m")
//	-serialize serialize imports
//	-fail-on-exit-code treat a non-zero importer exit as an error
//	-sweep-interval upload sweeper period
//	-upload-ttl upload age before it is swept
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout time.Duration
	var leaksDBPath string
	var uploadsDir string
	var maxMemory int64
	var importerExecutable string
	var notifyURL string
	var importerTimeout time.Duration
	var serialize bool
	var failOnExitCode bool
	var sweepInterval time.Duration
	var uploadTTL time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request header timeout (e.g., 30s, 1m)")
	fs.StringVar(&leaksDBPath, "d", "", "Leaks database path")
	fs.StringVar(&uploadsDir, "uploads-dir", "", "Directory for uploaded leak files")
	fs.Int64Var(&maxMemory, "max-memory", 0, "Multipart in-memory limit in bytes")
	fs.StringVar(&importerExecutable, "importer", "", "Importer executable")
	fs.StringVar(&notifyURL, "notify-url", "", "URL the importer notifies about new leaks")
	fs.DurationVar(&importerTimeout, "importer-timeout", 0, "Importer timeout (e.g., 10m)")
	fs.BoolVar(&serialize, "serialize", false, "Run one import at a time")
	fs.BoolVar(&failOnExitCode, "fail-on-exit-code", false, "Fail requests when the importer exits non-zero")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Stale upload sweep interval (e.g., 1h)")
	fs.DurationVar(&uploadTTL, "upload-ttl", 0, "Upload age before it is swept (e.g., 24h)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			LeaksDB: LeaksDB{
				Path: leaksDBPath,
			},
			Uploads: Uploads{
				Dir:       uploadsDir,
				MaxMemory: maxMemory,
			},
		},
		Importer: Importer{
			Executable:     importerExecutable,
			NotifyURL:      notifyURL,
			Timeout:        importerTimeout,
			Serialize:      serialize,
			FailOnExitCode: failOnExitCode,
		},
		Workers: Workers{
			UploadSweepInterval: sweepInterval,
			UploadTTL:           uploadTTL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
