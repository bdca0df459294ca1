package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/server/sequence"
)

// Artifact storage backends.
const (
	ArtifactBackendFS = "fs"
	ArtifactBackendS3 = "s3"
)

// Config holds runtime settings for the certkeeper server.
//
// An empty DatabaseDSN selects the in-memory store, which is meant for local
// development only: nothing survives a restart.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	LogLevel         string

	// SecretKey signs operator tokens (HS256).
	SecretKey                   string
	AccessTokenValidityDuration time.Duration

	ArtifactBackend string
	ArtifactRoot    string
	S3RootUser      string
	S3RootPassword  string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string

	// SequencePrefix is recorded on a year's counter when it is created and
	// prepended to that year's numbers.
	SequencePrefix    string
	AllocationRetries int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.LogLevel = "info"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 8 * time.Hour
	c.ArtifactBackend = ArtifactBackendFS
	c.ArtifactRoot = "./data/artifacts"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "certificates"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.SequencePrefix = ""
	c.AllocationRetries = sequence.DefaultAttempts
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.EndpointAddrGRPC == "" {
		return fmt.Errorf("grpc address is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is required")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.AccessTokenValidityDuration)
	}
	switch c.ArtifactBackend {
	case ArtifactBackendFS:
		if c.ArtifactRoot == "" {
			return fmt.Errorf("artifact root is required for the %q backend", ArtifactBackendFS)
		}
	case ArtifactBackendS3:
		if c.S3Bucket == "" {
			return fmt.Errorf("s3 bucket is required for the %q backend", ArtifactBackendS3)
		}
	default:
		return fmt.Errorf("unknown artifact backend %q", c.ArtifactBackend)
	}
	if c.AllocationRetries < 1 {
		return fmt.Errorf("allocation retries must be at least 1, got %d", c.AllocationRetries)
	}
	return nil
}

// Load builds a Config from defaults, the JSON file named by -c/-config in
// args (if any) and the flags in args.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
