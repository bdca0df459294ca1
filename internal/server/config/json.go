package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/certkeeper/internal/flagx"
	"github.com/dmitrijs2005/certkeeper/internal/timex"
)

// JsonConfig mirrors Config for JSON files. Durations accept "8h" style
// strings or integer nanoseconds. Keys that are absent leave the current
// value alone.
type JsonConfig struct {
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn"`
	LogLevel                    *string         `json:"log_level"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	ArtifactBackend             *string         `json:"artifact_backend"`
	ArtifactRoot                *string         `json:"artifact_root"`
	S3RootUser                  *string         `json:"s3_root_user"`
	S3RootPassword              *string         `json:"s3_root_password"`
	S3Bucket                    *string         `json:"s3_bucket"`
	S3Region                    *string         `json:"s3_region"`
	S3BaseEndpoint              *string         `json:"s3_base_endpoint"`
	SequencePrefix              *string         `json:"sequence_prefix"`
	AllocationRetries           *int            `json:"allocation_retries"`
}

// parseJson overlays the file named by -c or -config onto config. Without
// either flag it does nothing.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.SecretKey, c.SecretKey)
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	setString(&config.ArtifactBackend, c.ArtifactBackend)
	setString(&config.ArtifactRoot, c.ArtifactRoot)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.SequencePrefix, c.SequencePrefix)
	if c.AllocationRetries != nil {
		config.AllocationRetries = *c.AllocationRetries
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
