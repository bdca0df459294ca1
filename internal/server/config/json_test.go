package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc":             "www.example:9000",
		"database_dsn":                   "postgres://certs",
		"log_level":                      "warn",
		"secret_key":                     "my_secret_key",
		"access_token_validity_duration": "90s",
		"artifact_backend":               "s3",
		"artifact_root":                  "/var/lib/certs",
		"s3_root_user":                   "user",
		"s3_root_password":               "password",
		"s3_bucket":                      "bucket",
		"s3_region":                      "region",
		"s3_base_endpoint":               "base_endpoint",
		"sequence_prefix":                "UNI",
		"allocation_retries":             4,
	})

	cfg := &Config{}
	require.NoError(t, parseJson(cfg, []string{"-config", path}))

	want := &Config{
		EndpointAddrGRPC:            "www.example:9000",
		DatabaseDSN:                 "postgres://certs",
		LogLevel:                    "warn",
		SecretKey:                   "my_secret_key",
		AccessTokenValidityDuration: 90 * time.Second,
		ArtifactBackend:             "s3",
		ArtifactRoot:                "/var/lib/certs",
		S3RootUser:                  "user",
		S3RootPassword:              "password",
		S3Bucket:                    "bucket",
		S3Region:                    "region",
		S3BaseEndpoint:              "base_endpoint",
		SequencePrefix:              "UNI",
		AllocationRetries:           4,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func Test_parseJson_AbsentKeysKeepValues(t *testing.T) {
	path := writeTempJSON(t, "", "partial.json", map[string]any{"s3_bucket": "other"})

	cfg := defaults()
	require.NoError(t, parseJson(cfg, []string{"-c", path}))

	want := defaults()
	want.S3Bucket = "other"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func Test_parseJson_NoFlagNoChange(t *testing.T) {
	cfg := defaults()
	require.NoError(t, parseJson(cfg, []string{"-a", ":1"}))
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func Test_parseJson_Invalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))

	err := parseJson(&Config{}, []string{"-c", bad})
	assert.ErrorContains(t, err, "parse config")

	dur := writeTempJSON(t, dir, "dur.json", map[string]any{"access_token_validity_duration": "forever"})
	err = parseJson(&Config{}, []string{"-c", dur})
	assert.Error(t, err)
}
