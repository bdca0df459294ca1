package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-d", "postgres://db", "-l", "debug", "-s", "secret", "-t", "30",
				"-k", "s3", "-f", "/srv/pdf", "-u", "user", "-p", "password", "-b", "bucket", "-g", "eu-west-1",
				"-e", "http://minio:9000", "-n", "UNI", "-r", "7",
			},
			expected: &Config{
				EndpointAddrGRPC:            "127.0.0.1:9090",
				DatabaseDSN:                 "postgres://db",
				LogLevel:                    "debug",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 30 * time.Minute,
				ArtifactBackend:             "s3",
				ArtifactRoot:                "/srv/pdf",
				S3RootUser:                  "user",
				S3RootPassword:              "password",
				S3Bucket:                    "bucket",
				S3Region:                    "eu-west-1",
				S3BaseEndpoint:              "http://minio:9000",
				SequencePrefix:              "UNI",
				AllocationRetries:           7,
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "1", "-a", ":7000"},
			expected: func() *Config {
				c := defaults()
				c.EndpointAddrGRPC = ":7000"
				return c
			}(),
		},
		{
			name:    "bad int",
			args:    []string{"-t", "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			err := parseFlags(c, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, c))
		})
	}
}

func TestParseFlags_KeepsSubMinuteValidityWithoutT(t *testing.T) {
	c := defaults()
	c.AccessTokenValidityDuration = 90 * time.Second

	require.NoError(t, parseFlags(c, []string{"-a", ":1"}))
	assert.Equal(t, 90*time.Second, c.AccessTokenValidityDuration)
}
