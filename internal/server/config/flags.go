package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
//	-a string   gRPC bind address (":50051")
//	-d string   PostgreSQL DSN; empty selects the in-memory store
//	-l string   log level (debug, info, warn, error)
//	-s string   operator token secret
//	-t int      operator token validity, minutes
//	-k string   artifact backend (fs, s3)
//	-f string   artifact root directory for the fs backend
//	-u string   S3 user
//	-p string   S3 password
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-n string   certificate number prefix
//	-r int      number allocation attempts
//
// Flags other than these (such as -c) are filtered out before parsing.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("certkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	validity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "operator token validity (in minutes)")

	fs.StringVar(&config.ArtifactBackend, "k", config.ArtifactBackend, "artifact backend: fs or s3")
	fs.StringVar(&config.ArtifactRoot, "f", config.ArtifactRoot, "artifact root directory")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	fs.StringVar(&config.SequencePrefix, "n", config.SequencePrefix, "certificate number prefix")
	fs.IntVar(&config.AllocationRetries, "r", config.AllocationRetries, "number allocation attempts")

	if err := fs.Parse(flagx.FilterArgs(args, flagx.Names(fs))); err != nil {
		return err
	}

	// Only an explicit -t overrides, so sub-minute values from JSON survive.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*validity) * time.Minute
		}
	})
	return nil
}
