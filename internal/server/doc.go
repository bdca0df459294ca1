// Package server wires the certkeeper components together: storage backend,
// artifact store, services and the gRPC endpoint. It also handles graceful
// shutdown on SIGINT/SIGTERM/SIGQUIT.
package server
