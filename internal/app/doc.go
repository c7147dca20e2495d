// Package app assembles the analysis engine from configuration. It is the only
// package that references the artifact store, the normalizer and the scorers
// together; cmd/server and cmd/reviewctl both build through it.
package app
