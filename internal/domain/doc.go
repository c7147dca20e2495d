// Package domain defines the core sentiment types and interfaces.
//
// Concept-oriented files (sentiment.go, artifact.go, engine.go, errors.go) hold shared
// value types and the contracts between the engine, the artifact store and the adapters.
// No implementation code beyond small helpers on value types.
package domain
