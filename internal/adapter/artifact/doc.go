// Package artifact loads the trained vectorizer/classifier pair exported by the
// offline training pipeline.
//
// Both artifacts are JSON documents in one directory. Load returns the pair only when
// both files exist and decode into consistent shapes; Open wraps Load for startup,
// logging any failure once and leaving the store empty so the service runs in
// fallback mode. The loaded pair is immutable and safe for concurrent use.
package artifact
