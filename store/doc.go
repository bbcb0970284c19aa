// Package store provides the configuration-store collaborators the credential
// verifier reads stored property values from.
//
// # Design
//
// A Store is a flat string key/value lookup with no write path: the verifier
// only ever reads. Absence is an ordinary outcome (the key has no value), not
// an error; errors are reserved for backend failures such as an unreachable
// Redis server. [MapStore] is an in-memory implementation suitable for tests
// and for callers that load configuration files themselves; [RedisStore]
// serves deployments that keep configuration in Redis.
//
// # What this package must NOT do
//
//   - Import credcheck or any sibling package.
//   - Interpret, decode, or validate stored values; that is the verifier's job.
//   - Log or expose stored credential material.
package store
