// Package credcheck verifies plaintext passwords against credentials held in
// a flat configuration store, where a credential for a (realm, user) pair may
// exist in any of several historical encodings at once: plain text, base64
// obfuscation, or a salted one-way hash.
//
// Verification cascades plain → obfuscated → salted hash and returns on the
// first match. Malformed or corrupt stored values are treated as "no match",
// never as a failure. The package also produces the encoded forms used to
// write new credentials, and computes the RFC 2617-compatible MD5 digest used
// by external realm authentication.
//
// The package is designed for concurrent server workloads: Verifier methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// credcheck is the public surface. It exposes [Verifier], [Builder], [Config],
// and value types (AuditEvent, MetricsSnapshot, EncodedCredential). The
// configuration backend lives in store/ and the key-derivation collaborators
// in derive/; both are injected and never constructed here.
//
// # What this package must NOT do
//
//   - Write to the configuration store. Encoders return strings; persisting
//     them is the caller's responsibility.
//   - Apply rate limiting, lockout, or session policy. A calling layer wraps
//     the verifier with whatever throttling it needs.
//   - Log or expose plaintext passwords or derived key material.
package credcheck
