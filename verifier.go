package credcheck

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"time"

	"github.com/MrEthical07/credcheck/derive"
	"github.com/MrEthical07/credcheck/store"
)

// Format labels used in audit events and metric attribution.
const (
	formatPlain      = "plain"
	formatObfuscated = "b64"
	formatSaltedHash = "shash"
)

// Verifier defines a public type used by credcheck APIs.
//
// Verifier instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Verifier struct {
	config  Config
	store   store.Store
	deriver derive.Deriver
	metrics *Metrics
	audit   *auditDispatcher
}

// Close describes the close operation and its observable behavior.
//
// Close drains and stops the audit dispatcher. The Verifier itself holds no
// other resources; Close on a nil Verifier is a no-op.
func (v *Verifier) Close() {
	if v == nil {
		return
	}
	if v.audit != nil {
		v.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped reports how many audit events were discarded because the
// dispatch buffer was full.
func (v *Verifier) AuditDropped() uint64 {
	if v == nil || v.audit == nil {
		return 0
	}
	return v.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot returns a point-in-time copy of all counters and histograms.
func (v *Verifier) MetricsSnapshot() MetricsSnapshot {
	if v == nil || v.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return v.metrics.Snapshot()
}

func (v *Verifier) metricInc(id MetricID) {
	if v == nil || v.metrics == nil {
		return
	}
	v.metrics.Inc(id)
}

// Check describes the check operation and its observable behavior.
//
// Check tries the stored formats in fixed order — plain text, then base64
// obfuscation, then salted hash — and returns true on the first match. The
// order is a backward-compatibility contract with hand-edited configurations,
// not a security preference. Absent and malformed stored values mean "no
// match"; only a backend failure or an empty realm yields an error.
// Check does not mutate shared global state and can be used concurrently.
func (v *Verifier) Check(ctx context.Context, realm, user, password string) (bool, error) {
	if realm == "" {
		return false, ErrEmptyRealm
	}

	start := time.Now()
	ok, format, err := v.checkCascade(ctx, realm, user, password)
	v.metrics.Observe(MetricCheckLatency, time.Since(start))

	switch {
	case err != nil:
		v.metricInc(MetricStoreError)
		v.emitAudit(ctx, auditEventCheckError, false, realm, user, format, err)
		return false, err
	case ok:
		v.metricInc(MetricCheckSuccess)
		v.emitAudit(ctx, auditEventCheckSuccess, true, realm, user, format, nil)
	default:
		v.metricInc(MetricCheckFailure)
		v.emitAudit(ctx, auditEventCheckFailure, false, realm, user, "", nil)
	}
	return ok, nil
}

func (v *Verifier) checkCascade(ctx context.Context, realm, user, password string) (bool, string, error) {
	checks := []struct {
		format string
		fn     func(context.Context, string, string, string) (bool, error)
	}{
		{formatPlain, v.checkPlain},
		{formatObfuscated, v.checkObfuscated},
		{formatSaltedHash, v.checkSaltedHash},
	}

	for _, c := range checks {
		ok, err := c.fn(ctx, realm, user, password)
		if err != nil {
			return false, c.format, err
		}
		if ok {
			return true, c.format, nil
		}
	}
	return false, "", nil
}

// CheckPlain describes the checkplain operation and its observable behavior.
//
// CheckPlain reports whether the stored plain-text value equals the candidate
// exactly: byte-for-byte, case-sensitive, no trimming or normalization. An
// absent property is false, not an error.
// CheckPlain does not mutate shared global state and can be used concurrently.
func (v *Verifier) CheckPlain(ctx context.Context, realm, user, password string) (bool, error) {
	if realm == "" {
		return false, ErrEmptyRealm
	}
	return v.checkPlain(ctx, realm, user, password)
}

func (v *Verifier) checkPlain(ctx context.Context, realm, user, password string) (bool, error) {
	stored, ok, err := v.store.Lookup(ctx, StorageKey(realm, user)+SuffixPlain)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	match := subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	if match {
		v.metricInc(MetricPlainHit)
	}
	return match, nil
}

// CheckObfuscated describes the checkobfuscated operation and its observable behavior.
//
// CheckObfuscated base64-encodes the candidate's UTF-8 bytes and compares the
// result against the stored string. Obfuscation is not protection: anyone who
// can read the store can recover the password. A stored value that is not
// valid base64 simply never matches.
// CheckObfuscated does not mutate shared global state and can be used concurrently.
func (v *Verifier) CheckObfuscated(ctx context.Context, realm, user, password string) (bool, error) {
	if realm == "" {
		return false, ErrEmptyRealm
	}
	return v.checkObfuscated(ctx, realm, user, password)
}

func (v *Verifier) checkObfuscated(ctx context.Context, realm, user, password string) (bool, error) {
	stored, ok, err := v.store.Lookup(ctx, StorageKey(realm, user)+SuffixObfuscated)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(password))
	match := subtle.ConstantTimeCompare([]byte(stored), []byte(encoded)) == 1
	if match {
		v.metricInc(MetricObfuscatedHit)
	}
	return match, nil
}

// CheckSaltedHash describes the checksaltedhash operation and its observable behavior.
//
// CheckSaltedHash decodes the stored base64 value into salt (16 bytes) and
// key (32 bytes), re-derives a key from the salt and the candidate, and
// compares the two in constant time. A value that fails to decode, decodes to
// the wrong length, or hits a derivation failure is "no match", never an
// error or a panic.
// CheckSaltedHash does not mutate shared global state and can be used concurrently.
func (v *Verifier) CheckSaltedHash(ctx context.Context, realm, user, password string) (bool, error) {
	if realm == "" {
		return false, ErrEmptyRealm
	}
	return v.checkSaltedHash(ctx, realm, user, password)
}

func (v *Verifier) checkSaltedHash(ctx context.Context, realm, user, password string) (bool, error) {
	stored, ok, err := v.store.Lookup(ctx, StorageKey(realm, user)+SuffixSaltedHash)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	raw, decodeErr := base64.StdEncoding.DecodeString(stored)
	if decodeErr != nil || len(raw) != saltedHashLength {
		v.metricInc(MetricMalformedStored)
		return false, nil
	}

	salt := raw[:SaltLength]
	want := raw[SaltLength:]

	got, deriveErr := v.deriver.DeriveKey(salt, []byte(password))
	if deriveErr != nil || len(got) != derive.KeySize {
		v.metricInc(MetricDeriveFailure)
		return false, nil
	}

	match := subtle.ConstantTimeCompare(got, want) == 1
	if match {
		v.metricInc(MetricSaltedHashHit)
	}
	return match, nil
}

// Get describes the get operation and its observable behavior.
//
// Get returns the stored password from the reversible formats, preferring
// plain text over obfuscated. The salted-hash format is one-way and has no
// read-back path.
// Get does not mutate shared global state and can be used concurrently.
func (v *Verifier) Get(ctx context.Context, realm, user string) (string, bool, error) {
	pw, ok, err := v.GetPlain(ctx, realm, user)
	if err != nil || ok {
		return pw, ok, err
	}
	return v.GetObfuscated(ctx, realm, user)
}

// GetPlain describes the getplain operation and its observable behavior.
//
// GetPlain returns the stored plain-text password, if any.
// GetPlain does not mutate shared global state and can be used concurrently.
func (v *Verifier) GetPlain(ctx context.Context, realm, user string) (string, bool, error) {
	if realm == "" {
		return "", false, ErrEmptyRealm
	}
	return v.store.Lookup(ctx, StorageKey(realm, user)+SuffixPlain)
}

// GetObfuscated describes the getobfuscated operation and its observable behavior.
//
// GetObfuscated returns the decoded obfuscated password, if any. A stored
// value that is not valid base64 is reported as absent.
// GetObfuscated does not mutate shared global state and can be used concurrently.
func (v *Verifier) GetObfuscated(ctx context.Context, realm, user string) (string, bool, error) {
	if realm == "" {
		return "", false, ErrEmptyRealm
	}

	stored, ok, err := v.store.Lookup(ctx, StorageKey(realm, user)+SuffixObfuscated)
	if err != nil || !ok {
		return "", false, err
	}

	raw, decodeErr := base64.StdEncoding.DecodeString(stored)
	if decodeErr != nil {
		v.metricInc(MetricMalformedStored)
		return "", false, nil
	}
	return string(raw), true, nil
}
