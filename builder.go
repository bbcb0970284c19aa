package credcheck

import (
	"github.com/MrEthical07/credcheck/derive"
	"github.com/MrEthical07/credcheck/store"
)

// Builder defines a public type used by credcheck APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config    Config
	store     store.Store
	deriver   derive.Deriver
	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New returns a Builder preloaded with default configuration. Construction is
// allocation-only; no I/O happens until the Verifier is used.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig replaces the entire configuration. Call it before the other
// With* methods that touch config fields.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithStore describes the withstore operation and its observable behavior.
//
// WithStore injects the configuration backend the verifier reads stored
// credential values from. A store is required to Build.
func (b *Builder) WithStore(s store.Store) *Builder {
	b.store = s
	return b
}

// WithDeriver describes the withderiver operation and its observable behavior.
//
// WithDeriver injects the key-derivation collaborator used for the salted-hash
// format. When omitted, Build falls back to [derive.SHA256Deriver], the only
// deriver compatible with the historical stored format.
func (b *Builder) WithDeriver(d derive.Deriver) *Builder {
	b.deriver = d
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink injects the sink audit events are dispatched to when auditing
// is enabled in the configuration.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled toggles metric collection without replacing the rest of
// the configuration.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation fails. A Builder is
// single-use: a second Build returns ErrBuilderReused.
func (b *Builder) Build() (*Verifier, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	if b.store == nil {
		return nil, ErrNoStore
	}

	deriver := b.deriver
	if deriver == nil {
		deriver = derive.SHA256Deriver{}
	}

	b.built = true

	return &Verifier{
		config:  b.config,
		store:   b.store,
		deriver: deriver,
		metrics: NewMetrics(b.config.Metrics),
		audit:   newAuditDispatcher(b.config.Audit, b.auditSink),
	}, nil
}
