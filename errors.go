package credcheck

import "errors"

var (
	// ErrEmptyRealm is an exported constant or variable used by the credential verifier.
	ErrEmptyRealm = errors.New("realm must not be empty")
	// ErrNoStore is an exported constant or variable used by the credential verifier.
	ErrNoStore = errors.New("credential store is required")
	// ErrBuilderReused is an exported constant or variable used by the credential verifier.
	ErrBuilderReused = errors.New("builder already built")
	// ErrDigestUnavailable is returned when the MD5 primitive is not linked
	// into the running binary.
	ErrDigestUnavailable = errors.New("md5 digest unavailable in this runtime")
	// ErrUnencodableInput is returned when a compatibility-digest input
	// contains characters outside ISO-8859-1.
	ErrUnencodableInput = errors.New("input not encodable as ISO-8859-1")
	// ErrDerivedKeySize is returned when an injected deriver produces a key
	// of the wrong size while encoding a fresh credential.
	ErrDerivedKeySize = errors.New("derived key has unexpected size")
)
