package derive

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	minArgon2MemoryKB    uint32 = 8 * 1024
	minArgon2Time        uint32 = 1
	minArgon2Parallelism uint8  = 1
)

// Argon2Config defines a public type used by credcheck APIs.
//
// Argon2Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Argon2Config struct {
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
}

// Argon2Deriver defines a public type used by credcheck APIs.
//
// Argon2Deriver instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Argon2Deriver struct {
	config Argon2Config
}

// NewArgon2 describes the newargon2 operation and its observable behavior.
//
// NewArgon2 may return an error when input validation fails.
// NewArgon2 does not mutate shared global state and can be used concurrently.
func NewArgon2(cfg Argon2Config) (*Argon2Deriver, error) {
	if err := validateArgon2Config(cfg); err != nil {
		return nil, err
	}

	return &Argon2Deriver{config: cfg}, nil
}

// DeriveKey describes the derivekey operation and its observable behavior.
//
// DeriveKey never fails after construction; the error return exists to
// satisfy [Deriver].
// DeriveKey does not mutate shared global state and can be used concurrently.
func (a *Argon2Deriver) DeriveKey(salt, password []byte) ([]byte, error) {
	key := argon2.IDKey(
		password,
		salt,
		a.config.Time,
		a.config.Memory,
		a.config.Parallelism,
		KeySize,
	)
	return key, nil
}

func validateArgon2Config(cfg Argon2Config) error {
	if cfg.Memory < minArgon2MemoryKB {
		return fmt.Errorf("argon2 memory must be at least %d KB", minArgon2MemoryKB)
	}
	if cfg.Time < minArgon2Time {
		return errors.New("argon2 time cost must be at least 1")
	}
	if cfg.Parallelism < minArgon2Parallelism {
		return errors.New("argon2 parallelism must be at least 1")
	}
	return nil
}
