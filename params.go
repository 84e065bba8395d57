// params.go - ML-KEM parameterization.
//
// A single struct carries per-parameter-set constants plus derived
// sizes, built once via package-level vars rather than duplicated per
// parameter set.

package mlkem

import "errors"

var (
	// ErrInvalidSeedSize is returned when a keygen/encaps seed argument
	// is not the size the operation requires.
	ErrInvalidSeedSize = errors.New("mlkem: invalid seed size")

	// ErrInvalidKeySize is returned when a byte-serialized key does not
	// match its parameter set's declared size.
	ErrInvalidKeySize = errors.New("mlkem: invalid key size")

	// ErrInvalidCipherTextSize is returned when a byte-serialized
	// ciphertext does not match its parameter set's declared size.
	ErrInvalidCipherTextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrMalformedKey is returned when a decoded encapsulation or
	// decapsulation key carries a coefficient outside [0, Q).
	ErrMalformedKey = errors.New("mlkem: malformed key encoding")
)

// SymSize is the size, in bytes, of the shared secret and of the named
// 32-byte seed values (rho, sigma, r, z, d, m) derived from SHA-3
// outputs.
const SymSize = 32

// ParameterSet is the immutable tuple (k, eta1, eta2, du, dv) that binds
// the shared K-PKE/KEM algorithm shell to one of the three FIPS-203-IPD
// parameter sets.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   uint
	dv   uint

	ekSize int
	dkSize int
	ctSize int
}

func newParameterSet(name string, k, eta1, eta2 int, du, dv uint) *ParameterSet {
	p := &ParameterSet{name: name, k: k, eta1: eta1, eta2: eta2, du: du, dv: dv}
	p.ekSize = 384*k + 32
	p.dkSize = 768*k + 96
	p.ctSize = 32 * (int(du)*k + int(dv))
	return p
}

var (
	// KEM512 is the ML-KEM-512 parameter set.
	KEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// KEM768 is the ML-KEM-768 parameter set.
	KEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// KEM1024 is the ML-KEM-1024 parameter set.
	KEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// Name returns the parameter set's name, e.g. "ML-KEM-768".
func (p *ParameterSet) Name() string { return p.name }

// EncapsulationKeySize returns the size in bytes of an encapsulation key
// (ek).
func (p *ParameterSet) EncapsulationKeySize() int { return p.ekSize }

// DecapsulationKeySize returns the size in bytes of a decapsulation key
// (dk).
func (p *ParameterSet) DecapsulationKeySize() int { return p.dkSize }

// CiphertextSize returns the size in bytes of a ciphertext.
func (p *ParameterSet) CiphertextSize() int { return p.ctSize }
