// kem.go - ML-KEM key encapsulation mechanism: Fujisaki-Okamoto wrapper
// with implicit rejection.
//
// KeyGen wraps the K-PKE keygen and appends a rejection seed. Encaps
// hashes ek and mixes the message through SHA3-512 before calling into
// K-PKE. Decaps re-encrypts and does a constant-time compare-then-select
// between the real key and a pseudo-random rejection key, so no failure
// is ever observable from the output alone. The decapsulation key layout
// is dk_PKE || ek_PKE || H(ek_PKE) || z.

package mlkem

import "github.com/cryptoproj/mlkem/internal/ring"

// KeyGen implements KEM.KeyGen from a 64-byte seed: the
// first 32 bytes are the implicit-rejection secret z, the last 32 the
// K-PKE keygen seed d. It returns the encapsulation key ek and the
// decapsulation key dk, sized EncapsulationKeySize()/DecapsulationKeySize().
func (p *ParameterSet) KeyGen(seed []byte) (ek, dk []byte, err error) {
	if len(seed) != 2*SymSize {
		return nil, nil, ErrInvalidSeedSize
	}
	z := seed[:SymSize]
	d := seed[SymSize:]

	ekPKE, dkPKE := p.pkeKeyGen(d)

	h := sha3_256(ekPKE)

	dk = make([]byte, 0, p.dkSize)
	dk = append(dk, dkPKE...)
	dk = append(dk, ekPKE...)
	dk = append(dk, h[:]...)
	dk = append(dk, z...)

	return ekPKE, dk, nil
}

// Encapsulate implements KEM.Encaps given an encapsulation
// key ek and a 32-byte message seed m, producing a 32-byte shared secret
// K and a ciphertext sized CiphertextSize().
func (p *ParameterSet) Encapsulate(ek, seed []byte) (K, ct []byte, err error) {
	if len(ek) != p.ekSize {
		return nil, nil, ErrInvalidKeySize
	}
	if len(seed) != SymSize {
		return nil, nil, ErrInvalidSeedSize
	}
	if !ekCoeffsInRange(p, ek) {
		return nil, nil, ErrMalformedKey
	}

	h := sha3_256(ek)
	kBar, r := sha3_512Split(seed, h[:])

	ct = p.pkeEncrypt(ek, seed, r[:])

	K = make([]byte, SymSize)
	copy(K, kBar[:])

	return K, ct, nil
}

// Decapsulate implements KEM.Decaps given a decapsulation
// key dk and a ciphertext ct, returning a 32-byte shared secret. On a
// corrupted ciphertext this silently returns a pseudo-random key derived
// from the implicit-rejection seed rather than signaling failure: no
// error is ever returned for this reason.
func (p *ParameterSet) Decapsulate(dk, ct []byte) (K []byte, err error) {
	if len(dk) != p.dkSize {
		return nil, ErrInvalidKeySize
	}
	if len(ct) != p.ctSize {
		return nil, ErrInvalidCipherTextSize
	}

	dkPKE := dk[:384*p.k]
	ekPKE := dk[384*p.k : 384*p.k+p.ekSize]
	h := dk[384*p.k+p.ekSize : 384*p.k+p.ekSize+SymSize]
	z := dk[384*p.k+p.ekSize+SymSize:]

	if !ekCoeffsInRange(p, ekPKE) || !dkCoeffsInRange(p, dkPKE) {
		return nil, ErrMalformedKey
	}

	mPrime := p.pkeDecrypt(dkPKE, ct)

	kBarPrime, rPrime := sha3_512Split(mPrime, h)
	kRej := shake256Sum32(z, ct)

	ctPrime := p.pkeEncrypt(ekPKE, mPrime, rPrime[:])

	diff := ring.CtByteDiff(ct, ctPrime)

	K = make([]byte, SymSize)
	ring.CtSelect(K, kBarPrime[:], kRej[:], diff)

	return K, nil
}

// ekCoeffsInRange decodes the t-hat vector embedded in ek and checks
// every coefficient is in canonical range [0, Q), the hardening check
// applied once at the KEM-wrapper boundary (see DESIGN.md).
func ekCoeffsInRange(p *ParameterSet, ek []byte) bool {
	v := ring.NewVec(p.k)
	v.Decode12(ek)
	return v.CoeffsInRange()
}

// dkCoeffsInRange applies the same hardening check to the s-hat vector
// packed in a decapsulation key's K-PKE secret-key component.
func dkCoeffsInRange(p *ParameterSet, dkPKE []byte) bool {
	v := ring.NewVec(p.k)
	v.Decode12(dkPKE)
	return v.CoeffsInRange()
}
