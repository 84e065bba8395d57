// doc.go - ML-KEM godoc extras.
//
// This implementation is a reworking, against the FIPS 203 initial
// public draft, of the lattice-cryptographic engine approach used by
// the round-2 NIST PQC submission "Kyber" (CC0 public domain, Yawning
// Angel): polynomial arithmetic over a negacyclic ring, a
// number-theoretic transform for fast multiplication, centered-binomial
// sampling from an extendable-output function, and a Fujisaki-Okamoto
// wrapper providing IND-CCA2 security with implicit rejection.

// Package mlkem implements the ML-KEM (Module-Lattice-based Key
// Encapsulation Mechanism) construction as published in the FIPS 203
// initial public draft, in its three parameter sets: KEM512, KEM768,
// and KEM1024.
//
// SHA-3/SHAKE primitives are supplied by golang.org/x/crypto/sha3; there
// is no network I/O, persistent storage, or OS entropy acquisition in
// this package — GenerateSeed-style helpers and hex I/O belong to
// callers, not to the core.
package mlkem
