// xof.go - Binding of the SHA-3 family onto x/crypto/sha3.
//
// sha3_256, sha3_512, and shake256 are a fixed collaborator this package
// consumes rather than defines. This file gives the surface named entry
// points matching ML-KEM's own vocabulary (rho/sigma/Kbar/K_rej) rather
// than sha3's.

package mlkem

import "golang.org/x/crypto/sha3"

func sha3_256(msg []byte) [32]byte {
	return sha3.Sum256(msg)
}

// shake256Sum32 is the fixed-length SHAKE256 variant used only for
// implicit-rejection key derivation (K_rej).
func shake256Sum32(parts ...[]byte) [32]byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	h.Read(out[:])
	return out
}

// sha3_512Split computes SHA3-512(msg) and splits the 64-byte digest into
// two 32-byte halves, a pattern both K-PKE keygen (rho, sigma) and KEM
// encapsulation/decapsulation (Kbar, r) share.
func sha3_512Split(msg ...[]byte) (first, second [32]byte) {
	h := sha3.New512()
	for _, m := range msg {
		h.Write(m)
	}
	sum := h.Sum(nil)
	copy(first[:], sum[:32])
	copy(second[:], sum[32:])
	return
}
