// sample.go - Rejection sampling and centered-binomial sampling.
//
// Streaming SHAKE128 rejection sampling over 12-bit uniform lanes, and
// a bitstream-indexed centered binomial sampler driven by SHAKE256 —
// simpler to verify bit-for-bit against FIPS 203 IPD than a bit-trick
// accumulator table keyed to a fixed set of eta values.

package ring

import "golang.org/x/crypto/sha3"

// SampleUniform fills p with a uniformly-random NTT-domain polynomial
// derived from rho and the two matrix indices (i, j), by rejection
// sampling 12-bit lanes squeezed from SHAKE128(rho || i || j).
func (p *Poly) SampleUniform(rho []byte, i, j byte) {
	xof := sha3.NewShake128()
	xof.Write(rho)
	xof.Write([]byte{i, j})

	var buf [3]byte
	count := 0
	for count < N {
		if _, err := xof.Read(buf[:]); err != nil {
			panic(err)
		}
		d1 := uint16(buf[0]) | ((uint16(buf[1]) & 0x0F) << 8)
		d2 := (uint16(buf[1]) >> 4) | (uint16(buf[2]) << 4)

		if d1 < Q {
			p.Coeffs[count] = d1
			count++
		}
		if count < N && d2 < Q {
			p.Coeffs[count] = d2
			count++
		}
	}
}

// SampleCBD fills p from the centered binomial distribution with
// parameter eta, deterministically derived from a 32-byte seed and a
// one-byte domain-separation counter via SHAKE256(sigma || b).
func (p *Poly) SampleCBD(sigma []byte, b byte, eta int) {
	buf := make([]byte, 64*eta)
	h := sha3.NewShake256()
	h.Write(sigma)
	h.Write([]byte{b})
	if _, err := h.Read(buf); err != nil {
		panic(err)
	}

	bit := func(idx int) uint16 {
		return uint16(buf[idx/8]>>(uint(idx)%8)) & 1
	}

	for i := 0; i < N; i++ {
		var x, y uint16
		base := 2 * eta * i
		for j := 0; j < eta; j++ {
			x += bit(base + j)
		}
		for j := 0; j < eta; j++ {
			y += bit(base + eta + j)
		}
		p.Coeffs[i] = subMod(x, y)
	}
}
