package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleUniformDeterminism(t *testing.T) {
	require := require.New(t)

	rho := make([]byte, 32)

	var p Poly
	p.SampleUniform(rho, 0, 0)
	require.Equal(fieldElement(0xb80), p.Coeffs[0])
	require.Equal(fieldElement(0xbc9), p.Coeffs[1])
	require.Equal(fieldElement(0x154), p.Coeffs[2])
	require.Equal(fieldElement(0x4a0), p.Coeffs[3])
	require.Equal(fieldElement(0x813), p.Coeffs[N-1])

	var p2 Poly
	p2.SampleUniform(rho, 2, 3)
	require.Equal(fieldElement(0x2ef), p2.Coeffs[0])
	require.Equal(fieldElement(0x75d), p2.Coeffs[1])
	require.Equal(fieldElement(0xbf1), p2.Coeffs[2])
	require.Equal(fieldElement(0x4a4), p2.Coeffs[3])
}

func TestSampleUniformAllInRange(t *testing.T) {
	require := require.New(t)

	rho := make([]byte, 32)
	for i := range rho {
		rho[i] = byte(i)
	}

	var p Poly
	p.SampleUniform(rho, 1, 4)
	require.True(p.CoeffsInRange())
}

func TestSampleCBDKnownVector(t *testing.T) {
	require := require.New(t)

	sigma := make([]byte, 32)
	var p Poly
	p.SampleCBD(sigma, 0, 3)

	var sum uint32
	for _, c := range p.Coeffs {
		sum += uint32(c)
	}
	require.Equal(uint32(18), sum%Q, "coefficient sum of CBD_3(0^32, 0) mod q")

	want := [8]fieldElement{0, 0, 2, 0, 1, 0, 0, 1}
	var got [8]fieldElement
	copy(got[:], p.Coeffs[:8])
	require.Equal(want, got)
}

func TestSampleCBDRange(t *testing.T) {
	require := require.New(t)

	sigma := make([]byte, 32)

	for _, eta := range []int{2, 3} {
		var p Poly
		p.SampleCBD(sigma, 0, eta)
		require.True(p.CoeffsInRange())

		// Every coefficient is congruent, mod Q, to a value in
		// [-eta, eta].
		for _, c := range p.Coeffs {
			inRange := false
			for d := -eta; d <= eta; d++ {
				want := uint16(((d % Q) + Q) % Q)
				if c == want {
					inRange = true
					break
				}
			}
			require.True(inRange, "coefficient %d outside [-%d, %d] mod q", c, eta, eta)
		}
	}
}
