package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode12RoundTrip(t *testing.T) {
	require := require.New(t)

	var p Poly
	for i := range p.Coeffs {
		p.Coeffs[i] = uint16((i * 13) % Q)
	}

	buf := make([]byte, 384)
	p.Encode12(buf)
	require.Len(buf, 384)

	var got Poly
	got.Decode12(buf)
	require.Equal(p.Coeffs, got.Coeffs)
}

func TestCompressDecompressBound(t *testing.T) {
	require := require.New(t)

	for _, d := range []uint{1, 4, 5, 10, 11} {
		bound := (Q + (1 << (d + 1)) - 1) / (1 << (d + 1)) // ceil(q/2^(d+1))
		for x := fieldElement(0); x < Q; x++ {
			c := compress(x, d)
			require.Less(c, fieldElement(1<<d), "compressed value must fit in d bits")

			y := decompress(c, d)
			diff := int(y) - int(x)
			if diff < 0 {
				diff = -diff
			}
			// Wraparound distance on the ring Z_q is also acceptable,
			// since compression is defined mod 2^d and decompression
			// mod q.
			wrap := Q - diff
			require.True(diff <= int(bound) || wrap <= int(bound),
				"x=%d compressed=%d decompressed=%d bound=%d", x, c, y, bound)
		}
	}
}

func TestEncodeDDecodeDRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, d := range []uint{1, 4, 5, 10, 11} {
		var p Poly
		for i := range p.Coeffs {
			p.Coeffs[i] = uint16(i) & ((1 << d) - 1)
		}

		buf := make([]byte, (N*int(d)+7)/8)
		p.EncodeD(buf, d)

		var got Poly
		got.DecodeD(buf, d)
		require.Equal(p.Coeffs, got.Coeffs, "d=%d", d)
	}
}

func TestDecompress1Mapping(t *testing.T) {
	require := require.New(t)

	// The 1-bit decompressor maps {0,1} -> {0, 1665}.
	require.Equal(fieldElement(0), decompress(0, 1))
	require.Equal(fieldElement(1665), decompress(1, 1))
}

func TestCoeffsInRange(t *testing.T) {
	require := require.New(t)

	var p Poly
	require.True(p.CoeffsInRange())

	p.Coeffs[10] = Q
	require.False(p.CoeffsInRange())
}
