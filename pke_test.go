// pke_test.go - K-PKE round-trip tests.

package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPKERoundTrip(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)

			d := make([]byte, SymSize)
			_, err := rand.Read(d)
			require.NoError(err)

			ekPKE, dkPKE := p.pkeKeyGen(d)
			require.Len(ekPKE, 384*p.k+SymSize)
			require.Len(dkPKE, 384*p.k)

			m := make([]byte, SymSize)
			_, err = rand.Read(m)
			require.NoError(err)

			r := make([]byte, SymSize)
			_, err = rand.Read(r)
			require.NoError(err)

			ct := p.pkeEncrypt(ekPKE, m, r)
			require.Len(ct, p.ctSize)

			got := p.pkeDecrypt(dkPKE, ct)
			require.Equal(m, got)
		})
	}
}
