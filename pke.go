// pke.go - K-PKE, the lattice public-key encryption scheme underlying
// ML-KEM.
//
// The public matrix is generated by rejection sampling, the secret and
// error vectors by the centered binomial sampler, and everything is
// combined in NTT domain.

package mlkem

import "github.com/cryptoproj/mlkem/internal/ring"

// pkeKeyGen implements K-PKE.KeyGen given a 32-byte seed d. It returns
// ekPKE (encoded t-hat || rho) and dkPKE (encoded s-hat).
func (p *ParameterSet) pkeKeyGen(d []byte) (ekPKE, dkPKE []byte) {
	rho, sigma := sha3_512Split(d)

	a := genMatrixA(p.k, rho[:], false)

	s := ring.NewVec(p.k)
	e := ring.NewVec(p.k)
	var n byte
	for i := 0; i < p.k; i++ {
		s.P[i].SampleCBD(sigma[:], n, p.eta1)
		n++
	}
	for i := 0; i < p.k; i++ {
		e.P[i].SampleCBD(sigma[:], n, p.eta1)
		n++
	}
	s.NTT()
	e.NTT()

	that := ring.NewVec(p.k)
	a.MulVec(&that, &s)
	that.Add(&that, &e)

	ekPKE = make([]byte, 384*p.k+SymSize)
	that.Encode12(ekPKE)
	copy(ekPKE[384*p.k:], rho[:])

	dkPKE = make([]byte, 384*p.k)
	s.Encode12(dkPKE)

	return ekPKE, dkPKE
}

// pkeEncrypt implements K-PKE.Encrypt: encrypt a 32-byte
// message m under ekPKE using randomness r, producing a ciphertext of
// size 32*(du*k + dv).
func (p *ParameterSet) pkeEncrypt(ekPKE, m, r []byte) []byte {
	that := ring.NewVec(p.k)
	that.Decode12(ekPKE)
	rho := ekPKE[384*p.k : 384*p.k+SymSize]

	at := genMatrixA(p.k, rho, true)

	rVec := ring.NewVec(p.k)
	e1 := ring.NewVec(p.k)
	var n byte
	for i := 0; i < p.k; i++ {
		rVec.P[i].SampleCBD(r, n, p.eta1)
		n++
	}
	for i := 0; i < p.k; i++ {
		e1.P[i].SampleCBD(r, n, p.eta2)
		n++
	}
	var e2 ring.Poly
	e2.SampleCBD(r, n, p.eta2)

	rVec.NTT()

	u := ring.NewVec(p.k)
	at.MulVec(&u, &rVec)
	u.InvNTT()
	u.Add(&u, &e1)

	tDotR := ring.NewVec(1)
	tDotR.Dot(&that, &rVec)
	tDotR.P[0].InvNTT()

	var v, mu ring.Poly
	mu.DecodeD(m, 1)
	mu.DecompressD(1)

	v.Add(&tDotR.P[0], &e2)
	v.Add(&v, &mu)

	u.CompressD(p.du)
	v.CompressD(p.dv)

	ct := make([]byte, p.ctSize)
	u.EncodeD(ct, p.du)
	v.EncodeD(ct[32*int(p.du)*p.k:], p.dv)

	return ct
}

// pkeDecrypt implements K-PKE.Decrypt, recovering the
// 32-byte message encrypted in ct.
func (p *ParameterSet) pkeDecrypt(dkPKE, ct []byte) []byte {
	u := ring.NewVec(p.k)
	u.DecodeD(ct, p.du)
	u.DecompressD(p.du)

	var v ring.Poly
	v.DecodeD(ct[32*int(p.du)*p.k:], p.dv)
	v.DecompressD(p.dv)

	s := ring.NewVec(p.k)
	s.Decode12(dkPKE)

	u.NTT()

	sDotU := ring.NewVec(1)
	sDotU.Dot(&s, &u)
	sDotU.P[0].InvNTT()

	var w ring.Poly
	w.Sub(&v, &sDotU.P[0])

	w.CompressD(1)
	m := make([]byte, SymSize)
	w.EncodeD(m, 1)
	return m
}

// genMatrixA samples the public k*k matrix A (or its transpose) from rho
// by rejection sampling: keygen samples A[i,j] from (rho, i, j); encrypt
// samples the transpose as A[i,j] = sample(rho, j, i).
func genMatrixA(k int, rho []byte, transposed bool) ring.Matrix {
	m := ring.NewMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			if transposed {
				m.Rows[i].P[j].SampleUniform(rho, byte(j), byte(i))
			} else {
				m.Rows[i].P[j].SampleUniform(rho, byte(i), byte(j))
			}
		}
	}
	return m
}
