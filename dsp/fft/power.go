package fft

// PowerSpectrum computes out[i] = re²+im² for bins [0, n/2) of the spectrum
// of n real samples, discarding phase.
//
// It repeats the unpacking done by Real but squares each bin as it is
// reconstructed instead of storing both parts. out[0] combines the DC and
// Nyquist bins the same way Real packs them.
func (t *Transformer) PowerSpectrum(n int, in, out []float32) error {
	if err := validateRealSize(n); err != nil {
		return err
	}
	half := n / 2
	if err := validateLength("in", in, n); err != nil {
		return err
	}
	if err := validateLength("out", out, half); err != nil {
		return err
	}

	buf := t.scratch.GetChunks(4, half)
	defer t.scratch.Put(buf)

	tmpReal, tmpImag := buf.Chunk(0, half), buf.Chunk(1, half)
	realOut, imagOut := buf.Chunk(2, half), buf.Chunk(3, half)
	for i := 0; i < half; i++ {
		tmpReal[i] = in[2*i]
		tmpImag[i] = in[2*i+1]
	}

	t.transform(half, false, tmpReal, tmpImag, realOut, imagOut)

	tw := newRealTwiddle(half)
	for i := 1; i < half/2; i++ {
		i3 := half - i
		xr, xi, yr, yi := tw.split(realOut, imagOut, i, i3)
		out[i] = xr*xr + xi*xi
		out[i3] = yr*yr + yi*yi
		tw.next()
	}

	rt := realOut[0] + imagOut[0]
	it := realOut[0] - imagOut[0]
	out[0] = rt*rt + it*it

	rt = realOut[half/2]
	it = imagOut[half/2]
	out[half/2] = rt*rt + it*it

	return nil
}
