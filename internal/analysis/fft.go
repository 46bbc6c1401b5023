package analysis

import (
	"errors"
	"math"
	"math/cmplx"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// FFT requires a power-of-two length; see ZeroPad.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// ZeroPad copies data into a slice whose length is the next power of two.
func ZeroPad(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n <<= 1
	}
	out := make([]float64, n)
	copy(out, data)
	return out
}

func PowerSpectrum(data []float64) []float64 {
	fft := FFT(ZeroPad(data))
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest bin after
// removing the mean. Resolution is 1/(N*dt) with N the padded length.
func DominantFrequency(series []float64, dt float64) (float64, error) {
	if len(series) < 4 {
		return 0, ErrTooShort
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	padded := ZeroPad(centered)
	ps := PowerSpectrum(padded)

	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	return float64(peak) / (float64(len(padded)) * dt), nil
}
