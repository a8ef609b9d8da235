package algo

import (
	"fmt"
	"math"

	"github.com/avdva/hubfloat/scalar"
)

// FFT is a radix-2 decimation-in-time transform plan of a fixed size,
// with the twiddle factors precomputed in the target scalar type.
type FFT[T scalar.Number[T]] struct {
	n        int
	cos, sin []T
}

// NewFFT builds a plan for a power-of-two size n. Twiddles are computed
// in float64 and converted once with conv, so a reduced-precision run
// pays the quantization exactly where real hardware would.
func NewFFT[T scalar.Number[T]](n int, conv scalar.Conv[T]) (*FFT[T], error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("fft: size %d is not a power of two", n)
	}
	p := &FFT[T]{n: n, cos: make([]T, n/2), sin: make([]T, n/2)}
	for k := 0; k < n/2; k++ {
		phi := -2 * math.Pi * float64(k) / float64(n)
		p.cos[k] = conv(math.Cos(phi))
		p.sin[k] = conv(math.Sin(phi))
	}
	return p, nil
}

// Size returns the transform size.
func (p *FFT[T]) Size() int { return p.n }

// Transform runs the forward transform in place over the real and
// imaginary parts.
func (p *FFT[T]) Transform(re, im []T) error {
	if len(re) != p.n || len(im) != p.n {
		return fmt.Errorf("fft: input length %d/%d, want %d", len(re), len(im), p.n)
	}
	for i, j := 1, 0; i < p.n; i++ {
		bit := p.n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
	for size := 2; size <= p.n; size <<= 1 {
		step := p.n / size
		half := size / 2
		for start := 0; start < p.n; start += size {
			for k := 0; k < half; k++ {
				wc, ws := p.cos[k*step], p.sin[k*step]
				i, j := start+k, start+k+half
				tr := wc.Mul(re[j]).Sub(ws.Mul(im[j]))
				ti := wc.Mul(im[j]).Add(ws.Mul(re[j]))
				re[j], im[j] = re[i].Sub(tr), im[i].Sub(ti)
				re[i], im[i] = re[i].Add(tr), im[i].Add(ti)
			}
		}
	}
	return nil
}
