// Package fsrs implements the core FSRS spaced-repetition scheduling
// algorithm: the forgetting-curve math, the four-state review lifecycle,
// and the card record the two operate on.
package fsrs

import (
	"fmt"
	"math"
)

// NumWeights is the length the model weights must have.
const NumWeights = 17

// DefaultWeights are the canonical default FSRS model weights (w[0]..w[16]).
var DefaultWeights = [NumWeights]float64{
	0.4872,  // w0  - initial stability, Again
	1.4003,  // w1  - initial stability, Hard
	3.7145,  // w2  - initial stability, Good
	13.8206, // w3  - initial stability, Easy
	5.1618,  // w4  - base difficulty
	1.2298,  // w5  - initial-difficulty slope
	0.8975,  // w6  - difficulty delta per grade
	0.031,   // w7  - mean-reversion weight
	1.6474,  // w8  - recall stability gain scale
	0.1367,  // w9  - recall stability gain power
	1.0461,  // w10 - recall stability retrievability slope
	2.1072,  // w11 - forget stability base
	0.0793,  // w12 - forget stability difficulty exponent
	0.3246,  // w13 - forget stability stability exponent
	1.587,   // w14 - forget stability retrievability slope
	0.2272,  // w15 - Hard penalty (< 1)
	2.8755,  // w16 - Easy bonus (> 1)
}

// Decay is the fixed exponent of the forgetting curve.
const Decay = -0.5

// Factor is derived from Decay so that R(s, s) = 0.9. Its closed form is
// 19/81.
var Factor = math.Pow(0.9, 1.0/Decay) - 1.0

// Parameters is the immutable configuration the Scheduling Engine reads.
// W must have exactly NumWeights elements; use DefaultParameters for the
// canonical defaults.
type Parameters struct {
	W                []float64
	RequestRetention float64
	MaximumInterval  int
}

// DefaultParameters returns the canonical defaults: 90% request retention,
// a 36500-day cap, and the default weights.
func DefaultParameters() Parameters {
	w := make([]float64, NumWeights)
	copy(w, DefaultWeights[:])
	return Parameters{
		W:                w,
		RequestRetention: 0.90,
		MaximumInterval:  36500,
	}
}

// validate checks the construction-time InvalidParameter conditions.
func (p Parameters) validate() error {
	if len(p.W) != NumWeights {
		return fmt.Errorf("%w: weights must have length %d, got %d", ErrInvalidParameter, NumWeights, len(p.W))
	}
	if p.RequestRetention <= 0 || p.RequestRetention >= 1 {
		return fmt.Errorf("%w: request retention must be in (0,1), got %v", ErrInvalidParameter, p.RequestRetention)
	}
	if p.MaximumInterval < 1 {
		return fmt.Errorf("%w: maximum interval must be >= 1, got %d", ErrInvalidParameter, p.MaximumInterval)
	}
	return nil
}
