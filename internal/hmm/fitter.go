package hmm

import (
	"github.com/sirupsen/logrus"
)

// Default training parameters.
const (
	// DefaultMaxIter bounds the Baum-Welch iteration count.
	DefaultMaxIter = 1000
	// DefaultSeed is the fixed random seed used for model initialization.
	DefaultSeed int64 = 14
	// DefaultMinVariance floors the diagonal covariance entries.
	DefaultMinVariance = 1e-3
)

// Fitter fits Gaussian HMMs of a requested state count on concatenated
// feature matrices, isolating numerical failure behind a typed error.
type Fitter struct {
	MaxIter int
	Seed    int64
	MinVar  float64

	// Verbose enables a per-attempt diagnostic log line.
	Verbose bool
	Log     *logrus.Logger
}

// NewFitter returns a Fitter with the default training parameters.
func NewFitter() *Fitter {
	return &Fitter{
		MaxIter: DefaultMaxIter,
		Seed:    DefaultSeed,
		MinVar:  DefaultMinVariance,
		Log:     logrus.StandardLogger(),
	}
}

// Fit trains a model with numStates hidden states on the concatenated
// feature matrix x with per-instance lengths. On failure it returns a
// *FitError naming the word and state count; this is an expected,
// recoverable outcome and never aborts a surrounding search.
func (f *Fitter) Fit(word string, x [][]float64, lengths []int, numStates int) (*Model, error) {
	m, err := fit(x, lengths, numStates, f.Seed, f.MaxIter, f.MinVar)
	if err != nil {
		if f.Verbose && f.Log != nil {
			f.Log.Infof("failure on %s with %d states", word, numStates)
		}
		return nil, &FitError{Word: word, NumStates: numStates, Err: err}
	}
	if f.Verbose && f.Log != nil {
		f.Log.Infof("model created for %s with %d states", word, numStates)
	}
	return m, nil
}
