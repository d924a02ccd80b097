// Package hmm implements left-to-right hidden Markov models with diagonal
// Gaussian emissions, fitted by bounded Baum-Welch iteration and scored with
// the forward algorithm in the log domain.
package hmm

import (
	"fmt"
	"math"

	"github.com/mezzX/AIND-ASL-Recognizer/internal/mathutil"
)

// Model is a fitted left-to-right Gaussian HMM. It is immutable once
// returned by a Fitter.
type Model struct {
	numStates int
	dim       int

	startLog []float64   // [numStates] log initial state distribution
	transLog [][]float64 // [numStates][numStates] log transition probs

	means     [][]float64 // [numStates][dim]
	variances [][]float64 // [numStates][dim] diagonal covariance

	// Precomputed per state: log normalization constant and 1/variance.
	logNorm []float64
	invVar  [][]float64
}

// NumStates returns the hidden-state count of the model.
func (m *Model) NumStates() int { return m.numStates }

// Dim returns the feature dimensionality the model was fitted on.
func (m *Model) Dim() int { return m.dim }

// precompute caches the per-state Gaussian normalization constants and
// inverse variances. Must be called after any parameter update.
func (m *Model) precompute() {
	m.logNorm = make([]float64, m.numStates)
	m.invVar = mathutil.NewMat(m.numStates, m.dim)
	for s := 0; s < m.numStates; s++ {
		sumLog := 0.0
		for d := 0; d < m.dim; d++ {
			sumLog += math.Log(m.variances[s][d])
			m.invVar[s][d] = 1.0 / m.variances[s][d]
		}
		m.logNorm[s] = float64(m.dim)/2.0*math.Log(2*math.Pi) + 0.5*sumLog
	}
}

// emitLogProb computes log P(x | state s) under the state's diagonal Gaussian.
func (m *Model) emitLogProb(s int, x []float64) float64 {
	maha := 0.0
	mean := m.means[s]
	inv := m.invVar[s]
	for d := range x {
		diff := x[d] - mean[d]
		maha += diff * diff * inv[d]
	}
	return -0.5*maha - m.logNorm[s]
}

// Score computes the total log-likelihood of the concatenated feature matrix
// x under the model. lengths gives the per-instance row counts and must sum
// to len(x). The result is the sum of per-instance forward-algorithm
// likelihoods. A shape mismatch or degenerate input returns a *ScoreError.
func (m *Model) Score(x [][]float64, lengths []int) (float64, error) {
	if len(x) == 0 {
		return 0, &ScoreError{Err: fmt.Errorf("empty feature matrix")}
	}
	total := 0
	for _, l := range lengths {
		total += l
	}
	if total != len(x) {
		return 0, &ScoreError{Err: fmt.Errorf("lengths sum to %d, matrix has %d rows", total, len(x))}
	}
	if len(x[0]) != m.dim {
		return 0, &ScoreError{Err: fmt.Errorf("feature dim %d, model expects %d", len(x[0]), m.dim)}
	}

	ll := 0.0
	offset := 0
	for _, l := range lengths {
		if l == 0 {
			return 0, &ScoreError{Err: fmt.Errorf("zero-length instance")}
		}
		seqLL := m.scoreSequence(x[offset : offset+l])
		if seqLL <= mathutil.LogZero+1 || math.IsNaN(seqLL) {
			return 0, &ScoreError{Err: fmt.Errorf("non-finite likelihood")}
		}
		ll += seqLL
		offset += l
	}
	return ll, nil
}

// scoreSequence runs the forward algorithm over one instance and returns its
// log-likelihood.
func (m *Model) scoreSequence(obs [][]float64) float64 {
	n := m.numStates
	alpha := make([]float64, n)
	next := make([]float64, n)

	for j := 0; j < n; j++ {
		if m.startLog[j] > mathutil.LogZero+1 {
			alpha[j] = m.startLog[j] + m.emitLogProb(j, obs[0])
		} else {
			alpha[j] = mathutil.LogZero
		}
	}

	for t := 1; t < len(obs); t++ {
		for j := 0; j < n; j++ {
			sum := mathutil.LogZero
			for i := 0; i < n; i++ {
				if alpha[i] > mathutil.LogZero+1 && m.transLog[i][j] > mathutil.LogZero+1 {
					sum = mathutil.LogAdd(sum, alpha[i]+m.transLog[i][j])
				}
			}
			if sum > mathutil.LogZero+1 {
				next[j] = sum + m.emitLogProb(j, obs[t])
			} else {
				next[j] = mathutil.LogZero
			}
		}
		alpha, next = next, alpha
	}

	return mathutil.LogSumVec(alpha)
}
