package hmm

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mezzX/AIND-ASL-Recognizer/internal/mathutil"
)

// convergenceThresh is the minimum total log-likelihood improvement between
// Baum-Welch iterations before training stops early.
const convergenceThresh = 1e-2

// fit trains a left-to-right diagonal-Gaussian HMM on the concatenated
// feature matrix x. Initialization is deterministic for a given seed:
// means come from a contiguous segmentation of the frames across states
// plus a small seeded jitter, variances from the global per-dimension
// variance. Returns an error for degenerate inputs or numerical failure;
// the caller decides whether that is recoverable.
func fit(x [][]float64, lengths []int, numStates int, seed int64, maxIter int, minVar float64) (*Model, error) {
	if numStates < 1 {
		return nil, fmt.Errorf("invalid state count %d", numStates)
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("empty feature matrix")
	}
	total := 0
	for _, l := range lengths {
		if l < 1 {
			return nil, fmt.Errorf("zero-length instance")
		}
		total += l
	}
	if total != len(x) {
		return nil, fmt.Errorf("lengths sum to %d, matrix has %d rows", total, len(x))
	}
	if len(x) < numStates {
		return nil, fmt.Errorf("%d frames cannot support %d states", len(x), numStates)
	}
	dim := len(x[0])
	for _, row := range x {
		if len(row) != dim {
			return nil, fmt.Errorf("ragged feature matrix")
		}
	}

	m := initModel(x, numStates, dim, seed, minVar)

	// Pre-allocate workspaces sized to the longest instance.
	maxT := 0
	for _, l := range lengths {
		if l > maxT {
			maxT = l
		}
	}
	alpha := mathutil.NewMat(maxT, numStates)
	beta := mathutil.NewMat(maxT, numStates)
	emit := mathutil.NewMat(maxT, numStates)

	transAcc := mathutil.NewMat(numStates, numStates)
	occ := make([]float64, numStates)
	meanAcc := mathutil.NewMat(numStates, dim)
	varAcc := mathutil.NewMat(numStates, dim)

	prevLL := math.Inf(-1)
	for iter := 0; iter < maxIter; iter++ {
		mathutil.FillMat(transAcc, mathutil.LogZero)
		mathutil.FillVec(occ, 0)
		mathutil.FillMat(meanAcc, 0)
		mathutil.FillMat(varAcc, 0)

		totalLL := 0.0
		offset := 0
		for _, l := range lengths {
			obs := x[offset : offset+l]
			offset += l

			computeEmissions(m, obs, emit)
			forward(m, emit, l, alpha)
			backward(m, emit, l, beta)

			ll := mathutil.LogSumVec(alpha[l-1][:numStates])
			if ll <= mathutil.LogZero+1 || math.IsNaN(ll) {
				return nil, fmt.Errorf("non-finite likelihood during training")
			}
			totalLL += ll

			// State occupancy and emission statistics.
			for t := 0; t < l; t++ {
				ot := obs[t]
				for j := 0; j < numStates; j++ {
					g := alpha[t][j] + beta[t][j] - ll
					if g <= mathutil.LogZero+1 {
						continue
					}
					post := math.Exp(g)
					occ[j] += post
					for d := 0; d < dim; d++ {
						v := post * ot[d]
						meanAcc[j][d] += v
						varAcc[j][d] += v * ot[d]
					}
				}
			}

			// Transition statistics over the left-to-right arcs.
			for t := 0; t < l-1; t++ {
				for i := 0; i < numStates; i++ {
					if alpha[t][i] <= mathutil.LogZero+1 {
						continue
					}
					for j := 0; j < numStates; j++ {
						if m.transLog[i][j] <= mathutil.LogZero+1 || beta[t+1][j] <= mathutil.LogZero+1 {
							continue
						}
						xi := alpha[t][i] + m.transLog[i][j] + emit[t+1][j] + beta[t+1][j] - ll
						transAcc[i][j] = mathutil.LogAdd(transAcc[i][j], xi)
					}
				}
			}
		}

		if iter > 0 && totalLL-prevLL < convergenceThresh {
			break
		}
		prevLL = totalLL

		reestimate(m, transAcc, occ, meanAcc, varAcc, minVar)
		if err := checkFinite(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// initModel builds the starting parameters: state 0 is the only entry state,
// each state self-loops or advances with equal probability, means follow a
// contiguous segmentation of the frames, variances start at the global
// per-dimension variance.
func initModel(x [][]float64, numStates, dim int, seed int64, minVar float64) *Model {
	m := &Model{
		numStates: numStates,
		dim:       dim,
		startLog:  make([]float64, numStates),
		transLog:  mathutil.NewMatFill(numStates, numStates, mathutil.LogZero),
		means:     mathutil.NewMat(numStates, dim),
		variances: mathutil.NewMat(numStates, dim),
	}

	mathutil.FillVec(m.startLog, mathutil.LogZero)
	m.startLog[0] = 0 // log(1)

	logHalf := math.Log(0.5)
	for i := 0; i < numStates-1; i++ {
		m.transLog[i][i] = logHalf
		m.transLog[i][i+1] = logHalf
	}
	m.transLog[numStates-1][numStates-1] = 0 // final state absorbs

	// Global per-dimension mean and variance.
	n := float64(len(x))
	globalMean := make([]float64, dim)
	globalVar := make([]float64, dim)
	for _, row := range x {
		for d, v := range row {
			globalMean[d] += v
		}
	}
	for d := range globalMean {
		globalMean[d] /= n
	}
	for _, row := range x {
		for d, v := range row {
			diff := v - globalMean[d]
			globalVar[d] += diff * diff
		}
	}
	for d := range globalVar {
		globalVar[d] /= n
		if globalVar[d] < minVar {
			globalVar[d] = minVar
		}
	}

	// Segment the concatenated frames evenly across states for the means.
	// A seeded jitter breaks ties between states that share identical
	// segments, keeping the fit deterministic per seed.
	rng := rand.New(rand.NewSource(seed))
	per := len(x) / numStates
	rem := len(x) % numStates
	start := 0
	for s := 0; s < numStates; s++ {
		size := per
		if s < rem {
			size++
		}
		seg := x[start : start+size]
		start += size
		for d := 0; d < dim; d++ {
			sum := 0.0
			for _, row := range seg {
				sum += row[d]
			}
			m.means[s][d] = sum/float64(len(seg)) + rng.NormFloat64()*0.01*math.Sqrt(globalVar[d])
		}
		copy(m.variances[s], globalVar)
	}

	m.precompute()
	return m
}

// computeEmissions fills emit[t][s] = log P(obs[t] | state s).
func computeEmissions(m *Model, obs [][]float64, emit [][]float64) {
	for t, o := range obs {
		for s := 0; s < m.numStates; s++ {
			emit[t][s] = m.emitLogProb(s, o)
		}
	}
}

// forward fills alpha[t][j] = log P(o_1..o_t, q_t=j) for one instance of
// length l using precomputed emissions.
func forward(m *Model, emit [][]float64, l int, alpha [][]float64) {
	n := m.numStates
	for j := 0; j < n; j++ {
		if m.startLog[j] > mathutil.LogZero+1 {
			alpha[0][j] = m.startLog[j] + emit[0][j]
		} else {
			alpha[0][j] = mathutil.LogZero
		}
	}
	for t := 1; t < l; t++ {
		for j := 0; j < n; j++ {
			sum := mathutil.LogZero
			for i := 0; i < n; i++ {
				if alpha[t-1][i] > mathutil.LogZero+1 && m.transLog[i][j] > mathutil.LogZero+1 {
					sum = mathutil.LogAdd(sum, alpha[t-1][i]+m.transLog[i][j])
				}
			}
			if sum > mathutil.LogZero+1 {
				alpha[t][j] = sum + emit[t][j]
			} else {
				alpha[t][j] = mathutil.LogZero
			}
		}
	}
}

// backward fills beta[t][i] = log P(o_{t+1}..o_l | q_t=i) for one instance
// of length l using precomputed emissions.
func backward(m *Model, emit [][]float64, l int, beta [][]float64) {
	n := m.numStates
	for i := 0; i < n; i++ {
		beta[l-1][i] = 0 // log(1)
	}
	for t := l - 2; t >= 0; t-- {
		for i := 0; i < n; i++ {
			sum := mathutil.LogZero
			for j := 0; j < n; j++ {
				if m.transLog[i][j] > mathutil.LogZero+1 && beta[t+1][j] > mathutil.LogZero+1 {
					sum = mathutil.LogAdd(sum, m.transLog[i][j]+emit[t+1][j]+beta[t+1][j])
				}
			}
			beta[t][i] = sum
		}
	}
}

// reestimate applies the accumulated statistics to the model parameters.
// Transition arcs that were structurally zero stay zero; states with no
// occupancy keep their previous emission parameters.
func reestimate(m *Model, transAcc [][]float64, occ []float64, meanAcc, varAcc [][]float64, minVar float64) {
	n := m.numStates
	for i := 0; i < n; i++ {
		denom := mathutil.LogZero
		for j := 0; j < n; j++ {
			denom = mathutil.LogAdd(denom, transAcc[i][j])
		}
		if denom <= mathutil.LogZero+1 {
			continue
		}
		for j := 0; j < n; j++ {
			if m.transLog[i][j] > mathutil.LogZero+1 && transAcc[i][j] > mathutil.LogZero+1 {
				m.transLog[i][j] = transAcc[i][j] - denom
			} else if m.transLog[i][j] > mathutil.LogZero+1 {
				m.transLog[i][j] = mathutil.LogZero
			}
		}
	}

	for s := 0; s < n; s++ {
		if occ[s] < 1e-12 {
			continue
		}
		for d := 0; d < m.dim; d++ {
			mean := meanAcc[s][d] / occ[s]
			m.means[s][d] = mean
			v := varAcc[s][d]/occ[s] - mean*mean
			if v < minVar {
				v = minVar
			}
			m.variances[s][d] = v
		}
	}

	m.precompute()
}

// checkFinite reports an error if any emission parameter became non-finite.
func checkFinite(m *Model) error {
	for s := 0; s < m.numStates; s++ {
		for d := 0; d < m.dim; d++ {
			if math.IsNaN(m.means[s][d]) || math.IsInf(m.means[s][d], 0) ||
				math.IsNaN(m.variances[s][d]) || m.variances[s][d] <= 0 {
				return fmt.Errorf("degenerate emission parameters in state %d", s)
			}
		}
	}
	return nil
}
