package selector

import (
	"math"

	"github.com/mezzX/AIND-ASL-Recognizer/internal/hmm"
)

// BIC selects the state count with the lowest Bayesian Information
// Criterion: BIC = -2*logL + p*ln(N), where p counts the free transition and
// diagonal-Gaussian emission parameters and N is the total frame count.
// Lower is better: the data likelihood is penalized by model complexity.
type BIC struct {
	Base
}

// NewBIC returns a BIC selector over the dataset.
func NewBIC(base Base) *BIC {
	return &BIC{Base: base}
}

// Select searches [MinStates, MaxStates] in ascending order and returns the
// model with the minimum BIC. Each candidate's fit and score form an
// independent trial: a failure eliminates that candidate only.
func (s *BIC) Select(word string) *hmm.Model {
	xl, ok := s.Dataset.XLengths[word]
	if !ok || len(xl.X) == 0 {
		return nil
	}
	dim := len(xl.X[0])
	logN := math.Log(float64(len(xl.X)))

	bestScore := math.Inf(1)
	var bestModel *hmm.Model

	for n := s.MinStates; n <= s.MaxStates; n++ {
		model := s.baseModel(word, n)
		if model == nil {
			continue
		}
		logL, err := model.Score(xl.X, xl.Lengths)
		if err != nil {
			continue
		}
		p := n*(n-1) + 2*dim*n
		score := -2*logL + float64(p)*logN
		if score < bestScore {
			bestScore = score
			bestModel = model
		}
	}

	return bestModel
}
