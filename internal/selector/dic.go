package selector

import (
	"math"

	"github.com/mezzX/AIND-ASL-Recognizer/internal/hmm"
)

// DIC selects the state count with the highest Discriminative Information
// Criterion: the target word's own log-likelihood minus the mean of every
// other word's self-log-likelihood at the same state count. Each word is
// scored on its own data under its own model; the criterion contrasts how
// much better the target explains itself than the rest of the vocabulary
// explains itself.
type DIC struct {
	Base
}

// NewDIC returns a DIC selector over the dataset.
func NewDIC(base Base) *DIC {
	return &DIC{Base: base}
}

// Select searches [MinStates, MaxStates] in ascending order, fitting one
// model per vocabulary word at each candidate state count. Words whose fit
// or self-score fails are excluded from that round's average. When the
// contrast cannot be computed for a round (fewer than two words fitted, or
// the target itself failed), the most recently fitted model of that round is
// accepted as best without a criterion comparison; callers rely on getting
// some model back whenever any fit succeeds.
func (s *DIC) Select(word string) *hmm.Model {
	bestScore := math.Inf(-1)
	var bestModel *hmm.Model

	for n := s.MinStates; n <= s.MaxStates; n++ {
		selfLogL := make(map[string]float64)
		var fitted []string
		var lastModel *hmm.Model
		var targetModel *hmm.Model

		for _, train := range s.Dataset.Words() {
			xl := s.Dataset.XLengths[train]
			model, err := s.Fitter.Fit(train, xl.X, xl.Lengths, n)
			if err != nil {
				continue
			}
			logL, err := model.Score(xl.X, xl.Lengths)
			if err != nil {
				continue
			}
			selfLogL[train] = logL
			fitted = append(fitted, train)
			lastModel = model
			if train == word {
				targetModel = model
			}
		}

		targetLogL, haveTarget := selfLogL[word]
		if !haveTarget || len(fitted) < 2 {
			if lastModel != nil {
				bestModel = lastModel
			}
			continue
		}

		otherSum := 0.0
		for _, w := range fitted {
			if w != word {
				otherSum += selfLogL[w]
			}
		}
		score := targetLogL - otherSum/float64(len(fitted)-1)
		if score > bestScore {
			bestScore = score
			bestModel = targetModel
		}
	}

	return bestModel
}
