package selector

import (
	"math"

	"github.com/mezzX/AIND-ASL-Recognizer/internal/asldata"
	"github.com/mezzX/AIND-ASL-Recognizer/internal/hmm"
)

// CV selects the state count with the highest mean log-likelihood across
// k-fold cross-validation folds, k = min(MaxFolds, instance count). Folds
// are contiguous and positional: instance order decides membership, no
// shuffling.
type CV struct {
	Base
}

// NewCV returns a cross-validated selector over the dataset.
func NewCV(base Base) *CV {
	return &CV{Base: base}
}

// Select searches [MinStates, MaxStates] in ascending order. A word with a
// single instance degenerates to fitting on all data and self-scoring.
// Otherwise each fold fits on the held-in instances and scores the held-out
// ones; any failure inside a candidate's folds skips that candidate whole.
func (s *CV) Select(word string) *hmm.Model {
	sequences, ok := s.Dataset.Sequences[word]
	if !ok || len(sequences) == 0 {
		return nil
	}

	k := s.MaxFolds
	if len(sequences) < k {
		k = len(sequences)
	}

	bestScore := math.Inf(-1)
	var bestModel *hmm.Model

	if k == 1 {
		xl := s.Dataset.XLengths[word]
		for n := s.MinStates; n <= s.MaxStates; n++ {
			model := s.baseModel(word, n)
			if model == nil {
				continue
			}
			score, err := model.Score(xl.X, xl.Lengths)
			if err != nil {
				continue
			}
			if score > bestScore {
				bestScore = score
				bestModel = model
			}
		}
		return bestModel
	}

	folds := kfold(len(sequences), k)
	for n := s.MinStates; n <= s.MaxStates; n++ {
		sum := 0.0
		var lastModel *hmm.Model
		failed := false

		for _, fold := range folds {
			trainXL := asldata.CombineSequences(fold.train, sequences)
			testXL := asldata.CombineSequences(fold.test, sequences)

			model, err := s.Fitter.Fit(word, trainXL.X, trainXL.Lengths, n)
			if err != nil {
				failed = true
				break
			}
			score, err := model.Score(testXL.X, testXL.Lengths)
			if err != nil {
				failed = true
				break
			}
			sum += score
			lastModel = model
		}
		if failed {
			continue
		}

		avg := sum / float64(len(folds))
		if avg > bestScore {
			bestScore = avg
			bestModel = lastModel
		}
	}

	return bestModel
}

// foldSplit holds the held-in and held-out instance indices of one fold.
type foldSplit struct {
	train []int
	test  []int
}

// kfold partitions n instances into k contiguous folds. The first n%k folds
// take one extra instance, matching standard unshuffled k-fold splitting.
func kfold(n, k int) []foldSplit {
	folds := make([]foldSplit, 0, k)
	per := n / k
	rem := n % k

	start := 0
	for f := 0; f < k; f++ {
		size := per
		if f < rem {
			size++
		}
		stop := start + size

		split := foldSplit{}
		for i := 0; i < n; i++ {
			if i >= start && i < stop {
				split.test = append(split.test, i)
			} else {
				split.train = append(split.train, i)
			}
		}
		folds = append(folds, split)
		start = stop
	}
	return folds
}
