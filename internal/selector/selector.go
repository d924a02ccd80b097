// Package selector implements the model-selection strategies that choose,
// per vocabulary word, the hidden-state count of its Gaussian HMM: a fixed
// constant, BIC, DIC, or cross-validated mean likelihood.
package selector

import (
	"github.com/mezzX/AIND-ASL-Recognizer/internal/asldata"
	"github.com/mezzX/AIND-ASL-Recognizer/internal/hmm"
)

// Default search parameters.
const (
	// DefaultMinStates is the lower bound of the hidden-state search range.
	DefaultMinStates = 2
	// DefaultMaxStates is the upper bound of the hidden-state search range.
	DefaultMaxStates = 10
	// DefaultNConstant is the fixed state count used by the Constant strategy.
	DefaultNConstant = 3
	// DefaultMaxFolds caps the cross-validation fold count.
	DefaultMaxFolds = 3
)

// Fitter fits one Gaussian HMM of a given hidden-state count on a
// concatenated feature matrix. *hmm.Fitter satisfies it; tests substitute
// instrumented implementations.
type Fitter interface {
	Fit(word string, x [][]float64, lengths []int, numStates int) (*hmm.Model, error)
}

// Selector chooses the best-fitting model for a word, or nil if no candidate
// in the search range produced a usable fit.
type Selector interface {
	Select(word string) *hmm.Model
}

// Base carries the data access and search parameters shared by every
// strategy. Candidate state counts are searched in ascending order over
// [MinStates, MaxStates]; any individual candidate failing to fit or score
// is skipped, never aborting the search.
type Base struct {
	Dataset *asldata.Dataset
	Fitter  Fitter

	MinStates int
	MaxStates int
	NConstant int
	MaxFolds  int
}

// NewBase returns a Base over the dataset with the default search
// parameters.
func NewBase(dataset *asldata.Dataset, fitter Fitter) Base {
	return Base{
		Dataset:   dataset,
		Fitter:    fitter,
		MinStates: DefaultMinStates,
		MaxStates: DefaultMaxStates,
		NConstant: DefaultNConstant,
		MaxFolds:  DefaultMaxFolds,
	}
}

// baseModel fits a model with numStates states on the word's own
// concatenated training data. A fit failure yields nil; the fitter has
// already logged the attempt if verbose.
func (b *Base) baseModel(word string, numStates int) *hmm.Model {
	xl, ok := b.Dataset.XLengths[word]
	if !ok {
		return nil
	}
	m, err := b.Fitter.Fit(word, xl.X, xl.Lengths, numStates)
	if err != nil {
		return nil
	}
	return m
}
