package selector

import "github.com/mezzX/AIND-ASL-Recognizer/internal/hmm"

// Constant is the baseline strategy: it ignores the search range and always
// fits a single model with the configured fixed state count.
type Constant struct {
	Base
}

// NewConstant returns a Constant selector over the dataset.
func NewConstant(base Base) *Constant {
	return &Constant{Base: base}
}

// Select fits one model with NConstant states on the word's own data and
// returns it, or nil if that single fit fails.
func (s *Constant) Select(word string) *hmm.Model {
	return s.baseModel(word, s.NConstant)
}
