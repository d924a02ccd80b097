// Package recognizer classifies held-out gesture sequences by maximum
// log-likelihood over a table of per-word models.
package recognizer

import (
	"github.com/mezzX/AIND-ASL-Recognizer/internal/asldata"
	"github.com/mezzX/AIND-ASL-Recognizer/internal/hmm"
)

// ModelTable maps vocabulary words to their selected models. It preserves
// insertion order, which decides tie-breaking during recognition: the first
// word to reach the maximal score wins.
type ModelTable struct {
	words  []string
	models map[string]*hmm.Model
}

// NewModelTable returns an empty ModelTable.
func NewModelTable() *ModelTable {
	return &ModelTable{models: make(map[string]*hmm.Model)}
}

// Set stores the model for a word. A word keeps its original position when
// its model is replaced.
func (t *ModelTable) Set(word string, m *hmm.Model) {
	if _, ok := t.models[word]; !ok {
		t.words = append(t.words, word)
	}
	t.models[word] = m
}

// Get returns the model for a word.
func (t *ModelTable) Get(word string) (*hmm.Model, bool) {
	m, ok := t.models[word]
	return m, ok
}

// Words returns the table's words in insertion order.
func (t *ModelTable) Words() []string {
	out := make([]string, len(t.words))
	copy(out, t.words)
	return out
}

// Len returns the number of words in the table.
func (t *ModelTable) Len() int {
	return len(t.words)
}

// Recognize scores every test item against every word model and returns two
// parallel slices ordered by test-set index: per-item word→log-likelihood
// maps, and per-item best-guess words. A model that fails to score an item
// is recorded with the sentinel score 0 rather than excluded; the sentinel
// participates in the arg-max scan, so a failing model can still win when
// every true likelihood is very negative. Ties go to the word encountered
// first in table order.
func Recognize(models *ModelTable, testSet *asldata.TestSet) ([]map[string]float64, []string) {
	probabilities := make([]map[string]float64, 0, testSet.Len())
	guesses := make([]string, 0, testSet.Len())

	for i := 0; i < testSet.Len(); i++ {
		xl := testSet.ItemXLen(i)

		scores := make(map[string]float64, models.Len())
		bestWord := ""
		first := true

		for _, word := range models.Words() {
			model, _ := models.Get(word)
			score, err := model.Score(xl.X, xl.Lengths)
			if err != nil {
				score = 0
			}
			scores[word] = score

			if first || score > scores[bestWord] {
				bestWord = word
				first = false
			}
		}

		probabilities = append(probabilities, scores)
		guesses = append(guesses, bestWord)
	}

	return probabilities, guesses
}
