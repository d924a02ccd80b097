// Package app wires the data layer, model selection, and recognition into a
// full training-and-evaluation run.
package app

import (
	"github.com/sirupsen/logrus"

	"github.com/mezzX/AIND-ASL-Recognizer/internal/asldata"
	"github.com/mezzX/AIND-ASL-Recognizer/internal/config"
	"github.com/mezzX/AIND-ASL-Recognizer/internal/hmm"
	"github.com/mezzX/AIND-ASL-Recognizer/internal/recognizer"
	"github.com/mezzX/AIND-ASL-Recognizer/internal/selector"
)

// Result holds the outcome of a full recognition run.
type Result struct {
	Probabilities []map[string]float64
	Guesses       []string
	WER           float64
}

// App runs model selection over a vocabulary and evaluates the selected
// models on a test set.
type App struct {
	dataset *asldata.Dataset
	log     *logrus.Logger
}

// New creates an App over the dataset.
func New(dataset *asldata.Dataset) *App {
	return &App{
		dataset: dataset,
		log:     logrus.StandardLogger(),
	}
}

// NewFitter builds a model fitter from the configuration.
func NewFitter(cfg *config.Root) *hmm.Fitter {
	f := hmm.NewFitter()
	f.MaxIter = cfg.Training.MaxIterations
	f.Seed = cfg.Training.RandomSeed
	f.Verbose = cfg.Training.Verbose
	return f
}

// NewBase builds the shared selector parameters from the configuration.
func NewBase(dataset *asldata.Dataset, cfg *config.Root) selector.Base {
	base := selector.NewBase(dataset, NewFitter(cfg))
	base.MinStates = cfg.Selection.MinStates
	base.MaxStates = cfg.Selection.MaxStates
	base.NConstant = cfg.Selection.ConstantStates
	base.MaxFolds = cfg.Selection.MaxFolds
	return base
}

// TrainAll runs the selector over every vocabulary word and collects the
// surviving models into an insertion-ordered table. Words for which no
// candidate produced a usable model are skipped, never aborting the run.
func (a *App) TrainAll(sel selector.Selector) *recognizer.ModelTable {
	table := recognizer.NewModelTable()
	for _, word := range a.dataset.Words() {
		model := sel.Select(word)
		if model == nil {
			a.log.Warnf("no viable model for %s, skipping", word)
			continue
		}
		table.Set(word, model)
	}
	a.log.Infof("trained %d of %d words", table.Len(), len(a.dataset.Words()))
	return table
}

// Evaluate recognizes every test item against the table and reports the
// per-item scores, guesses, and the word error rate.
func (a *App) Evaluate(table *recognizer.ModelTable, testSet *asldata.TestSet) Result {
	probs, guesses := recognizer.Recognize(table, testSet)
	wer := WordErrorRate(guesses, testSet)
	a.log.Infof("recognized %d items, WER %.3f", testSet.Len(), wer)
	return Result{
		Probabilities: probs,
		Guesses:       guesses,
		WER:           wer,
	}
}

// Run trains with the selector and evaluates on the test set.
func (a *App) Run(sel selector.Selector, testSet *asldata.TestSet) Result {
	return a.Evaluate(a.TrainAll(sel), testSet)
}

// WordErrorRate returns the fraction of guesses that differ from the test
// set's true words. An empty test set has a rate of 0.
func WordErrorRate(guesses []string, testSet *asldata.TestSet) float64 {
	if testSet.Len() == 0 {
		return 0
	}
	wrong := 0
	for i := 0; i < testSet.Len(); i++ {
		if guesses[i] != testSet.Word(i) {
			wrong++
		}
	}
	return float64(wrong) / float64(testSet.Len())
}
