package hmm

import "fmt"

// FitError reports that a model could not be fitted for a (word, state count)
// pair. It is a recoverable outcome: callers skip the candidate and continue.
type FitError struct {
	Word      string
	NumStates int
	Err       error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("fit %q with %d states: %v", e.Word, e.NumStates, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }

// ScoreError reports that a fitted model could not evaluate the likelihood of
// the given features. Selection treats it as eliminating the candidate;
// recognition substitutes a sentinel score.
type ScoreError struct {
	Err error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("score: %v", e.Err)
}

func (e *ScoreError) Unwrap() error { return e.Err }
