package hmm

import (
	"errors"
	"math"
	"testing"
)

// twoPhaseData builds a concatenated feature matrix of nseq instances, each
// with one frame near lo and one frame near hi, in 2 dimensions.
func twoPhaseData(nseq int, lo, hi float64) ([][]float64, []int) {
	var x [][]float64
	lengths := make([]int, nseq)
	for i := 0; i < nseq; i++ {
		jitter := float64(i) * 0.01
		x = append(x,
			[]float64{lo + jitter, lo - jitter},
			[]float64{hi - jitter, hi + jitter},
		)
		lengths[i] = 2
	}
	return x, lengths
}

func TestFitter_Fit_StateCount(t *testing.T) {
	x, lengths := twoPhaseData(3, 0, 5)
	f := NewFitter()

	m, err := f.Fit("BOOK", x, lengths, 2)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if m.NumStates() != 2 {
		t.Errorf("NumStates() = %d, want 2", m.NumStates())
	}
	if m.Dim() != 2 {
		t.Errorf("Dim() = %d, want 2", m.Dim())
	}
}

func TestFitter_Fit_Deterministic(t *testing.T) {
	x, lengths := twoPhaseData(3, 0, 5)

	f1 := NewFitter()
	f2 := NewFitter()
	m1, err := f1.Fit("BOOK", x, lengths, 2)
	if err != nil {
		t.Fatalf("first Fit() error = %v", err)
	}
	m2, err := f2.Fit("BOOK", x, lengths, 2)
	if err != nil {
		t.Fatalf("second Fit() error = %v", err)
	}

	s1, err := m1.Score(x, lengths)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	s2, err := m2.Score(x, lengths)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if s1 != s2 {
		t.Errorf("same seed gave different scores: %f vs %f", s1, s2)
	}
}

func TestFitter_Fit_TooFewFrames(t *testing.T) {
	// 2 frames cannot support 5 states.
	x := [][]float64{{0, 0}, {1, 1}}
	lengths := []int{2}

	f := NewFitter()
	_, err := f.Fit("CHOCOLATE", x, lengths, 5)
	if err == nil {
		t.Fatal("expected fit failure for 5 states on 2 frames")
	}
	var fe *FitError
	if !errors.As(err, &fe) {
		t.Fatalf("error is %T, want *FitError", err)
	}
	if fe.Word != "CHOCOLATE" || fe.NumStates != 5 {
		t.Errorf("FitError context = (%q, %d), want (CHOCOLATE, 5)", fe.Word, fe.NumStates)
	}
}

func TestFitter_Fit_BadLengths(t *testing.T) {
	x := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	f := NewFitter()
	if _, err := f.Fit("BOOK", x, []int{2}, 2); err == nil {
		t.Error("expected fit failure for lengths not summing to rows")
	}
}

func TestModel_Score_DimMismatch(t *testing.T) {
	x, lengths := twoPhaseData(3, 0, 5)
	f := NewFitter()
	m, err := f.Fit("BOOK", x, lengths, 2)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	bad := [][]float64{{0, 0, 0}, {1, 1, 1}}
	_, err = m.Score(bad, []int{2})
	if err == nil {
		t.Fatal("expected score failure for 3-dim features on a 2-dim model")
	}
	var se *ScoreError
	if !errors.As(err, &se) {
		t.Fatalf("error is %T, want *ScoreError", err)
	}
}

func TestModel_Score_PrefersOwnData(t *testing.T) {
	own, ownLens := twoPhaseData(4, 0, 5)
	other, otherLens := twoPhaseData(4, 40, 60)

	f := NewFitter()
	m, err := f.Fit("BOOK", own, ownLens, 2)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	ownScore, err := m.Score(own, ownLens)
	if err != nil {
		t.Fatalf("Score(own) error = %v", err)
	}
	otherScore, err := m.Score(other, otherLens)
	if err != nil {
		t.Fatalf("Score(other) error = %v", err)
	}
	if !(ownScore > otherScore) {
		t.Errorf("own data should score higher: own=%f other=%f", ownScore, otherScore)
	}
	if math.IsNaN(ownScore) || math.IsInf(ownScore, 0) {
		t.Errorf("own score not finite: %f", ownScore)
	}
}
