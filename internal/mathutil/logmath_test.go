package mathutil

import (
	"math"
	"testing"
)

func TestLogAdd(t *testing.T) {
	// log(exp(log(2)) + exp(log(3))) = log(5)
	got := LogAdd(math.Log(2), math.Log(3))
	want := math.Log(5)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("LogAdd(log(2), log(3)) = %f, want %f", got, want)
	}
}

func TestLogAddWithLogZero(t *testing.T) {
	a := math.Log(5)
	if got := LogAdd(LogZero, a); math.Abs(got-a) > 1e-10 {
		t.Errorf("LogAdd(LogZero, %f) = %f, want %f", a, got, a)
	}
	if got := LogAdd(a, LogZero); math.Abs(got-a) > 1e-10 {
		t.Errorf("LogAdd(%f, LogZero) = %f, want %f", a, got, a)
	}
}

func TestLogSumVec(t *testing.T) {
	v := []float64{math.Log(1), math.Log(2), math.Log(3)}
	got := LogSumVec(v)
	want := math.Log(6)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("LogSumVec = %f, want %f", got, want)
	}
}

func TestNewMatFill(t *testing.T) {
	m := NewMatFill(3, 4, LogZero)
	if len(m) != 3 || len(m[0]) != 4 {
		t.Fatalf("wrong shape: %dx%d", len(m), len(m[0]))
	}
	for i := range m {
		for j := range m[i] {
			if m[i][j] != LogZero {
				t.Fatalf("m[%d][%d] = %f, want LogZero", i, j, m[i][j])
			}
		}
	}
}
