// Package asldata provides the data-access layer for isolated-sign gesture
// recognition: per-word instance sequences, concatenated feature matrices
// with instance-length vectors, ordered test sets, and SQLite persistence.
package asldata

// XLen pairs a concatenated feature matrix with the ordered per-instance
// row counts. Invariant: the lengths sum to the row count of X.
type XLen struct {
	X       [][]float64
	Lengths []int
}

// Dataset holds the training data for a vocabulary of words. Sequences maps
// a word to its gesture instances, each instance an ordered list of feature
// frames. XLengths holds the concatenated form required by model fitting.
// The vocabulary keeps insertion order so that downstream enumeration is
// deterministic.
type Dataset struct {
	words     []string
	Sequences map[string][][][]float64
	XLengths  map[string]XLen
}

// NewDataset returns an empty Dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Sequences: make(map[string][][][]float64),
		XLengths:  make(map[string]XLen),
	}
}

// AddWord registers a word with its gesture instances and builds the
// concatenated feature form. Re-adding a word replaces its data but keeps
// its position in the vocabulary order.
func (d *Dataset) AddWord(word string, instances [][][]float64) {
	if _, ok := d.Sequences[word]; !ok {
		d.words = append(d.words, word)
	}
	d.Sequences[word] = instances

	all := make([]int, len(instances))
	for i := range all {
		all[i] = i
	}
	d.XLengths[word] = CombineSequences(all, instances)
}

// Words returns the vocabulary in insertion order.
func (d *Dataset) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// CombineSequences concatenates the selected instances, in index order, into
// a single feature matrix paired with the per-instance lengths. Used both
// for whole-word training data and for cross-validation fold construction.
func CombineSequences(indices []int, sequences [][][]float64) XLen {
	var x [][]float64
	lengths := make([]int, 0, len(indices))
	for _, idx := range indices {
		seq := sequences[idx]
		x = append(x, seq...)
		lengths = append(lengths, len(seq))
	}
	return XLen{X: x, Lengths: lengths}
}
