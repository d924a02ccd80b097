package asldata

// TestItem is one held-out gesture instance with its true word label.
type TestItem struct {
	Word   string
	Frames [][]float64
}

// TestSet is an ordered collection of test items, indexed by test-set
// position.
type TestSet struct {
	items []TestItem
}

// NewTestSet returns an empty TestSet.
func NewTestSet() *TestSet {
	return &TestSet{}
}

// Add appends a test item with its true word label.
func (ts *TestSet) Add(word string, frames [][]float64) {
	ts.items = append(ts.items, TestItem{Word: word, Frames: frames})
}

// Len returns the number of test items.
func (ts *TestSet) Len() int {
	return len(ts.items)
}

// ItemSequences returns the instance list for the item at index i. A test
// item is a single gesture instance, so the list has one entry.
func (ts *TestSet) ItemSequences(i int) [][][]float64 {
	return [][][]float64{ts.items[i].Frames}
}

// ItemXLen returns the concatenated feature form for the item at index i.
func (ts *TestSet) ItemXLen(i int) XLen {
	frames := ts.items[i].Frames
	return XLen{X: frames, Lengths: []int{len(frames)}}
}

// Word returns the true word label for the item at index i.
func (ts *TestSet) Word(i int) string {
	return ts.items[i].Word
}
