package properties

import (
	"bufio"
	"io"
	"iter"
	"runtime"
)

// LineSeparator is the native line separator of the running platform.
var LineSeparator = lineSeparator()

func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Table is an ordered string mapping. Keys iterate in the order they were
// first set; updating an existing key keeps its position.
type Table struct {
	name   string
	keys   []string
	values map[string]string
}

func NewTable() *Table {
	return &Table{values: make(map[string]string)}
}

// Name returns the source the table was parsed from, if any.
func (t *Table) Name() string {
	return t.name
}

func (t *Table) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t *Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

func (t *Table) Set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

func (t *Table) Delete(key string) {
	if _, ok := t.values[key]; !ok {
		return
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
}

func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns a copy of the keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// All iterates over the entries in insertion order. Values may be updated
// with Set during iteration.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// WriteTo writes every entry as a "key: value" line terminated by
// LineSeparator.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for k, v := range t.All() {
		written, err := bw.WriteString(k + ": " + v + LineSeparator)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}
