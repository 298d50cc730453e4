package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSortedDeduplicatesAndOrders(t *testing.T) {
	got := Sorted([]int64{5, 1, -3, 5, 1, 0})
	want := []int64{-3, 0, 1, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSortedNilForEmptyInput(t *testing.T) {
	if got := Sorted(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestSortedDoesNotMutateInput(t *testing.T) {
	in := []int64{3, 1, 2}
	_ = Sorted(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Fatalf("Sorted mutated its input: %v", in)
	}
}

func TestWriteProducesLFTerminatedAscendingLines(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []int64{2, -1, 2, 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "-1\n0\n2\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "found_seeds.txt")
	if err := WriteFile(path, []int64{10, -5, 10, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "-5\n3\n10\n"
	if string(b) != want {
		t.Fatalf("got %q, want %q", string(b), want)
	}
}

func TestWriteEmptyInputProducesEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected empty output, got %q", buf.String())
	}
}
