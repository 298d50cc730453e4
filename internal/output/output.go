// Package output writes the final seed list: one signed 64-bit decimal per
// line, strictly ascending, LF-terminated, with duplicates collapsed.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
)

// Sorted returns seeds deduplicated and sorted ascending, without
// mutating the input slice.
func Sorted(seeds []int64) []int64 {
	if len(seeds) == 0 {
		return nil
	}
	out := make([]int64, len(seeds))
	copy(out, seeds)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	uniq := out[:1]
	for _, s := range out[1:] {
		if s != uniq[len(uniq)-1] {
			uniq = append(uniq, s)
		}
	}
	return uniq
}

// Write sorts, deduplicates, and writes seeds to w, one decimal integer per
// LF-terminated line.
func Write(w io.Writer, seeds []int64) error {
	bw := bufio.NewWriter(w)
	for _, s := range Sorted(seeds) {
		if _, err := fmt.Fprintf(bw, "%d\n", s); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes seeds to a new file at path, truncating any existing
// content.
func WriteFile(path string, seeds []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, seeds)
}
