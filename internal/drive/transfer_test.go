package drive

import (
	"io"
	"strings"
	"testing"
)

func TestProgressReaderReportsCumulativeBytes(t *testing.T) {
	src := strings.NewReader("0123456789")

	var transferred []int64
	var totals []int64
	r := NewProgressReader(src, 10, func(n, total int64) {
		transferred = append(transferred, n)
		totals = append(totals, total)
	})

	buf := make([]byte, 4)
	for {
		_, err := r.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
	}

	if len(transferred) == 0 {
		t.Fatal("expected progress callbacks")
	}
	if got := transferred[len(transferred)-1]; got != 10 {
		t.Errorf("expected final transferred count 10, got %d", got)
	}
	for i := 1; i < len(transferred); i++ {
		if transferred[i] < transferred[i-1] {
			t.Errorf("transferred counts not monotonic: %v", transferred)
		}
	}
	for _, total := range totals {
		if total != 10 {
			t.Errorf("expected total 10, got %d", total)
		}
	}
}

func TestProgressReaderNilCallback(t *testing.T) {
	src := strings.NewReader("data")
	r := NewProgressReader(src, -1, nil)
	if r != src {
		t.Error("expected nil callback to return the reader unchanged")
	}
}
