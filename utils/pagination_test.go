package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/dishcovery/api-go/models"
)

func makeResults(n int) []models.ScoredResult {
	items := make([]models.ScoredResult, n)
	for i := range items {
		items[i].ID = fmt.Sprintf("res-%d", i)
	}
	return items
}

func TestPaginate_ReconstructsAllItems(t *testing.T) {
	t.Parallel()

	items := makeResults(13)
	size := 5

	first := Paginate(items, 1, size)
	if first.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", first.TotalPages)
	}
	if first.TotalResults != 13 {
		t.Fatalf("TotalResults = %d, want 13", first.TotalResults)
	}

	var rebuilt []models.ScoredResult
	for page := 1; page <= first.TotalPages; page++ {
		p := Paginate(items, page, size)
		if len(p.Items) > size {
			t.Fatalf("page %d has %d items, exceeds size %d", page, len(p.Items), size)
		}
		rebuilt = append(rebuilt, p.Items...)
	}

	if len(rebuilt) != len(items) {
		t.Fatalf("rebuilt %d items, want %d", len(rebuilt), len(items))
	}
	for i := range items {
		if rebuilt[i].ID != items[i].ID {
			t.Errorf("rebuilt[%d].ID = %s, want %s", i, rebuilt[i].ID, items[i].ID)
		}
	}
}

func TestPaginate_PastTheEnd(t *testing.T) {
	t.Parallel()

	items := makeResults(4)

	p := Paginate(items, 3, 6)
	if len(p.Items) != 0 {
		t.Errorf("past-the-end page has %d items, want 0", len(p.Items))
	}
	if p.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", p.TotalPages)
	}
	if p.CurrentPage != 3 {
		t.Errorf("CurrentPage = %d, want 3", p.CurrentPage)
	}
}

func TestPaginate_HugePageNumber(t *testing.T) {
	t.Parallel()

	items := makeResults(4)

	// The start-offset multiplication wraps negative for a page this
	// large; the result must still be an empty page, not a panic.
	p := Paginate(items, math.MaxInt, 6)
	if len(p.Items) != 0 {
		t.Errorf("huge page has %d items, want 0", len(p.Items))
	}
	if p.TotalResults != 4 {
		t.Errorf("TotalResults = %d, want 4", p.TotalResults)
	}
	if p.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", p.TotalPages)
	}
}

func TestPaginate_EmptyList(t *testing.T) {
	t.Parallel()

	p := Paginate(nil, 1, 6)
	if p.TotalResults != 0 {
		t.Errorf("TotalResults = %d, want 0", p.TotalResults)
	}
	if p.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1 for an empty list", p.TotalPages)
	}
	if len(p.Items) != 0 {
		t.Errorf("Items length = %d, want 0", len(p.Items))
	}
}

func TestPaginate_ShortFinalPage(t *testing.T) {
	t.Parallel()

	items := makeResults(7)
	p := Paginate(items, 2, 6)
	if len(p.Items) != 1 {
		t.Fatalf("final page has %d items, want 1", len(p.Items))
	}
	if p.Items[0].ID != "res-6" {
		t.Errorf("final page item = %s, want res-6", p.Items[0].ID)
	}
	if p.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", p.TotalPages)
	}
}

func TestParsePositiveInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		def  int
		want int
	}{
		{"", 6, 6},
		{"3", 6, 3},
		{"0", 6, 6},
		{"-2", 1, 1},
		{"abc", 1, 1},
		{"2.5", 6, 6},
	}

	for _, tt := range tests {
		if got := ParsePositiveInt(tt.in, tt.def); got != tt.want {
			t.Errorf("ParsePositiveInt(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}
