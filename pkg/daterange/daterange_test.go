package daterange

import (
	"testing"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-01-05")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := d.String(); got != "2024-01-05" {
		t.Errorf("String: got %q, want %q", got, "2024-01-05")
	}

	if _, err := Parse("05/01/2024"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := Parse("2024-02-30"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustParse("2024-02-27")

	if got := d.AddDays(3).String(); got != "2024-03-01" {
		t.Errorf("AddDays across leap day: got %q, want 2024-03-01", got)
	}
	if got := d.AddDays(-27).String(); got != "2024-01-31" {
		t.Errorf("AddDays negative: got %q, want 2024-01-31", got)
	}
	if got := d.DaysUntil(MustParse("2024-03-01")); got != 3 {
		t.Errorf("DaysUntil: got %d, want 3", got)
	}
	if got := d.DaysUntil(MustParse("2024-02-20")); got != -7 {
		t.Errorf("DaysUntil backwards: got %d, want -7", got)
	}
}

func TestNewRejectsInvertedRange(t *testing.T) {
	_, err := New(MustParse("2024-06-01"), MustParse("2024-05-01"))
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestRangeDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-01", "2024-01-31", 31},
		{"2024-02-01", "2024-03-01", 30}, // leap year
	}

	for _, tt := range tests {
		r := Range{Start: MustParse(tt.start), End: MustParse(tt.end)}
		if got := r.Days(); got != tt.want {
			t.Errorf("Days(%s..%s): got %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestChunkSmallRangeUnsplit(t *testing.T) {
	r := Range{Start: MustParse("2024-01-01"), End: MustParse("2024-04-10")} // 101 days inclusive

	chunks := r.Chunk(100)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0] != r {
		t.Errorf("got %v, want %v", chunks[0], r)
	}
}

func TestChunkSplitsLargeRange(t *testing.T) {
	// 250 days inclusive: expect 100 + 100 + 50.
	start := MustParse("2024-01-01")
	r := Range{Start: start, End: start.AddDays(249)}

	chunks := r.Chunk(100)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}

	wantDays := []int{100, 100, 50}
	for i, c := range chunks {
		if got := c.Days(); got != wantDays[i] {
			t.Errorf("chunk %d: got %d days, want %d", i, got, wantDays[i])
		}
	}
}

func TestChunkProperties(t *testing.T) {
	spans := []int{102, 130, 250, 365, 1000}

	for _, span := range spans {
		start := MustParse("2020-03-01")
		r := Range{Start: start, End: start.AddDays(span - 1)}
		chunks := r.Chunk(100)

		if chunks[0].Start != r.Start {
			t.Errorf("span %d: first chunk starts at %s, want %s", span, chunks[0].Start, r.Start)
		}
		if last := chunks[len(chunks)-1]; last.End != r.End {
			t.Errorf("span %d: last chunk ends at %s, want %s", span, last.End, r.End)
		}

		total := 0
		for i, c := range chunks {
			if c.Start.After(c.End) {
				t.Errorf("span %d: chunk %d inverted: %v", span, i, c)
			}
			if c.Start.DaysUntil(c.End) > 100 {
				t.Errorf("span %d: chunk %d exceeds max span: %v", span, i, c)
			}
			if i > 0 {
				if got := chunks[i-1].End.DaysUntil(c.Start); got != 1 {
					t.Errorf("span %d: gap of %d days between chunks %d and %d", span, got, i-1, i)
				}
			}
			total += c.Days()
		}
		if total != r.Days() {
			t.Errorf("span %d: chunks cover %d days, range has %d", span, total, r.Days())
		}
	}
}

func TestLastDays(t *testing.T) {
	r := LastDays(7)
	if got := r.Days(); got != 7 {
		t.Errorf("got %d days, want 7", got)
	}
	if r.End != Today() {
		t.Errorf("range should end today")
	}

	if got := LastDays(0).Days(); got != 1 {
		t.Errorf("LastDays(0): got %d days, want 1", got)
	}
}

func TestRandomBetween(t *testing.T) {
	start := MustParse("1995-06-16")
	end := MustParse("1995-06-20")

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		d := RandomBetween(start, end)
		if d.Before(start) || d.After(end) {
			t.Fatalf("random date %s outside [%s, %s]", d, start, end)
		}
		seen[d.String()] = true
	}
	if len(seen) < 2 {
		t.Error("expected more than one distinct random date over 200 draws")
	}

	if d := RandomBetween(start, start); d != start {
		t.Errorf("degenerate interval: got %s, want %s", d, start)
	}
}
