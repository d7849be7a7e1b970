package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTrackAndFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Options{Output: &buf, UpdateInterval: time.Hour})
	r.Start()

	track := r.Track("2024-01-05_Crab_Nebula.jpg", 2048)
	track.Add(1024)
	track.Add(1024)
	track.Done(true)

	failed := r.Track("2024-01-06_Mars.jpg", 512)
	failed.Done(false)

	r.Stop()
	time.Sleep(50 * time.Millisecond) // let the update loop flush

	out := buf.String()
	if !strings.Contains(out, "2024-01-05_Crab_Nebula.jpg (2.00 KB)") {
		t.Errorf("missing start line, got:\n%s", out)
	}
	if !strings.Contains(out, "1 downloaded, 1 failed") {
		t.Errorf("missing final status, got:\n%s", out)
	}
	if !strings.Contains(out, "2.00 KB") {
		t.Errorf("missing byte total, got:\n%s", out)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	r := NewReporter(Options{Output: &bytes.Buffer{}})
	r.Start()
	r.Stop()
	r.Stop() // must not panic
}

func TestNilTrackerDiscardsUpdates(t *testing.T) {
	var track *Tracker
	track.Add(100)
	track.Done(true)

	var r *Reporter
	if got := r.Track("x", 1); got != nil {
		t.Error("nil reporter should hand out nil trackers")
	}
}

func TestConcurrentTrackers(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(Options{Output: &buf, UpdateInterval: time.Hour})
	r.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			track := r.Track("file.jpg", 100)
			for j := 0; j < 10; j++ {
				track.Add(10)
			}
			track.Done(true)
		}()
	}
	wg.Wait()

	if got := r.bytes.Load(); got != 800 {
		t.Errorf("bytes: got %d, want 800", got)
	}
	if got := r.completed.Load(); got != 8 {
		t.Errorf("completed: got %d, want 8", got)
	}
	r.Stop()
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{3 * 1024 * 1024, "3.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{-1, "unknown"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"64KB", 64 * 1024, false},
		{"1.5MB", 1536 * 1024, false},
		{"2GB", 2 * 1024 * 1024 * 1024, false},
		{"100", 100, false},
		{"100B", 100, false},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseBytes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBytes(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBytes(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBytes(%q): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "30.0s"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 5*time.Minute, "2h 5m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.in); got != tt.want {
			t.Errorf("formatDuration(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
