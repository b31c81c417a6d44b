package willyweather

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/joelvanveluwen/tide/internal/models"
)

var testNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)

func on(hour, minute int) time.Time {
	return time.Date(2026, 10, 19, hour, minute, 0, 0, time.Local)
}

func TestParseTides_Fixture(t *testing.T) {
	page, err := os.ReadFile("../../testdata/moonee-beach.html")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	got, err := ParseTides(string(page), testNow)
	if err != nil {
		t.Fatalf("ParseTides() error = %v", err)
	}

	want := []models.TideEvent{
		{Label: "12:42 am", Time: on(0, 42), Height: "1.62m", Type: models.TideHigh},
		{Label: "6:51am", Time: on(6, 51), Height: "0.38m", Type: models.TideLow},
		{Label: "1:05 pm", Time: on(13, 5), Height: "1.41m", Type: models.TideHigh},
		{Label: "7:02 pm", Time: on(19, 2), Height: "0.47m", Type: models.TideLow},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseTides() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTides_NoDaySection(t *testing.T) {
	page, err := os.ReadFile("../../testdata/moonee-beach-redesign.html")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}

	events, err := ParseTides(string(page), testNow)
	if !errors.Is(err, ErrNoTideData) {
		t.Errorf("ParseTides() error = %v, want ErrNoTideData", err)
	}
	if len(events) != 0 {
		t.Errorf("ParseTides() returned %d events, want 0", len(events))
	}
}

func TestParseTides_EmptyDay(t *testing.T) {
	events, err := ParseTides(`<ul><li class="day"><h2>Monday</h2></li></ul>`, testNow)
	if err != nil {
		t.Fatalf("ParseTides() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("ParseTides() returned %d events, want 0", len(events))
	}
}

func TestParseTides_SkipsIncompletePoints(t *testing.T) {
	page := `<ul><li class="day"><ul>
		<li class="point-high"><span>1.62m</span></li>
		<li class="point-low"><h3>6:51 am</h3></li>
		<li class="point-high"><h3>1:05 pm</h3><span>1.41m</span></li>
		<li class="point-other"><h3>3:00 pm</h3><span>1.00m</span></li>
		<li class="point-low"><h3>7:02 pm</h3><span>0.47m</span></li>
	</ul></li></ul>`

	got, err := ParseTides(page, testNow)
	if err != nil {
		t.Fatalf("ParseTides() error = %v", err)
	}

	var labels []string
	for _, e := range got {
		labels = append(labels, e.Label)
	}
	if diff := cmp.Diff([]string{"1:05 pm", "7:02 pm"}, labels); diff != "" {
		t.Errorf("kept points mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTides_OnlyFirstDay(t *testing.T) {
	page := `<ul>
		<li class="day"><ul><li class="point-low"><h3>6:51 am</h3><span>0.38m</span></li></ul></li>
		<li class="day"><ul><li class="point-high"><h3>1:31 am</h3><span>1.58m</span></li></ul></li>
	</ul>`

	got, err := ParseTides(page, testNow)
	if err != nil {
		t.Fatalf("ParseTides() error = %v", err)
	}
	if len(got) != 1 || got[0].Label != "6:51 am" {
		t.Errorf("ParseTides() = %+v, want only the first day's point", got)
	}
}

func TestParseTides_UnparseableTimeKept(t *testing.T) {
	page := `<ul><li class="day"><ul>
		<li class="point-high"><h3>around noon</h3><span>1.41m</span></li>
	</ul></li></ul>`

	got, err := ParseTides(page, testNow)
	if err != nil {
		t.Fatalf("ParseTides() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ParseTides() returned %d events, want 1", len(got))
	}
	if got[0].HasTime() {
		t.Errorf("event time = %v, want none", got[0].Time)
	}
	if got[0].Label != "around noon" || got[0].Height != "1.41m" {
		t.Errorf("labels not kept verbatim: %+v", got[0])
	}
}

func TestParseTides_HighTakesPrecedence(t *testing.T) {
	page := `<ul><li class="day"><ul>
		<li class="point-low point-high"><h3>1:05 pm</h3><span>1.41m</span></li>
	</ul></li></ul>`

	got, err := ParseTides(page, testNow)
	if err != nil {
		t.Fatalf("ParseTides() error = %v", err)
	}
	if len(got) != 1 || got[0].Type != models.TideHigh {
		t.Errorf("ParseTides() = %+v, want one HIGH event", got)
	}
}

func TestParseTideTime(t *testing.T) {
	tests := []struct {
		label   string
		want    time.Time
		wantErr bool
	}{
		{"6:42 AM", on(6, 42), false},
		{"6:42AM", on(6, 42), false},
		{"11:59PM", on(23, 59), false},
		{"12:05 AM", on(0, 5), false},
		{"12:30 PM", on(12, 30), false},
		{"06:42 am", on(6, 42), false},
		{" 7:02 pm ", on(19, 2), false},
		{"6:42\u00a0AM", on(6, 42), false},
		{"6:42  am", on(6, 42), false},
		{"18:30", time.Time{}, true},
		{"13:00 PM", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := parseTideTime(tt.label, testNow)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTideTime(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseTideTime(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestParseTideTime_AnchoredToToday(t *testing.T) {
	now := time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)
	got, err := parseTideTime("4:15 AM", now)
	if err != nil {
		t.Fatalf("parseTideTime() error = %v", err)
	}
	y, m, d := got.Date()
	if y != 2024 || m != time.February || d != 29 || got.Location() != time.UTC {
		t.Errorf("parseTideTime() = %v, want 2024-02-29 in UTC", got)
	}
}

func TestParseTides_NonBreakingSpace(t *testing.T) {
	page := `<ul><li class="day"><ul>
		<li class="point-low"><h3>6:42&nbsp;am</h3><span>0.38m</span></li>
	</ul></li></ul>`

	got, err := ParseTides(page, testNow)
	if err != nil {
		t.Fatalf("ParseTides() error = %v", err)
	}
	if len(got) != 1 || !got[0].Time.Equal(on(6, 42)) {
		t.Errorf("ParseTides() = %+v, want one event at 6:42", got)
	}
}
