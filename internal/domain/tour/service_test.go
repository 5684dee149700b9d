// internal/domain/tour/service_test.go
package tour

import (
	"reflect"
	"testing"
)

func TestDayNumber(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"Intro", 0},
		{"Day 1", 1},
		{"Day 2", 2},
		{"Day 10", 10},
		{"day 3", 3},
		{"DAY7", 7},
		{"Unlabeled", 999},
		{"", 999},
		{"Day x", 999},
	}
	for _, c := range cases {
		if got := DayNumber(c.label); got != c.want {
			t.Errorf("DayNumber(%q) = %d, want %d", c.label, got, c.want)
		}
	}
}

func TestSortDetails(t *testing.T) {
	details := []Detail{
		{Day: "Day 10"},
		{Day: "Intro"},
		{Day: "Day 2"},
		{Day: "Day 1"},
		{Day: "Unlabeled"},
	}
	SortDetails(details)

	got := make([]string, len(details))
	for i, d := range details {
		got[i] = d.Day
	}
	want := []string{"Intro", "Day 1", "Day 2", "Day 10", "Unlabeled"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sorted order = %v, want %v", got, want)
	}
}

func TestSortDetailsStable(t *testing.T) {
	details := []Detail{
		{Day: "Mystery", Description: "first"},
		{Day: "Unknown", Description: "second"},
		{Day: "Day 1"},
	}
	SortDetails(details)

	if details[0].Day != "Day 1" {
		t.Fatalf("numbered day should sort first, got %q", details[0].Day)
	}
	if details[1].Description != "first" || details[2].Description != "second" {
		t.Fatalf("tie order not preserved: %q then %q", details[1].Description, details[2].Description)
	}
}

func TestDayLabel(t *testing.T) {
	if got := DayLabel(0); got != "Day 1" {
		t.Errorf("DayLabel(0) = %q", got)
	}
	if got := DayLabel(9); got != "Day 10" {
		t.Errorf("DayLabel(9) = %q", got)
	}
}

func TestApplyCreateDefaults(t *testing.T) {
	d := Detail{OperatorName: "Custom Operator", Language: "  "}
	d.ApplyCreateDefaults()

	if d.OperatorName != "Custom Operator" {
		t.Errorf("explicit operator overwritten: %q", d.OperatorName)
	}
	if d.Language != "English, French" {
		t.Errorf("blank language not defaulted: %q", d.Language)
	}
	if d.TourStyleTitle != "Travel Style" || d.TourStyleDesc != "Discovery" {
		t.Errorf("tour style defaults missing: %q / %q", d.TourStyleTitle, d.TourStyleDesc)
	}
	if d.GuideTypeDesc != "Local Guides" || d.IntensityDesc != "Challenging" {
		t.Errorf("guide/intensity defaults missing: %q / %q", d.GuideTypeDesc, d.IntensityDesc)
	}
	if d.GroupSize != "1-16 people" || d.AgeRange != "Min 12+" {
		t.Errorf("group/age defaults missing: %q / %q", d.GroupSize, d.AgeRange)
	}
}

func TestRecommend(t *testing.T) {
	tours := []Tour{
		{ID: "1", Name: "City Break", Location: "Paris City Center", Price: 500, Duration: "3"},
		{ID: "2", Name: "Beach Week", Location: "Phuket Beach", Price: 900, Duration: "7"},
		{ID: "3", Name: "Mountain Trek", Location: "Alps", Price: 1200, Duration: "6"},
	}

	got := Recommend(tours, Answer{Budget: 1000, Type: "beach", Days: 7})
	if got == nil || got.ID != "2" {
		t.Fatalf("want beach tour 2, got %+v", got)
	}

	// No type match anywhere: budget and duration decide.
	got = Recommend(tours, Answer{Budget: 600, Type: "desert", Days: 3})
	if got == nil || got.ID != "1" {
		t.Fatalf("want tour 1 on budget+duration, got %+v", got)
	}

	if Recommend(nil, Answer{}) != nil {
		t.Fatal("empty catalog should recommend nothing")
	}
}
