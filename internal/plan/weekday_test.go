package plan

import (
	"reflect"
	"testing"
)

func TestWeekOf(t *testing.T) {
	cases := []struct {
		dayIndex int
		want     int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{-1, 1},
	}
	for _, c := range cases {
		if got := WeekOf(c.dayIndex); got != c.want {
			t.Errorf("WeekOf(%d) = %d, want %d", c.dayIndex, got, c.want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	cases := []struct {
		dayIndex int
		want     string
	}{
		{0, "Monday"},
		{4, "Friday"},
		{5, "Monday"},
		{8, "Thursday"},
	}
	for _, c := range cases {
		if got := WeekdayName(c.dayIndex); got != c.want {
			t.Errorf("WeekdayName(%d) = %q, want %q", c.dayIndex, got, c.want)
		}
	}
}

func TestWeekChunks(t *testing.T) {
	got := WeekChunks(7)
	want := [][]int{{0, 1, 2, 3, 4}, {5, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeekChunks(7) = %v, want %v", got, want)
	}

	if got := WeekChunks(0); got != nil {
		t.Fatalf("WeekChunks(0) = %v, want nil", got)
	}
}
