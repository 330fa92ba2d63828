package scheduling

import (
	"reflect"
	"testing"
)

func TestAvailableTimes(t *testing.T) {
	catalog := []string{"09:00", "10:00", "11:00", "12:00"}

	cases := []struct {
		name  string
		taken []string
		want  []string
	}{
		{"nothing taken", nil, []string{"09:00", "10:00", "11:00", "12:00"}},
		{"some taken", []string{"10:00", "12:00"}, []string{"09:00", "11:00"}},
		{"all taken", []string{"09:00", "10:00", "11:00", "12:00"}, []string{}},
		{"unknown taken ignored", []string{"23:45"}, []string{"09:00", "10:00", "11:00", "12:00"}},
		{"duplicates collapse", []string{"10:00", "10:00"}, []string{"09:00", "11:00", "12:00"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AvailableTimes(catalog, tc.taken)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusScheduled, StatusCompleted, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = false", s)
		}
	}
	for _, s := range []string{"", "archived", "SCHEDULED"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%s) = true", s)
		}
	}
}
