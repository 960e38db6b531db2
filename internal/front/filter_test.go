package front

import (
	"reflect"
	"testing"
)

func TestMatchAny(t *testing.T) {
	cases := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty term matches anything", "", []string{"whatever"}, true},
		{"empty term matches no fields", "", nil, true},
		{"case insensitive", "KNEE", []string{"left knee sprain"}, true},
		{"substring in later field", "smith", []string{"Sprain", "Knee", "John Smith"}, true},
		{"no field matches", "xyz", []string{"Sprain", "Knee"}, false},
		{"empty field is skipped", "a", []string{"", "bcd"}, false},
		{"all fields empty", "a", []string{"", ""}, false},
		{"whitespace term is a real filter", " ", []string{"JoAnn"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchAny(tc.term, tc.fields...); got != tc.want {
				t.Errorf("matchAny(%q, %v) = %v, want %v", tc.term, tc.fields, got, tc.want)
			}
		})
	}
}

func TestFilterAthletes(t *testing.T) {
	items := []Athlete{
		{AthleteID: 1, FirstName: "Jo", LastName: "Ann"},
		{AthleteID: 2, FirstName: "Bo", LastName: "Bee"},
	}

	got := FilterAthletes(items, "jo")
	if len(got) != 1 || got[0].AthleteID != 1 {
		t.Fatalf("filter %q: got %v, want only athlete 1", "jo", got)
	}

	// filtering an already filtered list with the same term changes nothing
	again := FilterAthletes(got, "jo")
	if !reflect.DeepEqual(got, again) {
		t.Errorf("filter is not idempotent: %v then %v", got, again)
	}
}

func TestFilterAthletesEmptyTermKeepsAll(t *testing.T) {
	items := []Athlete{
		{AthleteID: 1, FirstName: "Jo"},
		{AthleteID: 2, FirstName: "Bo"},
	}
	got := FilterAthletes(items, "")
	if !reflect.DeepEqual(got, items) {
		t.Errorf("empty term changed the list: %v", got)
	}
}

func TestFilterAthletesKeepsOrder(t *testing.T) {
	items := []Athlete{
		{AthleteID: 3, LastName: "Carter"},
		{AthleteID: 1, LastName: "Carr"},
		{AthleteID: 2, LastName: "Diaz"},
		{AthleteID: 4, LastName: "McCarthy"},
	}
	got := FilterAthletes(items, "car")
	want := []int64{3, 1, 4}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].AthleteID != id {
			t.Errorf("row %d: got id %d, want %d", i, got[i].AthleteID, id)
		}
	}
}

func TestFilterInjuriesMatchesResolvedName(t *testing.T) {
	items := []Injury{
		{InjuryID: 1, InjuryType: "Sprain", AthleteName: "John Smith"},
		{InjuryID: 2, InjuryType: "Fracture", AthleteName: "Jane Doe"},
	}
	got := FilterInjuries(items, "smith")
	if len(got) != 1 || got[0].InjuryID != 1 {
		t.Fatalf("got %v, want only injury 1", got)
	}
}

func TestFilterInjuriesAbsentFieldDoesNotMatch(t *testing.T) {
	// description is empty on both rows, only the second carries the term
	// elsewhere
	items := []Injury{
		{InjuryID: 1, InjuryType: "Sprain", BodyPart: "Knee"},
		{InjuryID: 2, InjuryType: "Strain", BodyPart: "Hamstring"},
	}
	got := FilterInjuries(items, "ham")
	if len(got) != 1 || got[0].InjuryID != 2 {
		t.Fatalf("got %v, want only injury 2", got)
	}
}

func TestFilterTreatments(t *testing.T) {
	items := []Treatment{
		{TreatmentID: 1, TreatmentType: "Massage", Provider: "Dr. Lee", InjuryDescription: "torn ACL"},
		{TreatmentID: 2, TreatmentType: "Surgery", Provider: "Dr. Wu", AthleteName: "Pat Quinn"},
		{TreatmentID: 3, TreatmentType: "Rest", Result: "Good - Significant Improvement"},
	}
	cases := []struct {
		term string
		want []int64
	}{
		{"acl", []int64{1}},
		{"quinn", []int64{2}},
		{"good", []int64{3}},
		{"dr.", []int64{1, 2}},
		{"nothing", nil},
	}
	for _, tc := range cases {
		got := FilterTreatments(items, tc.term)
		if len(got) != len(tc.want) {
			t.Errorf("term %q: got %d rows, want %d", tc.term, len(got), len(tc.want))
			continue
		}
		for i, id := range tc.want {
			if got[i].TreatmentID != id {
				t.Errorf("term %q row %d: got id %d, want %d", tc.term, i, got[i].TreatmentID, id)
			}
		}
	}
}
