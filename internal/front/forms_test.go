package front

import (
	"strings"
	"testing"
)

func validAthleteForm() AthleteFormRequest {
	return AthleteFormRequest{
		FirstName:   "Jo",
		LastName:    "Ann",
		DateOfBirth: "1999-04-01",
		Sport:       "Soccer",
		Status:      "Active",
	}
}

func TestAthleteFormValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*AthleteFormRequest)
		wantErr string
	}{
		{"valid", func(r *AthleteFormRequest) {}, ""},
		{"missing first name", func(r *AthleteFormRequest) { r.FirstName = "" }, "first name"},
		{"missing last name", func(r *AthleteFormRequest) { r.LastName = "" }, "last name"},
		{"missing date of birth", func(r *AthleteFormRequest) { r.DateOfBirth = "" }, "date of birth"},
		{"jersey not a number", func(r *AthleteFormRequest) { r.JerseyNumber = "ten" }, "jersey"},
		{"jersey negative", func(r *AthleteFormRequest) { r.JerseyNumber = "-3" }, "jersey"},
		{"jersey empty is fine", func(r *AthleteFormRequest) { r.JerseyNumber = "" }, ""},
		{"jersey zero is fine", func(r *AthleteFormRequest) { r.JerseyNumber = "0" }, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validAthleteForm()
			tc.mutate(&r)
			err := r.validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("validate() = %v, want error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestAthleteFormEmptyJerseyBecomesZero(t *testing.T) {
	r := validAthleteForm()
	r.JerseyNumber = ""
	if got := r.toAthlete().JerseyNumber; got != 0 {
		t.Errorf("jersey = %d, want 0", got)
	}

	r.JerseyNumber = "23"
	if got := r.toAthlete().JerseyNumber; got != 23 {
		t.Errorf("jersey = %d, want 23", got)
	}
}

func TestInjuryFormValidate(t *testing.T) {
	valid := InjuryFormRequest{
		AthleteID:    "7",
		InjuryType:   "Sprain",
		BodyPart:     "Knee",
		DateOccurred: "2026-01-15",
		Severity:     "Moderate",
		Status:       "Active",
	}

	if err := valid.validate(); err != nil {
		t.Fatalf("validate() = %v, want nil", err)
	}

	cases := []struct {
		name   string
		mutate func(*InjuryFormRequest)
	}{
		{"missing athlete", func(r *InjuryFormRequest) { r.AthleteID = "" }},
		{"athlete not a number", func(r *InjuryFormRequest) { r.AthleteID = "seven" }},
		{"missing date", func(r *InjuryFormRequest) { r.DateOccurred = "" }},
		{"missing type", func(r *InjuryFormRequest) { r.InjuryType = "" }},
		{"missing body part", func(r *InjuryFormRequest) { r.BodyPart = "" }},
		{"missing status", func(r *InjuryFormRequest) { r.Status = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			if err := r.validate(); err == nil {
				t.Error("validate() = nil, want error")
			}
		})
	}
}

func TestTreatmentFormFollowUpDateRequired(t *testing.T) {
	r := TreatmentFormRequest{
		InjuryID:         "4",
		TreatmentDate:    "2026-02-01",
		TreatmentType:    "Massage",
		FollowUpRequired: "true",
	}
	if err := r.validate(); err == nil {
		t.Error("validate() = nil, want follow-up date error")
	}

	r.FollowUpDate = "2026-02-15"
	if err := r.validate(); err != nil {
		t.Errorf("validate() = %v, want nil", err)
	}
}

func TestTreatmentFormStrayFollowUpDateIsDropped(t *testing.T) {
	// the date was typed, then the checkbox was toggled off; the submit
	// still goes through and the stray date never reaches the wire
	r := TreatmentFormRequest{
		InjuryID:         "4",
		TreatmentDate:    "2026-02-01",
		TreatmentType:    "Massage",
		FollowUpRequired: "",
		FollowUpDate:     "2026-02-15",
	}
	if err := r.validate(); err != nil {
		t.Fatalf("validate() = %v, want nil", err)
	}
	tr := r.toTreatment()
	if tr.FollowUpRequired {
		t.Error("followUpRequired = true, want false")
	}
	if tr.FollowUpDate != "" {
		t.Errorf("followUpDate = %q, want empty", tr.FollowUpDate)
	}
}

func TestTreatmentFormCheckboxSpellings(t *testing.T) {
	for _, v := range []string{"true", "on"} {
		r := TreatmentFormRequest{FollowUpRequired: v}
		if !r.followUp() {
			t.Errorf("followUp() with %q = false, want true", v)
		}
	}
	for _, v := range []string{"", "false", "no"} {
		r := TreatmentFormRequest{FollowUpRequired: v}
		if r.followUp() {
			t.Errorf("followUp() with %q = true, want false", v)
		}
	}
}
