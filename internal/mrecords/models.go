package mrecords

import "time"

// Wire shapes. Field names mirror what the frontend binds, the denormalized
// athleteName / injuryDescription values are resolved here and nowhere else.

type Athlete struct {
	AthleteID    int64  `json:"athleteID"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DateOfBirth  string `json:"dateOfBirth"`
	Sport        string `json:"sport"`
	TeamName     string `json:"teamName"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	Status       string `json:"status"`
}

type Injury struct {
	InjuryID             int64  `json:"injuryID"`
	AthleteID            int64  `json:"athleteID"`
	InjuryType           string `json:"injuryType"`
	BodyPart             string `json:"bodyPart"`
	DateOccurred         string `json:"dateOccurred"`
	Severity             string `json:"severity"`
	Status               string `json:"status"`
	Description          string `json:"description"`
	TreatmentNotes       string `json:"treatmentNotes"`
	ExpectedRecoveryDate string `json:"expectedRecoveryDate"`
	AthleteName          string `json:"athleteName"`
}

type Treatment struct {
	TreatmentID       int64  `json:"treatmentID"`
	InjuryID          int64  `json:"injuryID"`
	TreatmentDate     string `json:"treatmentDate"`
	TreatmentType     string `json:"treatmentType"`
	Provider          string `json:"provider"`
	Facility          string `json:"facility"`
	Notes             string `json:"notes"`
	Result            string `json:"result"`
	Recommendations   string `json:"recommendations"`
	FollowUpRequired  bool   `json:"followUpRequired"`
	FollowUpDate      string `json:"followUpDate"`
	AthleteID         int64  `json:"athleteID"`
	AthleteName       string `json:"athleteName"`
	InjuryDescription string `json:"injuryDescription"`
}

type AthleteRequest struct {
	FirstName    string `json:"firstName" binding:"required,max=100"`
	LastName     string `json:"lastName" binding:"required,max=100"`
	DateOfBirth  string `json:"dateOfBirth" binding:"required"`
	Sport        string `json:"sport" binding:"max=100"`
	TeamName     string `json:"teamName" binding:"max=100"`
	Position     string `json:"position" binding:"max=100"`
	JerseyNumber int    `json:"jerseyNumber" binding:"gte=0"`
	Status       string `json:"status" binding:"omitempty,oneof=Active Injured Recovering Retired Inactive"`
}

type InjuryRequest struct {
	AthleteID      int64  `json:"athleteID" binding:"required,gt=0"`
	InjuryType     string `json:"injuryType" binding:"required,max=100"`
	BodyPart       string `json:"bodyPart" binding:"required,max=100"`
	DateOccurred   string `json:"dateOccurred" binding:"required"`
	Severity       string `json:"severity" binding:"omitempty,oneof=Minor Moderate Severe Critical"`
	Status         string `json:"status" binding:"required,oneof=Active Recovering Rehabilitating Healed"`
	Description    string `json:"description" binding:"max=2000"`
	TreatmentNotes string `json:"treatmentNotes" binding:"max=2000"`
	// optional
	ExpectedRecoveryDate string `json:"expectedRecoveryDate"`
}

type TreatmentRequest struct {
	InjuryID        int64  `json:"injuryID" binding:"required,gt=0"`
	TreatmentDate   string `json:"treatmentDate" binding:"required"`
	TreatmentType   string `json:"treatmentType" binding:"required,max=100"`
	Provider        string `json:"provider" binding:"max=200"`
	Facility        string `json:"facility" binding:"max=200"`
	Notes           string `json:"notes" binding:"max=2000"`
	Result          string `json:"result" binding:"max=200"`
	Recommendations string `json:"recommendations" binding:"max=2000"`
	// result is deliberately not constrained to the form's option list
	FollowUpRequired bool   `json:"followUpRequired"`
	FollowUpDate     string `json:"followUpDate"`
}

const dateLayout = "2006-01-02"

// parseDate accepts the date-only form value or a full ISO-8601 timestamp.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
