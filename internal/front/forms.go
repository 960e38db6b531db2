package front

import (
	"fmt"
	"strconv"
)

// Form requests bind the browser's form fields. Numbers arrive as strings so
// an empty input can be told apart from zero.

type AthleteFormRequest struct {
	FirstName    string `form:"firstName"`
	LastName     string `form:"lastName"`
	DateOfBirth  string `form:"dateOfBirth"`
	Sport        string `form:"sport"`
	TeamName     string `form:"teamName"`
	Position     string `form:"position"`
	JerseyNumber string `form:"jerseyNumber"`
	Status       string `form:"status"`
}

func (r AthleteFormRequest) validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("first name is required")
	}
	if r.LastName == "" {
		return fmt.Errorf("last name is required")
	}
	if r.DateOfBirth == "" {
		return fmt.Errorf("date of birth is required")
	}
	if r.JerseyNumber != "" {
		n, err := strconv.Atoi(r.JerseyNumber)
		if err != nil || n < 0 {
			return fmt.Errorf("jersey number must be a non-negative number")
		}
	}
	return nil
}

// toAthlete maps the form onto the wire shape. An empty jersey number is
// submitted as 0, never as an empty value.
func (r AthleteFormRequest) toAthlete() Athlete {
	jersey := 0
	if r.JerseyNumber != "" {
		jersey, _ = strconv.Atoi(r.JerseyNumber)
	}
	return Athlete{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DateOfBirth:  r.DateOfBirth,
		Sport:        r.Sport,
		TeamName:     r.TeamName,
		Position:     r.Position,
		JerseyNumber: jersey,
		Status:       r.Status,
	}
}

type InjuryFormRequest struct {
	AthleteID            string `form:"athleteID"`
	InjuryType           string `form:"injuryType"`
	BodyPart             string `form:"bodyPart"`
	DateOccurred         string `form:"dateOccurred"`
	Severity             string `form:"severity"`
	Status               string `form:"status"`
	Description          string `form:"description"`
	TreatmentNotes       string `form:"treatmentNotes"`
	ExpectedRecoveryDate string `form:"expectedRecoveryDate"`
}

func (r InjuryFormRequest) validate() error {
	if r.AthleteID == "" {
		return fmt.Errorf("please select an athlete")
	}
	if _, err := strconv.ParseInt(r.AthleteID, 10, 64); err != nil {
		return fmt.Errorf("please select an athlete")
	}
	if r.DateOccurred == "" {
		return fmt.Errorf("date occurred is required")
	}
	if r.InjuryType == "" {
		return fmt.Errorf("please select an injury type")
	}
	if r.BodyPart == "" {
		return fmt.Errorf("please select a body part")
	}
	if r.Status == "" {
		return fmt.Errorf("please select a status")
	}
	return nil
}

func (r InjuryFormRequest) toInjury() Injury {
	athleteID, _ := strconv.ParseInt(r.AthleteID, 10, 64)
	return Injury{
		AthleteID:            athleteID,
		InjuryType:           r.InjuryType,
		BodyPart:             r.BodyPart,
		DateOccurred:         r.DateOccurred,
		Severity:             r.Severity,
		Status:               r.Status,
		Description:          r.Description,
		TreatmentNotes:       r.TreatmentNotes,
		ExpectedRecoveryDate: r.ExpectedRecoveryDate,
	}
}

type TreatmentFormRequest struct {
	InjuryID         string `form:"injuryID"`
	TreatmentDate    string `form:"treatmentDate"`
	TreatmentType    string `form:"treatmentType"`
	Provider         string `form:"provider"`
	Facility         string `form:"facility"`
	Notes            string `form:"notes"`
	Result           string `form:"result"`
	Recommendations  string `form:"recommendations"`
	FollowUpRequired string `form:"followUpRequired"`
	FollowUpDate     string `form:"followUpDate"`
}

func (r TreatmentFormRequest) followUp() bool {
	return r.FollowUpRequired == "true" || r.FollowUpRequired == "on"
}

func (r TreatmentFormRequest) validate() error {
	if r.InjuryID == "" {
		return fmt.Errorf("please select an injury")
	}
	if _, err := strconv.ParseInt(r.InjuryID, 10, 64); err != nil {
		return fmt.Errorf("please select an injury")
	}
	if r.TreatmentDate == "" {
		return fmt.Errorf("treatment date is required")
	}
	if r.TreatmentType == "" {
		return fmt.Errorf("please select a treatment type")
	}
	if r.followUp() && r.FollowUpDate == "" {
		return fmt.Errorf("follow-up date is required when a follow-up is needed")
	}
	return nil
}

// toTreatment maps the form onto the wire shape. A stray follow-up date left
// in form state after the checkbox was toggled off is dropped, not rejected.
func (r TreatmentFormRequest) toTreatment() Treatment {
	injuryID, _ := strconv.ParseInt(r.InjuryID, 10, 64)
	followUp := r.followUp()
	followUpDate := r.FollowUpDate
	if !followUp {
		followUpDate = ""
	}
	return Treatment{
		InjuryID:         injuryID,
		TreatmentDate:    r.TreatmentDate,
		TreatmentType:    r.TreatmentType,
		Provider:         r.Provider,
		Facility:         r.Facility,
		Notes:            r.Notes,
		Result:           r.Result,
		Recommendations:  r.Recommendations,
		FollowUpRequired: followUp,
		FollowUpDate:     followUpDate,
	}
}
