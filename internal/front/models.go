package front

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
	// resolved by the records service, display only
	AthleteName string `json:"athleteName"`
}

type Treatment struct {
	TreatmentID      int64  `json:"treatmentID"`
	InjuryID         int64  `json:"injuryID"`
	TreatmentDate    string `json:"treatmentDate"`
	TreatmentType    string `json:"treatmentType"`
	Provider         string `json:"provider"`
	Facility         string `json:"facility"`
	Notes            string `json:"notes"`
	Result           string `json:"result"`
	Recommendations  string `json:"recommendations"`
	FollowUpRequired bool   `json:"followUpRequired"`
	FollowUpDate     string `json:"followUpDate"`
	// resolved by the records service, display only
	AthleteID         int64  `json:"athleteID"`
	AthleteName       string `json:"athleteName"`
	InjuryDescription string `json:"injuryDescription"`
}

// option lists shared by the forms and the badge mapping, so the two never drift
var (
	AthleteStatusOptions = []string{"Active", "Injured", "Recovering", "Retired", "Inactive"}

	InjurySeverityOptions = []string{"Minor", "Moderate", "Severe", "Critical"}
	InjuryStatusOptions   = []string{"Active", "Recovering", "Rehabilitating", "Healed"}
	InjuryTypeOptions     = []string{
		"Sprain", "Strain", "Fracture", "Dislocation",
		"Contusion", "Laceration", "Concussion", "Tendonitis",
		"Ligament Tear", "Muscle Tear", "Overuse Injury", "Other",
	}
	BodyPartOptions = []string{
		"Head", "Neck", "Shoulder", "Upper Arm", "Elbow", "Forearm",
		"Wrist", "Hand", "Fingers", "Chest", "Back (Upper)", "Back (Lower)",
		"Abdomen", "Hip", "Groin", "Thigh", "Knee", "Lower Leg",
		"Ankle", "Foot", "Toes", "Other",
	}

	TreatmentTypeOptions = []string{
		"Physical Therapy", "Surgery", "Medication", "Massage",
		"Acupuncture", "Chiropractic", "Ice/Heat", "Rest",
		"Rehabilitation Exercise", "Stretching", "Taping/Bracing",
		"Cortisone Injection", "Ultrasound", "Electrical Stimulation", "Other",
	}
	// offered by the form but not enforced at submit time, result stays free text
	TreatmentResultOptions = []string{
		"Excellent - Complete Recovery", "Good - Significant Improvement",
		"Moderate - Partial Improvement", "Poor - Minimal Improvement",
		"No Change", "Worse", "Too Early to Assess",
	}
)

type ListVM struct {
	Title  string
	Active string

	SearchTerm string
	// row id currently asking for delete confirmation, 0 means none
	ConfirmID int64

	Error string

	// set when the list was entered through a parent record
	AthleteID int64
	InjuryID  int64
}

type AthleteListVM struct {
	ListVM
	Athletes []Athlete
}

type InjuryListVM struct {
	ListVM
	Injuries []Injury
}

type TreatmentListVM struct {
	ListVM
	Treatments []Treatment
}

type AthleteDetailVM struct {
	Title   string
	Active  string
	Error   string
	Athlete Athlete
	// secondary fetch, may be empty when the injuries call failed
	Injuries []Injury
}

type InjuryDetailVM struct {
	Title  string
	Active string
	Error  string
	Injury Injury
	// secondary fetch, may be empty when the treatments call failed
	Treatments []Treatment
}

type TreatmentDetailVM struct {
	Title     string
	Active    string
	Error     string
	Treatment Treatment
}

type FormVM struct {
	Title    string
	Active   string
	Error    string
	EditMode bool
	// parent context carried through the URL, locks the parent selector
	ParentLocked bool
	CancelURL    string
}

type AthleteFormVM struct {
	FormVM
	Athlete       Athlete
	StatusOptions []string
}

type InjuryFormVM struct {
	FormVM
	Injury          Injury
	Athletes        []Athlete
	TypeOptions     []string
	BodyPartOptions []string
	SeverityOptions []string
	StatusOptions   []string
}

type TreatmentFormVM struct {
	FormVM
	Treatment     Treatment
	Injuries      []Injury
	TypeOptions   []string
	ResultOptions []string
}
