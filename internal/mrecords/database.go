package mrecords

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrHasChildren marks a delete blocked by dependent rows, referential
// integrity is enforced here, never in the frontend.
var ErrHasChildren = errors.New("record has dependent records")

func isFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// --- athletes ---

const athleteColumns = `
	athleteid, first_name, last_name, date_of_birth,
	sport, team_name, position, jersey_number, status
`

func scanAthlete(row pgx.Row) (Athlete, error) {
	var a Athlete
	var dob time.Time
	err := row.Scan(&a.AthleteID, &a.FirstName, &a.LastName, &dob,
		&a.Sport, &a.TeamName, &a.Position, &a.JerseyNumber, &a.Status)
	if err != nil {
		return Athlete{}, err
	}
	a.DateOfBirth = formatDate(&dob)
	return a, nil
}

func ListAthletes(ctx context.Context) ([]Athlete, error) {
	rows, err := pool.Query(ctx, `SELECT `+athleteColumns+` FROM athletes ORDER BY athleteid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Athlete, 0)
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func GetAthleteByID(ctx context.Context, id int64) (Athlete, error) {
	row := pool.QueryRow(ctx, `SELECT `+athleteColumns+` FROM athletes WHERE athleteid = $1`, id)
	return scanAthlete(row)
}

func CreateAthlete(ctx context.Context, req AthleteRequest) (int64, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil || dob == nil {
		return 0, errors.New("invalid dateOfBirth")
	}
	status := req.Status
	if status == "" {
		status = "Active"
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO athletes (first_name, last_name, date_of_birth, sport, team_name, position, jersey_number, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING athleteid
	`, req.FirstName, req.LastName, *dob, req.Sport, req.TeamName, req.Position, req.JerseyNumber, status).Scan(&id)
	return id, err
}

func UpdateAthlete(ctx context.Context, id int64, req AthleteRequest) error {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil || dob == nil {
		return errors.New("invalid dateOfBirth")
	}
	status := req.Status
	if status == "" {
		status = "Active"
	}

	ct, err := pool.Exec(ctx, `
		UPDATE athletes
		SET first_name = $1, last_name = $2, date_of_birth = $3, sport = $4,
		    team_name = $5, position = $6, jersey_number = $7, status = $8
		WHERE athleteid = $9
	`, req.FirstName, req.LastName, *dob, req.Sport, req.TeamName, req.Position, req.JerseyNumber, status, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func DeleteAthlete(ctx context.Context, id int64) error {
	ct, err := pool.Exec(ctx, `DELETE FROM athletes WHERE athleteid = $1`, id)
	if err != nil {
		if isFKViolation(err) {
			return ErrHasChildren
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// --- injuries ---

// injury reads JOIN athletes so the response carries athleteName resolved
const injurySelect = `
	SELECT i.injuryid, i.athleteid, i.injury_type, i.body_part, i.date_occurred,
	       COALESCE(i.severity, ''), i.status, i.description, i.treatment_notes,
	       i.expected_recovery_date,
	       a.first_name || ' ' || a.last_name AS athlete_name
	FROM injuries i
	JOIN athletes a ON a.athleteid = i.athleteid
`

func scanInjury(row pgx.Row) (Injury, error) {
	var i Injury
	var occurred time.Time
	var recovery *time.Time
	err := row.Scan(&i.InjuryID, &i.AthleteID, &i.InjuryType, &i.BodyPart, &occurred,
		&i.Severity, &i.Status, &i.Description, &i.TreatmentNotes, &recovery, &i.AthleteName)
	if err != nil {
		return Injury{}, err
	}
	i.DateOccurred = formatDate(&occurred)
	i.ExpectedRecoveryDate = formatDate(recovery)
	return i, nil
}

func listInjuries(ctx context.Context, where string, args ...any) ([]Injury, error) {
	rows, err := pool.Query(ctx, injurySelect+where+` ORDER BY i.injuryid`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Injury, 0)
	for rows.Next() {
		i, err := scanInjury(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func ListInjuries(ctx context.Context) ([]Injury, error) {
	return listInjuries(ctx, ``)
}

func ListInjuriesByAthlete(ctx context.Context, athleteID int64) ([]Injury, error) {
	return listInjuries(ctx, ` WHERE i.athleteid = $1`, athleteID)
}

func GetInjuryByID(ctx context.Context, id int64) (Injury, error) {
	row := pool.QueryRow(ctx, injurySelect+` WHERE i.injuryid = $1`, id)
	return scanInjury(row)
}

func CreateInjury(ctx context.Context, req InjuryRequest) (int64, error) {
	occurred, err := parseDate(req.DateOccurred)
	if err != nil || occurred == nil {
		return 0, errors.New("invalid dateOccurred")
	}
	recovery, err := parseDate(req.ExpectedRecoveryDate)
	if err != nil {
		return 0, errors.New("invalid expectedRecoveryDate")
	}
	var severity *string
	if req.Severity != "" {
		severity = &req.Severity
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO injuries (athleteid, injury_type, body_part, date_occurred, severity, status,
		                      description, treatment_notes, expected_recovery_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING injuryid
	`, req.AthleteID, req.InjuryType, req.BodyPart, *occurred, severity, req.Status,
		req.Description, req.TreatmentNotes, recovery).Scan(&id)
	if err != nil && isFKViolation(err) {
		return 0, pgx.ErrNoRows
	}
	return id, err
}

func UpdateInjury(ctx context.Context, id int64, req InjuryRequest) error {
	occurred, err := parseDate(req.DateOccurred)
	if err != nil || occurred == nil {
		return errors.New("invalid dateOccurred")
	}
	recovery, err := parseDate(req.ExpectedRecoveryDate)
	if err != nil {
		return errors.New("invalid expectedRecoveryDate")
	}
	var severity *string
	if req.Severity != "" {
		severity = &req.Severity
	}

	ct, err := pool.Exec(ctx, `
		UPDATE injuries
		SET athleteid = $1, injury_type = $2, body_part = $3, date_occurred = $4,
		    severity = $5, status = $6, description = $7, treatment_notes = $8,
		    expected_recovery_date = $9
		WHERE injuryid = $10
	`, req.AthleteID, req.InjuryType, req.BodyPart, *occurred, severity, req.Status,
		req.Description, req.TreatmentNotes, recovery, id)
	if err != nil {
		if isFKViolation(err) {
			return pgx.ErrNoRows
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func DeleteInjury(ctx context.Context, id int64) error {
	ct, err := pool.Exec(ctx, `DELETE FROM injuries WHERE injuryid = $1`, id)
	if err != nil {
		if isFKViolation(err) {
			return ErrHasChildren
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// --- treatments ---

// treatment reads JOIN up to the athlete so athleteName and injuryDescription
// arrive resolved
const treatmentSelect = `
	SELECT t.treatmentid, t.injuryid, t.treatment_date, t.treatment_type, t.provider,
	       t.facility, t.notes, t.result, t.recommendations, t.follow_up_required,
	       t.follow_up_date,
	       i.athleteid,
	       a.first_name || ' ' || a.last_name AS athlete_name,
	       i.description AS injury_description
	FROM treatments t
	JOIN injuries i ON i.injuryid = t.injuryid
	JOIN athletes a ON a.athleteid = i.athleteid
`

func scanTreatment(row pgx.Row) (Treatment, error) {
	var t Treatment
	var date time.Time
	var followUp *time.Time
	err := row.Scan(&t.TreatmentID, &t.InjuryID, &date, &t.TreatmentType, &t.Provider,
		&t.Facility, &t.Notes, &t.Result, &t.Recommendations, &t.FollowUpRequired,
		&followUp, &t.AthleteID, &t.AthleteName, &t.InjuryDescription)
	if err != nil {
		return Treatment{}, err
	}
	t.TreatmentDate = formatDate(&date)
	t.FollowUpDate = formatDate(followUp)
	return t, nil
}

func listTreatments(ctx context.Context, where string, args ...any) ([]Treatment, error) {
	rows, err := pool.Query(ctx, treatmentSelect+where+` ORDER BY t.treatmentid`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Treatment, 0)
	for rows.Next() {
		t, err := scanTreatment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func ListTreatments(ctx context.Context) ([]Treatment, error) {
	return listTreatments(ctx, ``)
}

func ListTreatmentsByInjury(ctx context.Context, injuryID int64) ([]Treatment, error) {
	return listTreatments(ctx, ` WHERE t.injuryid = $1`, injuryID)
}

func GetTreatmentByID(ctx context.Context, id int64) (Treatment, error) {
	row := pool.QueryRow(ctx, treatmentSelect+` WHERE t.treatmentid = $1`, id)
	return scanTreatment(row)
}

func CreateTreatment(ctx context.Context, req TreatmentRequest) (int64, error) {
	date, err := parseDate(req.TreatmentDate)
	if err != nil || date == nil {
		return 0, errors.New("invalid treatmentDate")
	}
	followUp, err := parseDate(req.FollowUpDate)
	if err != nil {
		return 0, errors.New("invalid followUpDate")
	}
	if !req.FollowUpRequired {
		followUp = nil
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO treatments (injuryid, treatment_date, treatment_type, provider, facility,
		                        notes, result, recommendations, follow_up_required, follow_up_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING treatmentid
	`, req.InjuryID, *date, req.TreatmentType, req.Provider, req.Facility,
		req.Notes, req.Result, req.Recommendations, req.FollowUpRequired, followUp).Scan(&id)
	if err != nil && isFKViolation(err) {
		return 0, pgx.ErrNoRows
	}
	return id, err
}

func UpdateTreatment(ctx context.Context, id int64, req TreatmentRequest) error {
	date, err := parseDate(req.TreatmentDate)
	if err != nil || date == nil {
		return errors.New("invalid treatmentDate")
	}
	followUp, err := parseDate(req.FollowUpDate)
	if err != nil {
		return errors.New("invalid followUpDate")
	}
	if !req.FollowUpRequired {
		followUp = nil
	}

	ct, err := pool.Exec(ctx, `
		UPDATE treatments
		SET injuryid = $1, treatment_date = $2, treatment_type = $3, provider = $4,
		    facility = $5, notes = $6, result = $7, recommendations = $8,
		    follow_up_required = $9, follow_up_date = $10
		WHERE treatmentid = $11
	`, req.InjuryID, *date, req.TreatmentType, req.Provider, req.Facility,
		req.Notes, req.Result, req.Recommendations, req.FollowUpRequired, followUp, id)
	if err != nil {
		if isFKViolation(err) {
			return pgx.ErrNoRows
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func DeleteTreatment(ctx context.Context, id int64) error {
	ct, err := pool.Exec(ctx, `DELETE FROM treatments WHERE treatmentid = $1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
