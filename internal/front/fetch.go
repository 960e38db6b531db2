package front

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrorKind buckets a failed records call so handlers can pick a banner message
// without parsing the error text.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnauthorized
	ErrNotFound
	ErrServer
	ErrBadRequest
	// request went out, nothing came back
	ErrConnectivity
	// request could not even be built
	ErrClient
)

type APIError struct {
	Kind   ErrorKind
	Status int
	Method string
	URL    string
	Body   string
	Err    error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("records %s %s -> %d: %s", e.Method, e.URL, e.Status, e.Body)
	}
	return fmt.Sprintf("records %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 500:
		return ErrServer
	case status >= 400:
		return ErrBadRequest
	default:
		return ErrUnknown
	}
}

// Downstream wraps every call to the records service.
type Downstream struct {
	Base   string
	Client *http.Client
}

func (d *Downstream) doJSON(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &APIError{Kind: ErrClient, Method: method, URL: url, Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &APIError{Kind: ErrClient, Method: method, URL: url, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		return &APIError{Kind: ErrConnectivity, Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{
			Kind:   classifyStatus(resp.StatusCode),
			Status: resp.StatusCode,
			Method: method,
			URL:    url,
			Body:   string(b),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Kind: ErrClient, Method: method, URL: url, Err: err}
	}
	return nil
}

// --- athletes ---

func (d *Downstream) Athletes(ctx context.Context) ([]Athlete, error) {
	var items []Athlete
	err := d.doJSON(ctx, "GET", d.Base+"/athletes", nil, &items)
	return items, err
}

func (d *Downstream) AthleteByID(ctx context.Context, id int64) (Athlete, error) {
	var a Athlete
	err := d.doJSON(ctx, "GET", fmt.Sprintf("%s/athletes/%d", d.Base, id), nil, &a)
	return a, err
}

func (d *Downstream) CreateAthlete(ctx context.Context, a Athlete) (Athlete, error) {
	var created Athlete
	err := d.doJSON(ctx, "POST", d.Base+"/athletes", a, &created)
	return created, err
}

func (d *Downstream) UpdateAthlete(ctx context.Context, id int64, a Athlete) error {
	return d.doJSON(ctx, "PUT", fmt.Sprintf("%s/athletes/%d", d.Base, id), a, nil)
}

func (d *Downstream) DeleteAthlete(ctx context.Context, id int64) error {
	return d.doJSON(ctx, "DELETE", fmt.Sprintf("%s/athletes/%d", d.Base, id), nil, nil)
}

// --- injuries ---

func (d *Downstream) Injuries(ctx context.Context) ([]Injury, error) {
	var items []Injury
	err := d.doJSON(ctx, "GET", d.Base+"/injuries", nil, &items)
	return items, err
}

// InjuriesByAthlete hits the parent scoped endpoint, it is not a client side filter
func (d *Downstream) InjuriesByAthlete(ctx context.Context, athleteID int64) ([]Injury, error) {
	var items []Injury
	err := d.doJSON(ctx, "GET", fmt.Sprintf("%s/injuries/athlete/%d", d.Base, athleteID), nil, &items)
	return items, err
}

func (d *Downstream) InjuryByID(ctx context.Context, id int64) (Injury, error) {
	var i Injury
	err := d.doJSON(ctx, "GET", fmt.Sprintf("%s/injuries/%d", d.Base, id), nil, &i)
	return i, err
}

func (d *Downstream) CreateInjury(ctx context.Context, i Injury) (Injury, error) {
	var created Injury
	err := d.doJSON(ctx, "POST", d.Base+"/injuries", i, &created)
	return created, err
}

func (d *Downstream) UpdateInjury(ctx context.Context, id int64, i Injury) error {
	return d.doJSON(ctx, "PUT", fmt.Sprintf("%s/injuries/%d", d.Base, id), i, nil)
}

func (d *Downstream) DeleteInjury(ctx context.Context, id int64) error {
	return d.doJSON(ctx, "DELETE", fmt.Sprintf("%s/injuries/%d", d.Base, id), nil, nil)
}

// --- treatments ---

func (d *Downstream) Treatments(ctx context.Context) ([]Treatment, error) {
	var items []Treatment
	err := d.doJSON(ctx, "GET", d.Base+"/treatments", nil, &items)
	return items, err
}

func (d *Downstream) TreatmentsByInjury(ctx context.Context, injuryID int64) ([]Treatment, error) {
	var items []Treatment
	err := d.doJSON(ctx, "GET", fmt.Sprintf("%s/treatments/injury/%d", d.Base, injuryID), nil, &items)
	return items, err
}

func (d *Downstream) TreatmentByID(ctx context.Context, id int64) (Treatment, error) {
	var t Treatment
	err := d.doJSON(ctx, "GET", fmt.Sprintf("%s/treatments/%d", d.Base, id), nil, &t)
	return t, err
}

func (d *Downstream) CreateTreatment(ctx context.Context, t Treatment) (Treatment, error) {
	var created Treatment
	err := d.doJSON(ctx, "POST", d.Base+"/treatments", t, &created)
	return created, err
}

func (d *Downstream) UpdateTreatment(ctx context.Context, id int64, t Treatment) error {
	return d.doJSON(ctx, "PUT", fmt.Sprintf("%s/treatments/%d", d.Base, id), t, nil)
}

func (d *Downstream) DeleteTreatment(ctx context.Context, id int64) error {
	return d.doJSON(ctx, "DELETE", fmt.Sprintf("%s/treatments/%d", d.Base, id), nil, nil)
}

// bannerMessage maps a failed call to the text shown in the view's error banner.
func bannerMessage(err error, doing string) string {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return fmt.Sprintf("Failed to %s. Please try again later.", doing)
	}
	switch apiErr.Kind {
	case ErrNotFound:
		return fmt.Sprintf("Failed to %s: record not found.", doing)
	case ErrConnectivity:
		return fmt.Sprintf("Failed to %s: the records service is unreachable.", doing)
	case ErrServer:
		return fmt.Sprintf("Failed to %s: the records service reported an error.", doing)
	default:
		return fmt.Sprintf("Failed to %s. Please try again later.", doing)
	}
}
