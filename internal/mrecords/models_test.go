package mrecords

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		want    string
		wantNil bool
		wantErr bool
	}{
		{"empty is nil not an error", "", "", true, false},
		{"date only", "2026-01-15", "2026-01-15T00:00:00Z", false, false},
		{"full timestamp", "2026-01-15T10:30:00Z", "2026-01-15T10:30:00Z", false, false},
		{"garbage", "15/01/2026", "", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseDate(tc.value)
			if tc.wantErr {
				if err == nil {
					t.Fatal("parseDate() error = nil, want one")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate() error: %v", err)
			}
			if tc.wantNil {
				if got != nil {
					t.Fatalf("parseDate() = %v, want nil", got)
				}
				return
			}
			if got == nil || got.Format(time.RFC3339) != tc.want {
				t.Errorf("parseDate() = %v, want %s", got, tc.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(nil); got != "" {
		t.Errorf("formatDate(nil) = %q, want empty", got)
	}
	ts := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	if got := formatDate(&ts); got != "2026-01-15T00:00:00Z" {
		t.Errorf("formatDate() = %q", got)
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := parseDate("2026-01-15")
	if err != nil {
		t.Fatal(err)
	}
	back, err := parseDate(formatDate(parsed))
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(*back) {
		t.Errorf("round trip drifted: %v vs %v", parsed, back)
	}
}

func bindJSON(t *testing.T, body string, out any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(out)
}

func TestAthleteRequestBinding(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"firstName":"Jo","lastName":"Ann","dateOfBirth":"1999-04-01","status":"Active"}`, false},
		{"status optional", `{"firstName":"Jo","lastName":"Ann","dateOfBirth":"1999-04-01"}`, false},
		{"missing last name", `{"firstName":"Jo","dateOfBirth":"1999-04-01"}`, true},
		{"unknown status", `{"firstName":"Jo","lastName":"Ann","dateOfBirth":"1999-04-01","status":"Benched"}`, true},
		{"negative jersey", `{"firstName":"Jo","lastName":"Ann","dateOfBirth":"1999-04-01","jerseyNumber":-1}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req AthleteRequest
			err := bindJSON(t, tc.body, &req)
			if (err != nil) != tc.wantErr {
				t.Errorf("bind error = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestInjuryRequestBinding(t *testing.T) {
	valid := `{"athleteID":7,"injuryType":"Sprain","bodyPart":"Knee","dateOccurred":"2026-01-15","status":"Active"}`
	var req InjuryRequest
	if err := bindJSON(t, valid, &req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if req.AthleteID != 7 {
		t.Errorf("athleteID = %d", req.AthleteID)
	}

	cases := []struct{ name, body string }{
		{"missing athlete", `{"injuryType":"Sprain","bodyPart":"Knee","dateOccurred":"2026-01-15","status":"Active"}`},
		{"missing status", `{"athleteID":7,"injuryType":"Sprain","bodyPart":"Knee","dateOccurred":"2026-01-15"}`},
		{"unknown severity", `{"athleteID":7,"injuryType":"Sprain","bodyPart":"Knee","dateOccurred":"2026-01-15","status":"Active","severity":"Fatal"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req InjuryRequest
			if err := bindJSON(t, tc.body, &req); err == nil {
				t.Error("bind error = nil, want one")
			}
		})
	}
}

func TestTreatmentRequestResultIsFreeText(t *testing.T) {
	body := `{"injuryID":4,"treatmentDate":"2026-02-01","treatmentType":"Massage","result":"Anything Goes Here"}`
	var req TreatmentRequest
	if err := bindJSON(t, body, &req); err != nil {
		t.Fatalf("free text result rejected: %v", err)
	}
	if req.Result != "Anything Goes Here" {
		t.Errorf("result = %q", req.Result)
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		param string
		ok    bool
	}{
		{"7", true},
		{"0", false},
		{"-1", false},
		{"abc", false},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: tc.param}}
		_, ok := pathID(c)
		if ok != tc.ok {
			t.Errorf("pathID(%q) ok = %v, want %v", tc.param, ok, tc.ok)
		}
		if !tc.ok && w.Code != http.StatusBadRequest {
			t.Errorf("pathID(%q) wrote status %d, want 400", tc.param, w.Code)
		}
	}
}
