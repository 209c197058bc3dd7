package googlesheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
)

const testSheetID = "1FFMJ3L9ZynKHXGwJ-XJpPK3C8CmzizpFlxsVJaAdW7o"

// newTestService points a Service at a fake API server.
func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	s := New(srv.Client(), testSheetID)
	s.endpoint = srv.URL + "/"
	return s
}

func TestAppend(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		// Three cells address columns A through D, per the append range rule.
		if want := "/spreadsheets/" + testSheetID + "/values/A:D:append"; r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		q := r.URL.Query()
		if q.Get("valueInputOption") != "USER_ENTERED" {
			t.Errorf("valueInputOption = %q", q.Get("valueInputOption"))
		}
		if q.Get("insertDataOption") != "INSERT_ROWS" {
			t.Errorf("insertDataOption = %q", q.Get("insertDataOption"))
		}

		var vr ValueRange
		if err := json.NewDecoder(r.Body).Decode(&vr); err != nil {
			t.Errorf("decoding request body: %s", err)
		}
		if len(vr.Values) != 1 || len(vr.Values[0]) != 3 || vr.Values[0][2] != "c" {
			t.Errorf("request values = %v", vr.Values)
		}

		json.NewEncoder(w).Encode(AppendValuesResponse{
			SpreadsheetID: testSheetID,
			TableRange:    "Sheet1!A1:D4",
			Updates: &UpdateValuesResponse{
				UpdatedRange: "Sheet1!A5:C5",
				UpdatedRows:  1,
				UpdatedCells: 3,
			},
		})
	})

	res, err := s.Append(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Append: %s", err)
	}
	if res.TableRange != "Sheet1!A1:D4" {
		t.Fatalf("table range = %q", res.TableRange)
	} else if res.Updates == nil || res.Updates.UpdatedCells != 3 {
		t.Fatalf("updates = %+v", res.Updates)
	}
}

func TestUpdateValues(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		if want := "/spreadsheets/" + testSheetID + "/values/A2:B3"; r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		if q := r.URL.Query(); q.Get("responseValueRenderOption") != "FORMATTED_VALUE" {
			t.Errorf("responseValueRenderOption = %q", q.Get("responseValueRenderOption"))
		}

		var vr ValueRange
		if err := json.NewDecoder(r.Body).Decode(&vr); err != nil {
			t.Errorf("decoding request body: %s", err)
		}
		if vr.MajorDimension != DimensionRows {
			t.Errorf("majorDimension = %q", vr.MajorDimension)
		}
		if vr.Range != "A2:B3" {
			t.Errorf("range = %q", vr.Range)
		}

		json.NewEncoder(w).Encode(UpdateValuesResponse{
			SpreadsheetID:  testSheetID,
			UpdatedRange:   "Sheet1!A2:B3",
			UpdatedRows:    2,
			UpdatedColumns: 2,
			UpdatedCells:   4,
		})
	})

	res, err := s.UpdateValues(context.Background(), "A2:B3", [][]string{{"1", "2"}, {"3", "4"}})
	if err != nil {
		t.Fatalf("UpdateValues: %s", err)
	}
	if res.UpdatedCells != 4 {
		t.Fatalf("updated cells = %d, want 4", res.UpdatedCells)
	}
}

func TestValues(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if want := "/spreadsheets/" + testSheetID + "/values/A1:B2"; r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		json.NewEncoder(w).Encode(ValueRange{
			Range:          "Sheet1!A1:B2",
			MajorDimension: DimensionRows,
			Values:         [][]string{{"1", "2"}, {"3", "4"}},
		})
	})

	vr, err := s.Values(context.Background(), "A1:B2")
	if err != nil {
		t.Fatalf("Values: %s", err)
	}
	if len(vr.Values) != 2 || vr.Values[1][0] != "3" {
		t.Fatalf("values = %v", vr.Values)
	}
}

func TestBatchUpdate(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if want := "/spreadsheets/" + testSheetID + "/values:batchUpdate"; r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}

		var req BatchUpdateValuesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request body: %s", err)
		}
		if req.ValueInputOption != "USER_ENTERED" {
			t.Errorf("valueInputOption = %q", req.ValueInputOption)
		}
		if len(req.Data) != 2 {
			t.Errorf("data length = %d, want 2", len(req.Data))
		}

		json.NewEncoder(w).Encode(BatchUpdateValuesResponse{
			SpreadsheetID:     testSheetID,
			TotalUpdatedCells: 2,
			Responses: []UpdateValuesResponse{
				{UpdatedRange: "Sheet1!A1", UpdatedCells: 1},
				{UpdatedRange: "Sheet1!C3", UpdatedCells: 1},
			},
		})
	})

	res, err := s.BatchUpdate(context.Background(), []ValueRange{
		{Range: "A1", Values: [][]string{{"x"}}},
		{Range: "C3", Values: [][]string{{"y"}}},
	})
	if err != nil {
		t.Fatalf("BatchUpdate: %s", err)
	}
	if res.TotalUpdatedCells != 2 || len(res.Responses) != 2 {
		t.Fatalf("response = %+v", res)
	}
}

func TestClear(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if want := "/spreadsheets/" + testSheetID + "/values/Sheet1:clear"; r.URL.Path != want {
			t.Errorf("path = %q, want %q", r.URL.Path, want)
		}
		json.NewEncoder(w).Encode(ClearValuesResponse{
			SpreadsheetID: testSheetID,
			ClearedRange:  "Sheet1!A1:Z1000",
		})
	})

	res, err := s.Clear(context.Background(), "Sheet1")
	if err != nil {
		t.Fatalf("Clear: %s", err)
	}
	if res.ClearedRange != "Sheet1!A1:Z1000" {
		t.Fatalf("cleared range = %q", res.ClearedRange)
	}
}

func TestAPIError(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"}}`))
	})

	_, err := s.Values(context.Background(), "A1:B2")
	if err == nil {
		t.Fatal("expected an error for a 403 response")
	}
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error %v is not a *googleapi.Error", err)
	}
	if gerr.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want 403", gerr.Code)
	}
}

func TestNewWithToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer test-token")
		}
		json.NewEncoder(w).Encode(ValueRange{Range: "Sheet1!A1"})
	}))
	t.Cleanup(srv.Close)

	s := NewWithToken(context.Background(), "test-token", testSheetID)
	s.endpoint = srv.URL + "/"
	if _, err := s.Values(context.Background(), "A1"); err != nil {
		t.Fatalf("Values: %s", err)
	}
}

func TestURL(t *testing.T) {
	s := New(http.DefaultClient, testSheetID)
	want := "https://docs.google.com/spreadsheets/d/" + testSheetID + "/"
	if got := s.URL(); got != want {
		t.Fatalf("URL() = %q, want %q", got, want)
	}
}
