// Package googlesheets is a client for the Google Sheets v4 values API.
//
// It speaks to the spreadsheets.values endpoints with an authenticated HTTP
// client (see the auth subpackage) and builds range addresses with the a1
// subpackage.
package googlesheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/chazkiker2/googlesheets/a1"
)

// Scope is the OAuth scope required for reading and writing spreadsheets.
const Scope = "https://www.googleapis.com/auth/spreadsheets"

const baseEndpoint = "https://sheets.googleapis.com/v4/"

// Service issues requests against the values of a single spreadsheet.
// It is safe for concurrent use.
type Service struct {
	client        *http.Client
	spreadsheetID string
	endpoint      string
}

// New returns a Service for the given spreadsheet. The client must already
// carry credentials for Scope, e.g. from auth.Client.
func New(client *http.Client, spreadsheetID string) *Service {
	return &Service{
		client:        client,
		spreadsheetID: spreadsheetID,
		endpoint:      baseEndpoint,
	}
}

// NewWithToken returns a Service authenticated with a static bearer token,
// using a retrying HTTP client underneath.
func NewWithToken(ctx context.Context, token, spreadsheetID string) *Service {
	rc := retryablehttp.NewClient()
	rc.Logger = nil
	ctx = context.WithValue(ctx, oauth2.HTTPClient, rc.StandardClient())
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return New(oauth2.NewClient(ctx, ts), spreadsheetID)
}

// URL returns the browser link to the spreadsheet.
func (s *Service) URL() string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/", s.spreadsheetID)
}

// Values reads the values in the given A1 range.
func (s *Service) Values(ctx context.Context, rng string) (*ValueRange, error) {
	var out ValueRange
	path := fmt.Sprintf("spreadsheets/%s/values/%s", s.spreadsheetID, rng)
	if err := s.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Append appends a row of values under the existing data in the sheet.
func (s *Service) Append(ctx context.Context, row []string) (*AppendValuesResponse, error) {
	rng, err := a1.FormatRange(a1.Int(0), nil, a1.Int(len(row)), nil)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("valueInputOption", "USER_ENTERED")
	query.Set("insertDataOption", "INSERT_ROWS")

	var out AppendValuesResponse
	path := fmt.Sprintf("spreadsheets/%s/values/%s:append", s.spreadsheetID, rng)
	body := &ValueRange{Values: [][]string{row}}
	if err := s.do(ctx, http.MethodPost, path, query, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateValues writes values row by row starting at the given A1 range.
func (s *Service) UpdateValues(ctx context.Context, rng string, values [][]string) (*UpdateValuesResponse, error) {
	query := url.Values{}
	query.Set("valueInputOption", "USER_ENTERED")
	query.Set("responseValueRenderOption", "FORMATTED_VALUE")
	query.Set("responseDateTimeRenderOption", "FORMATTED_STRING")

	var out UpdateValuesResponse
	path := fmt.Sprintf("spreadsheets/%s/values/%s", s.spreadsheetID, rng)
	body := &ValueRange{
		Range:          rng,
		MajorDimension: DimensionRows,
		Values:         values,
	}
	if err := s.do(ctx, http.MethodPut, path, query, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchUpdate writes several value ranges in a single call.
func (s *Service) BatchUpdate(ctx context.Context, data []ValueRange) (*BatchUpdateValuesResponse, error) {
	var out BatchUpdateValuesResponse
	path := fmt.Sprintf("spreadsheets/%s/values:batchUpdate", s.spreadsheetID)
	body := &BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}
	if err := s.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Clear empties the values in the given A1 range, or a whole sheet when rng
// is a sheet title. Formatting is left alone.
func (s *Service) Clear(ctx context.Context, rng string) (*ClearValuesResponse, error) {
	var out ClearValuesResponse
	path := fmt.Sprintf("spreadsheets/%s/values/%s:clear", s.spreadsheetID, rng)
	if err := s.do(ctx, http.MethodPost, path, nil, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh clears the first sheet and rewrites it with the given values.
func (s *Service) Refresh(ctx context.Context, values [][]string) (*UpdateValuesResponse, error) {
	if _, err := s.Clear(ctx, "Sheet1"); err != nil {
		return nil, err
	}
	return s.UpdateValues(ctx, "A1", values)
}

func (s *Service) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := s.endpoint + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := s.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer res.Body.Close()

	if err := googleapi.CheckResponse(res); err != nil {
		return errors.WithStack(err)
	}
	if out == nil {
		return nil
	}
	return errors.WithStack(json.NewDecoder(res.Body).Decode(out))
}
