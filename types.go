package googlesheets

import "fmt"

// Dimension selects whether an operation applies along rows or columns.
type Dimension string

const (
	// DimensionRows operates on the rows of a sheet.
	DimensionRows Dimension = "ROWS"
	// DimensionColumns operates on the columns of a sheet.
	DimensionColumns Dimension = "COLUMNS"
)

// ValueRange is data within a range of the spreadsheet.
//
// For output, Range indicates the entire requested range even though Values
// excludes trailing empty rows and columns. When appending, Range is the
// range to search for a table, after which values are appended.
type ValueRange struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension Dimension  `json:"majorDimension,omitempty"`
	Values         [][]string `json:"values,omitempty"`
}

// UpdateValuesResponse is returned from updating values in a range.
type UpdateValuesResponse struct {
	SpreadsheetID  string      `json:"spreadsheetId,omitempty"`
	UpdatedRange   string      `json:"updatedRange,omitempty"`
	UpdatedRows    int         `json:"updatedRows,omitempty"`
	UpdatedColumns int         `json:"updatedColumns,omitempty"`
	UpdatedCells   int         `json:"updatedCells,omitempty"`
	UpdatedData    *ValueRange `json:"updatedData,omitempty"`
}

func (r *UpdateValuesResponse) String() string {
	return fmt.Sprintf("%d columns; %d rows; and %d total cells updated",
		r.UpdatedColumns, r.UpdatedRows, r.UpdatedCells)
}

// AppendValuesResponse is returned from appending values after a table.
type AppendValuesResponse struct {
	SpreadsheetID string `json:"spreadsheetId,omitempty"`
	// TableRange is the range of the table the values were appended to,
	// before the append. Empty if no table was found.
	TableRange string                `json:"tableRange,omitempty"`
	Updates    *UpdateValuesResponse `json:"updates,omitempty"`
}

// BatchUpdateValuesRequest updates several ranges in one call.
type BatchUpdateValuesRequest struct {
	ValueInputOption        string       `json:"valueInputOption"`
	Data                    []ValueRange `json:"data"`
	IncludeValuesInResponse bool         `json:"includeValuesInResponse,omitempty"`
}

// BatchUpdateValuesResponse is returned from batch-updating values.
type BatchUpdateValuesResponse struct {
	SpreadsheetID       string `json:"spreadsheetId,omitempty"`
	TotalUpdatedRows    int    `json:"totalUpdatedRows,omitempty"`
	TotalUpdatedColumns int    `json:"totalUpdatedColumns,omitempty"`
	TotalUpdatedCells   int    `json:"totalUpdatedCells,omitempty"`
	TotalUpdatedSheets  int    `json:"totalUpdatedSheets,omitempty"`
	// Responses holds one UpdateValuesResponse per requested range, in the
	// same order as the requests appeared.
	Responses []UpdateValuesResponse `json:"responses,omitempty"`
}

// ClearValuesResponse is returned from clearing a range.
type ClearValuesResponse struct {
	SpreadsheetID string `json:"spreadsheetId,omitempty"`
	ClearedRange  string `json:"clearedRange,omitempty"`
}
