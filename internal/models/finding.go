package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FindingKind tells which phase produced a Finding.
type FindingKind string

const (
	FindingKindPage FindingKind = "page"
	FindingKindLink FindingKind = "link"
	FindingKindFile FindingKind = "file"
)

const (
	StatusLabelTimeout  = "TIMEOUT"
	StatusLabelNotFound = "NOT_FOUND"
)

// Status is either an HTTP status code or one of the TIMEOUT / NOT_FOUND labels.
type Status struct {
	Code  int    // HTTP status code, 0 when no response was received
	Label string // set only when Code is 0
}

// HTTPStatus returns the Status for a received HTTP response.
func HTTPStatus(code int) Status {
	return Status{Code: code}
}

// TimeoutStatus marks a request that timed out or failed at the transport level.
func TimeoutStatus() Status {
	return Status{Label: StatusLabelTimeout}
}

// NotFoundStatus marks a seed file missing on disk.
func NotFoundStatus() Status {
	return Status{Label: StatusLabelNotFound}
}

// IsHTTP reports whether the status carries an HTTP code.
func (s Status) IsHTTP() bool {
	return s.Code > 0
}

func (s Status) String() string {
	if s.IsHTTP() {
		return strconv.Itoa(s.Code)
	}
	return s.Label
}

// MarshalJSON writes HTTP codes as numbers and labels as strings.
func (s Status) MarshalJSON() ([]byte, error) {
	if s.IsHTTP() {
		return []byte(strconv.Itoa(s.Code)), nil
	}
	return json.Marshal(s.Label)
}

// UnmarshalJSON accepts either a number or a label string.
func (s *Status) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err == nil {
		*s = HTTPStatus(code)
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("status must be a number or a string: %w", err)
	}
	return s.UnmarshalCSV(label)
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (s Status) MarshalCSV() (string, error) {
	return s.String(), nil
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (s *Status) UnmarshalCSV(value string) error {
	if code, err := strconv.Atoi(value); err == nil {
		*s = HTTPStatus(code)
		return nil
	}
	switch value {
	case StatusLabelTimeout, StatusLabelNotFound:
		*s = Status{Label: value}
		return nil
	default:
		return fmt.Errorf("unknown status %q", value)
	}
}

// Finding is one broken page, broken link or missing file.
type Finding struct {
	Kind        FindingKind `json:"kind" csv:"kind"`
	SourcePage  string      `json:"source_page,omitempty" csv:"source_page"`
	Link        string      `json:"link" csv:"link"`
	Status      Status      `json:"status" csv:"status"`
	ErrorDetail string      `json:"error_detail,omitempty" csv:"error_detail"`
}

// NewPageFinding records a seed page that could not be fetched successfully.
func NewPageFinding(page string, status Status, detail string) Finding {
	return Finding{
		Kind:        FindingKindPage,
		SourcePage:  page,
		Link:        page,
		Status:      status,
		ErrorDetail: detail,
	}
}

// NewLinkFinding records a link found on sourcePage that did not verify.
func NewLinkFinding(sourcePage, link string, status Status, detail string) Finding {
	return Finding{
		Kind:        FindingKindLink,
		SourcePage:  sourcePage,
		Link:        link,
		Status:      status,
		ErrorDetail: detail,
	}
}

// NewFileFinding records a seed file missing on disk.
func NewFileFinding(path string) Finding {
	return Finding{
		Kind:   FindingKindFile,
		Link:   path,
		Status: NotFoundStatus(),
	}
}
