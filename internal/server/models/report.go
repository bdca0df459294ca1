package models

import "time"

// ReportFilter narrows fiscal/audit report queries.
type ReportFilter struct {
	From        time.Time
	To          time.Time
	IncludeVoid bool
	Institution string
	Department  string
}

// ReportRow joins a certificate with its student, course and institution.
type ReportRow struct {
	Number          string    `json:"number"`
	IssuedAt        time.Time `json:"issued_at"`
	Status          Status    `json:"status"`
	StudentName     string    `json:"student_name"`
	NationalID      string    `json:"national_id"`
	CourseName      string    `json:"course_name"`
	InstitutionName string    `json:"institution_name"`
	Department      string    `json:"department"`
}

// StatusSummary counts certificates per status in a date range.
type StatusSummary struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Void    int64 `json:"void"`
	Expired int64 `json:"expired"`
}
