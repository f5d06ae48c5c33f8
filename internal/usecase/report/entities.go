package report

import "github.com/shopspring/decimal"

type PipelineStage struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type ApplicationRow struct {
	ID             uint64          `json:"id"`
	Name           string          `json:"name"`
	AssignedToID   uint64          `json:"assigned_to_id"`
	Status         string          `json:"status"`
	DocumentStatus string          `json:"document_status"`
	Amount         decimal.Decimal `json:"amount"`
}

type EmployeeRow struct {
	EmployeeID     uint64          `json:"employee_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Designation    string          `json:"designation"`
	TotalDisbursed decimal.Decimal `json:"total_disbursed"`
	DealsClosed    int64           `json:"deals_closed"`
}

type Dashboard struct {
	TotalApplications  int64            `json:"total_applications"`
	NewToday           int64            `json:"new_today"`
	Converted          int64            `json:"converted"`
	PendingDocuments   int64            `json:"pending_documents"`
	Pipeline           []PipelineStage  `json:"pipeline"`
	FollowUps          []ApplicationRow `json:"follow_ups"`
	RecentApplications []ApplicationRow `json:"recent_applications"`
	TopEmployees       []EmployeeRow    `json:"top_employees"`
}
