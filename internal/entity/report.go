package entity

import "time"

const (
	StatusHot          = "Hot"
	StatusWarm         = "Warm"
	StatusCold         = "Cold"
	StatusNotResponded = "Not Responded"
)

// ReportRecord tracks outreach per contacted address. Email is the dedup
// key; ReportToken is a fresh identifier minted on first send and is NOT
// the Lead's ID — cross-referencing back to a Lead goes through Email.
type ReportRecord struct {
	ReportToken string    `json:"report_token"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	PrivateLink string    `json:"private_link"`
	SentDate    time.Time `json:"sent_date"`
	ChatSummary string    `json:"chat_summary"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
}
