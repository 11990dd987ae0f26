package entity

import "time"

type Lead struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Company       string     `json:"company"`
	Email         string     `json:"email"`
	Description   string     `json:"description"`
	Source        string     `json:"source"`
	EmailCount    int        `json:"email_count"`
	LastEmailSent *time.Time `json:"last_email_sent,omitempty"`
}
