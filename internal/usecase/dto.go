package usecase

// Per-lead terminal outcomes for a single batch invocation.
const (
	OutcomeSent      = "sent"
	OutcomeCooldown  = "cooldown"
	OutcomeNoContent = "no_content"
	OutcomeLLMError  = "llm_error"
	OutcomeError     = "error"
)

type LeadResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type SendOutreachOutput struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Results []LeadResult `json:"results"`
}
