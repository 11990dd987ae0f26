package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cazeai/bizcon-outreach/internal/entity"
	"github.com/cazeai/bizcon-outreach/internal/infra/store"
)

const outreachSubject = "Invitation to Chat with Caze BizConAI"

// SendOutreachUseCase runs the batch pipeline: for each requested lead it
// checks the cooldown, mints a private link, builds retrieval-augmented
// content, sends the email, and commits the outcome to both stores. Leads
// are processed one at a time; a failure is isolated to its lead.
type SendOutreachUseCase struct {
	Leads   LeadStoreInterface
	Report  ReportStoreInterface
	Links   LinkGeneratorInterface
	Content ContentGeneratorInterface
	Search  SimilaritySearch
	Mailer  MailSenderInterface

	SenderEmail    string
	SenderPassword string
	Cooldown       time.Duration

	// FlushReportPerSend persists the report after every successful send.
	// When false the report is written once at end of batch, trading the
	// mid-batch durability of sends for fewer writes.
	FlushReportPerSend bool

	now func() time.Time
}

func NewSendOutreachUseCase(
	leads LeadStoreInterface,
	report ReportStoreInterface,
	links LinkGeneratorInterface,
	content ContentGeneratorInterface,
	search SimilaritySearch,
	mailer MailSenderInterface,
	senderEmail, senderPassword string,
	cooldown time.Duration,
	flushReportPerSend bool,
) *SendOutreachUseCase {
	return &SendOutreachUseCase{
		Leads:              leads,
		Report:             report,
		Links:              links,
		Content:            content,
		Search:             search,
		Mailer:             mailer,
		SenderEmail:        senderEmail,
		SenderPassword:     senderPassword,
		Cooldown:           cooldown,
		FlushReportPerSend: flushReportPerSend,
		now:                time.Now,
	}
}

func (uc *SendOutreachUseCase) Execute(ctx context.Context, leadIDs []string) *SendOutreachOutput {
	leads, err := uc.Leads.LoadAll()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &SendOutreachOutput{Success: false, Error: "No leads file found", Results: []LeadResult{}}
		}
		return &SendOutreachOutput{Success: false, Error: "Failed to read leads file: " + err.Error(), Results: []LeadResult{}}
	}

	if uc.SenderEmail == "" || uc.SenderPassword == "" {
		return &SendOutreachOutput{Success: false, Error: "Email settings not configured", Results: []LeadResult{}}
	}

	if err := uc.Search.Init(ctx); err != nil {
		return &SendOutreachOutput{Success: false, Error: "Failed to initialize AI services: " + err.Error(), Results: []LeadResult{}}
	}

	if err := uc.Report.Load(); err != nil {
		return &SendOutreachOutput{Success: false, Error: "Failed to initialize report: " + err.Error(), Results: []LeadResult{}}
	}

	requested := make(map[string]bool, len(leadIDs))
	for _, id := range leadIDs {
		requested[id] = true
	}

	now := uc.now()
	results := make([]LeadResult, 0, len(leadIDs))
	hasError := false

	for i := range leads {
		if !requested[leads[i].ID] {
			continue
		}
		res := uc.processLead(ctx, &leads[i], now)
		if res.Status != OutcomeSent && res.Status != OutcomeCooldown {
			hasError = true
		}
		results = append(results, res)
	}

	if !uc.FlushReportPerSend {
		if err := uc.Report.Save(); err != nil {
			return &SendOutreachOutput{Success: false, Error: "Failed to save report: " + err.Error(), Results: results}
		}
	}

	// Lead counters and cooldown stamps are committed once here. The report
	// may already be ahead of the lead store if this fails.
	if err := uc.Leads.SaveAll(leads); err != nil {
		return &SendOutreachOutput{Success: false, Error: "Failed to save leads file: " + err.Error(), Results: results}
	}

	return &SendOutreachOutput{Success: !hasError, Results: results}
}

func (uc *SendOutreachUseCase) processLead(ctx context.Context, lead *entity.Lead, now time.Time) (res LeadResult) {
	res = LeadResult{ID: lead.ID}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic while processing lead %s: %v", lead.ID, r)
			res.Status = OutcomeError
			res.Error = fmt.Sprintf("Processing error: %v", r)
		}
	}()

	if lead.LastEmailSent != nil && now.Sub(*lead.LastEmailSent) < uc.Cooldown {
		res.Status = OutcomeCooldown
		return res
	}

	privateLink, token, err := uc.Links.Generate()
	if err != nil {
		res.Status = OutcomeError
		res.Error = "Failed to generate private link: " + err.Error()
		return res
	}

	contextBlock, err := uc.Content.BuildContext(ctx, *lead)
	if err != nil || contextBlock == "" {
		log.Printf("no content generated for lead %s: %v", lead.ID, err)
		res.Status = OutcomeNoContent
		res.Error = "Failed to generate email content"
		return res
	}

	body, err := uc.Content.ComposeEmail(ctx, contextBlock, privateLink)
	if err != nil {
		res.Status = OutcomeLLMError
		res.Error = "LLM error: " + err.Error()
		return res
	}

	if err := uc.Mailer.Send(lead.Email, outreachSubject, body); err != nil {
		res.Status = OutcomeError
		res.Error = "Email sending error: " + err.Error()
		return res
	}

	lead.EmailCount++
	sentAt := now
	lead.LastEmailSent = &sentAt

	uc.Report.UpsertByEmail(entity.ReportRecord{
		ReportToken: reportToken(token),
		Name:        lead.Name,
		Company:     lead.Company,
		Email:       lead.Email,
		Description: lead.Description,
		PrivateLink: privateLink,
		SentDate:    now,
		Status:      entity.StatusNotResponded,
		Source:      lead.Source,
	})

	if uc.FlushReportPerSend {
		if err := uc.Report.Save(); err != nil {
			res.Status = OutcomeError
			res.Error = "Failed to update report: " + err.Error()
			return res
		}
	}

	res.Status = OutcomeSent
	return res
}

// reportToken reuses the link token when present so a report row can be
// matched to the link it was sent with; otherwise mints a fresh one.
func reportToken(linkToken string) string {
	if linkToken != "" {
		return linkToken
	}
	return uuid.NewString()
}
