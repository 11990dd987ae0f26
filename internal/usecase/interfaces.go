package usecase

import (
	"context"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

type LeadStoreInterface interface {
	LoadAll() ([]entity.Lead, error)
	SaveAll(leads []entity.Lead) error
}

type ReportStoreInterface interface {
	Load() error
	UpsertByEmail(rec entity.ReportRecord)
	Save() error
}

type LinkGeneratorInterface interface {
	Generate() (link string, token string, err error)
}

// TextGenerator produces the email body from a single system-style prompt.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt string) (string, error)
}

// SimilaritySearch is the company-knowledge retrieval capability. Init
// resolves the backing collection and is the fail-fast step of a batch.
type SimilaritySearch interface {
	Init(ctx context.Context) error
	TopK(ctx context.Context, query string, k int) ([]string, error)
}

type MailSenderInterface interface {
	Send(to, subject, body string) error
}

// ContentGeneratorInterface separates context retrieval from composition so
// the orchestrator can distinguish "nothing to say" from "the model failed".
type ContentGeneratorInterface interface {
	BuildContext(ctx context.Context, lead entity.Lead) (string, error)
	ComposeEmail(ctx context.Context, contextBlock, productLink string) (string, error)
}
