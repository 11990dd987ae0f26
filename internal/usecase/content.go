package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

// Fixed retrieval query; deliberately not personalized so every lead is
// grounded on the same company-knowledge neighborhood.
const contextQuery = "company information and user information, company information more related to the user information"

var ErrNoContext = errors.New("no context available for content generation")

// ContentService builds the retrieval-augmented prompt and asks the text
// model for the email body.
type ContentService struct {
	Search SimilaritySearch
	LLM    TextGenerator
	K      int
}

func NewContentService(search SimilaritySearch, llm TextGenerator, k int) *ContentService {
	if k <= 0 {
		k = 1
	}
	return &ContentService{Search: search, LLM: llm, K: k}
}

// BuildContext retrieves the nearest company documents and frames them with
// the lead's own attributes. Returns ErrNoContext when retrieval comes back
// empty; callers skip the lead rather than failing the batch.
func (s *ContentService) BuildContext(ctx context.Context, lead entity.Lead) (string, error) {
	docs, err := s.Search.TopK(ctx, contextQuery, s.K)
	if err != nil {
		return "", fmt.Errorf("similarity search failed: %w", err)
	}
	if len(docs) == 0 {
		return "", ErrNoContext
	}

	userInfo := fmt.Sprintf("Name: %s\nCompany: %s\nEmail: %s", lead.Name, lead.Company, lead.Email)

	return "<< COMPANY INFO >>\n" + strings.Join(docs, "\n") +
		"\n\n<<END OF COMPANY INFO>>\n\n<< USER INFO >>\n" + userInfo + "\n<<END OF USER INFO>>", nil
}

// ComposeEmail runs the model once with the full system instruction and
// appends the link as a fixed trailing sentence, outside the generated
// text, so it is always present verbatim.
func (s *ContentService) ComposeEmail(ctx context.Context, contextBlock, productLink string) (string, error) {
	content, err := s.LLM.Generate(ctx, systemPrompt(contextBlock))
	if err != nil {
		return "", err
	}
	return content + "\n\nClick here to chat with us: " + productLink, nil
}

func systemPrompt(contextBlock string) string {
	base := "You are an AI cold calling/texting assistant. Here is the context for our interaction:\n\n" +
		contextBlock + "\n" +
		"If there is << Previous Chat Summary >> in the context try to continue from the previous chat by letting them know the key points of previous chat and enquire them if they want to start fresh or continue from the previous.\n" +
		"When generating the first message, use the user information provided above to personalize your introduction. If you can't find a name, use a generic greeting.\n"

	rules := "Create an email message with only the content. Use the instructions below:\n" +
		"- Use the user information to personalize your greeting. Everything inside '[]' should be replaced with the actual information.\n" +
		"- Format: \"Hi [name]! I'm [Invent a friendly, realistic human name appropriate for the user's region, gender, or company, but do NOT say you are an AI assistant] from [provide company name]\"\n" +
		"- Never say you are an AI, assistant, or bot. Always use a real-sounding human name.\n" +
		"- Only discuss features/solutions mentioned in the company information.\n" +
		"- Keep the content under 20 lines\n" +
		"- Do not provide the regards or any best regards\n" +
		"- End the message content with a prompt to click on this link to have a conversation with us, where I'll provide the link after this content message\n"

	return base + rules
}
