package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

func TestBuildContextFramesDocsAndUserInfo(t *testing.T) {
	search := new(MockSimilaritySearch)
	search.On("TopK", mock.Anything, contextQuery, 1).Return([]string{"We sell industrial robots."}, nil)

	svc := NewContentService(search, new(MockTextGenerator), 1)
	lead := entity.Lead{Name: "Dana", Company: "Acme", Email: "dana@acme.com"}

	out, err := svc.BuildContext(context.Background(), lead)

	assert.NoError(t, err)
	assert.Contains(t, out, "<< COMPANY INFO >>")
	assert.Contains(t, out, "We sell industrial robots.")
	assert.Contains(t, out, "Name: Dana")
	assert.Contains(t, out, "Company: Acme")
	assert.Contains(t, out, "Email: dana@acme.com")
	assert.Contains(t, out, "<<END OF USER INFO>>")
}

func TestBuildContextNoDocuments(t *testing.T) {
	search := new(MockSimilaritySearch)
	search.On("TopK", mock.Anything, contextQuery, 1).Return([]string{}, nil)

	svc := NewContentService(search, new(MockTextGenerator), 1)

	out, err := svc.BuildContext(context.Background(), entity.Lead{Name: "Dana"})

	assert.ErrorIs(t, err, ErrNoContext)
	assert.Empty(t, out)
}

func TestBuildContextSearchFailure(t *testing.T) {
	search := new(MockSimilaritySearch)
	search.On("TopK", mock.Anything, contextQuery, 1).Return(nil, errors.New("chroma down"))

	svc := NewContentService(search, new(MockTextGenerator), 1)

	_, err := svc.BuildContext(context.Background(), entity.Lead{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chroma down")
}

func TestBuildContextUsesConfiguredK(t *testing.T) {
	search := new(MockSimilaritySearch)
	search.On("TopK", mock.Anything, contextQuery, 3).Return([]string{"a", "b", "c"}, nil)

	svc := NewContentService(search, new(MockTextGenerator), 3)

	out, err := svc.BuildContext(context.Background(), entity.Lead{})

	assert.NoError(t, err)
	assert.Contains(t, out, "a\nb\nc")
	search.AssertExpectations(t)
}

func TestComposeEmailAppendsLinkVerbatim(t *testing.T) {
	llm := new(MockTextGenerator)
	var prompt string
	llm.On("Generate", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		prompt = args.String(1)
	}).Return("Hi Dana! I'm Marcus from Caze.", nil)

	svc := NewContentService(new(MockSimilaritySearch), llm, 1)

	body, err := svc.ComposeEmail(context.Background(), "<< COMPANY INFO >>\ndocs", "https://chat.example.com/c/tok-9")

	assert.NoError(t, err)
	assert.Equal(t, "Hi Dana! I'm Marcus from Caze.\n\nClick here to chat with us: https://chat.example.com/c/tok-9", body)

	// The link lives outside the model's output; the prompt carries the
	// persona and scope rules instead.
	assert.NotContains(t, prompt, "tok-9")
	assert.Contains(t, prompt, "<< COMPANY INFO >>")
	assert.Contains(t, prompt, "Never say you are an AI, assistant, or bot.")
	assert.Contains(t, prompt, "Only discuss features/solutions mentioned in the company information.")
	assert.Contains(t, prompt, "Keep the content under 20 lines")
	assert.Contains(t, prompt, "<< Previous Chat Summary >>")
}

func TestComposeEmailGenerationFailure(t *testing.T) {
	llm := new(MockTextGenerator)
	llm.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	svc := NewContentService(new(MockSimilaritySearch), llm, 1)

	_, err := svc.ComposeEmail(context.Background(), "ctx", "link")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
