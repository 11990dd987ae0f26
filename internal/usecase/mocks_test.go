package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cazeai/bizcon-outreach/internal/entity"
)

// MockLeadStore
type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) LoadAll() ([]entity.Lead, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadStore) SaveAll(leads []entity.Lead) error {
	args := m.Called(leads)
	return args.Error(0)
}

// MockReportStore
type MockReportStore struct {
	mock.Mock
	Upserted []entity.ReportRecord
}

func (m *MockReportStore) Load() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockReportStore) UpsertByEmail(rec entity.ReportRecord) {
	m.Upserted = append(m.Upserted, rec)
	m.Called(rec)
}

func (m *MockReportStore) Save() error {
	args := m.Called()
	return args.Error(0)
}

// MockLinkGenerator
type MockLinkGenerator struct {
	mock.Mock
}

func (m *MockLinkGenerator) Generate() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

// MockContentGenerator
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) BuildContext(ctx context.Context, lead entity.Lead) (string, error) {
	args := m.Called(ctx, lead)
	return args.String(0), args.Error(1)
}

func (m *MockContentGenerator) ComposeEmail(ctx context.Context, contextBlock, productLink string) (string, error) {
	args := m.Called(ctx, contextBlock, productLink)
	return args.String(0), args.Error(1)
}

// MockSimilaritySearch
type MockSimilaritySearch struct {
	mock.Mock
}

func (m *MockSimilaritySearch) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSimilaritySearch) TopK(ctx context.Context, query string, k int) ([]string, error) {
	args := m.Called(ctx, query, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, systemPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt)
	return args.String(0), args.Error(1)
}

// MockMailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
