package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the full runtime configuration, loaded once in main and passed
// into constructors. Use cases never read the environment themselves.
type Config struct {
	LeadsPath  string
	ReportPath string
	StatusPath string

	SenderEmail    string
	SenderPassword string
	SMTPHost       string
	SMTPPort       int

	AzureEndpoint       string
	AzureAPIKey         string
	ChatDeployment      string
	EmbeddingDeployment string

	ChromaURL         string
	CompanyCollection string

	LinkBase string
	LinkPath string

	Cooldown   time.Duration
	RetrievalK int

	// FlushReportPerSend controls whether the report file is persisted after
	// every successful send (the safer default) or once at end of batch.
	FlushReportPerSend bool

	Port string
}

func Load() *Config {
	return &Config{
		LeadsPath:  envOr("LEADS_PATH", "data/master_leads.xlsx"),
		ReportPath: envOr("REPORT_PATH", "data/report.xlsx"),
		StatusPath: envOr("STATUS_PATH", "data/selected_users.xlsx"),

		SenderEmail:    os.Getenv("EMAIL_SENDER"),
		SenderPassword: os.Getenv("EMAIL_PASSWORD"),
		SMTPHost:       envOr("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       envIntOr("SMTP_PORT", 587),

		AzureEndpoint:       os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureAPIKey:         os.Getenv("AZURE_OPENAI_API_KEY"),
		ChatDeployment:      envOr("AZURE_OPENAI_CHAT_DEPLOYMENT", "gpt-4o"),
		EmbeddingDeployment: envOr("AZURE_OPENAI_EMBEDDING_DEPLOYMENT", "text-embedding-ada-002"),

		ChromaURL:         envOr("CHROMA_URL", "http://localhost:8000"),
		CompanyCollection: envOr("COMPANY_COLLECTION", "company_info_store"),

		LinkBase: os.Getenv("PRIVATE_LINK_BASE"),
		LinkPath: os.Getenv("PRIVATE_LINK_PATH"),

		Cooldown:           time.Duration(envIntOr("COOLDOWN_HOURS", 5)) * time.Hour,
		RetrievalK:         envIntOr("RETRIEVAL_K", 1),
		FlushReportPerSend: envBoolOr("REPORT_FLUSH_PER_SEND", true),

		Port: envOr("PORT", "8080"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBoolOr(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
