package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cazeai/bizcon-outreach/internal/config"
	"github.com/cazeai/bizcon-outreach/internal/infra/http/handlers"
	"github.com/cazeai/bizcon-outreach/internal/infra/http/middleware"
	"github.com/cazeai/bizcon-outreach/internal/infra/integration/azureai"
	"github.com/cazeai/bizcon-outreach/internal/infra/integration/chroma"
	"github.com/cazeai/bizcon-outreach/internal/infra/link"
	"github.com/cazeai/bizcon-outreach/internal/infra/mail"
	"github.com/cazeai/bizcon-outreach/internal/infra/store"
	"github.com/cazeai/bizcon-outreach/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	// 1. Stores
	leadStore := store.NewLeadStore(cfg.LeadsPath)
	reportStore := store.NewReportStore(cfg.ReportPath)
	statusLookup := store.NewStatusLookup(cfg.StatusPath)

	// 2. Integrations
	ai := azureai.NewClient(cfg.AzureEndpoint, cfg.AzureAPIKey, cfg.ChatDeployment, cfg.EmbeddingDeployment)
	knowledge := chroma.NewClient(cfg.ChromaURL, cfg.CompanyCollection, ai)
	links := link.NewGenerator(cfg.LinkBase, cfg.LinkPath)
	mailer := mail.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SenderEmail, cfg.SenderPassword)

	// 3. UseCases
	content := usecase.NewContentService(knowledge, ai, cfg.RetrievalK)
	sendUC := usecase.NewSendOutreachUseCase(
		leadStore, reportStore, links, content, knowledge, mailer,
		cfg.SenderEmail, cfg.SenderPassword, cfg.Cooldown, cfg.FlushReportPerSend,
	)
	groupedUC := usecase.NewGroupedLeadsUseCase(leadStore)

	// 4. Handlers
	outreachHandler := handlers.NewOutreachHandler(sendUC, groupedUC)
	statusHandler := handlers.NewStatusHandler(statusLookup)
	healthHandler := handlers.NewHealthHandler(cfg)

	// 5. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/leads/grouped", outreachHandler.HandleGrouped)
	r.Post("/outreach/send", outreachHandler.HandleSend)
	r.Get("/status", statusHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("outreach API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
