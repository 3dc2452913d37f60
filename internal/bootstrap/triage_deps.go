package bootstrap

import (
	"triage_server/adapter/out/inference"
	"triage_server/adapter/out/persistence"
	"triage_server/config"
	"triage_server/core/port/out"
	"triage_server/core/service/classification"
	"triage_server/core/service/triage"
	"triage_server/infra/database"
	"triage_server/pkg/logger"

	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	Config *config.Config
	DB     *sqlx.DB

	// Repositories
	MessageRepo out.MessageRepository

	// Model inference
	Classifier out.ZeroShotClassifier

	// Services
	Policy        *classification.Policy
	TriageService *triage.Service
}

func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	deps := &Dependencies{Config: cfg}
	var cleanups []func()

	db, err := database.NewSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	deps.DB = db
	cleanups = append(cleanups, func() { db.Close() })

	deps.MessageRepo = persistence.NewMessageAdapter(db)

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; classifications will fall back to Outros/erro")
	}
	deps.Classifier = inference.NewZeroShotAdapter(inference.Config{
		APIKey:        cfg.OpenAIAPIKey,
		Model:         cfg.LLMModel,
		Timeout:       cfg.LLMTimeout(),
		MaxConcurrent: cfg.InferenceMaxConcurrent,
	})

	deps.Policy = classification.NewPolicy(deps.Classifier)
	deps.TriageService = triage.NewService(deps.Policy, deps.MessageRepo)

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	return deps, cleanup, nil
}
