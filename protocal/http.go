package protocal

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"vr-training-backend/configs"
	httpAdapter "vr-training-backend/internal/adapters/input/http"
	"vr-training-backend/internal/adapters/output/memory"
	"vr-training-backend/internal/adapters/output/openai"
	"vr-training-backend/internal/adapters/output/postgres"
	redisAdapter "vr-training-backend/internal/adapters/output/redis"
	"vr-training-backend/internal/adapters/output/supabase"
	"vr-training-backend/internal/application"
	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"
	"vr-training-backend/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // uploaded utterances are short but uncompressed
	})
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
		ExposeHeaders: "X-Transcript, X-AI-Response",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}
	domain.MigrateDatabase(dbConGorm.Postgres)

	// Wire up the hexagonal architecture layers
	// Output adapters
	aiClient := openai.NewClientAdapter(configs.GetViper().OpenAI)
	authClient := supabase.NewClientAdapter(configs.GetViper().Supabase)
	conversationStore := newConversationStore(dbConGorm)

	orgRepo := postgres.NewOrganizationRepository(dbConGorm.Postgres)
	scenarioRepo := postgres.NewScenarioRepository(dbConGorm.Postgres)
	personaRepo := postgres.NewPersonaRepository(dbConGorm.Postgres)
	sessionRepo := postgres.NewSessionRepository(dbConGorm.Postgres)
	progressRepo := postgres.NewProgressRepository(dbConGorm.Postgres)

	// Application services (use cases)
	mode := domain.PersonaMode(configs.GetViper().Chatbot.Mode)
	if mode == "" {
		mode = domain.PersonaModeTraining
	}
	builder, err := domain.NewPromptBuilder(mode, configs.GetViper().Conversation.MaxTurns)
	if err != nil {
		return err
	}
	saver := application.NewTurnSaver(conversationStore, 64)

	turnSrv := application.NewTurnService(aiClient, aiClient, aiClient, conversationStore, builder, saver, aiClient.Voice())
	chatSrv := application.NewChatService(aiClient, conversationStore, builder, saver)
	speechSrv := application.NewSpeechService(aiClient, aiClient, aiClient)
	orgSrv := application.NewOrganizationService(orgRepo)
	scenarioSrv := application.NewScenarioService(scenarioRepo)
	personaSrv := application.NewPersonaService(personaRepo)
	sessionSrv := application.NewSessionService(sessionRepo)
	progressSrv := application.NewProgressService(progressRepo)

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(
		turnSrv,
		chatSrv,
		speechSrv,
		orgSrv,
		scenarioSrv,
		personaSrv,
		sessionSrv,
		progressSrv,
		authClient,
		authClient,
		httpAdapter.RealtimeStatus{Available: aiClient.Configured(), Model: aiClient.RealtimeModel()},
		dbConGorm.Postgres,
	)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Graceful shut down ...")
			// Drain in-flight requests first; they may still enqueue
			// turns. Then flush the saver, then drop the DB.
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
			saver.Close()
			gorm.DisconnectPostgres(dbConGorm.Postgres)
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)
	app.Get("/me", hdl.RequireAuth(), hdl.Me)

	// Speech utilities used by the desktop trainer
	app.Post("/transcribe", hdl.Transcribe)
	app.Post("/text-to-speech", hdl.TextToSpeech)

	// In-headset endpoints; the VR client authenticates per deployment,
	// not per request
	vr := app.Group("/vr")
	{
		vr.Post("/audio", hdl.ProcessAudioTurn)
		vr.Post("/realtime-token", hdl.CreateRealtimeToken)
		vr.Get("/realtime-status", hdl.RealtimeStatusCheck)
	}

	magnolia := app.Group("/v1/api")
	{
		magnolia.Post("/chatbot", hdl.Chatbot)
		magnolia.Get("/chatbot", hdl.ChatbotHistory)

		authed := magnolia.Group("", hdl.RequireAuth())
		authed.Post("/organizations", hdl.CreateOrganization)
		authed.Get("/organizations", hdl.ListOrganizations)
		authed.Post("/organizations/:id/members", hdl.UpsertMembership)
		authed.Delete("/organizations/:id/members/:userId", hdl.DeleteMembership)
		authed.Post("/scenarios", hdl.CreateScenario)
		authed.Get("/scenarios", hdl.ListScenarios)
		authed.Post("/personas", hdl.CreatePersona)
		authed.Get("/personas", hdl.ListPersonas)
		authed.Get("/personas/:id", hdl.GetPersona)
		authed.Put("/personas/:id", hdl.UpdatePersona)
		authed.Delete("/personas/:id", hdl.DeletePersona)
		authed.Post("/sessions", hdl.CreateSession)
		authed.Get("/sessions", hdl.ListSessions)
		authed.Get("/sessions/:id", hdl.GetSessionDetail)
		authed.Post("/sessions/:id/scores", hdl.UpsertScores)
		authed.Post("/sessions/:id/observations", hdl.InsertObservations)
		authed.Post("/sessions/:id/report", hdl.UpsertReport)
		authed.Post("/progress", hdl.RecordProgress)
		authed.Get("/progress/:userId", hdl.GetProgress)
	}

	storage := app.Group("/storage", hdl.RequireAuth())
	{
		storage.Post("/signed-upload", hdl.SignedUpload)
		storage.Post("/signed-download", hdl.SignedDownload)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listening on port: ", configs.GetViper().App.Port)
	return nil
}

// newConversationStore selects the history backend from configuration.
// Postgres is the default; memory is meant for local development only.
func newConversationStore(dbConGorm *gorm.DB) output.ConversationStore {
	switch configs.GetViper().Conversation.Store {
	case "redis":
		store, err := redisAdapter.NewRedisConversationStore(context.Background(), configs.GetViper().Redis)
		if err != nil {
			logrus.Fatalf("Failed to connect to redis: %v", err)
		}
		return store
	case "memory":
		logrus.Warn("Using in-memory conversation store, history is lost on restart")
		return memory.NewMemoryConversationStore()
	default:
		return postgres.NewConversationStore(dbConGorm.Postgres)
	}
}
