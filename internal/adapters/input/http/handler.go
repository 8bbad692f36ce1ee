package http

import (
	"encoding/json"
	"strings"

	"vr-training-backend/internal/ports/input"
	"vr-training-backend/internal/ports/output"
	"vr-training-backend/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const identityLocalKey = "identity"

// RealtimeStatus struct - Static realtime availability, fixed at wiring time
type RealtimeStatus struct {
	Available bool
	Model     string
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	turnSrv     input.TurnService
	chatSrv     input.ChatService
	speechSrv   input.SpeechService
	orgSrv      input.OrganizationService
	scenarioSrv input.ScenarioService
	personaSrv  input.PersonaService
	sessionSrv  input.SessionService
	progressSrv input.ProgressService
	identity    output.IdentityResolver
	signer      output.StorageSigner
	realtime    RealtimeStatus
	db          *gorm.DB
	validator   validator.Validator
}

// New func - Creates new HTTP handler
func New(
	turnSrv input.TurnService,
	chatSrv input.ChatService,
	speechSrv input.SpeechService,
	orgSrv input.OrganizationService,
	scenarioSrv input.ScenarioService,
	personaSrv input.PersonaService,
	sessionSrv input.SessionService,
	progressSrv input.ProgressService,
	identity output.IdentityResolver,
	signer output.StorageSigner,
	realtime RealtimeStatus,
	db *gorm.DB,
) *HTTPHandler {
	return &HTTPHandler{
		turnSrv:     turnSrv,
		chatSrv:     chatSrv,
		speechSrv:   speechSrv,
		orgSrv:      orgSrv,
		scenarioSrv: scenarioSrv,
		personaSrv:  personaSrv,
		sessionSrv:  sessionSrv,
		progressSrv: progressSrv,
		identity:    identity,
		signer:      signer,
		realtime:    realtime,
		db:          db,
		validator:   validator.New(),
	}
}

// HealthCheck func
// HealthCheck godoc
// @Summary Health check
// @Description Reports service and database health
// @Tags SYSTEM
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
// @Produce json
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// respondError maps a service error to the matching HTTP response.
func respondError(c *fiber.Ctx, err error) error {
	logrus.Errorln(err)
	status := statusFromError(err)
	return c.Status(status.Code).JSON(ResponseBody{Status: status})
}

// marshalJSONField serializes a free-form JSON object for a jsonb column.
// Nil maps stay nil so the column default applies.
func marshalJSONField(value interface{}) *string {
	if value == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logrus.Errorln(err)
		return nil
	}
	encoded := string(raw)
	return &encoded
}

// bearerToken extracts the bearer credential from the Authorization header.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
