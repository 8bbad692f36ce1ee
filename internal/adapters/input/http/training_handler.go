package http

import (
	"vr-training-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateOrganization func
// CreateOrganization godoc
// @Summary Create organization
// @Description Creates an organization and seeds the caller as owner
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/organizations [post]
// @Produce json
// @param CreateOrganization body OrganizationHTTPRequest true "CreateOrganization"
func (hdl *HTTPHandler) CreateOrganization(c *fiber.Ctx) error {
	var request OrganizationHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	identity := callerIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	response, err := hdl.orgSrv.CreateOrganization(domain.OrganizationRequest{
		Name:      *request.Name,
		CreatedBy: identity.ID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// ListOrganizations func
// ListOrganizations godoc
// @Summary List organizations
// @Description Lists organizations, newest first
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/organizations [get]
// @Produce json
func (hdl *HTTPHandler) ListOrganizations(c *fiber.Ctx) error {
	response, err := hdl.orgSrv.ListOrganizations()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// UpsertMembership func
// UpsertMembership godoc
// @Summary Add or update member
// @Description Adds a user to an organization or changes their role
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/organizations/{id}/members [post]
// @Produce json
// @param id path string true "Organization id"
// @param UpsertMembership body MembershipHTTPRequest true "UpsertMembership"
func (hdl *HTTPHandler) UpsertMembership(c *fiber.Ctx) error {
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request MembershipHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	err = hdl.orgSrv.UpsertMembership(domain.MembershipRequest{
		OrgID:  orgID,
		UserID: *request.UserID,
		Role:   domain.MembershipRole(*request.Role),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// DeleteMembership func
// DeleteMembership godoc
// @Summary Remove member
// @Description Removes a user from an organization
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/organizations/{id}/members/{userId} [delete]
// @Produce json
// @param id path string true "Organization id"
// @param userId path string true "User id"
func (hdl *HTTPHandler) DeleteMembership(c *fiber.Ctx) error {
	orgID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.orgSrv.DeleteMembership(orgID, userID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// CreateScenario func
// CreateScenario godoc
// @Summary Create scenario
// @Description Creates a training scenario owned by the caller
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/scenarios [post]
// @Produce json
// @param CreateScenario body ScenarioHTTPRequest true "CreateScenario"
func (hdl *HTTPHandler) CreateScenario(c *fiber.Ctx) error {
	var request ScenarioHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	identity := callerIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	response, err := hdl.scenarioSrv.CreateScenario(domain.ScenarioRequest{
		OwnerID:     identity.ID,
		OrgID:       request.OrgID,
		Name:        *request.Name,
		Description: request.Description,
		Config:      marshalJSONField(request.Config),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// ListScenarios func
// ListScenarios godoc
// @Summary List scenarios
// @Description Lists scenarios, newest first
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/scenarios [get]
// @Produce json
func (hdl *HTTPHandler) ListScenarios(c *fiber.Ctx) error {
	response, err := hdl.scenarioSrv.ListScenarios()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// CreatePersona func
// CreatePersona godoc
// @Summary Create persona
// @Description Creates an AI customer persona
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/personas [post]
// @Produce json
// @param CreatePersona body PersonaHTTPRequest true "CreatePersona"
func (hdl *HTTPHandler) CreatePersona(c *fiber.Ctx) error {
	var request PersonaHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	identity := callerIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	response, err := hdl.personaSrv.CreatePersona(domain.PersonaRequest{
		OwnerID:    identity.ID,
		OrgID:      request.OrgID,
		Name:       request.Name,
		Difficulty: request.Difficulty,
		Config:     marshalJSONField(request.Config),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// ListPersonas func
// ListPersonas godoc
// @Summary List personas
// @Description Lists AI customer personas
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/personas [get]
// @Produce json
func (hdl *HTTPHandler) ListPersonas(c *fiber.Ctx) error {
	response, err := hdl.personaSrv.ListPersonas()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// GetPersona func
// GetPersona godoc
// @Summary Get persona
// @Description Gets one persona by id
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/personas/{id} [get]
// @Produce json
// @param id path string true "Persona id"
func (hdl *HTTPHandler) GetPersona(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	response, err := hdl.personaSrv.GetPersona(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// UpdatePersona func
// UpdatePersona godoc
// @Summary Update persona
// @Description Updates a persona's mutable fields
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/personas/{id} [put]
// @Produce json
// @param id path string true "Persona id"
// @param UpdatePersona body PersonaHTTPRequest true "UpdatePersona"
func (hdl *HTTPHandler) UpdatePersona(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request PersonaHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	response, err := hdl.personaSrv.UpdatePersona(id, domain.PersonaRequest{
		OrgID:      request.OrgID,
		Name:       request.Name,
		Difficulty: request.Difficulty,
		Config:     marshalJSONField(request.Config),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// DeletePersona func
// DeletePersona godoc
// @Summary Delete persona
// @Description Deletes a persona
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/personas/{id} [delete]
// @Produce json
// @param id path string true "Persona id"
func (hdl *HTTPHandler) DeletePersona(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.personaSrv.DeletePersona(id); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// CreateSession func
// CreateSession godoc
// @Summary Start session
// @Description Starts a training session for the caller
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/sessions [post]
// @Produce json
// @param CreateSession body SessionHTTPRequest true "CreateSession"
func (hdl *HTTPHandler) CreateSession(c *fiber.Ctx) error {
	var request SessionHTTPRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&request); err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		}
	}

	identity := callerIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	response, err := hdl.sessionSrv.CreateSession(domain.SessionRequest{
		UserID:      identity.ID,
		OrgID:       request.OrgID,
		AIPersonaID: request.AIPersonaID,
		ScenarioID:  request.ScenarioID,
		Meta:        marshalJSONField(request.Meta),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// ListSessions func
// ListSessions godoc
// @Summary List sessions
// @Description Lists the caller's sessions, newest first
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/sessions [get]
// @Produce json
// @param limit query int false "Maximum sessions to return"
func (hdl *HTTPHandler) ListSessions(c *fiber.Ctx) error {
	identity := callerIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	response, err := hdl.sessionSrv.ListSessions(identity.ID, c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// GetSessionDetail func
// GetSessionDetail godoc
// @Summary Get session detail
// @Description Loads a session with its observations, scores and report
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/sessions/{id} [get]
// @Produce json
// @param id path string true "Session id"
func (hdl *HTTPHandler) GetSessionDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	response, err := hdl.sessionSrv.GetSessionDetail(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// UpsertScores func
// UpsertScores godoc
// @Summary Record scores
// @Description Records rubric scores for a session, one row per rubric key
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/sessions/{id}/scores [post]
// @Produce json
// @param id path string true "Session id"
// @param UpsertScores body ScoresHTTPRequest true "UpsertScores"
func (hdl *HTTPHandler) UpsertScores(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request ScoresHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	items := make([]domain.ScoreItem, 0, len(request.Scores))
	for _, score := range request.Scores {
		items = append(items, domain.ScoreItem{
			RubricKey: *score.RubricKey,
			Value:     *score.Value,
			Rationale: score.Rationale,
		})
	}

	if err := hdl.sessionSrv.UpsertScores(id, items); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// InsertObservations func
// InsertObservations godoc
// @Summary Record observations
// @Description Records timed utterances observed during a session
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/sessions/{id}/observations [post]
// @Produce json
// @param id path string true "Session id"
// @param InsertObservations body ObservationsHTTPRequest true "InsertObservations"
func (hdl *HTTPHandler) InsertObservations(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request ObservationsHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	items := make([]domain.ObservationItem, 0, len(request.Observations))
	for _, observation := range request.Observations {
		items = append(items, domain.ObservationItem{
			Speaker:     domain.ObservationSpeaker(*observation.Speaker),
			Text:        *observation.Text,
			StartedAtMs: *observation.StartedAtMs,
			EndedAtMs:   *observation.EndedAtMs,
			Confidence:  observation.Confidence,
			Extra:       marshalJSONField(observation.Extra),
		})
	}

	if err := hdl.sessionSrv.InsertObservations(id, items); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// UpsertReport func
// UpsertReport godoc
// @Summary Write report
// @Description Writes the coaching report for a session
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/sessions/{id}/report [post]
// @Produce json
// @param id path string true "Session id"
// @param UpsertReport body ReportHTTPRequest true "UpsertReport"
func (hdl *HTTPHandler) UpsertReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request ReportHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.ReportRequest{Summary: *request.Summary}
	if strengths := marshalJSONField(request.Strengths); strengths != nil {
		domainReq.Strengths = *strengths
	}
	if areas := marshalJSONField(request.AreasToImprove); areas != nil {
		domainReq.AreasToImprove = *areas
	}
	if drills := marshalJSONField(request.Drills); drills != nil {
		domainReq.Drills = *drills
	}

	if err := hdl.sessionSrv.UpsertReport(id, domainReq); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// GetProgress func
// GetProgress godoc
// @Summary Get progress
// @Description Returns a user's cumulative training counters
// @Tags TRAINING
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/progress/{userId} [get]
// @Produce json
// @param userId path string true "User id"
func (hdl *HTTPHandler) GetProgress(c *fiber.Ctx) error {
	response, err := hdl.progressSrv.GetProgress(c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}

// RecordProgress func
// RecordProgress godoc
// @Summary Record session completion
// @Description Folds one finished session into the user's counters
// @Tags TRAINING
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/progress [post]
// @Produce json
// @param RecordProgress body ProgressHTTPRequest true "RecordProgress"
func (hdl *HTTPHandler) RecordProgress(c *fiber.Ctx) error {
	var request ProgressHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.ProgressUpdateRequest{UserID: *request.UserID}
	if request.TimeSpent != nil {
		domainReq.TimeSpent = *request.TimeSpent
	}
	if request.ScenarioCompleted != nil {
		domainReq.ScenarioCompleted = *request.ScenarioCompleted
	}
	if request.Timestamp != nil {
		domainReq.Timestamp = *request.Timestamp
	}

	response, err := hdl.progressSrv.RecordSession(domainReq)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: response})
}
