package http

import (
	"vr-training-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Chatbot func
// Chatbot godoc
// @Summary Process a text turn
// @Description Generates the persona's reply to a typed message and records the exchange
// @Tags CHATBOT
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chatbot [post]
// @Produce json
// @param Chatbot body ChatbotRequest true "Chatbot"
func (hdl *HTTPHandler) Chatbot(c *fiber.Ctx) error {
	var request ChatbotRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.ChatTurnRequest{Message: *request.Message}
	if request.SessionID != nil {
		domainReq.SessionID = *request.SessionID
	}
	if request.UserID != nil {
		domainReq.UserID = *request.UserID
	}

	response, err := hdl.chatSrv.Chat(c.UserContext(), domainReq)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ChatbotResponse{
		ID:         response.ID,
		Message:    response.Message,
		SessionID:  response.SessionID,
		UserID:     response.UserID,
		Timestamp:  response.Timestamp,
		TokensUsed: response.TokensUsed,
	}})
}

// ChatbotHistory func
// ChatbotHistory godoc
// @Summary Get conversation history
// @Description Returns the recorded turns for a session, oldest first
// @Tags CHATBOT
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/chatbot [get]
// @Produce json
// @param session_id query string false "Session identifier"
func (hdl *HTTPHandler) ChatbotHistory(c *fiber.Ctx) error {
	turns, err := hdl.chatSrv.History(c.UserContext(), c.Query("session_id"))
	if err != nil {
		return respondError(c, err)
	}

	history := make([]HistoryTurnResponse, 0, len(turns))
	for _, turn := range turns {
		history = append(history, HistoryTurnResponse{
			Message:   turn.Message,
			Response:  turn.Response,
			Timestamp: turn.Timestamp,
		})
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: history})
}
