package http

import (
	"io"
	"net/url"

	"vr-training-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProcessAudioTurn func
// ProcessAudioTurn godoc
// @Summary Process one VR conversational turn
// @Description Accepts a spoken utterance and returns the persona's reply as MP3. Transcript and reply text travel in percent-encoded response headers.
// @Tags VR
// @Accept multipart/form-data
// @Success 200 {file} binary
// @Router /vr/audio [post]
// @Produce audio/mpeg
// @param audio formData file true "Recorded utterance"
// @param sessionId formData string false "Session identifier"
// @param userId formData string false "User identifier"
func (hdl *HTTPHandler) ProcessAudioTurn(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		logrus.Errorln(err)
		status := BadRequest
		status.Message = []string{"audio file is required"}
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: status})
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	result, err := hdl.turnSrv.ProcessTurn(c.UserContext(), domain.TurnRequest{
		Audio:     audio,
		MimeType:  fileHeader.Header.Get(fiber.HeaderContentType),
		Filename:  fileHeader.Filename,
		SessionID: c.FormValue("sessionId"),
		UserID:    c.FormValue("userId"),
	})
	if err != nil {
		return respondError(c, err)
	}

	// Header values are percent-encoded: transcripts are free text and
	// HTTP headers cannot carry arbitrary bytes.
	c.Set("X-Transcript", url.PathEscape(result.Transcript))
	c.Set("X-AI-Response", url.PathEscape(result.Reply))
	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Status(fiber.StatusOK).Send(result.Audio)
}

// CreateRealtimeToken func
// CreateRealtimeToken godoc
// @Summary Issue realtime session token
// @Description Issues an ephemeral credential for an in-headset realtime voice session
// @Tags VR
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /vr/realtime-token [post]
// @Produce json
// @param CreateRealtimeToken body RealtimeTokenHTTPRequest false "CreateRealtimeToken"
func (hdl *HTTPHandler) CreateRealtimeToken(c *fiber.Ctx) error {
	var request RealtimeTokenHTTPRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&request); err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		}
	}

	domainReq := domain.RealtimeTokenRequest{}
	if request.SessionID != nil {
		domainReq.SessionID = *request.SessionID
	}
	if request.UserID != nil {
		domainReq.UserID = *request.UserID
	}
	if request.Voice != nil {
		domainReq.Voice = *request.Voice
	}

	result, err := hdl.speechSrv.CreateRealtimeToken(c.UserContext(), domainReq)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: RealtimeTokenResponse{
		Token:     result.Token,
		Model:     result.Model,
		Voice:     result.Voice,
		ExpiresAt: result.ExpiresAt,
	}})
}

// RealtimeStatusCheck func
// RealtimeStatusCheck godoc
// @Summary Realtime availability
// @Description Reports whether realtime voice sessions can be issued
// @Tags VR
// @Success 200 {object} map[string]interface{}
// @Router /vr/realtime-status [get]
// @Produce json
func (hdl *HTTPHandler) RealtimeStatusCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: RealtimeStatusResponse{
		Available: hdl.realtime.Available,
		Model:     hdl.realtime.Model,
	}})
}
