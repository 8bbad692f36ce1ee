package http

import (
	"io"

	"vr-training-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Transcribe func
// Transcribe godoc
// @Summary Transcribe audio
// @Description Converts an uploaded audio file to text
// @Tags SPEECH
// @Accept multipart/form-data
// @Success 200 {object} map[string]interface{}
// @Router /transcribe [post]
// @Produce json
// @param audio formData file true "Audio to transcribe"
func (hdl *HTTPHandler) Transcribe(c *fiber.Ctx) error {
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

	transcript, err := hdl.speechSrv.Transcribe(c.UserContext(), domain.TranscriptionRequest{
		Audio:    audio,
		MimeType: fileHeader.Header.Get(fiber.HeaderContentType),
		Filename: fileHeader.Filename,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: TranscriptionResponse{Transcript: transcript}})
}

// TextToSpeech func
// TextToSpeech godoc
// @Summary Synthesize speech
// @Description Converts text to MP3 audio
// @Tags SPEECH
// @Accept application/json
// @Success 200 {file} binary
// @Router /text-to-speech [post]
// @Produce audio/mpeg
// @param TextToSpeech body TextToSpeechRequest true "TextToSpeech"
func (hdl *HTTPHandler) TextToSpeech(c *fiber.Ctx) error {
	var request TextToSpeechRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.SpeechRequest{Text: *request.Text}
	if request.Voice != nil {
		domainReq.Voice = *request.Voice
	}

	audio, err := hdl.speechSrv.Synthesize(c.UserContext(), domainReq)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.Status(fiber.StatusOK).Send(audio)
}
