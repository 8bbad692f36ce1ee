package http

import (
	"vr-training-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Expiry defaults to 10 minutes; requests may shorten or extend it up to
// one hour (enforced by the request validation tag).
const defaultSignedURLExpiry = 600

// SignedUpload func
// SignedUpload godoc
// @Summary Issue signed upload URL
// @Description Issues a time-limited URL for uploading an object to an allowed bucket
// @Tags STORAGE
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /storage/signed-upload [post]
// @Produce json
// @param SignedUpload body SignedURLHTTPRequest true "SignedUpload"
func (hdl *HTTPHandler) SignedUpload(c *fiber.Ctx) error {
	request, ok := hdl.parseSignedURLRequest(c)
	if !ok {
		return nil
	}

	result, err := hdl.signer.SignedUploadURL(c.UserContext(), request)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: SignedUploadResponse{
		Path:      result.Path,
		Token:     result.Token,
		SignedURL: result.SignedURL,
	}})
}

// SignedDownload func
// SignedDownload godoc
// @Summary Issue signed download URL
// @Description Issues a time-limited URL for downloading an object from an allowed bucket
// @Tags STORAGE
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /storage/signed-download [post]
// @Produce json
// @param SignedDownload body SignedURLHTTPRequest true "SignedDownload"
func (hdl *HTTPHandler) SignedDownload(c *fiber.Ctx) error {
	request, ok := hdl.parseSignedURLRequest(c)
	if !ok {
		return nil
	}

	signedURL, err := hdl.signer.SignedDownloadURL(c.UserContext(), request)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: SignedDownloadResponse{SignedURL: signedURL}})
}

// parseSignedURLRequest validates the body and bucket whitelist. On failure
// the error response has already been written and ok is false.
func (hdl *HTTPHandler) parseSignedURLRequest(c *fiber.Ctx) (domain.SignedURLRequest, bool) {
	var request SignedURLHTTPRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		_ = c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
		return domain.SignedURLRequest{}, false
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{err.Error()}
		_ = c.Status(fiber.StatusBadRequest).JSON(msg)
		return domain.SignedURLRequest{}, false
	}

	if !domain.StorageBuckets[*request.Bucket] {
		msg := ResponseBody{Status: BadRequest}
		msg.Status.Message = []string{"unknown storage bucket"}
		_ = c.Status(fiber.StatusBadRequest).JSON(msg)
		return domain.SignedURLRequest{}, false
	}

	expiresIn := defaultSignedURLExpiry
	if request.ExpiresIn != nil {
		expiresIn = *request.ExpiresIn
	}

	return domain.SignedURLRequest{
		Bucket:    *request.Bucket,
		Path:      *request.Path,
		ExpiresIn: expiresIn,
	}, true
}
