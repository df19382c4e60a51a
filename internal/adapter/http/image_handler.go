package http

import (
	"io"
	"mime/multipart"
	"net/http"

	"finbook-backend/internal/usecase/account"
	"finbook-backend/pkg/apperr"

	"github.com/labstack/echo/v4"
)

// ImageHandler moves photos between multipart requests and the object store.
type ImageHandler struct{ uc *account.Usecase }

func NewImageHandler(uc *account.Usecase) *ImageHandler { return &ImageHandler{uc: uc} }

func readUpload(fh *multipart.FileHeader) (account.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return account.ImageUpload{}, apperr.BadRequest("unreadable upload")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return account.ImageUpload{}, apperr.BadRequest("unreadable upload")
	}
	return account.ImageUpload{
		Data:        data,
		ContentType: fh.Header.Get("Content-Type"),
		Filename:    fh.Filename,
	}, nil
}

func (h *ImageHandler) AttachCustomerImage(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, apperr.BadRequest("image file is required"))
	}
	in, err := readUpload(fh)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AttachCustomerImage(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ImageHandler) DetachCustomerImage(c echo.Context) error {
	if err := h.uc.DetachCustomerImage(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"removed": true})
}

func (h *ImageHandler) AttachGuarantorImage(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, apperr.BadRequest("image file is required"))
	}
	in, err := readUpload(fh)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.AttachGuarantorImage(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ImageHandler) DetachGuarantorImage(c echo.Context) error {
	if err := h.uc.DetachGuarantorImage(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"removed": true})
}

// AttachLoanImages accepts one multipart file per role field and stores every
// URL on the loan record in one go.
func (h *ImageHandler) AttachLoanImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, apperr.BadRequest("multipart form is required"))
	}
	uploads := map[string]account.ImageUpload{}
	for field, files := range form.File {
		if len(files) == 0 {
			continue
		}
		in, err := readUpload(files[0])
		if err != nil {
			return writeError(c, err)
		}
		uploads[field] = in
	}
	out, err := h.uc.AttachLoanImages(c.Request().Context(), c.Param("id"), uploads)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// DetachLoanImage removes the photo named by the imageType query param.
func (h *ImageHandler) DetachLoanImage(c echo.Context) error {
	field := c.QueryParam("imageType")
	if field == "" {
		return writeError(c, apperr.BadRequest("imageType is required"))
	}
	out, err := h.uc.DetachLoanImage(c.Request().Context(), c.Param("id"), field)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
