package http

import (
	"bytes"
	"context"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	customerdom "finbook-backend/internal/domain/customer"
	"finbook-backend/internal/testutil/customermock"
	"finbook-backend/internal/testutil/loanmock"
	"finbook-backend/internal/testutil/partnermock"
	"finbook-backend/internal/testutil/storagemock"
	"finbook-backend/internal/usecase/account"
	"finbook-backend/pkg/apperr"

	"github.com/labstack/echo/v4"
)

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write(data)
	w.Close()
	return &buf, w.FormDataContentType()
}

func newImageHandler(customers *customermock.CustomerRepo, store *storagemock.Store) *ImageHandler {
	return NewImageHandler(account.NewUsecase(customers, &customermock.GuarantorRepo{},
		&partnermock.Repo{}, &loanmock.Repo{}, store))
}

func TestAttachCustomerImage_OK(t *testing.T) {
	e := newEchoWithValidator()
	store := &storagemock.Store{}
	customers := &customermock.CustomerRepo{
		GetByIDFn: func(ctx context.Context, id string) (*customerdom.Customer, error) {
			return &customerdom.Customer{ID: id, Name: "John"}, nil
		},
	}
	h := newImageHandler(customers, store)

	body, ct := multipartImage(t, "file", "photo.png", "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/customers/c1/images", body)
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.AttachCustomerImage(c); err != nil {
		t.Fatalf("AttachCustomerImage error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if len(store.Orphans()) != 1 {
		t.Errorf("store calls = %v", store.Calls)
	}
}

func TestAttachCustomerImage_NonImageIs400(t *testing.T) {
	e := newEchoWithValidator()
	store := &storagemock.Store{}
	h := newImageHandler(&customermock.CustomerRepo{}, store)

	body, ct := multipartImage(t, "file", "doc.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/customers/c1/images", body)
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.AttachCustomerImage(c); err != nil {
		t.Fatalf("AttachCustomerImage error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(store.Calls) != 0 {
		t.Errorf("store touched: %v", store.Calls)
	}
}

func TestAttachCustomerImage_UnconfiguredStoreIs503(t *testing.T) {
	e := newEchoWithValidator()
	store := &storagemock.Store{
		PutFn: func(ctx context.Context, path string, data []byte, contentType string) (string, error) {
			return "", apperr.Unconfigured("object storage is not configured")
		},
	}
	h := newImageHandler(&customermock.CustomerRepo{}, store)

	body, ct := multipartImage(t, "file", "photo.png", "image/png", []byte("png"))
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/customers/c1/images", body)
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.AttachCustomerImage(c); err != nil {
		t.Fatalf("AttachCustomerImage error: %v", err)
	}
	if rec.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503, body %s", rec.Code, rec.Body.String())
	}
}

func TestAttachCustomerImage_NoFileIs400(t *testing.T) {
	e := newEchoWithValidator()
	h := newImageHandler(&customermock.CustomerRepo{}, &storagemock.Store{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/api/customers/c1/images", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	if err := h.AttachCustomerImage(c); err != nil {
		t.Fatalf("AttachCustomerImage error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
