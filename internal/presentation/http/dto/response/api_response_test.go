package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/steelwheel/dealership-api/pkg/apperror"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/v1/invoices", nil)
	return c, rec
}

func TestErrorHidesRepositoryDetail(t *testing.T) {
	c, rec := newTestContext(t)

	Error(c, errors.New(`pq: duplicate key value violates unique constraint "invoices_invoice_no_key"`))

	if rec.Code != 500 {
		t.Errorf("status = %d, want 500", rec.Code)
	}

	var body APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Message != "Internal server error" {
		t.Errorf("Message = %q, want the generic message", body.Message)
	}
	if strings.Contains(rec.Body.String(), "duplicate key") {
		t.Error("response body leaks database detail")
	}
}

func TestErrorKeepsApplicationMessage(t *testing.T) {
	c, rec := newTestContext(t)

	Error(c, apperror.NewNotFoundError("Invoice"))

	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	var body APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Message != "Invoice not found" {
		t.Errorf("Message = %q, want \"Invoice not found\"", body.Message)
	}
	if body.Success {
		t.Error("error responses must not report success")
	}
}
