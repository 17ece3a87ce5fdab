package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"renova_contracts/internal/adapter/http/handlers/mocks"
	"renova_contracts/internal/domain/entities"
	"renova_contracts/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func workflowFixture(ctrl *gomock.Controller) (*WorkflowHandler, *mocks.MockISignatureUseCase, *mocks.MockIMilestonePaymentUseCase, *mocks.MockIVariationUseCase) {
	signatures := mocks.NewMockISignatureUseCase(ctrl)
	milestones := mocks.NewMockIMilestonePaymentUseCase(ctrl)
	variations := mocks.NewMockIVariationUseCase(ctrl)
	return NewWorkflowHandler(signatures, milestones, variations), signatures, milestones, variations
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWorkflowHandler_RequestSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _, _ := workflowFixture(ctrl)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/signatures/request", h.RequestSignature)

		w := postJSON(r, "/v1/contracts/c-1/signatures/request", `{"role":"homeowner","requested_by":"owner-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("response carries link but never the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, signatures, _, _ := workflowFixture(ctrl)

		signatures.EXPECT().RequestSignature(gomock.Any(), "c-1", gomock.Any()).Return(usecase.SignatureRequestResult{
			Contract:         entities.Contract{ID: "c-1", Status: entities.ContractStatusPendingSignature},
			SignatureID:      "sig-1",
			SigningLink:      "https://sign.example.com/contracts/c-1/signatures/sig-1/sign?token=tok123",
			VerificationCode: "super-secret-code",
		}, nil)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/signatures/request", h.RequestSignature)

		w := postJSON(r, "/v1/contracts/c-1/signatures/request",
			`{"signer_email":"ana@example.com","role":"homeowner","requested_by":"owner-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "sign?token=tok123") {
			t.Fatalf("expected signing link in response: %s", body)
		}
		if strings.Contains(body, "super-secret-code") {
			t.Fatalf("verification code leaked into response: %s", body)
		}
	})

	t.Run("unknown signer maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, signatures, _, _ := workflowFixture(ctrl)

		signatures.EXPECT().RequestSignature(gomock.Any(), "c-1", gomock.Any()).
			Return(usecase.SignatureRequestResult{}, usecase.ErrSignatureNotFound)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/signatures/request", h.RequestSignature)

		w := postJSON(r, "/v1/contracts/c-1/signatures/request",
			`{"signer_email":"stranger@example.com","role":"homeowner","requested_by":"owner-1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_ProcessSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("wrong code maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, signatures, _, _ := workflowFixture(ctrl)

		signatures.EXPECT().ProcessSignature(gomock.Any(), "c-1", "sig-1", gomock.Any()).
			Return(entities.Contract{}, usecase.ErrInvalidVerification)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/signatures/:signature_id/process", h.ProcessSignature)

		w := postJSON(r, "/v1/contracts/c-1/signatures/sig-1/process",
			`{"signature_data":"data:image/png;base64,xxxx","verification_code":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Error == nil || env.Error.Code != "INVALID_VERIFICATION_CODE" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})

	t.Run("success forwards client ip and user agent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, signatures, _, _ := workflowFixture(ctrl)

		signatures.EXPECT().ProcessSignature(gomock.Any(), "c-1", "sig-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ string, in usecase.ProcessSignatureInput) (entities.Contract, error) {
				if in.UserAgent != "integration-test" {
					t.Fatalf("expected user agent forwarded, got %q", in.UserAgent)
				}
				if in.IP == "" {
					t.Fatalf("expected client ip forwarded")
				}
				return entities.Contract{ID: "c-1", Status: entities.ContractStatusPartiallySigned}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/signatures/:signature_id/process", h.ProcessSignature)

		req := httptest.NewRequest(http.MethodPost, "/v1/contracts/c-1/signatures/sig-1/process",
			bytes.NewBufferString(`{"signature_data":"data:image/png;base64,xxxx","verification_code":"code-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "integration-test")
		req.RemoteAddr = "203.0.113.7:41000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_CompleteMilestone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already completed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, milestones, _ := workflowFixture(ctrl)

		milestones.EXPECT().CompleteMilestone(gomock.Any(), "c-1", "ms-1", "owner-1", "").
			Return(entities.Contract{}, usecase.ErrMilestoneCompleted)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/milestones/:milestone_id/complete", h.CompleteMilestone)

		w := postJSON(r, "/v1/contracts/c-1/milestones/ms-1/complete", `{"completed_by":"owner-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, milestones, _ := workflowFixture(ctrl)

		milestones.EXPECT().CompleteMilestone(gomock.Any(), "c-1", "ms-1", "owner-1", "ahead of schedule").
			Return(entities.Contract{ID: "c-1"}, nil)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/milestones/:milestone_id/complete", h.CompleteMilestone)

		w := postJSON(r, "/v1/contracts/c-1/milestones/ms-1/complete", `{"completed_by":"owner-1","notes":"ahead of schedule"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non positive amount rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _, _ := workflowFixture(ctrl)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/payments", h.RecordPayment)

		w := postJSON(r, "/v1/contracts/c-1/payments", `{"amount":0,"recorded_by":"owner-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ceiling breach maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, milestones, _ := workflowFixture(ctrl)

		milestones.EXPECT().RecordPayment(gomock.Any(), "c-1", gomock.Any(), "owner-1").
			Return(entities.Contract{}, entities.Payment{}, usecase.ErrPaymentExceedsValue)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/payments", h.RecordPayment)

		w := postJSON(r, "/v1/contracts/c-1/payments", `{"amount":5000,"recorded_by":"owner-1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		if env.Error == nil || env.Error.Code != "PAYMENT_EXCEEDS_VALUE" {
			t.Fatalf("unexpected envelope: %+v", env)
		}
	})

	t.Run("gateway unavailable maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, milestones, _ := workflowFixture(ctrl)

		milestones.EXPECT().RecordPayment(gomock.Any(), "c-1", gomock.Any(), "owner-1").
			Return(entities.Contract{}, entities.Payment{}, usecase.ErrGatewayNotConfigured)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/payments", h.RecordPayment)

		w := postJSON(r, "/v1/contracts/c-1/payments", `{"amount":100,"recorded_by":"owner-1","collect_now":true}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success returns 201 with payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, milestones, _ := workflowFixture(ctrl)

		milestones.EXPECT().RecordPayment(gomock.Any(), "c-1", usecase.PaymentInput{
			MilestoneID: "ms-1", Amount: 1500, RetentionHeld: 75, Method: "bank-transfer", Reference: "INV-9",
		}, "owner-1").Return(entities.Contract{ID: "c-1"}, entities.Payment{ID: "pay-1", Amount: 1500, NetAmount: 1425}, nil)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/payments", h.RecordPayment)

		w := postJSON(r, "/v1/contracts/c-1/payments",
			`{"milestone_id":"ms-1","amount":1500,"retention_held":75,"method":"bank-transfer","reference":"INV-9","recorded_by":"owner-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		env := decodeEnvelope(t, w)
		var data struct {
			Payment entities.Payment `json:"payment"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil || data.Payment.NetAmount != 1425 {
			t.Fatalf("unexpected data: %v %s", err, env.Data)
		}
	})
}

func TestWorkflowHandler_Variations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add returns 201 with number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _, variations := workflowFixture(ctrl)

		variations.EXPECT().AddVariation(gomock.Any(), "c-1", usecase.VariationInput{
			Description: "extra power points", CostDelta: 450, TimeDelta: 2,
		}, "owner-1").Return(entities.Contract{ID: "c-1"}, entities.Variation{ID: "v-1", Number: "VAR-003"}, nil)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/variations", h.AddVariation)

		w := postJSON(r, "/v1/contracts/c-1/variations",
			`{"description":"extra power points","cost_delta":450,"time_delta_days":2,"requested_by":"owner-1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "VAR-003") {
			t.Fatalf("expected variation number in response: %s", w.Body.String())
		}
	})

	t.Run("approve unknown variation maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h, _, _, variations := workflowFixture(ctrl)

		variations.EXPECT().ApproveVariation(gomock.Any(), "c-1", "v-404", "owner-1").
			Return(entities.Contract{}, usecase.ErrVariationNotFound)

		r := gin.New()
		r.POST("/v1/contracts/:contract_id/variations/:variation_id/approve", h.ApproveVariation)

		w := postJSON(r, "/v1/contracts/c-1/variations/v-404/approve", `{"actor":"owner-1"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
