package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"woodcraft/internal/domain/entities"
	mock_interfaces "woodcraft/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedDesign(price float64) entities.CustomerDesign {
	return entities.CustomerDesign{ID: "d-1", Status: entities.DesignStatusApproved, FinalPrice: &price}
}

const validPaymentPayload = `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`

func TestBillingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty design id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentDesignID) {
			t.Fatalf("expected ErrInvalidPaymentDesignID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "d-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, designRepo, nil, PaymentSettings{})

		_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(validPaymentPayload))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("design repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, nil, gateway, PaymentSettings{})

		_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(validPaymentPayload))
		if err == nil || err.Error() != "design repository not configured" {
			t.Fatalf("expected design repository not configured error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_DesignChecks(t *testing.T) {
	price := 10.0
	cases := []struct {
		name    string
		design  entities.CustomerDesign
		repoErr error
		want    error
	}{
		{name: "repo error", repoErr: errors.New("db")},
		{name: "not found", want: ErrDesignNotFound},
		{name: "not approved", design: entities.CustomerDesign{ID: "d-1", Status: entities.DesignStatusGenerated, FinalPrice: &price}, want: ErrDesignNotApproved},
		{name: "approved without final price", design: entities.CustomerDesign{ID: "d-1", Status: entities.DesignStatusApproved}, want: ErrDesignMissingFinalPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, designRepo, gateway, PaymentSettings{})

			designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(tc.design, tc.repoErr)

			_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(validPaymentPayload))
			if tc.repoErr != nil {
				if err == nil || err.Error() != "db" {
					t.Fatalf("expected db error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("mock mode still requires an approved design", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, designRepo, gateway, PaymentSettings{MockMode: true})

		designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.CustomerDesign{ID: "d-1", Status: entities.DesignStatusPending}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "d-1", nil)
		if !errors.Is(err, ErrDesignNotApproved) {
			t.Fatalf("expected ErrDesignNotApproved, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	cases := map[string]string{
		"missing payment_method_id": `{"payer":{"email":"x@test.com"}}`,
		"missing payer":             `{"payment_method_id":"pix"}`,
		"non-object payload":        `[]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, designRepo, gateway, PaymentSettings{})

			designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(approvedDesign(10), nil)

			_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(payload))
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
			}
		})
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, designRepo, gateway, PaymentSettings{})

			designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(approvedDesign(10), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(validPaymentPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, designRepo, gateway, PaymentSettings{})

		designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(approvedDesign(10), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(validPaymentPayload))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name            string
		providerStatus  string
		want            entities.PaymentStatus
		providerResp    json.RawMessage
		startProduction bool
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{"id":123}`), startProduction: true},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{`), startProduction: true},
	}

	settings := PaymentSettings{AccessToken: "TEST-token", TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com"}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, designRepo, gateway, settings)

			designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(approvedDesign(77.2), nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "d-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Custom design d-1" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the final price")
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
				func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
					if p.ID != "pay-1" || p.DesignID != "d-1" || p.Status != tc.want || p.Amount != 77.2 {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return p, nil
				},
			)
			if tc.startProduction {
				designRepo.EXPECT().Transition(gomock.Any(), "d-1", entities.DesignStatusApproved, entities.DesignChange{Status: entities.DesignStatusInProgress}).
					Return(entities.CustomerDesign{ID: "d-1", Status: entities.DesignStatusInProgress}, nil)
			}

			res, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("client cannot override the amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, designRepo, gateway, PaymentSettings{})

		designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(approvedDesign(300), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				_ = json.Unmarshal(payload, &body)
				if body["transaction_amount"] != float64(300) || body["external_reference"] != "d-1" {
					t.Fatalf("client values must be overwritten: %v", body)
				}
				return "pay-2", "rejected", json.RawMessage(`{}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			return p, nil
		})

		_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"},"transaction_amount":1,"external_reference":"other"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mock mode skips payer checks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, designRepo, gateway, PaymentSettings{MockMode: true})

		designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(approvedDesign(50), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			_ = json.Unmarshal(payload, &req)
			if req["external_reference"] != "d-1" || req["transaction_amount"] != float64(50) {
				t.Fatalf("unexpected mock request %v", req)
			}
			return "mock-1", "approved", json.RawMessage(`{"id":"mock-1","status":"approved"}`), nil
		})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
			if p.ID != "mock-1" || p.Status != entities.PaymentStatusApproved {
				t.Fatalf("unexpected mock payment %+v", p)
			}
			return p, nil
		})
		designRepo.EXPECT().Transition(gomock.Any(), "d-1", entities.DesignStatusApproved, gomock.Any()).Return(entities.CustomerDesign{}, errors.New("db"))

		res, err := uc.CreateAndApprove(context.Background(), "d-1", nil)
		if err != nil {
			t.Fatalf("a failed production hand-off must not fail the payment: %v", err)
		}
		if res.Amount != 50 {
			t.Fatalf("unexpected amount %v", res.Amount)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		designRepo := mock_interfaces.NewMockICustomerDesignRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, designRepo, gateway, PaymentSettings{})

		designRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(approvedDesign(11), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BillingPayment{}, errors.New("db-create"))

		_, err := uc.CreateAndApprove(context.Background(), "d-1", json.RawMessage(validPaymentPayload))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.GetByID(context.Background(), "")
		if err == nil || err.Error() != "invalid payment id" {
			t.Fatalf("expected invalid payment id, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentSettings{})
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentSettings{})
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.BillingPayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByDesignID invalid", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		_, err := uc.ListByDesignID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentDesignID) {
			t.Fatalf("expected ErrInvalidPaymentDesignID, got %v", err)
		}
	})

	t.Run("ListByDesignID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentSettings{})
		expected := []entities.BillingPayment{{ID: "p1", Date: time.Now()}}
		repo.EXPECT().ListByDesignID(gomock.Any(), "d-1").Return(expected, nil)

		res, err := uc.ListByDesignID(context.Background(), " d-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestBillingPaymentUseCase_PayerHelpers(t *testing.T) {
	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) || hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) || hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for empty id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{})
		m := map[string]any{}
		uc.ensurePayerDefaults(m)
		if m["payer"].(map[string]any)["type"] != "customer" {
			t.Fatalf("expected type customer")
		}

		uc = NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{TestPayerEmail: "custom@test.com"})
		m2 := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m2)
		if m2["payer"].(map[string]any)["email"] != "custom@test.com" {
			t.Fatalf("expected configured email fallback")
		}

		uc = NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{AccessToken: "TEST-123"})
		m3 := map[string]any{"payer": map[string]any{}}
		uc.ensurePayerDefaults(m3)
		if m3["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox fallback email")
		}
	})

	t.Run("normalizeSandboxPayer", func(t *testing.T) {
		prod := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{AccessToken: "APP-123", TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com"})
		m := map[string]any{"payer": map[string]any{"id": "123"}}
		prod.normalizeSandboxPayer(m)
		if _, ok := m["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}

		sandbox := NewBillingPaymentUseCase(nil, nil, nil, PaymentSettings{AccessToken: "TEST-123", TestPayerUserID: "123", TestPayerEmail: "sandbox@test.com"})
		mismatch := map[string]any{"payer": map[string]any{"id": "999"}}
		sandbox.normalizeSandboxPayer(mismatch)
		if _, ok := mismatch["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map mismatched id")
		}

		match := map[string]any{"payer": map[string]any{"id": 123}}
		sandbox.normalizeSandboxPayer(match)
		payer := match["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" {
			t.Fatalf("expected mapped email")
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("gateway classifiers", func(t *testing.T) {
		if !isGatewayBadRequest(errors.New(`{"error":"bad_request"}`)) {
			t.Fatalf("expected bad request true")
		}
		if !isGatewayUnauthorized(errors.New(`{"status":401}`)) {
			t.Fatalf("expected unauthorized true")
		}
		if !isGatewayInvalidUsers(errors.New(`{"code":2034}`)) {
			t.Fatalf("expected invalid users true")
		}
		if !isGatewayCustomerNotFound(errors.New(`customer not found`)) {
			t.Fatalf("expected customer not found true")
		}
		if got := classifyGatewayError(errors.New("boom")); got.Error() != "boom" {
			t.Fatalf("unknown errors pass through, got %v", got)
		}
	})
}
