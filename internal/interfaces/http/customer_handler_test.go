package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/clientes-api/internal/application/dto"
	"github.com/seu-usuario/clientes-api/internal/application/validation"
	"github.com/seu-usuario/clientes-api/internal/domain"
	apphttp "github.com/seu-usuario/clientes-api/internal/interfaces/http"
)

func TestMain(m *testing.M) {
	// Igual ao main: totalValue como número no JSON.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste: stubs dos casos de uso e app Fiber com as rotas reais.
// ──────────────────────────────────────────────────────────────────────────────

type stubCustomerService struct {
	registerFn func(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error)
	updateFn   func(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error)
	getFn      func(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	listFn     func(ctx context.Context) ([]*dto.CustomerResponse, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubCustomerService) Register(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	return s.registerFn(ctx, in)
}

func (s *stubCustomerService) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCustomerService) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubCustomerService) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	return s.listFn(ctx)
}

func (s *stubCustomerService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubOrderService struct {
	listFn   func(ctx context.Context) ([]*dto.OrderResponse, error)
	getFn    func(ctx context.Context, id int64) (*dto.OrderResponse, error)
	createFn func(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error)
	updateFn func(ctx context.Context, id int64, in dto.OrderRequest) (*dto.OrderResponse, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubOrderService) List(ctx context.Context) ([]*dto.OrderResponse, error) {
	return s.listFn(ctx)
}

func (s *stubOrderService) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) Create(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error) {
	return s.createFn(ctx, in)
}

func (s *stubOrderService) Update(ctx context.Context, id int64, in dto.OrderRequest) (*dto.OrderResponse, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubOrderService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// buildApp monta o app com o router e o validador reais sobre os stubs.
func buildApp(t *testing.T, customers apphttp.CustomerService, orders apphttp.OrderService) *fiber.App {
	t.Helper()
	validate, err := validation.New()
	require.NoError(t, err)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerSvc: customers,
		OrderSvc:    orders,
		Validate:    validate,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func mockCustomerRequest() dto.CustomerRequest {
	return dto.CustomerRequest{
		Name:           "Nome Teste da Silva",
		Email:          "email@gmail.com",
		Phone:          "(99) 9999-9999",
		DocumentNumber: "999.999.999-99",
	}
}

func mockCustomerResponse() *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:               1,
		Name:             "Nome Teste da Silva",
		Email:            "email@gmail.com",
		Phone:            "(99) 9999-9999",
		DocumentNumber:   "999.999.999-99",
		RegistrationDate: "2024-01-15",
		Orders:           []dto.OrderResponse{},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Rotas de /customers
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarCustomer_Devolve201ComOsCampos(t *testing.T) {
	svc := &stubCustomerService{
		registerFn: func(_ context.Context, _ dto.CustomerRequest) (*dto.CustomerResponse, error) {
			return mockCustomerResponse(), nil
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodPost, "/customers", mockCustomerRequest())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	got := decodeBody[dto.CustomerResponse](t, resp)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Nome Teste da Silva", got.Name)
	assert.Equal(t, "email@gmail.com", got.Email)
	assert.Equal(t, "(99) 9999-9999", got.Phone)
	assert.Equal(t, "999.999.999-99", got.DocumentNumber)
}

func TestCriarCustomer_DadosInvalidosDevolve400ComAsViolacoes(t *testing.T) {
	app := buildApp(t, &stubCustomerService{}, &stubOrderService{})

	in := mockCustomerRequest()
	in.Name = ""
	in.Email = "email_invalido"
	resp := doJSON(t, app, http.MethodPost, "/customers", in)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	got := decodeBody[dto.ErrorResponse](t, resp)
	require.Len(t, got.Errors, 2)
	assert.Contains(t, got.Errors, "O campo name é obrigatório.")
	assert.Contains(t, got.Errors, "O campo email deve ser um e-mail válido.")
}

func TestCriarCustomer_JSONQuebradoDevolve400(t *testing.T) {
	app := buildApp(t, &stubCustomerService{}, &stubOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewReader([]byte("{nope")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	got := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"Erro na requisição."}, got.Errors)
}

func TestCriarCustomer_DuplicadoDevolve409(t *testing.T) {
	svc := &stubCustomerService{
		registerFn: func(_ context.Context, _ dto.CustomerRequest) (*dto.CustomerResponse, error) {
			return nil, domain.ErrDuplicate
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodPost, "/customers", mockCustomerRequest())
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	got := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"Erro na requisição: e-mail ou CPF já cadastrado."}, got.Errors)
}

func TestAtualizarCustomer_Devolve200(t *testing.T) {
	svc := &stubCustomerService{
		updateFn: func(_ context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
			out := mockCustomerResponse()
			out.ID = id
			out.Name = in.Name
			out.Email = in.Email
			return out, nil
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	in := mockCustomerRequest()
	in.Name = "Nome Atualizado"
	in.Email = "email.atualizado@gmail.com"
	resp := doJSON(t, app, http.MethodPut, "/customers/1", in)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[dto.CustomerResponse](t, resp)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Nome Atualizado", got.Name)
	assert.Equal(t, "email.atualizado@gmail.com", got.Email)
}

func TestAtualizarCustomer_InexistenteDevolve404ComMensagemFixa(t *testing.T) {
	svc := &stubCustomerService{
		updateFn: func(_ context.Context, id int64, _ dto.CustomerRequest) (*dto.CustomerResponse, error) {
			return nil, domain.CustomerNotFound(id)
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodPut, "/customers/1", mockCustomerRequest())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// A mensagem detalhada do serviço é descartada pela camada HTTP.
	assert.JSONEq(t, `{"errors":["Cliente não encontrado."]}`, string(raw))
}

func TestBuscarCustomerPorId_Devolve200(t *testing.T) {
	svc := &stubCustomerService{
		getFn: func(_ context.Context, _ int64) (*dto.CustomerResponse, error) {
			return mockCustomerResponse(), nil
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodGet, "/customers/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[dto.CustomerResponse](t, resp)
	assert.Equal(t, int64(1), got.ID)
	assert.NotNil(t, got.Orders)
}

func TestBuscarCustomerPorId_InexistenteDevolve404(t *testing.T) {
	svc := &stubCustomerService{
		getFn: func(_ context.Context, id int64) (*dto.CustomerResponse, error) {
			return nil, domain.CustomerNotFound(id)
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodGet, "/customers/42", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	got := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"Cliente não encontrado."}, got.Errors)
}

func TestBuscarCustomerPorId_IDNaoNumericoDevolve400(t *testing.T) {
	app := buildApp(t, &stubCustomerService{}, &stubOrderService{})

	resp := doJSON(t, app, http.MethodGet, "/customers/abc", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	got := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"Erro na requisição."}, got.Errors)
}

func TestListarCustomers_Devolve200(t *testing.T) {
	svc := &stubCustomerService{
		listFn: func(_ context.Context) ([]*dto.CustomerResponse, error) {
			return []*dto.CustomerResponse{mockCustomerResponse()}, nil
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[[]dto.CustomerResponse](t, resp)
	require.Len(t, got, 1)
	assert.Equal(t, "Nome Teste da Silva", got[0].Name)
}

func TestListarCustomers_ErroDoServicoDevolve500(t *testing.T) {
	svc := &stubCustomerService{
		listFn: func(_ context.Context) ([]*dto.CustomerResponse, error) {
			return nil, errors.New("conexão caiu")
		},
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	got := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"Erro interno no servidor."}, got.Errors)
}

func TestDeletarCustomer_Devolve204SemCorpo(t *testing.T) {
	svc := &stubCustomerService{
		deleteFn: func(_ context.Context, _ int64) error { return nil },
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodDelete, "/customers/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestDeletarCustomer_InexistenteDevolve404(t *testing.T) {
	svc := &stubCustomerService{
		deleteFn: func(_ context.Context, id int64) error { return domain.CustomerNotFound(id) },
	}
	app := buildApp(t, svc, &stubOrderService{})

	resp := doJSON(t, app, http.MethodDelete, "/customers/1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	got := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, []string{"Cliente não encontrado."}, got.Errors)
}
