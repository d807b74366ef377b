package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/internal/usecases/authorizing"
	authmocks "github.com/comexflow/import-dashboard-api/internal/usecases/authorizing/mocks"
	"github.com/comexflow/import-dashboard-api/pkg/apiErrors"
	"github.com/comexflow/import-dashboard-api/pkg/log"
	"github.com/comexflow/import-dashboard-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newMockAuthorizer(t *testing.T) *authmocks.MockAuthorizer {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return authmocks.NewMockAuthorizer(ctrl)
}

// nextRecorder registra se a requisição atravessou a cadeia de middlewares
// e guarda as claims visíveis no contexto quando isso acontece.
type nextRecorder struct {
	called bool
	claims *domain.Claims
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.claims, _ = middleware.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))

	return apiErr.Code
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Deve liberar o healthcheck sem token", func(t *testing.T) {
		auth := newMockAuthorizer(t)
		next := &nextRecorder{}

		request := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		recorder := httptest.NewRecorder()

		middleware.AuthMiddleware(auth)(next.handler()).ServeHTTP(recorder, request)

		assert.True(t, next.called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Deve exigir o cabeçalho Authorization", func(t *testing.T) {
		auth := newMockAuthorizer(t)
		next := &nextRecorder{}

		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		recorder := httptest.NewRecorder()

		middleware.AuthMiddleware(auth)(next.handler()).ServeHTTP(recorder, request)

		assert.False(t, next.called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrMissingToken, errorCode(t, recorder))
	})

	t.Run("Deve exigir o esquema Bearer", func(t *testing.T) {
		auth := newMockAuthorizer(t)
		next := &nextRecorder{}

		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		request.Header.Set("Authorization", "Basic abc123")
		recorder := httptest.NewRecorder()

		middleware.AuthMiddleware(auth)(next.handler()).ServeHTTP(recorder, request)

		assert.False(t, next.called)
		assert.Equal(t, apiErrors.ErrMissingToken, errorCode(t, recorder))
	})

	t.Run("Deve validar o token e injetar as claims no contexto", func(t *testing.T) {
		auth := newMockAuthorizer(t)
		next := &nextRecorder{}

		claims := &domain.Claims{UserID: 42, UserName: "Maria", UserRoleID: middleware.RoleAnalyst}
		auth.EXPECT().ValidateToken("token-valido").Return(claims, nil).Times(1)

		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		request.Header.Set("Authorization", "Bearer token-valido")
		recorder := httptest.NewRecorder()

		middleware.AuthMiddleware(auth)(next.handler()).ServeHTTP(recorder, request)

		assert.True(t, next.called)
		require.NotNil(t, next.claims)
		assert.Equal(t, 42, next.claims.UserID)
	})

	t.Run("Deve propagar o código de erro anexado pelo autorizador", func(t *testing.T) {
		auth := newMockAuthorizer(t)
		next := &nextRecorder{}

		auth.EXPECT().
			ValidateToken("token-vencido").
			Return(nil, authorizing.NewAuthError(authorizing.ErrExpiredToken, apiErrors.ErrExpiredToken, "")).
			Times(1)

		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		request.Header.Set("Authorization", "Bearer token-vencido")
		recorder := httptest.NewRecorder()

		middleware.AuthMiddleware(auth)(next.handler()).ServeHTTP(recorder, request)

		assert.False(t, next.called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrExpiredToken, errorCode(t, recorder))
	})

	t.Run("Deve responder token inválido para erro sem código", func(t *testing.T) {
		auth := newMockAuthorizer(t)
		next := &nextRecorder{}

		auth.EXPECT().ValidateToken("token-quebrado").Return(nil, assert.AnError).Times(1)

		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		request.Header.Set("Authorization", "Bearer token-quebrado")
		recorder := httptest.NewRecorder()

		middleware.AuthMiddleware(auth)(next.handler()).ServeHTTP(recorder, request)

		assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, recorder))
	})
}

func requestWithClaims(claims *domain.Claims) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/v1/operations", nil)
	if claims == nil {
		return request
	}

	auth := newStaticAuthorizer(claims)
	wrapped := httptest.NewRecorder()

	var out *http.Request
	middleware.AuthMiddleware(auth)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		out = r
	})).ServeHTTP(wrapped, withBearer(request))

	return out
}

// staticAuthorizer evita montar um mock por teste nos cenários de role,
// onde só interessa o conteúdo das claims.
type staticAuthorizer struct {
	claims *domain.Claims
}

func newStaticAuthorizer(claims *domain.Claims) authorizing.Authorizer {
	return &staticAuthorizer{claims: claims}
}

func (s *staticAuthorizer) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, nil
}

func (s *staticAuthorizer) Entitlements(claims *domain.Claims) domain.Entitlements {
	return domain.UserEntitlements(claims)
}

func withBearer(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer token-de-teste")
	return r
}

func TestRoleMiddleware(t *testing.T) {
	t.Run("Deve liberar perfil autorizado", func(t *testing.T) {
		next := &nextRecorder{}
		recorder := httptest.NewRecorder()

		request := requestWithClaims(&domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin})
		middleware.AdminOnly()(next.handler()).ServeHTTP(recorder, request)

		assert.True(t, next.called)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Deve negar perfil não autorizado", func(t *testing.T) {
		next := &nextRecorder{}
		recorder := httptest.NewRecorder()

		request := requestWithClaims(&domain.Claims{UserID: 3, UserRoleID: middleware.RoleClient})
		middleware.AdminOrAnalyst()(next.handler()).ServeHTTP(recorder, request)

		assert.False(t, next.called)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, recorder))
	})

	t.Run("Deve negar requisição sem claims no contexto", func(t *testing.T) {
		next := &nextRecorder{}
		recorder := httptest.NewRecorder()

		request := httptest.NewRequest(http.MethodGet, "/v1/operations", nil)
		middleware.AllRoles()(next.handler()).ServeHTTP(recorder, request)

		assert.False(t, next.called)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidToken, errorCode(t, recorder))
	})
}

func TestRequireMaterialsAccess(t *testing.T) {
	t.Run("Deve liberar usuário com acesso a materiais", func(t *testing.T) {
		next := &nextRecorder{}
		recorder := httptest.NewRecorder()

		request := requestWithClaims(&domain.Claims{UserID: 1, UserRoleID: middleware.RoleClient, CanViewMaterials: true})
		middleware.RequireMaterialsAccess()(next.handler()).ServeHTTP(recorder, request)

		assert.True(t, next.called)
	})

	t.Run("Deve negar usuário sem acesso a materiais", func(t *testing.T) {
		next := &nextRecorder{}
		recorder := httptest.NewRecorder()

		request := requestWithClaims(&domain.Claims{UserID: 2, UserRoleID: middleware.RoleClient})
		middleware.RequireMaterialsAccess()(next.handler()).ServeHTTP(recorder, request)

		assert.False(t, next.called)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Equal(t, apiErrors.ErrMaterialsRestricted, errorCode(t, recorder))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("Deve devolver o ID de correlação no cabeçalho da resposta", func(t *testing.T) {
		next := &nextRecorder{}
		recorder := httptest.NewRecorder()

		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		middleware.LoggingMiddleware()(next.handler()).ServeHTTP(recorder, request)

		assert.True(t, next.called)
		assert.NotEmpty(t, recorder.Header().Get("X-Correlation-ID"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	t.Run("Deve converter panic em erro interno", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)

		panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("algo muito errado")
		})

		middleware.LogPanicMiddleware()(panicking).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
