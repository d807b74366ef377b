package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/comexflow/import-dashboard-api/internal/api/handler"
	"github.com/comexflow/import-dashboard-api/internal/api/handler/router"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	columnsmocks "github.com/comexflow/import-dashboard-api/internal/usecases/columns/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type columnsDeps struct {
	configurator *columnsmocks.MockConfigurator
	router       router.Router
}

func newColumnsRouter(t *testing.T) *columnsDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	configurator := columnsmocks.NewMockConfigurator(ctrl)
	rt := router.New(router.WithRoutes(handler.ColumnSettings(configurator)...))

	return &columnsDeps{configurator: configurator, router: rt}
}

func sampleColumnConfig() []domain.ColumnConfig {
	return []domain.ColumnConfig{
		{ID: "processo", Visible: true, Order: 0},
		{ID: "status", Visible: true, Order: 1},
		{ID: "urf", Visible: false, Order: 2},
	}
}

type columnSettingsBody struct {
	Columns []domain.ColumnDefinition `json:"columns"`
	Config  []domain.ColumnConfig     `json:"config"`
}

func TestGetColumnSettings(t *testing.T) {
	t.Run("Deve devolver o registro e a configuração efetiva", func(t *testing.T) {
		deps := newColumnsRouter(t)

		deps.configurator.EXPECT().Registry(domain.Entitlements{}).Return(visibleDefs())
		deps.configurator.EXPECT().ResolveConfig(gomock.Any(), 7).Return(sampleColumnConfig())

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/me/columns", clientClaims(), nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var view columnSettingsBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Len(t, view.Columns, 2)
		require.Len(t, view.Config, 3)
		assert.Equal(t, "processo", view.Config[0].ID)
	})

	t.Run("Deve negar acesso sem autenticação", func(t *testing.T) {
		deps := newColumnsRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodGet, "/v1/me/columns", nil, nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSaveColumnConfig(t *testing.T) {
	t.Run("Deve persistir a configuração do usuário", func(t *testing.T) {
		deps := newColumnsRouter(t)

		sent := sampleColumnConfig()
		deps.configurator.EXPECT().SaveConfig(gomock.Any(), 7, sent).Return(nil)
		deps.configurator.EXPECT().Registry(domain.Entitlements{}).Return(visibleDefs())
		deps.configurator.EXPECT().ResolveConfig(gomock.Any(), 7).Return(sent)

		body, err := json.Marshal(map[string]any{"config": sent})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPut, "/v1/me/columns", clientClaims(), bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)

		var view columnSettingsBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Len(t, view.Config, 3)
	})

	t.Run("Deve guardar configuração temporária sem persistir", func(t *testing.T) {
		deps := newColumnsRouter(t)

		sent := sampleColumnConfig()
		deps.configurator.EXPECT().SetTemporaryConfig(7, sent)
		deps.configurator.EXPECT().Registry(domain.Entitlements{}).Return(visibleDefs())
		deps.configurator.EXPECT().ResolveConfig(gomock.Any(), 7).Return(sent)

		body, err := json.Marshal(map[string]any{"config": sent, "temporary": true})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPut, "/v1/me/columns", clientClaims(), bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve rejeitar corpo inválido", func(t *testing.T) {
		deps := newColumnsRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPut, "/v1/me/columns", clientClaims(), strings.NewReader("{invalido")))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_003", decodeErrorCode(t, rec.Body))
	})

	t.Run("Deve rejeitar configuração vazia", func(t *testing.T) {
		deps := newColumnsRouter(t)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPut, "/v1/me/columns", clientClaims(), strings.NewReader(`{"config":[]}`)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VAL_002", decodeErrorCode(t, rec.Body))
	})

	t.Run("Deve traduzir falha de banco em erro de servidor", func(t *testing.T) {
		deps := newColumnsRouter(t)

		deps.configurator.EXPECT().
			SaveConfig(gomock.Any(), 7, gomock.Any()).
			Return(errors.New("conexão recusada"))

		body, err := json.Marshal(map[string]any{"config": sampleColumnConfig()})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodPut, "/v1/me/columns", clientClaims(), bytes.NewReader(body)))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "SRV_002", decodeErrorCode(t, rec.Body))
	})
}

func TestResetColumnConfig(t *testing.T) {
	t.Run("Deve restaurar a configuração padrão", func(t *testing.T) {
		deps := newColumnsRouter(t)

		deps.configurator.EXPECT().ResetConfig(gomock.Any(), 7).Return(nil)
		deps.configurator.EXPECT().Registry(domain.Entitlements{}).Return(visibleDefs())
		deps.configurator.EXPECT().ResolveConfig(gomock.Any(), 7).Return(sampleColumnConfig())

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/v1/me/columns", clientClaims(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve descartar apenas a configuração temporária", func(t *testing.T) {
		deps := newColumnsRouter(t)

		deps.configurator.EXPECT().ClearTemporaryConfig(7)
		deps.configurator.EXPECT().Registry(domain.Entitlements{}).Return(visibleDefs())
		deps.configurator.EXPECT().ResolveConfig(gomock.Any(), 7).Return(sampleColumnConfig())

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/v1/me/columns?temporary=true", clientClaims(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve traduzir falha de banco em erro de servidor", func(t *testing.T) {
		deps := newColumnsRouter(t)

		deps.configurator.EXPECT().ResetConfig(gomock.Any(), 7).Return(errors.New("conexão recusada"))

		rec := httptest.NewRecorder()
		deps.router.ServeHTTP(rec, authedRequest(http.MethodDelete, "/v1/me/columns", clientClaims(), nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "SRV_002", decodeErrorCode(t, rec.Body))
	})
}
