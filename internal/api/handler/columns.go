package handler

import (
	"net/http"

	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/internal/usecases/columns"
	"github.com/comexflow/import-dashboard-api/pkg/apiErrors"
	"github.com/comexflow/import-dashboard-api/pkg/log"
	"github.com/comexflow/import-dashboard-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// columnSettingsView devolve o registro de colunas disponível para o
// usuário junto com a configuração efetiva, na ordem de exibição
type columnSettingsView struct {
	Columns []domain.ColumnDefinition `json:"columns"`
	Config  []domain.ColumnConfig     `json:"config"`
}

// saveColumnConfigRequest é o corpo do PUT de configuração de colunas.
// Temporary indica uma configuração em edição no diálogo de preferências,
// que vale só para esta sessão e não é persistida.
type saveColumnConfigRequest struct {
	Config    []domain.ColumnConfig `json:"config"`
	Temporary bool                  `json:"temporary"`
}

// GetColumnSettings devolve as colunas configuráveis e a configuração
// efetiva do usuário (temporária > cache > persistida > padrão)
func GetColumnSettings(service columns.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetColumnSettings")

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		view := columnSettingsView{
			Columns: service.Registry(domain.UserEntitlements(userClaims)),
			Config:  service.ResolveConfig(r.Context(), userClaims.UserID),
		}

		json.NewEncoder(w).Encode(view)
	}
}

// SaveColumnConfig grava a configuração de colunas do usuário. Com
// temporary=true a configuração fica apenas em memória, até o diálogo de
// preferências ser confirmado ou descartado.
func SaveColumnConfig(service columns.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SaveColumnConfig")
		logger := log.ForContext(r.Context())

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var request saveColumnConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if len(request.Config) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Configuração de colunas não informada", nil)
			return
		}

		if request.Temporary {
			service.SetTemporaryConfig(userClaims.UserID, request.Config)
		} else {
			if err := service.SaveConfig(r.Context(), userClaims.UserID, request.Config); err != nil {
				logger.WithField("user_id", userClaims.UserID).Errorf("Erro ao salvar configuração de colunas: %v", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configuração de colunas", nil)
				return
			}
		}

		view := columnSettingsView{
			Columns: service.Registry(domain.UserEntitlements(userClaims)),
			Config:  service.ResolveConfig(r.Context(), userClaims.UserID),
		}

		json.NewEncoder(w).Encode(view)
	}
}

// ResetColumnConfig volta a configuração de colunas para o padrão. Com
// temporary=true apenas a configuração em edição é descartada, preservando
// o que está persistido.
func ResetColumnConfig(service columns.Configurator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResetColumnConfig")
		logger := log.ForContext(r.Context())

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		if r.URL.Query().Get("temporary") == "true" {
			service.ClearTemporaryConfig(userClaims.UserID)
		} else {
			if err := service.ResetConfig(r.Context(), userClaims.UserID); err != nil {
				logger.WithField("user_id", userClaims.UserID).Errorf("Erro ao restaurar configuração de colunas: %v", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao restaurar configuração de colunas", nil)
				return
			}
		}

		view := columnSettingsView{
			Columns: service.Registry(domain.UserEntitlements(userClaims)),
			Config:  service.ResolveConfig(r.Context(), userClaims.UserID),
		}

		json.NewEncoder(w).Encode(view)
	}
}
