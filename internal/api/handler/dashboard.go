package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/comexclient"
	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/internal/usecases/charting"
	"github.com/comexflow/import-dashboard-api/internal/usecases/columns"
	"github.com/comexflow/import-dashboard-api/internal/usecases/dashboarding"
	"github.com/comexflow/import-dashboard-api/internal/usecases/rendering"
	"github.com/comexflow/import-dashboard-api/pkg/apiErrors"
	"github.com/comexflow/import-dashboard-api/pkg/log"
	"github.com/comexflow/import-dashboard-api/pkg/middleware"
	"github.com/comexflow/import-dashboard-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DashboardServices agrupa os serviços usados pelas rotas da dashboard
type DashboardServices struct {
	Dashboard dashboarding.Dashboarder
	Charts    charting.Charter
	Renderer  rendering.Renderer
	Columns   columns.Configurator
}

// chartSetView embala os gráficos fixos já no formato da biblioteca do front
type chartSetView struct {
	StatusDistribution *domain.ChartConfig `json:"status_distribution"`
	ModalSplit         *domain.ChartConfig `json:"modal_split"`
}

// dashboardView é a resposta composta da dashboard: indicadores, gráficos,
// tabela renderizada conforme as colunas do usuário e opções de filtro.
type dashboardView struct {
	KPIs             *domain.KPISet        `json:"kpis"`
	Charts           *chartSetView         `json:"charts"`
	Operations       *rendering.Table      `json:"operations"`
	FilterOptions    *domain.FilterOptions `json:"filter_options"`
	CanViewMaterials bool                  `json:"can_view_materials"`
	FailedResources  int                   `json:"failed_resources"`
	CacheLastUpdate  string                `json:"cache_last_update,omitempty"`
}

// DashboardBootstrap executa a carga inicial da dashboard em uma única
// resposta. Quando o agregado combinado da ComexAPI está disponível, a
// permissão de materiais vem dele; caso contrário vale a do token.
func DashboardBootstrap(services DashboardServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DashboardBootstrap")
		logger := log.ForContext(r.Context())

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseFilterState(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}

		result, err := services.Dashboard.Bootstrap(r.Context(), filters)
		if err != nil {
			logger.Errorf("Erro na carga inicial da dashboard: %v", err)
			handleUpstreamError(w, err)
			return
		}

		if result == nil || result.Data == nil {
			apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "A API de operações não retornou dados", nil)
			return
		}

		entitlements := domain.UserEntitlements(userClaims)
		if result.Combined {
			entitlements.CanViewMaterials = result.Data.CanViewMaterials
		}

		view := buildDashboardView(
			r.Context(),
			services,
			userClaims.UserID,
			entitlements,
			result.Data.KPIs,
			result.Data.Charts,
			result.Data.Operations,
			result.Data.FilterOptions,
			result.FailedResources,
		)

		json.NewEncoder(w).Encode(view)
	}
}

// GetDashboard recarrega a visão composta respeitando os filtros ativos.
// Falhas parciais não abortam a resposta: o contador de recursos
// indisponíveis vira um aviso único no front.
func GetDashboard(services DashboardServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboard")

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseFilterState(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}

		result := services.Dashboard.LoadDashboard(r.Context(), filters)

		view := buildDashboardView(
			r.Context(),
			services,
			userClaims.UserID,
			domain.UserEntitlements(userClaims),
			result.KPIs,
			result.Charts,
			result.Operations,
			result.FilterOptions,
			result.FailedResources,
		)

		json.NewEncoder(w).Encode(view)
	}
}

// GetDashboardKPIs devolve apenas os indicadores dos cards do topo
func GetDashboardKPIs(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardKPIs")

		filters, err := parseFilterState(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}

		kpis, err := service.LoadKPIs(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).Errorf("Erro ao carregar KPIs: %v", err)
			handleUpstreamError(w, err)
			return
		}

		json.NewEncoder(w).Encode(kpis)
	}
}

// GetDashboardCharts devolve os gráficos fixos (status e modal) já no
// formato de configuração da biblioteca de gráficos
func GetDashboardCharts(services DashboardServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardCharts")

		filters, err := parseFilterState(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}

		charts, err := services.Dashboard.LoadCharts(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).Errorf("Erro ao carregar gráficos: %v", err)
			handleUpstreamError(w, err)
			return
		}

		json.NewEncoder(w).Encode(buildChartSetView(services.Charts, charts))
	}
}

// GetOperations devolve a tabela de operações renderizada conforme a
// configuração de colunas do usuário
func GetOperations(services DashboardServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetOperations")

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, err := parseFilterState(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}

		records, err := services.Dashboard.LoadOperations(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).Errorf("Erro ao carregar operações: %v", err)
			handleUpstreamError(w, err)
			return
		}

		entitlements := domain.UserEntitlements(userClaims)
		visible := services.Columns.VisibleColumns(r.Context(), userClaims.UserID, entitlements)

		json.NewEncoder(w).Encode(services.Renderer.Table(records, visible))
	}
}

// GetOperationDetail devolve a visão de detalhe de um processo. A seção de
// materiais só aparece para quem tem a permissão correspondente.
func GetOperationDetail(services DashboardServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetOperationDetail")

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		ref := httprouter.ParamsFromContext(r.Context()).ByName("ref")
		if ref == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Referência do processo não informada", nil)
			return
		}

		record, err := services.Dashboard.OperationByRef(r.Context(), ref)
		if err != nil {
			log.ForContext(r.Context()).WithField("process", ref).Errorf("Erro ao carregar detalhe do processo: %v", err)
			handleUpstreamError(w, err)
			return
		}

		detail := services.Renderer.Detail(record, domain.UserEntitlements(userClaims))

		json.NewEncoder(w).Encode(detail)
	}
}

// GetFilterOptions devolve os valores disponíveis para os seletores de filtro
func GetFilterOptions(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetFilterOptions")

		options, err := service.LoadFilterOptions(r.Context())
		if err != nil {
			log.ForContext(r.Context()).Errorf("Erro ao carregar opções de filtro: %v", err)
			handleUpstreamError(w, err)
			return
		}

		json.NewEncoder(w).Encode(options)
	}
}

// GetMonthlyChart devolve a evolução de operações por período: linha para
// granularidade mensal, barras para semanal
func GetMonthlyChart(services DashboardServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMonthlyChart")

		query := r.URL.Query()

		granularity := query.Get("granularity")
		if granularity == "" {
			granularity = domain.GranularityMonth
		}
		if granularity != domain.GranularityMonth && granularity != domain.GranularityWeek {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Granularidade inválida. Valores aceitos: month, week", nil)
			return
		}

		params := comexclient.MonthlySeriesParams{
			Granularity: granularity,
			StartMonth:  query.Get("start_month"),
			EndMonth:    query.Get("end_month"),
			Importer:    query.Get("importer"),
		}

		if err := validateMonthParam("start_month", params.StartMonth); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}
		if err := validateMonthParam("end_month", params.EndMonth); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}

		points, err := services.Dashboard.MonthlySeries(r.Context(), params)
		if err != nil {
			log.ForContext(r.Context()).Errorf("Erro ao carregar evolução mensal: %v", err)
			handleUpstreamError(w, err)
			return
		}

		json.NewEncoder(w).Encode(services.Charts.MonthlyEvolution(points, granularity))
	}
}

// GetCountriesChart devolve o ranking de países de origem como gráfico de
// barras horizontais
func GetCountriesChart(services DashboardServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCountriesChart")

		filters, err := parseFilterState(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, "Filtros inválidos", err.Error())
			return
		}

		countries, err := services.Dashboard.Countries(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).Errorf("Erro ao carregar países de origem: %v", err)
			handleUpstreamError(w, err)
			return
		}

		json.NewEncoder(w).Encode(services.Charts.CountriesBar(countries))
	}
}

// RefreshDashboard invalida o cache e recarrega a visão padrão na hora
func RefreshDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RefreshDashboard")

		if err := service.ForceRefresh(r.Context()); err != nil {
			log.ForContext(r.Context()).Errorf("Erro ao atualizar a dashboard: %v", err)
			handleUpstreamError(w, err)
			return
		}

		response := map[string]any{
			"message": "Dashboard atualizada com sucesso",
		}
		if lastUpdate := service.CacheLastUpdate(); !lastUpdate.IsZero() {
			response["cache_last_update"] = lastUpdate.Format(time.RFC3339)
		}

		json.NewEncoder(w).Encode(response)
	}
}

func buildDashboardView(
	ctx context.Context,
	services DashboardServices,
	userID int,
	entitlements domain.Entitlements,
	kpis *domain.KPISet,
	charts *domain.ChartSet,
	operations []*domain.OperationRecord,
	filterOptions *domain.FilterOptions,
	failedResources int,
) *dashboardView {
	visible := services.Columns.VisibleColumns(ctx, userID, entitlements)

	view := &dashboardView{
		KPIs:             kpis,
		Charts:           buildChartSetView(services.Charts, charts),
		Operations:       services.Renderer.Table(operations, visible),
		FilterOptions:    filterOptions,
		CanViewMaterials: entitlements.CanViewMaterials,
		FailedResources:  failedResources,
	}

	if lastUpdate := services.Dashboard.CacheLastUpdate(); !lastUpdate.IsZero() {
		view.CacheLastUpdate = lastUpdate.Format(time.RFC3339)
	}

	return view
}

func buildChartSetView(charter charting.Charter, charts *domain.ChartSet) *chartSetView {
	if charts == nil {
		charts = &domain.ChartSet{}
	}

	return &chartSetView{
		StatusDistribution: charter.StatusDoughnut(charts.StatusDistribution),
		ModalSplit:         charter.ModalPie(charts.ModalSplit),
	}
}

// parseFilterState monta o estado de filtros a partir da query string.
// Listas de múltipla escolha viajam separadas por vírgula; sem nenhum
// filtro ativo o retorno é nil, que representa a visão padrão cacheável.
func parseFilterState(r *http.Request) (*domain.FilterState, error) {
	query := r.URL.Query()

	filters := &domain.FilterState{
		Statuses:  splitParam(query.Get("status")),
		Importers: splitParam(query.Get("importer")),
		Channels:  splitParam(query.Get("channel")),
		Modals:    splitParam(query.Get("modal")),
		URFs:      splitParam(query.Get("urf")),
		StatusTag: query.Get("status_tag"),
	}

	if raw := query.Get("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("start_date deve estar no formato AAAA-MM-DD: %q", raw)
		}
		filters.StartDate = parsed
	}

	if raw := query.Get("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("end_date deve estar no formato AAAA-MM-DD: %q", raw)
		}
		filters.EndDate = parsed
	}

	if filters.IsEmpty() {
		return nil, nil
	}

	return filters, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	if len(items) == 0 {
		return nil
	}

	return items
}

func validateMonthParam(name, raw string) error {
	if _, err := utils.ParseMonth(raw); err != nil {
		return fmt.Errorf("%s deve estar no formato AAAA-MM: %q", name, raw)
	}

	return nil
}

// handleUpstreamError traduz falhas da ComexAPI para o envelope de erro da API
func handleUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrOperationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Processo não encontrado", nil)
	case errors.Is(err, context.Canceled):
		// Carga substituída por uma requisição mais recente ou abortada pelo cliente
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Requisição cancelada antes da conclusão", nil)
	case comexdomain.IsDecodeError(err):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "Resposta inválida da API de operações", nil)
	case comexdomain.IsAPIError(err):
		apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "A API de operações reportou uma falha", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "Erro ao consultar a API de operações", nil)
	}
}
