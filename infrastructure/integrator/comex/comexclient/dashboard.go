package comexclient

import (
	"context"
	"net/http"

	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

// GetBootstrap busca o agregado combinado: KPIs + gráficos + prévia de
// operações + opções de filtro em uma única chamada.
func (c *ComexClient) GetBootstrap(ctx context.Context) (*comexdomain.BootstrapResponse, error) {
	const endpoint = "/dashboard/bootstrap"

	var response comexdomain.BootstrapResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *ComexClient) GetKPIs(ctx context.Context, filters *domain.FilterState) (*comexdomain.KPIsResponse, error) {
	const endpoint = "/dashboard/kpis"

	var response comexdomain.KPIsResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, filterQuery(filters), nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *ComexClient) GetCharts(ctx context.Context, filters *domain.FilterState) (*comexdomain.ChartsResponse, error) {
	const endpoint = "/dashboard/charts"

	var response comexdomain.ChartsResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, filterQuery(filters), nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *ComexClient) GetFilterOptions(ctx context.Context) (*comexdomain.FilterOptionsResponse, error) {
	const endpoint = "/dashboard/filter-options"

	var response comexdomain.FilterOptionsResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}

// ForceRefresh pede para a ComexAPI recalcular os agregados da dashboard.
func (c *ComexClient) ForceRefresh(ctx context.Context) (*comexdomain.RefreshResponse, error) {
	const endpoint = "/dashboard/refresh"

	var response comexdomain.RefreshResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, nil, nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}
