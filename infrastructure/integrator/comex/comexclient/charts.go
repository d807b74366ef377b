package comexclient

import (
	"context"
	"net/http"
	"net/url"

	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

// MonthlySeriesParams parametriza a série de evolução mensal.
type MonthlySeriesParams struct {
	Granularity string // month ou week
	StartMonth  string // AAAA-MM
	EndMonth    string // AAAA-MM
	Importer    string
}

// GetMonthlySeries busca a série temporal usada no gráfico de evolução.
func (c *ComexClient) GetMonthlySeries(ctx context.Context, params MonthlySeriesParams) (*comexdomain.MonthlySeriesResponse, error) {
	const endpoint = "/dashboard/charts/monthly"

	query := url.Values{}
	if params.Granularity != "" {
		query.Set("granularity", params.Granularity)
	}
	if params.StartMonth != "" {
		query.Set("start_month", params.StartMonth)
	}
	if params.EndMonth != "" {
		query.Set("end_month", params.EndMonth)
	}
	if params.Importer != "" {
		query.Set("importer", params.Importer)
	}

	var response comexdomain.MonthlySeriesResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, query, nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetCountries busca a distribuição de processos por país de origem.
func (c *ComexClient) GetCountries(ctx context.Context, filters *domain.FilterState) (*comexdomain.CountriesResponse, error) {
	const endpoint = "/dashboard/charts/countries"

	var response comexdomain.CountriesResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, filterQuery(filters), nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}
