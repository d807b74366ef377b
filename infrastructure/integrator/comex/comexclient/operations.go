package comexclient

import (
	"context"
	"net/http"

	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

// GetOperations busca as operações recentes. Com includeAll a resposta traz
// também o conjunto completo (operations_all), necessário para a visão de
// detalhe, que usa campos ausentes na prévia.
func (c *ComexClient) GetOperations(ctx context.Context, filters *domain.FilterState, includeAll bool) (*comexdomain.OperationsResponse, error) {
	const endpoint = "/dashboard/operations"

	query := filterQuery(filters)
	if includeAll {
		query.Set("include_all", "true")
	}

	var response comexdomain.OperationsResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, query, nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}
