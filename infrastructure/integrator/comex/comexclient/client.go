package comexclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client expõe as rotas da ComexAPI consumidas pela dashboard.
type Client interface {
	GetBootstrap(ctx context.Context) (*comexdomain.BootstrapResponse, error)
	GetKPIs(ctx context.Context, filters *domain.FilterState) (*comexdomain.KPIsResponse, error)
	GetCharts(ctx context.Context, filters *domain.FilterState) (*comexdomain.ChartsResponse, error)
	GetOperations(ctx context.Context, filters *domain.FilterState, includeAll bool) (*comexdomain.OperationsResponse, error)
	GetFilterOptions(ctx context.Context) (*comexdomain.FilterOptionsResponse, error)
	GetMonthlySeries(ctx context.Context, params MonthlySeriesParams) (*comexdomain.MonthlySeriesResponse, error)
	GetCountries(ctx context.Context, filters *domain.FilterState) (*comexdomain.CountriesResponse, error)
	ForceRefresh(ctx context.Context) (*comexdomain.RefreshResponse, error)

	ListDocuments(ctx context.Context, processRef string) (*comexdomain.DocumentsResponse, error)
	UploadDocument(ctx context.Context, processRef string, upload DocumentUpload) (*comexdomain.DocumentResponse, error)
	DeleteDocument(ctx context.Context, processRef, documentID string) (*comexdomain.APIResponse, error)
	DownloadDocuments(ctx context.Context, processRef string) (*domain.DocumentDownload, error)
}

type ComexClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da ComexAPI.
func NewClient(cfg *config.Config) Client {
	return &ComexClient{
		httpClient: &http.Client{
			Timeout: cfg.ComexAPI.Timeout,
		},
		config: cfg,
	}
}

// buildURL monta a URL de um endpoint da ComexAPI com a query informada.
func (c *ComexClient) buildURL(endpoint string, query url.Values) (string, error) {
	parsed, err := url.Parse(c.config.ComexAPI.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}

	parsed.Path = path.Join(parsed.Path, endpoint)

	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

// doJSON executa a requisição, valida o status HTTP e decodifica a resposta
// no destino informado. Payload mal formado vira DecodeError.
func (c *ComexClient) doJSON(ctx context.Context, method, endpoint string, query url.Values, body io.Reader, contentType string, out any) error {
	fullURL, err := c.buildURL(endpoint, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.ComexAPI.AccessToken)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição %s falhou com status: %s", endpoint, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &comexdomain.DecodeError{Endpoint: endpoint, Err: err}
	}

	return nil
}

// checkEnvelope converte success=false na falha lógica correspondente.
func checkEnvelope(endpoint string, envelope comexdomain.APIResponse) error {
	if envelope.Success {
		return nil
	}

	return &comexdomain.APIError{Endpoint: endpoint, Message: envelope.Error}
}

// doRaw executa a requisição e devolve o corpo bruto, usado pelo download de
// documentos onde a resposta é um ZIP e não um envelope JSON.
func (c *ComexClient) doRaw(ctx context.Context, method, endpoint string, query url.Values) ([]byte, string, error) {
	fullURL, err := c.buildURL(endpoint, query)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.ComexAPI.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("requisição %s falhou com status: %s", endpoint, resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return content, resp.Header.Get("Content-Type"), nil
}

// filterQuery converte o estado de filtros em query string, aceitando nil.
func filterQuery(filters *domain.FilterState) url.Values {
	if filters == nil {
		return url.Values{}
	}

	return filters.QueryValues()
}
