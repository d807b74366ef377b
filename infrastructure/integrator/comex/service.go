package comex

import (
	"context"

	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/comexclient"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

// Integrator é a visão da ComexAPI consumida pelos casos de uso: respostas
// já desembrulhadas do envelope {success, error} e convertidas para os tipos
// de domínio da dashboard.
type Integrator interface {
	Bootstrap(ctx context.Context) (*domain.BootstrapData, error)
	KPIs(ctx context.Context, filters *domain.FilterState) (*domain.KPISet, error)
	Charts(ctx context.Context, filters *domain.FilterState) (*domain.ChartSet, error)
	Operations(ctx context.Context, filters *domain.FilterState, includeAll bool) (*domain.OperationsData, error)
	FilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	MonthlySeries(ctx context.Context, params comexclient.MonthlySeriesParams) ([]domain.MonthlyPoint, error)
	Countries(ctx context.Context, filters *domain.FilterState) ([]domain.CountrySlice, error)
	ForceRefresh(ctx context.Context) error

	ListDocuments(ctx context.Context, processRef string) ([]*domain.ProcessDocument, error)
	UploadDocument(ctx context.Context, processRef string, upload comexclient.DocumentUpload) (*domain.ProcessDocument, error)
	DeleteDocument(ctx context.Context, processRef, documentID string) error
	DownloadDocuments(ctx context.Context, processRef string) (*domain.DocumentDownload, error)
}

type ComexService struct {
	cfg    *config.Config
	Client comexclient.Client
}

func New(cfg *config.Config, client comexclient.Client) Integrator {
	return &ComexService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ComexService) Bootstrap(ctx context.Context) (*domain.BootstrapData, error) {
	resp, err := s.Client.GetBootstrap(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.BootstrapData{
		KPIs:             resp.KPIs,
		Charts:           resp.Charts,
		Operations:       resp.Operations,
		FilterOptions:    resp.FilterOptions,
		CanViewMaterials: resp.CanViewMaterials,
	}, nil
}

func (s *ComexService) KPIs(ctx context.Context, filters *domain.FilterState) (*domain.KPISet, error) {
	resp, err := s.Client.GetKPIs(ctx, filters)
	if err != nil {
		return nil, err
	}

	return resp.KPIs, nil
}

func (s *ComexService) Charts(ctx context.Context, filters *domain.FilterState) (*domain.ChartSet, error) {
	resp, err := s.Client.GetCharts(ctx, filters)
	if err != nil {
		return nil, err
	}

	return resp.Charts, nil
}

func (s *ComexService) Operations(ctx context.Context, filters *domain.FilterState, includeAll bool) (*domain.OperationsData, error) {
	resp, err := s.Client.GetOperations(ctx, filters, includeAll)
	if err != nil {
		return nil, err
	}

	return &domain.OperationsData{
		Operations:    resp.Operations,
		OperationsAll: resp.OperationsAll,
	}, nil
}

func (s *ComexService) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	resp, err := s.Client.GetFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	return resp.FilterOptions, nil
}

func (s *ComexService) MonthlySeries(ctx context.Context, params comexclient.MonthlySeriesParams) ([]domain.MonthlyPoint, error) {
	resp, err := s.Client.GetMonthlySeries(ctx, params)
	if err != nil {
		return nil, err
	}

	return resp.Series, nil
}

func (s *ComexService) Countries(ctx context.Context, filters *domain.FilterState) ([]domain.CountrySlice, error) {
	resp, err := s.Client.GetCountries(ctx, filters)
	if err != nil {
		return nil, err
	}

	return resp.Countries, nil
}

func (s *ComexService) ForceRefresh(ctx context.Context) error {
	_, err := s.Client.ForceRefresh(ctx)
	return err
}

func (s *ComexService) ListDocuments(ctx context.Context, processRef string) ([]*domain.ProcessDocument, error) {
	resp, err := s.Client.ListDocuments(ctx, processRef)
	if err != nil {
		return nil, err
	}

	return resp.Documents, nil
}

func (s *ComexService) UploadDocument(ctx context.Context, processRef string, upload comexclient.DocumentUpload) (*domain.ProcessDocument, error) {
	resp, err := s.Client.UploadDocument(ctx, processRef, upload)
	if err != nil {
		return nil, err
	}

	return resp.Document, nil
}

func (s *ComexService) DeleteDocument(ctx context.Context, processRef, documentID string) error {
	_, err := s.Client.DeleteDocument(ctx, processRef, documentID)
	return err
}

func (s *ComexService) DownloadDocuments(ctx context.Context, processRef string) (*domain.DocumentDownload, error) {
	return s.Client.DownloadDocuments(ctx, processRef)
}
