package dashboarding

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex"
	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/comexclient"
	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/log"
	"github.com/comexflow/import-dashboard-api/pkg/retry"
)

// Chaves de de-duplicação de recursos que não entram no cache
const (
	kindBootstrap     Kind = "bootstrap"
	kindMonthlySeries Kind = "monthly_series"
	kindCountries     Kind = "countries"
)

var ErrOperationNotFound = errors.New("processo não encontrado")

// DashboardResult agrega o resultado da carga composta. Falhas
// individuais não abortam o restante: o contador de recursos
// indisponíveis alimenta um único aviso não bloqueante no front.
type DashboardResult struct {
	KPIs            *domain.KPISet
	Charts          *domain.ChartSet
	Operations      []*domain.OperationRecord
	FilterOptions   *domain.FilterOptions
	FailedResources int
}

// BootstrapResult embala a resposta da carga inicial. Combined indica
// que os dados vieram da chamada combinada (e portanto trazem a
// permissão de materiais do upstream); caso contrário o chamador deve
// preenchê-la a partir do token.
type BootstrapResult struct {
	Data            *domain.BootstrapData
	FailedResources int
	Combined        bool
}

// Dashboarder orquestra as cargas da dashboard: cache, repetição com
// espera progressiva, de-duplicação por recurso e degradação para o
// último valor conhecido quando o upstream esgota as tentativas.
type Dashboarder interface {
	Bootstrap(ctx context.Context, filters *domain.FilterState) (*BootstrapResult, error)
	LoadDashboard(ctx context.Context, filters *domain.FilterState) *DashboardResult
	LoadKPIs(ctx context.Context, filters *domain.FilterState) (*domain.KPISet, error)
	LoadCharts(ctx context.Context, filters *domain.FilterState) (*domain.ChartSet, error)
	LoadOperations(ctx context.Context, filters *domain.FilterState) ([]*domain.OperationRecord, error)
	LoadFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	MonthlySeries(ctx context.Context, params comexclient.MonthlySeriesParams) ([]domain.MonthlyPoint, error)
	Countries(ctx context.Context, filters *domain.FilterState) ([]domain.CountrySlice, error)
	OperationByRef(ctx context.Context, ref string) (*domain.OperationRecord, error)
	ForceRefresh(ctx context.Context) error
	Invalidate()
	CacheLastUpdate() time.Time
}

type Service struct {
	cfg     *config.Config
	comex   comex.Integrator
	cache   *Cache
	flights *inflightRegistry

	// Esquemas de espera por ponto de chamada: linear para os
	// carregadores de componentes, exponencial para a carga combinada
	loadDelay      func(int) time.Duration
	bootstrapDelay func(int) time.Duration

	mu      sync.Mutex
	loading bool
}

func NewService(cfg *config.Config, integrator comex.Integrator) Dashboarder {
	return &Service{
		cfg:            cfg,
		comex:          integrator,
		cache:          NewCache(cfg.Dashboard.CacheTimeout),
		flights:        newInflightRegistry(),
		loadDelay:      retry.Linear(time.Second),
		bootstrapDelay: retry.Exponential(time.Second),
	}
}

// defaultRetryable repete falhas de transporte, respostas com
// success=false e conjuntos vazios. Erro de decodificação não se
// repete: o payload não vai mudar entre tentativas.
func defaultRetryable(err error) bool {
	return !comexdomain.IsDecodeError(err)
}

func (s *Service) loadOptions(kind Kind) retry.Options {
	return retry.Options{
		Resource:    string(kind),
		MaxAttempts: s.cfg.Dashboard.LoadMaxAttempts,
		Delay:       s.loadDelay,
		Retryable:   defaultRetryable,
	}
}

// Apenas a visão sem filtros (a da entrada da dashboard) entra no
// cache: com filtros ativos cada usuário enxerga um recorte próprio
func cacheableFilters(filters *domain.FilterState) bool {
	return filters == nil || filters.IsEmpty()
}

// loadResource é o caminho comum de todos os carregadores: cache
// (leitura), de-duplicação, repetição e, por fim, degradação para o
// último valor conhecido. Cargas canceladas nunca escrevem no cache.
func loadResource[T any](s *Service, ctx context.Context, kind Kind, cacheable bool, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	if cacheable {
		if value, ok := s.cache.Get(kind); ok {
			if typed, ok := value.(T); ok {
				return typed, nil
			}
		}
	}

	flightCtx, release := s.flights.begin(ctx, kind)
	defer release()

	result, err := retry.Do(flightCtx, s.loadOptions(kind), fetch)
	if err != nil {
		if flightCtx.Err() != nil {
			return zero, flightCtx.Err()
		}

		if cacheable {
			if value, ok := s.cache.Peek(kind); ok {
				if typed, ok := value.(T); ok {
					log.L.WithField("kind", string(kind)).Warnf("Tentativas esgotadas, servindo último valor conhecido: %v", err)
					return typed, nil
				}
			}
		}

		return zero, err
	}

	// A carga pode ter sido substituída durante a decodificação; o
	// resultado velho não pode sobrescrever o mais novo
	if flightCtx.Err() != nil {
		return zero, flightCtx.Err()
	}

	if cacheable {
		s.cache.Set(kind, result)
	}

	return result, nil
}

func (s *Service) LoadKPIs(ctx context.Context, filters *domain.FilterState) (*domain.KPISet, error) {
	return loadResource(s, ctx, KindKPIs, cacheableFilters(filters), func(ctx context.Context) (*domain.KPISet, error) {
		kpis, err := s.comex.KPIs(ctx, filters)
		if err != nil {
			return nil, err
		}
		if kpis == nil {
			return nil, comexdomain.ErrEmptyDataset
		}
		return kpis, nil
	})
}

func (s *Service) LoadCharts(ctx context.Context, filters *domain.FilterState) (*domain.ChartSet, error) {
	return loadResource(s, ctx, KindCharts, cacheableFilters(filters), func(ctx context.Context) (*domain.ChartSet, error) {
		charts, err := s.comex.Charts(ctx, filters)
		if err != nil {
			return nil, err
		}
		if charts == nil {
			return nil, comexdomain.ErrEmptyDataset
		}
		return charts, nil
	})
}

func (s *Service) LoadOperations(ctx context.Context, filters *domain.FilterState) ([]*domain.OperationRecord, error) {
	return loadResource(s, ctx, KindOperations, cacheableFilters(filters), func(ctx context.Context) ([]*domain.OperationRecord, error) {
		return s.fetchOperations(ctx, filters)
	})
}

func (s *Service) LoadFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	return loadResource(s, ctx, KindFilterOptions, true, func(ctx context.Context) (*domain.FilterOptions, error) {
		options, err := s.comex.FilterOptions(ctx)
		if err != nil {
			return nil, err
		}
		if options == nil {
			return nil, comexdomain.ErrEmptyDataset
		}
		return options, nil
	})
}

// fetchOperations busca o conjunto de operações preferindo a lista
// completa quando o upstream a envia junto da prévia
func (s *Service) fetchOperations(ctx context.Context, filters *domain.FilterState) ([]*domain.OperationRecord, error) {
	data, err := s.comex.Operations(ctx, filters, true)
	if err != nil {
		return nil, err
	}

	operations := data.OperationsAll
	if len(operations) == 0 {
		operations = data.Operations
	}
	if len(operations) == 0 {
		return nil, comexdomain.ErrEmptyDataset
	}

	return operations, nil
}

// LoadDashboard dispara as quatro cargas em paralelo e junta os
// resultados. Falha de um recurso não derruba os demais; o total de
// falhas vai no resultado para virar um único aviso.
func (s *Service) LoadDashboard(ctx context.Context, filters *domain.FilterState) *DashboardResult {
	result := &DashboardResult{}

	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func() {
		mu.Lock()
		result.FailedResources++
		mu.Unlock()
	}

	wg.Add(4)

	go func() {
		defer wg.Done()
		kpis, err := s.LoadKPIs(ctx, filters)
		if err != nil {
			fail()
			return
		}
		mu.Lock()
		result.KPIs = kpis
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		charts, err := s.LoadCharts(ctx, filters)
		if err != nil {
			fail()
			return
		}
		mu.Lock()
		result.Charts = charts
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		operations, err := s.LoadOperations(ctx, filters)
		if err != nil {
			fail()
			return
		}
		mu.Lock()
		result.Operations = operations
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		options, err := s.LoadFilterOptions(ctx)
		if err != nil {
			fail()
			return
		}
		mu.Lock()
		result.FilterOptions = options
		mu.Unlock()
	}()

	wg.Wait()

	if result.FailedResources > 0 {
		log.L.Warnf("Carga da dashboard concluída com %d recurso(s) indisponível(is)", result.FailedResources)
	}

	return result
}

// Bootstrap tenta a chamada combinada (KPIs + gráficos + prévia de
// operações + opções de filtro em uma resposta só) e, em caso de
// sucesso, dispara em segundo plano a troca da prévia pelo conjunto
// completo. Se a combinada falhar, cai para as cargas independentes.
func (s *Service) Bootstrap(ctx context.Context, filters *domain.FilterState) (*BootstrapResult, error) {
	if !s.tryBeginLoading() {
		log.L.Info("Carga completa da dashboard já em andamento, servindo componentes individuais")
		return s.bootstrapFallback(ctx, filters), nil
	}
	defer s.endLoading()

	flightCtx, release := s.flights.begin(ctx, kindBootstrap)
	defer release()

	options := retry.Options{
		Resource:    string(kindBootstrap),
		MaxAttempts: s.cfg.Dashboard.BootstrapMaxAttempts,
		Delay:       s.bootstrapDelay,
		Retryable:   defaultRetryable,
	}

	data, err := retry.Do(flightCtx, options, func(ctx context.Context) (*domain.BootstrapData, error) {
		return s.comex.Bootstrap(ctx)
	})
	if err != nil {
		if flightCtx.Err() != nil {
			return nil, flightCtx.Err()
		}

		log.L.Warnf("Carga combinada falhou, caindo para cargas independentes: %v", err)
		return s.bootstrapFallback(ctx, filters), nil
	}

	if flightCtx.Err() != nil {
		return nil, flightCtx.Err()
	}

	if cacheableFilters(filters) {
		if data.KPIs != nil {
			s.cache.Set(KindKPIs, data.KPIs)
		}
		if data.Charts != nil {
			s.cache.Set(KindCharts, data.Charts)
		}
		if len(data.Operations) > 0 {
			s.cache.Set(KindOperations, data.Operations)
		}
		if data.FilterOptions != nil {
			s.cache.Set(KindFilterOptions, data.FilterOptions)
		}

		// A prévia não tem os campos do detalhe do processo; o conjunto
		// completo chega depois, sem bloquear a resposta inicial
		go s.replaceOperationsPreview()
	}

	return &BootstrapResult{Data: data, Combined: true}, nil
}

func (s *Service) bootstrapFallback(ctx context.Context, filters *domain.FilterState) *BootstrapResult {
	loaded := s.LoadDashboard(ctx, filters)

	return &BootstrapResult{
		Data: &domain.BootstrapData{
			KPIs:          loaded.KPIs,
			Charts:        loaded.Charts,
			Operations:    loaded.Operations,
			FilterOptions: loaded.FilterOptions,
		},
		FailedResources: loaded.FailedResources,
	}
}

// replaceOperationsPreview roda em segundo plano após uma carga
// combinada bem sucedida. Usa a mesma chave de voo das operações, então
// uma carga disparada pelo usuário no meio do caminho vence a disputa.
func (s *Service) replaceOperationsPreview() {
	flightCtx, release := s.flights.begin(context.Background(), KindOperations)
	defer release()

	operations, err := retry.Do(flightCtx, s.loadOptions(KindOperations), func(ctx context.Context) ([]*domain.OperationRecord, error) {
		return s.fetchOperations(ctx, nil)
	})
	if err != nil {
		if flightCtx.Err() != nil {
			log.L.Debug("Troca da prévia de operações substituída por carga mais nova")
			return
		}
		log.L.Warnf("Não foi possível buscar o conjunto completo de operações em segundo plano: %v", err)
		return
	}

	if flightCtx.Err() != nil {
		return
	}

	s.cache.Set(KindOperations, operations)
	log.L.WithField("kind", string(KindOperations)).Debugf("Prévia substituída pelo conjunto completo (%d processos)", len(operations))
}

// MonthlySeries busca a série mensal/semanal dos gráficos de evolução.
// Não entra no cache: cada combinação de período e granularidade é um
// recorte diferente; ainda assim a de-duplicação evita corridas.
func (s *Service) MonthlySeries(ctx context.Context, params comexclient.MonthlySeriesParams) ([]domain.MonthlyPoint, error) {
	flightCtx, release := s.flights.begin(ctx, kindMonthlySeries)
	defer release()

	series, err := retry.Do(flightCtx, s.loadOptions(kindMonthlySeries), func(ctx context.Context) ([]domain.MonthlyPoint, error) {
		series, err := s.comex.MonthlySeries(ctx, params)
		if err != nil {
			return nil, err
		}
		if len(series) == 0 {
			return nil, comexdomain.ErrEmptyDataset
		}
		return series, nil
	})
	if err != nil {
		if flightCtx.Err() != nil {
			return nil, flightCtx.Err()
		}
		return nil, err
	}

	return series, nil
}

// Countries busca o ranking de países de origem; mesmo regime da série
// mensal (sem cache, com de-duplicação e repetição)
func (s *Service) Countries(ctx context.Context, filters *domain.FilterState) ([]domain.CountrySlice, error) {
	flightCtx, release := s.flights.begin(ctx, kindCountries)
	defer release()

	countries, err := retry.Do(flightCtx, s.loadOptions(kindCountries), func(ctx context.Context) ([]domain.CountrySlice, error) {
		countries, err := s.comex.Countries(ctx, filters)
		if err != nil {
			return nil, err
		}
		if len(countries) == 0 {
			return nil, comexdomain.ErrEmptyDataset
		}
		return countries, nil
	})
	if err != nil {
		if flightCtx.Err() != nil {
			return nil, flightCtx.Err()
		}
		return nil, err
	}

	return countries, nil
}

// OperationByRef localiza um processo para a visão de detalhe. A prévia
// da carga combinada pode não conter o processo; nesse caso o conjunto
// completo é buscado sem cancelar cargas da tabela em andamento.
func (s *Service) OperationByRef(ctx context.Context, ref string) (*domain.OperationRecord, error) {
	if value, ok := s.cache.Get(KindOperations); ok {
		if operations, ok := value.([]*domain.OperationRecord); ok {
			if record := findByRef(operations, ref); record != nil {
				return record, nil
			}
		}
	}

	operations, err := retry.Do(ctx, s.loadOptions(KindOperations), func(ctx context.Context) ([]*domain.OperationRecord, error) {
		return s.fetchOperations(ctx, nil)
	})
	if err != nil {
		if value, ok := s.cache.Peek(KindOperations); ok {
			if cached, ok := value.([]*domain.OperationRecord); ok {
				if record := findByRef(cached, ref); record != nil {
					return record, nil
				}
			}
		}
		return nil, err
	}

	s.cache.Set(KindOperations, operations)

	if record := findByRef(operations, ref); record != nil {
		return record, nil
	}

	return nil, ErrOperationNotFound
}

func findByRef(operations []*domain.OperationRecord, ref string) *domain.OperationRecord {
	for _, record := range operations {
		if record != nil && record.Ref == ref {
			return record
		}
	}
	return nil
}

// ForceRefresh descarta o cache, pede ao upstream que recalcule seus
// agregados e reaquece a visão padrão na sequência. Ação explícita do
// usuário: a falha do recálculo sobe; falhas parciais do reaquecimento
// viram aviso como em qualquer carga composta.
func (s *Service) ForceRefresh(ctx context.Context) error {
	s.cache.Invalidate()

	if err := s.comex.ForceRefresh(ctx); err != nil {
		return err
	}

	s.LoadDashboard(ctx, nil)
	return nil
}

// Invalidate descarta o cache (usado pelo agendador antes do reaquecimento)
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}

// CacheLastUpdate expõe o carimbo compartilhado para diagnóstico
func (s *Service) CacheLastUpdate() time.Time {
	return s.cache.LastUpdate()
}

func (s *Service) tryBeginLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loading {
		return false
	}
	s.loading = true
	return true
}

func (s *Service) endLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
