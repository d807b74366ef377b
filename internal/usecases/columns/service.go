package columns

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/comexflow/import-dashboard-api/infrastructure/repository"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/log"
)

// Configurator resolve, normaliza e persiste a configuração de colunas
// da tabela de operações de cada usuário.
type Configurator interface {
	Registry(entitlements domain.Entitlements) []domain.ColumnDefinition
	DefaultConfig() []domain.ColumnConfig
	Normalize(configs []domain.ColumnConfig) []domain.ColumnConfig
	ResolveConfig(ctx context.Context, userID int) []domain.ColumnConfig
	SaveConfig(ctx context.Context, userID int, configs []domain.ColumnConfig) error
	ResetConfig(ctx context.Context, userID int) error
	SetTemporaryConfig(userID int, configs []domain.ColumnConfig)
	ClearTemporaryConfig(userID int)
	VisibleColumns(ctx context.Context, userID int, entitlements domain.Entitlements) []domain.ColumnDefinition
}

type Service struct {
	repo repository.ColumnConfigRepository

	mu sync.Mutex
	// Configuração normalizada já resolvida nesta instância do processo
	cached map[int][]domain.ColumnConfig
	// Configuração temporária (diálogo de preferências aberto, ainda não salva)
	temporary map[int][]domain.ColumnConfig
}

func NewService(repo repository.ColumnConfigRepository) Configurator {
	return &Service{
		repo:      repo,
		cached:    make(map[int][]domain.ColumnConfig),
		temporary: make(map[int][]domain.ColumnConfig),
	}
}

// Registry devolve as definições configuráveis pelo usuário. Colunas da
// categoria restrita são removidas da visão de quem não tem a permissão
// de materiais; o que já está persistido nunca é reescrito por isso.
func (s *Service) Registry(entitlements domain.Entitlements) []domain.ColumnDefinition {
	defs := make([]domain.ColumnDefinition, 0, len(registry))
	for _, def := range registry {
		if def.Category == domain.ColumnCategoryRestricted && !entitlements.CanViewMaterials {
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

// DefaultConfig monta a configuração padrão a partir do registro
func (s *Service) DefaultConfig() []domain.ColumnConfig {
	configs := make([]domain.ColumnConfig, 0, len(registry))
	for _, def := range registry {
		configs = append(configs, domain.ColumnConfig{
			ID:      def.ID,
			Visible: def.Visible || def.Fixed,
			Order:   def.Order,
		})
	}
	return configs
}

// Normalize reconcilia uma configuração possivelmente parcial ou antiga
// com o registro atual:
//   - ids desconhecidos são descartados e duplicatas colapsam na primeira
//     ocorrência
//   - colunas fixas ficam sempre visíveis
//   - ids ausentes entram depois das entradas salvas, com seus padrões
//   - a ordem final é reatribuída de forma contígua (0..n-1), com a
//     ordenação estável desempatando a favor do que o usuário salvou
//
// A função é idempotente: normalizar um resultado já normalizado não o
// altera.
func (s *Service) Normalize(configs []domain.ColumnConfig) []domain.ColumnConfig {
	merged := make([]domain.ColumnConfig, 0, len(registry))
	seen := make(map[string]bool, len(registry))

	// Entradas salvas primeiro, na ordem em que foram salvas
	for _, stored := range configs {
		def, known := registryIndex[stored.ID]
		if !known || seen[stored.ID] {
			continue
		}
		seen[stored.ID] = true

		merged = append(merged, domain.ColumnConfig{
			ID:      stored.ID,
			Visible: stored.Visible || def.Fixed,
			Order:   stored.Order,
		})
	}

	// Colunas do registro que não constavam na configuração salva
	for _, def := range registry {
		if seen[def.ID] {
			continue
		}
		merged = append(merged, domain.ColumnConfig{
			ID:      def.ID,
			Visible: def.Visible || def.Fixed,
			Order:   def.Order,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Order < merged[j].Order
	})

	for i := range merged {
		merged[i].Order = i
	}

	return merged
}

// ResolveConfig devolve a configuração efetiva do usuário, na ordem de
// precedência: temporária, cache do processo, persistida, padrão.
// Sempre devolve uma cópia defensiva; falhas de leitura ou dados
// corrompidos caem nos padrões sem propagar erro.
func (s *Service) ResolveConfig(ctx context.Context, userID int) []domain.ColumnConfig {
	s.mu.Lock()
	if temp, ok := s.temporary[userID]; ok {
		defer s.mu.Unlock()
		return copyConfigs(temp)
	}
	if cached, ok := s.cached[userID]; ok {
		defer s.mu.Unlock()
		return copyConfigs(cached)
	}
	s.mu.Unlock()

	persisted, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCorruptedColumnConfig) {
			log.L.WithField("user_id", userID).Warn("Configuração de colunas corrompida, usando padrões")
			defaults := s.DefaultConfig()
			s.storeInCache(userID, defaults)
			return copyConfigs(defaults)
		}

		// Banco indisponível não pode derrubar a dashboard: segue com os
		// padrões sem gravar no cache, para tentar de novo na próxima
		log.L.WithField("user_id", userID).Warnf("Erro ao carregar configuração de colunas: %v", err)
		return s.DefaultConfig()
	}

	resolved := s.Normalize(persisted)
	s.storeInCache(userID, resolved)
	return copyConfigs(resolved)
}

// SaveConfig normaliza, persiste e atualiza o cache do processo.
// Qualquer configuração temporária pendente é descartada.
func (s *Service) SaveConfig(ctx context.Context, userID int, configs []domain.ColumnConfig) error {
	normalized := s.Normalize(configs)

	if err := s.repo.Save(ctx, userID, normalized); err != nil {
		return err
	}

	s.mu.Lock()
	s.cached[userID] = copyConfigs(normalized)
	delete(s.temporary, userID)
	s.mu.Unlock()

	return nil
}

// ResetConfig remove a configuração persistida e volta aos padrões
func (s *Service) ResetConfig(ctx context.Context, userID int) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cached, userID)
	delete(s.temporary, userID)
	s.mu.Unlock()

	return nil
}

// SetTemporaryConfig guarda uma configuração em edição, que passa a ter
// precedência até ser salva ou descartada
func (s *Service) SetTemporaryConfig(userID int, configs []domain.ColumnConfig) {
	normalized := s.Normalize(configs)

	s.mu.Lock()
	s.temporary[userID] = normalized
	s.mu.Unlock()
}

// ClearTemporaryConfig descarta a configuração em edição
func (s *Service) ClearTemporaryConfig(userID int) {
	s.mu.Lock()
	delete(s.temporary, userID)
	s.mu.Unlock()
}

// VisibleColumns devolve as definições visíveis para o usuário, já na
// ordem configurada e sem as colunas restritas quando faltar permissão
func (s *Service) VisibleColumns(ctx context.Context, userID int, entitlements domain.Entitlements) []domain.ColumnDefinition {
	resolved := s.ResolveConfig(ctx, userID)

	visible := make([]domain.ColumnDefinition, 0, len(resolved))
	for _, cfg := range resolved {
		if !cfg.Visible {
			continue
		}

		def, known := registryIndex[cfg.ID]
		if !known {
			continue
		}

		if def.Category == domain.ColumnCategoryRestricted && !entitlements.CanViewMaterials {
			continue
		}

		visible = append(visible, def)
	}

	return visible
}

func (s *Service) storeInCache(userID int, configs []domain.ColumnConfig) {
	s.mu.Lock()
	s.cached[userID] = copyConfigs(configs)
	s.mu.Unlock()
}

func copyConfigs(configs []domain.ColumnConfig) []domain.ColumnConfig {
	out := make([]domain.ColumnConfig, len(configs))
	copy(out, configs)
	return out
}
