package dashboarding

import (
	"sync"
	"time"
)

// Kind identifica cada grupo de dados da dashboard no cache
type Kind string

const (
	KindKPIs          Kind = "kpis"
	KindCharts        Kind = "charts"
	KindOperations    Kind = "operations"
	KindFilterOptions Kind = "filter_options"
)

// Cache guarda a última resposta de cada grupo de dados por um período
// curto, evitando chamadas redundantes à API de operações.
//
// A validade é global: gravar qualquer grupo renova o carimbo
// compartilhado de todos. O comportamento é intencional — o restante da
// dashboard assume que "qualquer carga recente mantém tudo fresco
// junto" — e não deve ser trocado por TTL por chave.
type Cache struct {
	mu         sync.Mutex
	entries    map[Kind]any
	lastUpdate time.Time
	timeout    time.Duration

	// injetável para simular o relógio nos testes
	now func() time.Time
}

func NewCache(timeout time.Duration) *Cache {
	return &Cache{
		entries: make(map[Kind]any),
		timeout: timeout,
		now:     time.Now,
	}
}

// Get devolve o valor do grupo apenas se o cache ainda for válido
// e houver valor gravado para o grupo
func (c *Cache) Get(kind Kind) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.validLocked() {
		return nil, false
	}

	value, ok := c.entries[kind]
	return value, ok
}

// Peek devolve o último valor gravado mesmo que a validade tenha
// expirado: é a degradação usada quando o upstream esgota as tentativas
func (c *Cache) Peek(kind Kind) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[kind]
	return value, ok
}

// Set grava o valor do grupo e renova o carimbo compartilhado
func (c *Cache) Set(kind Kind, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[kind] = value
	c.lastUpdate = c.now()
}

// Invalidate descarta todos os valores e o carimbo; usado antes de uma
// atualização forçada que precisa ignorar dados possivelmente velhos
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Kind]any)
	c.lastUpdate = time.Time{}
}

// Valid informa se o carimbo compartilhado ainda está dentro da validade
func (c *Cache) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.validLocked()
}

// LastUpdate devolve o carimbo compartilhado (zero se nunca gravado)
func (c *Cache) LastUpdate() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastUpdate
}

func (c *Cache) validLocked() bool {
	if c.lastUpdate.IsZero() {
		return false
	}
	return c.now().Sub(c.lastUpdate) < c.timeout
}
