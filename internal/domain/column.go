package domain

// Categorias de colunas da tabela de operações. A categoria "restricted"
// agrupa colunas de materiais e valores que dependem de permissão.
const (
	ColumnCategoryGeneral    = "general"
	ColumnCategoryCargo      = "cargo"
	ColumnCategoryDates      = "dates"
	ColumnCategoryRestricted = "restricted"
)

// ColumnDefinition descreve uma coluna disponível na tabela de operações.
// O registro de colunas é imutável; preferências do usuário vivem em
// ColumnConfig.
type ColumnDefinition struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Visible   bool   `json:"visible"`
	Fixed     bool   `json:"fixed"`
	Sortable  bool   `json:"sortable"`
	SortField string `json:"sort_field,omitempty"`
	Category  string `json:"category"`
	Order     int    `json:"order"`
}

// ColumnConfig é a preferência persistida do usuário para uma coluna.
type ColumnConfig struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Order   int    `json:"order"`
}
