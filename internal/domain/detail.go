package domain

// Identificadores das abas do detalhe de um processo.
const (
	DetailSectionGeneral   = "general"
	DetailSectionCargo     = "cargo"
	DetailSectionDates     = "dates"
	DetailSectionMaterials = "materials"
)

// DetailField é um par rótulo/valor já formatado para exibição.
type DetailField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DetailSection é uma aba do modal de detalhe do processo.
type DetailSection struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Fields []DetailField `json:"fields"`
}

// DetailView é a visão completa do modal de detalhe de um processo. A seção
// de materiais só aparece para usuários com a permissão correspondente.
type DetailView struct {
	Ref      string           `json:"ref"`
	Title    string           `json:"title"`
	Sections []*DetailSection `json:"sections"`
}
