package domain

// ProcessDocument é um anexo vinculado a um processo de importação.
type ProcessDocument struct {
	ID          string  `json:"id"`
	ProcessRef  string  `json:"process_ref"`
	FileName    string  `json:"file_name"`
	Size        int64   `json:"size"`
	ContentType string  `json:"content_type"`
	UploadedBy  *string `json:"uploaded_by,omitempty"`
	UploadedAt  string  `json:"uploaded_at"`
}

// DocumentDownload é o conteúdo do pacote ZIP montado pela ComexAPI para o
// download em lote, repassado sem alteração para o frontend.
type DocumentDownload struct {
	FileName    string
	ContentType string
	Content     []byte
}
