package comexclient

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

// DocumentUpload carrega um arquivo a ser anexado a um processo.
type DocumentUpload struct {
	DocumentID string
	FileName   string
	Content    []byte
}

func (c *ComexClient) ListDocuments(ctx context.Context, processRef string) (*comexdomain.DocumentsResponse, error) {
	endpoint := fmt.Sprintf("/processes/%s/documents", processRef)

	var response comexdomain.DocumentsResponse
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}

// UploadDocument envia o arquivo como multipart/form-data, preservando o id
// gerado pela dashboard no campo document_id.
func (c *ComexClient) UploadDocument(ctx context.Context, processRef string, upload DocumentUpload) (*comexdomain.DocumentResponse, error) {
	endpoint := fmt.Sprintf("/processes/%s/documents", processRef)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("document_id", upload.DocumentID); err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário de upload: %w", err)
	}

	part, err := writer.CreateFormFile("file", upload.FileName)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário de upload: %w", err)
	}

	if _, err := part.Write(upload.Content); err != nil {
		return nil, fmt.Errorf("erro ao escrever o arquivo no formulário: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o formulário de upload: %w", err)
	}

	var response comexdomain.DocumentResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, nil, body, writer.FormDataContentType(), &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response.APIResponse); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *ComexClient) DeleteDocument(ctx context.Context, processRef, documentID string) (*comexdomain.APIResponse, error) {
	endpoint := fmt.Sprintf("/processes/%s/documents/%s", processRef, documentID)

	var response comexdomain.APIResponse
	if err := c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil, "", &response); err != nil {
		return nil, err
	}

	if err := checkEnvelope(endpoint, response); err != nil {
		return nil, err
	}

	return &response, nil
}

// DownloadDocuments repassa o pacote ZIP montado pela ComexAPI sem tocar no
// conteúdo.
func (c *ComexClient) DownloadDocuments(ctx context.Context, processRef string) (*domain.DocumentDownload, error) {
	endpoint := fmt.Sprintf("/processes/%s/documents/download", processRef)

	content, contentType, err := c.doRaw(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	if contentType == "" {
		contentType = "application/zip"
	}

	return &domain.DocumentDownload{
		FileName:    fmt.Sprintf("%s-documentos.zip", processRef),
		ContentType: contentType,
		Content:     content,
	}, nil
}
