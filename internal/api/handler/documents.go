package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/comexflow/import-dashboard-api/internal/usecases/documents"
	"github.com/comexflow/import-dashboard-api/pkg/apiErrors"
	"github.com/comexflow/import-dashboard-api/pkg/log"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// uploadFormField é o campo do formulário multipart que carrega o arquivo
const uploadFormField = "file"

// ListProcessDocuments devolve os anexos vinculados a um processo
func ListProcessDocuments(service documents.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListProcessDocuments")

		ref := httprouter.ParamsFromContext(r.Context()).ByName("ref")

		docs, err := service.List(r.Context(), ref)
		if err != nil {
			log.ForContext(r.Context()).WithField("process", ref).Errorf("Erro ao listar documentos: %v", err)
			handleDocumentError(w, service, err)
			return
		}

		json.NewEncoder(w).Encode(docs)
	}
}

// UploadProcessDocument recebe um arquivo multipart e o anexa ao processo.
// O corpo é limitado ao tamanho máximo configurado, com folga para o
// overhead do multipart.
func UploadProcessDocument(service documents.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UploadProcessDocument")
		logger := log.ForContext(r.Context())

		ref := httprouter.ParamsFromContext(r.Context()).ByName("ref")

		rules := service.Rules()
		r.Body = http.MaxBytesReader(w, r.Body, rules.MaxSizeMB*1024*1024+1024*1024)

		file, header, err := r.FormFile(uploadFormField)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Arquivo excede o tamanho máximo permitido",
					map[string]any{"max_size_mb": rules.MaxSizeMB})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				fmt.Sprintf("Arquivo é obrigatório no campo '%s'", uploadFormField), nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			logger.WithField("process", ref).Errorf("Erro ao ler arquivo enviado: %v", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Não foi possível ler o arquivo enviado", nil)
			return
		}

		document, err := service.Upload(r.Context(), ref, header.Filename, content)
		if err != nil {
			logger.WithField("process", ref).Errorf("Erro ao anexar documento: %v", err)
			handleDocumentError(w, service, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(document)
	}
}

// DeleteProcessDocument remove um anexo do processo
func DeleteProcessDocument(service documents.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProcessDocument")

		params := httprouter.ParamsFromContext(r.Context())
		ref := params.ByName("ref")
		documentID := params.ByName("id")

		if err := service.Delete(r.Context(), ref, documentID); err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"process":     ref,
				"document_id": documentID,
			}).Errorf("Erro ao remover documento: %v", err)
			handleDocumentError(w, service, err)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Documento removido com sucesso",
		})
	}
}

// DownloadProcessDocuments repassa o pacote ZIP montado pela ComexAPI com
// todos os anexos do processo
func DownloadProcessDocuments(service documents.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DownloadProcessDocuments")

		ref := httprouter.ParamsFromContext(r.Context()).ByName("ref")

		download, err := service.Download(r.Context(), ref)
		if err != nil {
			log.ForContext(r.Context()).WithField("process", ref).Errorf("Erro ao baixar documentos: %v", err)
			handleDocumentError(w, service, err)
			return
		}

		contentType := download.ContentType
		if contentType == "" {
			contentType = "application/zip"
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.FileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(download.Content)))

		if _, err := w.Write(download.Content); err != nil {
			log.ForContext(r.Context()).WithField("process", ref).Warnf("Erro ao enviar pacote de documentos: %v", err)
		}
	}
}

// GetDocumentRules devolve os limites de upload para o diálogo de anexos
func GetDocumentRules(service documents.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDocumentRules")

		json.NewEncoder(w).Encode(service.Rules())
	}
}

// handleDocumentError traduz as falhas do gerenciador de anexos para o
// envelope de erro da API
func handleDocumentError(w http.ResponseWriter, service documents.Manager, err error) {
	switch {
	case errors.Is(err, documents.ErrMissingProcessRef):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Referência do processo não informada", nil)
	case errors.Is(err, documents.ErrMissingDocumentID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do documento não informado", nil)
	case errors.Is(err, documents.ErrEmptyFile):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo enviado está vazio", nil)
	case errors.Is(err, documents.ErrFileTooLarge):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Arquivo excede o tamanho máximo permitido",
			map[string]any{"max_size_mb": service.Rules().MaxSizeMB})
	case errors.Is(err, documents.ErrExtensionNotAllowed):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Extensão de arquivo não permitida",
			map[string]any{"allowed_extensions": service.Rules().AllowedExtensions})
	case errors.Is(err, documents.ErrGenerateID):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Não foi possível gerar o identificador do documento", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "Erro ao comunicar com a API de operações", nil)
	}
}
