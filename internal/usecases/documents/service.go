package documents

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex"
	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/comexclient"
	comexdomain "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/domain"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/log"
	"github.com/comexflow/import-dashboard-api/pkg/retry"
	"github.com/comexflow/import-dashboard-api/pkg/utils"
)

// Erros de validação de anexos
var (
	ErrMissingProcessRef   = errors.New("processo não informado")
	ErrMissingDocumentID   = errors.New("documento não informado")
	ErrEmptyFile           = errors.New("arquivo vazio")
	ErrFileTooLarge        = errors.New("arquivo acima do tamanho máximo permitido")
	ErrExtensionNotAllowed = errors.New("extensão de arquivo não permitida")
	ErrGenerateID          = errors.New("erro ao gerar o identificador do anexo")
)

// UploadRules são os limites de upload aplicados pela API, expostos para o
// front validar antes de enviar o arquivo.
type UploadRules struct {
	MaxSizeMB         int64    `json:"max_size_mb"`
	AllowedExtensions []string `json:"allowed_extensions"`
}

// Manager gerencia os anexos de um processo: listagem, envio com validação
// de tamanho e extensão, remoção e download em lote do pacote ZIP montado
// pela ComexAPI.
type Manager interface {
	List(ctx context.Context, processRef string) ([]*domain.ProcessDocument, error)
	Upload(ctx context.Context, processRef, fileName string, content []byte) (*domain.ProcessDocument, error)
	Delete(ctx context.Context, processRef, documentID string) error
	Download(ctx context.Context, processRef string) (*domain.DocumentDownload, error)
	Rules() UploadRules
}

type Service struct {
	cfg   *config.Config
	comex comex.Integrator

	allowed   map[string]bool
	maxBytes  int64
	readDelay func(int) time.Duration
}

func NewService(cfg *config.Config, integrator comex.Integrator) Manager {
	allowed := make(map[string]bool, len(cfg.Documents.AllowedExtensions))
	for _, ext := range cfg.Documents.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	return &Service{
		cfg:       cfg,
		comex:     integrator,
		allowed:   allowed,
		maxBytes:  cfg.Documents.MaxUploadSizeMB * 1024 * 1024,
		readDelay: retry.Linear(time.Second),
	}
}

// Leituras seguem a mesma política de repetição dos carregadores da
// dashboard; mutações fazem uma única tentativa, para não duplicar
// anexos nem repetir remoções em cima de um estado desconhecido.
func (s *Service) readOptions(resource string) retry.Options {
	return retry.Options{
		Resource:    resource,
		MaxAttempts: s.cfg.Dashboard.LoadMaxAttempts,
		Delay:       s.readDelay,
		Retryable: func(err error) bool {
			return !comexdomain.IsDecodeError(err)
		},
	}
}

// List devolve os anexos do processo. Processo sem anexos é um resultado
// válido: a lista volta vazia, nunca nula.
func (s *Service) List(ctx context.Context, processRef string) ([]*domain.ProcessDocument, error) {
	if processRef == "" {
		return nil, ErrMissingProcessRef
	}

	documents, err := retry.Do(ctx, s.readOptions("documents_list"), func(ctx context.Context) ([]*domain.ProcessDocument, error) {
		return s.comex.ListDocuments(ctx, processRef)
	})
	if err != nil {
		return nil, err
	}

	if documents == nil {
		documents = []*domain.ProcessDocument{}
	}

	return documents, nil
}

// Upload valida tamanho e extensão, gera o identificador do anexo e envia
// o arquivo para a ComexAPI em uma única tentativa.
func (s *Service) Upload(ctx context.Context, processRef, fileName string, content []byte) (*domain.ProcessDocument, error) {
	if processRef == "" {
		return nil, ErrMissingProcessRef
	}

	if len(content) == 0 {
		return nil, ErrEmptyFile
	}

	if int64(len(content)) > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	// O nome chega do navegador; só o nome base interessa
	fileName = filepath.Base(strings.TrimSpace(fileName))

	extension := strings.ToLower(filepath.Ext(fileName))
	if extension == "" || !s.allowed[extension] {
		return nil, ErrExtensionNotAllowed
	}

	documentID, err := utils.GenerateID()
	if err != nil {
		log.L.Errorf("Erro ao gerar o identificador do anexo: %v", err)
		return nil, ErrGenerateID
	}

	document, err := s.comex.UploadDocument(ctx, processRef, comexclient.DocumentUpload{
		DocumentID: documentID,
		FileName:   fileName,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"process_ref": processRef,
		"document_id": documentID,
		"size":        len(content),
	}).Info("Anexo enviado")

	return document, nil
}

// Delete remove um anexo do processo, em uma única tentativa.
func (s *Service) Delete(ctx context.Context, processRef, documentID string) error {
	if processRef == "" {
		return ErrMissingProcessRef
	}
	if documentID == "" {
		return ErrMissingDocumentID
	}

	if err := s.comex.DeleteDocument(ctx, processRef, documentID); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"process_ref": processRef,
		"document_id": documentID,
	}).Info("Anexo removido")

	return nil
}

// Download repassa o pacote ZIP montado pela ComexAPI sem tocar no
// conteúdo.
func (s *Service) Download(ctx context.Context, processRef string) (*domain.DocumentDownload, error) {
	if processRef == "" {
		return nil, ErrMissingProcessRef
	}

	return retry.Do(ctx, s.readOptions("documents_download"), func(ctx context.Context) (*domain.DocumentDownload, error) {
		return s.comex.DownloadDocuments(ctx, processRef)
	})
}

// Rules expõe os limites de upload vigentes.
func (s *Service) Rules() UploadRules {
	extensions := make([]string, 0, len(s.allowed))
	for ext := range s.allowed {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)

	return UploadRules{
		MaxSizeMB:         s.cfg.Documents.MaxUploadSizeMB,
		AllowedExtensions: extensions,
	}
}
