package documents

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/comexclient"
	comexmocks "github.com/comexflow/import-dashboard-api/infrastructure/integrator/comex/mocks"
	"github.com/comexflow/import-dashboard-api/internal/config"
	"github.com/comexflow/import-dashboard-api/internal/domain"
	"github.com/comexflow/import-dashboard-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newTestService(t *testing.T) (*Service, *comexmocks.MockIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	integrator := comexmocks.NewMockIntegrator(ctrl)

	cfg := &config.Config{}
	cfg.Dashboard.LoadMaxAttempts = 2
	cfg.Documents.MaxUploadSizeMB = 1
	cfg.Documents.AllowedExtensions = []string{".pdf", "png", " .XML "}

	service := NewService(cfg, integrator).(*Service)
	service.readDelay = func(int) time.Duration { return 0 }

	return service, integrator
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve listar os anexos do processo", func(t *testing.T) {
		service, integrator := newTestService(t)

		expected := []*domain.ProcessDocument{
			{ID: "a1b2c3d4", FileName: "di.pdf"},
		}

		integrator.EXPECT().
			ListDocuments(gomock.Any(), "IMP-2025-0042").
			Return(expected, nil).
			Times(1)

		documents, err := service.List(ctx, "IMP-2025-0042")

		require.NoError(t, err)
		assert.Equal(t, expected, documents)
	})

	t.Run("Deve devolver lista vazia para processo sem anexos", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			ListDocuments(gomock.Any(), "IMP-2025-0042").
			Return(nil, nil).
			Times(1)

		documents, err := service.List(ctx, "IMP-2025-0042")

		require.NoError(t, err)
		assert.NotNil(t, documents)
		assert.Empty(t, documents)
	})

	t.Run("Deve repetir a listagem após falha transitória", func(t *testing.T) {
		service, integrator := newTestService(t)

		gomock.InOrder(
			integrator.EXPECT().
				ListDocuments(gomock.Any(), "IMP-2025-0042").
				Return(nil, assert.AnError),
			integrator.EXPECT().
				ListDocuments(gomock.Any(), "IMP-2025-0042").
				Return([]*domain.ProcessDocument{{ID: "a1b2c3d4"}}, nil),
		)

		documents, err := service.List(ctx, "IMP-2025-0042")

		require.NoError(t, err)
		assert.Len(t, documents, 1)
	})

	t.Run("Deve recusar chamada sem processo", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.List(ctx, "")

		assert.ErrorIs(t, err, ErrMissingProcessRef)
	})
}

func TestService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve gerar identificador e enviar o arquivo", func(t *testing.T) {
		service, integrator := newTestService(t)

		var sent comexclient.DocumentUpload
		integrator.EXPECT().
			UploadDocument(gomock.Any(), "IMP-2025-0042", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, upload comexclient.DocumentUpload) (*domain.ProcessDocument, error) {
				sent = upload
				return &domain.ProcessDocument{ID: upload.DocumentID, FileName: upload.FileName}, nil
			}).
			Times(1)

		content := []byte("%PDF-1.7 conteudo")
		document, err := service.Upload(ctx, "IMP-2025-0042", "pasta/di.pdf", content)

		require.NoError(t, err)
		require.NotNil(t, document)

		assert.Len(t, sent.DocumentID, 8)
		assert.Equal(t, "di.pdf", sent.FileName)
		assert.Equal(t, content, sent.Content)
	})

	t.Run("Deve aceitar extensão permitida em maiúsculas", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			UploadDocument(gomock.Any(), "IMP-2025-0042", gomock.Any()).
			Return(&domain.ProcessDocument{ID: "a1b2c3d4"}, nil).
			Times(1)

		_, err := service.Upload(ctx, "IMP-2025-0042", "FOTO.PNG", []byte{1, 2, 3})

		require.NoError(t, err)
	})

	t.Run("Deve recusar arquivo vazio", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Upload(ctx, "IMP-2025-0042", "di.pdf", nil)

		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("Deve recusar arquivo acima do limite", func(t *testing.T) {
		service, _ := newTestService(t)

		tooBig := bytes.Repeat([]byte{0xA}, 1024*1024+1)
		_, err := service.Upload(ctx, "IMP-2025-0042", "di.pdf", tooBig)

		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("Deve recusar extensão não permitida", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Upload(ctx, "IMP-2025-0042", "script.exe", []byte{1})

		assert.ErrorIs(t, err, ErrExtensionNotAllowed)
	})

	t.Run("Deve recusar arquivo sem extensão", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.Upload(ctx, "IMP-2025-0042", "semextensao", []byte{1})

		assert.ErrorIs(t, err, ErrExtensionNotAllowed)
	})

	t.Run("Não deve repetir o envio após falha do upstream", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			UploadDocument(gomock.Any(), "IMP-2025-0042", gomock.Any()).
			Return(nil, assert.AnError).
			Times(1)

		_, err := service.Upload(ctx, "IMP-2025-0042", "di.pdf", []byte{1})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve remover o anexo", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			DeleteDocument(gomock.Any(), "IMP-2025-0042", "a1b2c3d4").
			Return(nil).
			Times(1)

		err := service.Delete(ctx, "IMP-2025-0042", "a1b2c3d4")

		require.NoError(t, err)
	})

	t.Run("Não deve repetir a remoção após falha do upstream", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			DeleteDocument(gomock.Any(), "IMP-2025-0042", "a1b2c3d4").
			Return(assert.AnError).
			Times(1)

		err := service.Delete(ctx, "IMP-2025-0042", "a1b2c3d4")

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Deve recusar chamada sem documento", func(t *testing.T) {
		service, _ := newTestService(t)

		err := service.Delete(ctx, "IMP-2025-0042", "")

		assert.ErrorIs(t, err, ErrMissingDocumentID)
	})
}

func TestService_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve repassar o pacote ZIP do upstream", func(t *testing.T) {
		service, integrator := newTestService(t)

		download := &domain.DocumentDownload{
			FileName:    "IMP-2025-0042-documentos.zip",
			ContentType: "application/zip",
			Content:     []byte{0x50, 0x4B, 0x03, 0x04},
		}

		integrator.EXPECT().
			DownloadDocuments(gomock.Any(), "IMP-2025-0042").
			Return(download, nil).
			Times(1)

		result, err := service.Download(ctx, "IMP-2025-0042")

		require.NoError(t, err)
		assert.Same(t, download, result)
	})

	t.Run("Deve esgotar as tentativas e devolver o erro", func(t *testing.T) {
		service, integrator := newTestService(t)

		integrator.EXPECT().
			DownloadDocuments(gomock.Any(), "IMP-2025-0042").
			Return(nil, assert.AnError).
			Times(2)

		_, err := service.Download(ctx, "IMP-2025-0042")

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_Rules(t *testing.T) {
	service, _ := newTestService(t)

	rules := service.Rules()

	assert.Equal(t, int64(1), rules.MaxSizeMB)
	assert.Equal(t, []string{".pdf", ".png", ".xml"}, rules.AllowedExtensions)
}
