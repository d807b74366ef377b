// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/comexflow/import-dashboard-api/infrastructure/database/postgres"
	"github.com/comexflow/import-dashboard-api/internal/domain"
)

const (
	columnConfigTable = "user_column_configs ucc"
)

// ErrCorruptedColumnConfig indica que a configuração persistida não pôde ser
// decodificada; quem consome deve voltar para os padrões do registro.
var ErrCorruptedColumnConfig = errors.New("configuração de colunas persistida inválida")

// ColumnConfigRepository guarda a configuração de colunas da tabela de
// operações: uma linha por usuário com o array serializado.
type ColumnConfigRepository interface {
	GetByUserID(ctx context.Context, userID int) ([]domain.ColumnConfig, error)
	Save(ctx context.Context, userID int, configs []domain.ColumnConfig) error
	DeleteByUserID(ctx context.Context, userID int) error
}

type columnConfigRepository struct {
	conn postgres.Queryer
}

func NewColumnConfigRepository(conn *postgres.Connection) ColumnConfigRepository {
	return &columnConfigRepository{
		conn: conn,
	}
}

// GetByUserID devolve a configuração persistida do usuário, ou nil quando o
// usuário nunca salvou nada.
func (r *columnConfigRepository) GetByUserID(ctx context.Context, userID int) ([]domain.ColumnConfig, error) {
	query, args, err := squirrel.
		Select("ucc.config").
		From(columnConfigTable).
		Where(squirrel.Eq{"ucc.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var serialized []byte

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&serialized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar configuração de colunas: %w", err)
	}

	var configs []domain.ColumnConfig
	if err := json.Unmarshal(serialized, &configs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedColumnConfig, err)
	}

	return configs, nil
}

// Save grava o array serializado em uma única linha por usuário (upsert).
func (r *columnConfigRepository) Save(ctx context.Context, userID int, configs []domain.ColumnConfig) error {
	serialized, err := json.Marshal(configs)
	if err != nil {
		return fmt.Errorf("erro ao serializar configuração de colunas: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("user_column_configs").
		Columns("user_id", "config").
		Values(userID, serialized).
		Suffix(`
			ON CONFLICT (user_id) DO UPDATE SET
				config = EXCLUDED.config,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar configuração de colunas: %w", err)
	}

	return nil
}

func (r *columnConfigRepository) DeleteByUserID(ctx context.Context, userID int) error {
	query, args, err := squirrel.
		Delete("user_column_configs").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover configuração de colunas: %w", err)
	}

	return nil
}
