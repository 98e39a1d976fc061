package postgres

import (
	"context"
	"fmt"

	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
)

var _ repository.TransacaoRepository = (*TransacaoRepo)(nil)

// TransacaoRepo implementação do porto TransacaoRepository sobre PostgreSQL (usável com pool ou tx).
type TransacaoRepo struct {
	q Querier
}

// NewTransacaoRepository constrói o adaptador de persistência para transações de estoque.
func NewTransacaoRepository(q Querier) *TransacaoRepo {
	return &TransacaoRepo{q: q}
}

// Create persiste uma transação de estoque.
func (r *TransacaoRepo) Create(transacao *entity.Transacao) error {
	query := `
		INSERT INTO transacoes (id, tipo, quantidade, data, produto_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		transacao.ID, transacao.Tipo, transacao.Quantidade, transacao.Data, transacao.ProdutoID,
	)
	if err != nil {
		return fmt.Errorf("insert transacao: %w", err)
	}
	return nil
}

// ListDetalhado lista as transações com o nome do produto, da mais recente para a mais antiga.
func (r *TransacaoRepo) ListDetalhado() ([]*entity.TransacaoDetalhada, error) {
	query := `
		SELECT t.id, t.tipo, t.quantidade, t.data, t.produto_id, p.nome
		FROM transacoes t
		JOIN produtos p ON p.id = t.produto_id
		ORDER BY t.data DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransacaoDetalhada
	for rows.Next() {
		var t entity.TransacaoDetalhada
		if err := rows.Scan(&t.ID, &t.Tipo, &t.Quantidade, &t.Data, &t.ProdutoID, &t.ProdutoNome); err != nil {
			return nil, fmt.Errorf("scan transacao: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
