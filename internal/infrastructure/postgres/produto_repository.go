package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColumns = `id, nome, preco, quantidade, fornecedor_id, empresa_id, created_at, updated_at`

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, preco, quantidade, fornecedor_id, empresa_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Preco, produto.Quantidade,
		produto.FornecedorID, produto.EmpresaID, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID. Devolve nil, nil quando não existe.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtém o produto bloqueando a fila para update (SELECT FOR UPDATE).
// Sem efeito de bloqueio fora de uma transação.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *ProdutoRepo) scanOne(query, id string) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nome, &p.Preco, &p.Quantidade, &p.FornecedorID, &p.EmpresaID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update atualiza nome, preço e quantidade de um produto existente.
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, preco = $3, quantidade = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Preco, produto.Quantidade, produto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateQuantidade atualiza só a quantidade em estoque (usado pelo registro de transações).
func (r *ProdutoRepo) UpdateQuantidade(id string, quantidade int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// List lista todos os produtos.
func (r *ProdutoRepo) List() ([]*entity.Produto, error) {
	query := `SELECT ` + produtoColumns + ` FROM produtos ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Preco, &p.Quantidade, &p.FornecedorID,
			&p.EmpresaID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListDetalhado lista produtos com os nomes da empresa e do fornecedor (junção interna).
func (r *ProdutoRepo) ListDetalhado() ([]*entity.ProdutoDetalhado, error) {
	query := `
		SELECT p.id, p.nome, p.preco, p.quantidade, p.fornecedor_id, p.empresa_id,
		       p.created_at, p.updated_at, f.nome, e.nome
		FROM produtos p
		JOIN fornecedores f ON f.id = p.fornecedor_id
		JOIN empresas e ON e.id = p.empresa_id
		ORDER BY p.nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos detalhado: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProdutoDetalhado
	for rows.Next() {
		var p entity.ProdutoDetalhado
		if err := rows.Scan(&p.ID, &p.Nome, &p.Preco, &p.Quantidade, &p.FornecedorID,
			&p.EmpresaID, &p.CreatedAt, &p.UpdatedAt, &p.FornecedorNome, &p.EmpresaNome); err != nil {
			return nil, fmt.Errorf("scan produto detalhado: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete exclui o produto. Transações dependentes caem em cascata (FK).
func (r *ProdutoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
