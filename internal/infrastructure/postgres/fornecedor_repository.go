package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

// FornecedorRepo implementação do porto FornecedorRepository sobre PostgreSQL (usável com pool ou tx).
type FornecedorRepo struct {
	q Querier
}

// NewFornecedorRepository constrói o adaptador de persistência para fornecedores.
func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

// Create persiste um novo fornecedor.
func (r *FornecedorRepo) Create(fornecedor *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (id, nome, email, telefone, endereco, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		fornecedor.ID, fornecedor.Nome, fornecedor.Email, fornecedor.Telefone,
		fornecedor.Endereco, fornecedor.CreatedAt, fornecedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID. Devolve nil, nil quando não existe.
func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `
		SELECT id, nome, email, telefone, endereco, created_at, updated_at
		FROM fornecedores WHERE id = $1`
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Nome, &f.Email, &f.Telefone, &f.Endereco, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

// Update atualiza um fornecedor existente.
func (r *FornecedorRepo) Update(fornecedor *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores SET nome = $2, email = $3, telefone = $4, endereco = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		fornecedor.ID, fornecedor.Nome, fornecedor.Email, fornecedor.Telefone,
		fornecedor.Endereco, fornecedor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fornecedor: %w", err)
	}
	return nil
}

// List lista todos os fornecedores.
func (r *FornecedorRepo) List() ([]*entity.Fornecedor, error) {
	query := `
		SELECT id, nome, email, telefone, endereco, created_at, updated_at
		FROM fornecedores ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.Email, &f.Telefone, &f.Endereco,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete exclui o fornecedor. Produtos dependentes caem em cascata (FK).
func (r *FornecedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fornecedor: %w", err)
	}
	return nil
}
