package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL (usável com pool ou tx).
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository constrói o adaptador de persistência para empresas. Passar pool ou tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste uma nova empresa. Email duplicado vira domain.ErrEmailJaCadastrado.
func (r *EmpresaRepo) Create(empresa *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, nome, email, telefone, endereco, tipo, senha_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome, empresa.Email, empresa.Telefone,
		empresa.Endereco, empresa.Tipo, empresa.SenhaHash,
		empresa.CreatedAt, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID. Devolve nil, nil quando não existe.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `
		SELECT id, nome, email, telefone, endereco, tipo, senha_hash, created_at, updated_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nome, &e.Email, &e.Telefone, &e.Endereco, &e.Tipo,
		&e.SenhaHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// GetByEmail obtém uma empresa pelo email (login).
func (r *EmpresaRepo) GetByEmail(email string) (*entity.Empresa, error) {
	query := `
		SELECT id, nome, email, telefone, endereco, tipo, senha_hash, created_at, updated_at
		FROM empresas WHERE email = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&e.ID, &e.Nome, &e.Email, &e.Telefone, &e.Endereco, &e.Tipo,
		&e.SenhaHash, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by email: %w", err)
	}
	return &e, nil
}

// Update atualiza os dados cadastrais. A senha não muda por aqui.
func (r *EmpresaRepo) Update(empresa *entity.Empresa) error {
	query := `
		UPDATE empresas SET nome = $2, email = $3, telefone = $4, endereco = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		empresa.ID, empresa.Nome, empresa.Email, empresa.Telefone,
		empresa.Endereco, empresa.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// List lista todas as empresas (página inicial).
func (r *EmpresaRepo) List() ([]*entity.Empresa, error) {
	query := `
		SELECT id, nome, email, telefone, endereco, tipo, senha_hash, created_at, updated_at
		FROM empresas ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.Nome, &e.Email, &e.Telefone, &e.Endereco,
			&e.Tipo, &e.SenhaHash, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete exclui a empresa. Produtos dependentes caem em cascata (FK).
func (r *EmpresaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}
