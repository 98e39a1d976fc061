package repository

import "github.com/rmaia/estoque-web/internal/domain/entity"

// FornecedorRepository define o porto de persistência para Fornecedor (DIP).
type FornecedorRepository interface {
	Create(fornecedor *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	Update(fornecedor *entity.Fornecedor) error
	List() ([]*entity.Fornecedor, error)
	Delete(id string) error
}
