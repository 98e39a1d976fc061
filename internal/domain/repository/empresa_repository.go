package repository

import "github.com/rmaia/estoque-web/internal/domain/entity"

// EmpresaRepository define o porto de persistência para Empresa (DIP).
// A implementação vive em infrastructure.
type EmpresaRepository interface {
	Create(empresa *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	GetByEmail(email string) (*entity.Empresa, error)
	Update(empresa *entity.Empresa) error
	List() ([]*entity.Empresa, error)
	Delete(id string) error
}
