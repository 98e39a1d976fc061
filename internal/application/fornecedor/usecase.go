package fornecedor

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
)

// UseCase casos de uso CRUD para fornecedores. A re-verificação da senha da
// empresa logada acontece no handler, via auth.UseCase.VerificarSenha.
type UseCase struct {
	repo repository.FornecedorRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.FornecedorRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Input dados do formulário de fornecedor.
type Input struct {
	Nome     string
	Email    string
	Telefone string
	Endereco string
}

// Criar persiste um novo fornecedor.
func (uc *UseCase) Criar(in Input) (*entity.Fornecedor, error) {
	now := time.Now()
	f := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Atualizar atualiza o fornecedor indicado. ErrNaoEncontrado quando o ID não existe.
func (uc *UseCase) Atualizar(id string, in Input) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNaoEncontrado
	}
	f.Nome = in.Nome
	f.Email = in.Email
	f.Telefone = in.Telefone
	f.Endereco = in.Endereco
	f.UpdatedAt = time.Now()
	return uc.repo.Update(f)
}

// Excluir exclui o fornecedor indicado; produtos dependentes caem em cascata.
func (uc *UseCase) Excluir(id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}

// Listar lista todos os fornecedores.
func (uc *UseCase) Listar() ([]*entity.Fornecedor, error) {
	return uc.repo.List()
}
