package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UseCase casos de uso de autenticação e conta da empresa:
// cadastro, login, perfil, edição e exclusão.
type UseCase struct {
	empresaRepo repository.EmpresaRepository
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(empresaRepo repository.EmpresaRepository) *UseCase {
	return &UseCase{empresaRepo: empresaRepo}
}

// CadastroInput dados do formulário de cadastro de empresa.
// Telefone é o único campo opcional.
type CadastroInput struct {
	Nome     string
	Email    string
	Telefone string
	Endereco string
	Tipo     string
	Senha    string
}

// Cadastrar valida os campos obrigatórios, faz o hash bcrypt da senha e persiste
// a empresa. Devolve ErrCamposObrigatorios ou ErrEmailJaCadastrado conforme o caso.
func (uc *UseCase) Cadastrar(in CadastroInput) (*entity.Empresa, error) {
	if in.Nome == "" || in.Email == "" || in.Endereco == "" || in.Tipo == "" || in.Senha == "" {
		return nil, domain.ErrCamposObrigatorios
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		Tipo:      in.Tipo,
		SenhaHash: string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.empresaRepo.Create(empresa); err != nil {
		return nil, err
	}
	return empresa, nil
}

// Login verifica email/senha e devolve a empresa autenticada.
// ErrEmpresaNaoEncontrada quando o email não existe; ErrSenhaIncorreta no mismatch.
func (uc *UseCase) Login(email, senha string) (*entity.Empresa, error) {
	empresa, err := uc.empresaRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNaoEncontrada
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empresa.SenhaHash), []byte(senha)); err != nil {
		return nil, domain.ErrSenhaIncorreta
	}
	return empresa, nil
}

// Perfil obtém a empresa da sessão. Devolve nil, nil quando não existe mais.
func (uc *UseCase) Perfil(empresaID string) (*entity.Empresa, error) {
	return uc.empresaRepo.GetByID(empresaID)
}

// VerificarSenha confere a senha da empresa logada antes de operações
// sensíveis (edição/exclusão de cadastros). Usado pelos handlers como gate.
func (uc *UseCase) VerificarSenha(empresaID, senha string) error {
	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrEmpresaNaoEncontrada
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empresa.SenhaHash), []byte(senha)); err != nil {
		return domain.ErrSenhaIncorreta
	}
	return nil
}

// AtualizacaoInput dados editáveis do cadastro da empresa.
type AtualizacaoInput struct {
	Nome     string
	Email    string
	Telefone string
	Endereco string
	Senha    string // senha atual, exigida para confirmar a edição
}

// Atualizar re-verifica a senha e atualiza os dados cadastrais da empresa.
func (uc *UseCase) Atualizar(empresaID string, in AtualizacaoInput) error {
	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrEmpresaNaoEncontrada
	}
	if err := bcrypt.CompareHashAndPassword([]byte(empresa.SenhaHash), []byte(in.Senha)); err != nil {
		return domain.ErrSenhaIncorreta
	}
	empresa.Nome = in.Nome
	empresa.Email = in.Email
	empresa.Telefone = in.Telefone
	empresa.Endereco = in.Endereco
	empresa.UpdatedAt = time.Now()
	return uc.empresaRepo.Update(empresa)
}

// Excluir re-verifica a senha e exclui a empresa. Produtos dependentes
// caem em cascata na persistência.
func (uc *UseCase) Excluir(empresaID, senha string) error {
	if err := uc.VerificarSenha(empresaID, senha); err != nil {
		return err
	}
	return uc.empresaRepo.Delete(empresaID)
}

// Listar lista todas as empresas (página inicial, acessível sem sessão).
func (uc *UseCase) Listar() ([]*entity.Empresa, error) {
	return uc.empresaRepo.List()
}
