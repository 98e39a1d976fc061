package produto

import (
	"time"

	"github.com/google/uuid"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// UseCase casos de uso CRUD para produtos. A quantidade em estoque é ajustada
// exclusivamente pelo registro de transações (estoque.UseCase); a edição aqui
// cobre nome, preço e o saldo inicial informado no cadastro.
type UseCase struct {
	repo repository.ProdutoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.ProdutoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// CriacaoInput dados do formulário de cadastro de produto.
type CriacaoInput struct {
	Nome         string
	Preco        decimal.Decimal
	Quantidade   int64
	FornecedorID string
	EmpresaID    string // empresa logada
}

// Criar persiste um novo produto vinculado ao fornecedor escolhido e à empresa logada.
func (uc *UseCase) Criar(in CriacaoInput) (*entity.Produto, error) {
	if in.Quantidade < 0 {
		return nil, domain.ErrQuantidadeInvalida
	}
	now := time.Now()
	p := &entity.Produto{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Preco:        in.Preco,
		Quantidade:   in.Quantidade,
		FornecedorID: in.FornecedorID,
		EmpresaID:    in.EmpresaID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// EdicaoInput dados editáveis do produto.
type EdicaoInput struct {
	Nome       string
	Preco      decimal.Decimal
	Quantidade int64
}

// Atualizar atualiza o produto indicado. ErrNaoEncontrado quando o ID não existe.
func (uc *UseCase) Atualizar(id string, in EdicaoInput) error {
	if in.Quantidade < 0 {
		return domain.ErrQuantidadeInvalida
	}
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNaoEncontrado
	}
	p.Nome = in.Nome
	p.Preco = in.Preco
	p.Quantidade = in.Quantidade
	p.UpdatedAt = time.Now()
	return uc.repo.Update(p)
}

// Excluir exclui o produto indicado; transações dependentes caem em cascata.
func (uc *UseCase) Excluir(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}

// Listar lista todos os produtos.
func (uc *UseCase) Listar() ([]*entity.Produto, error) {
	return uc.repo.List()
}

// ListarDetalhado lista produtos com os nomes da empresa e do fornecedor.
func (uc *UseCase) ListarDetalhado() ([]*entity.ProdutoDetalhado, error) {
	return uc.repo.ListDetalhado()
}
