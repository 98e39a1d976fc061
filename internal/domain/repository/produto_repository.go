package repository

import "github.com/rmaia/estoque-web/internal/domain/entity"

// ProdutoRepository define o porto de persistência para Produto (DIP).
// GetForUpdate só tem efeito de bloqueio quando o repositório está atado a
// uma transação (via TxRunner).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetForUpdate(id string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	UpdateQuantidade(id string, quantidade int64) error
	List() ([]*entity.Produto, error)
	ListDetalhado() ([]*entity.ProdutoDetalhado, error)
	Delete(id string) error
}
