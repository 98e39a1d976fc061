package estoque

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
)

// UseCase registra transações de estoque (entrada/saida) de forma transacional,
// com bloqueio de fila (SELECT FOR UPDATE) e Commit/Rollback: o ajuste da
// quantidade do produto e a inserção da transação são uma unidade atômica.
type UseCase struct {
	txRunner      TxRunner
	transacaoRepo repository.TransacaoRepository
}

// NewUseCase constrói o caso de uso. transacaoRepo (atado ao pool) serve só à listagem;
// o registro usa os repositórios atados à tx fornecidos pelo TxRunner.
func NewUseCase(txRunner TxRunner, transacaoRepo repository.TransacaoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, transacaoRepo: transacaoRepo}
}

// TransacaoInput entrada para registrar um movimento de estoque.
type TransacaoInput struct {
	Tipo       string // entrada | saida
	Quantidade int64
	ProdutoID  string
}

// RegistrarTransacao valida a entrada, inicia uma transação SQL, bloqueia a fila
// do produto, ajusta a quantidade e grava o movimento.
//
// Uma saida maior que o estoque atual falha com ErrEstoqueInsuficiente e nada é
// persistido: nem o ajuste, nem a linha da transação.
func (uc *UseCase) RegistrarTransacao(ctx context.Context, in TransacaoInput) error {
	if in.Tipo != entity.TipoEntrada && in.Tipo != entity.TipoSaida {
		return domain.ErrTipoInvalido
	}
	if in.Quantidade <= 0 {
		return domain.ErrQuantidadeInvalida
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		transacaoRepo repository.TransacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		produto, err := produtoRepo.GetForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNaoEncontrado
		}

		nova := produto.Quantidade
		switch in.Tipo {
		case entity.TipoEntrada:
			nova += in.Quantidade
		case entity.TipoSaida:
			if produto.Quantidade < in.Quantidade {
				return domain.ErrEstoqueInsuficiente
			}
			nova -= in.Quantidade
		}
		if err := produtoRepo.UpdateQuantidade(produto.ID, nova); err != nil {
			return err
		}

		return transacaoRepo.Create(&entity.Transacao{
			ID:         uuid.New().String(),
			Tipo:       in.Tipo,
			Quantidade: in.Quantidade,
			Data:       now,
			ProdutoID:  produto.ID,
		})
	})
}

// ListarTransacoes lista os movimentos com o nome do produto.
func (uc *UseCase) ListarTransacoes() ([]*entity.TransacaoDetalhada, error) {
	return uc.transacaoRepo.ListDetalhado()
}
