package estoque

import (
	"context"

	"github.com/rmaia/estoque-web/internal/domain/repository"
)

// TxRunner porto para executar o callback dentro de uma transação SQL, com
// repositórios atados à tx. Implementado em infrastructure/postgres.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		transacaoRepo repository.TransacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
