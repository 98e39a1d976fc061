package repository

import "github.com/rmaia/estoque-web/internal/domain/entity"

// TransacaoRepository define o porto de persistência para Transacao (DIP).
// Transações são imutáveis: só há criação e listagem.
type TransacaoRepository interface {
	Create(transacao *entity.Transacao) error
	ListDetalhado() ([]*entity.TransacaoDetalhada, error)
}
