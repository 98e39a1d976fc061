package entity

import "time"

// Tipos de transação de estoque.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Transacao é o registro imutável de um movimento de estoque que
// afeta a quantidade de um produto.
type Transacao struct {
	ID         string
	Tipo       string // entrada | saida
	Quantidade int64  // sempre positiva; o sinal vem do Tipo
	Data       time.Time
	ProdutoID  string
}

// TransacaoDetalhada é a projeção da transação com o nome do produto,
// usada na listagem.
type TransacaoDetalhada struct {
	Transacao
	ProdutoNome string
}
