package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item estocado, vinculado a um fornecedor e a uma empresa.
// Quantidade só é alterada via transações de estoque e nunca fica negativa
// (CHECK na tabela e verificação no caso de uso).
type Produto struct {
	ID           string
	Nome         string
	Preco        decimal.Decimal // preço de venda
	Quantidade   int64
	FornecedorID string
	EmpresaID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProdutoDetalhado é a projeção do produto com os nomes das entidades
// relacionadas, usada nas listagens (junção com empresas e fornecedores).
type ProdutoDetalhado struct {
	Produto
	FornecedorNome string
	EmpresaNome    string
}
