package entity

import "time"

// Fornecedor representa um fornecedor de produtos.
// Excluir um fornecedor remove em cascata os produtos dependentes.
type Fornecedor struct {
	ID        string
	Nome      string
	Email     string
	Telefone  string
	Endereco  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
