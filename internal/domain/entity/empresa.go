package entity

import "time"

// Empresa representa a conta/tenant do sistema e o principal de autenticação.
// A sessão guarda exatamente um ID de Empresa.
type Empresa struct {
	ID        string
	Nome      string
	Email     string // único
	Telefone  string
	Endereco  string
	Tipo      string // ramo de atuação informado no cadastro (ex.: varejo, atacado)
	SenhaHash string // hash bcrypt, nunca a senha em claro após persistir
	CreatedAt time.Time
	UpdatedAt time.Time
}
