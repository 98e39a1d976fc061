package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("registro não encontrado")
	ErrEmpresaNaoEncontrada = errors.New("empresa não encontrada")
	ErrEmailJaCadastrado    = errors.New("o email já está cadastrado")
	ErrCamposObrigatorios   = errors.New("campos obrigatórios ausentes")
	ErrSenhaIncorreta       = errors.New("senha incorreta")
	ErrTipoInvalido         = errors.New("tipo de transação inválido")
	ErrQuantidadeInvalida   = errors.New("quantidade deve ser positiva")
	ErrEstoqueInsuficiente  = errors.New("estoque insuficiente")
)
