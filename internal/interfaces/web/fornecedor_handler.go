package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rmaia/estoque-web/internal/application/auth"
	"github.com/rmaia/estoque-web/internal/application/fornecedor"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/pkg/logger"
)

// FornecedorHandler trata o CRUD de fornecedores. Edição e exclusão exigem a
// re-verificação da senha da empresa logada.
type FornecedorHandler struct {
	uc       *fornecedor.UseCase
	authUC   *auth.UseCase
	sessions *SessionManager
	log      *logger.Logger
}

// NewFornecedorHandler constrói o handler de fornecedores.
func NewFornecedorHandler(uc *fornecedor.UseCase, authUC *auth.UseCase, sessions *SessionManager, log *logger.Logger) *FornecedorHandler {
	return &FornecedorHandler{uc: uc, authUC: authUC, sessions: sessions, log: log}
}

// Listar renderiza a lista de fornecedores.
func (h *FornecedorHandler) Listar(c *fiber.Ctx) error {
	fornecedores, err := h.uc.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "listar fornecedores")
	}
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("fornecedores", fiber.Map{
		"Fornecedores":  fornecedores,
		"EmpresaLogada": h.sessions.EmpresaID(c),
		"FlashSuccess":  success,
		"FlashError":    errMsg,
	})
}

// AdicionarForm renderiza o formulário de cadastro de fornecedor.
func (h *FornecedorHandler) AdicionarForm(c *fiber.Ctx) error {
	return c.Render("adicionarFornecedores", fiber.Map{})
}

// Adicionar cria um fornecedor e volta para a lista.
func (h *FornecedorHandler) Adicionar(c *fiber.Ctx) error {
	_, err := h.uc.Criar(fornecedor.Input{
		Nome:     c.FormValue("nome"),
		Email:    c.FormValue("email"),
		Telefone: c.FormValue("telefone"),
		Endereco: c.FormValue("endereco"),
	})
	if err != nil {
		return erroServidor(h.log, c, err, "adicionar fornecedor")
	}
	return c.Redirect("/fornecedores")
}

// EditarForm renderiza o formulário de edição com a lista de fornecedores.
func (h *FornecedorHandler) EditarForm(c *fiber.Ctx) error {
	fornecedores, err := h.uc.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "carregar fornecedores")
	}
	return c.Render("editarFornecedor", fiber.Map{"Fornecedores": fornecedores})
}

// Editar atualiza o fornecedor escolhido (por ID), com senha da empresa exigida.
func (h *FornecedorHandler) Editar(c *fiber.Ctx) error {
	if err := h.authUC.VerificarSenha(h.sessions.EmpresaID(c), c.FormValue("senha")); err != nil {
		if errors.Is(err, domain.ErrSenhaIncorreta) || errors.Is(err, domain.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusForbidden).SendString("Senha inválida")
		}
		return erroServidor(h.log, c, err, "verificar senha")
	}
	err := h.uc.Atualizar(c.FormValue("id"), fornecedor.Input{
		Nome:     c.FormValue("nome"),
		Email:    c.FormValue("email"),
		Telefone: c.FormValue("telefone"),
		Endereco: c.FormValue("endereco"),
	})
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).SendString("Fornecedor não encontrado")
	case err != nil:
		return erroServidor(h.log, c, err, "editar fornecedor")
	}
	return c.Redirect("/fornecedores")
}

// DeletarForm renderiza a confirmação de exclusão com a lista de fornecedores.
func (h *FornecedorHandler) DeletarForm(c *fiber.Ctx) error {
	fornecedores, err := h.uc.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "carregar fornecedores")
	}
	return c.Render("deletarFornecedor", fiber.Map{"Fornecedores": fornecedores})
}

// Deletar exclui o fornecedor escolhido (por ID), com senha da empresa exigida.
// Produtos dependentes caem em cascata.
func (h *FornecedorHandler) Deletar(c *fiber.Ctx) error {
	if err := h.authUC.VerificarSenha(h.sessions.EmpresaID(c), c.FormValue("senha")); err != nil {
		if errors.Is(err, domain.ErrSenhaIncorreta) || errors.Is(err, domain.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusForbidden).SendString("Senha inválida")
		}
		return erroServidor(h.log, c, err, "verificar senha")
	}
	err := h.uc.Excluir(c.FormValue("id"))
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).SendString("Fornecedor não encontrado")
	case err != nil:
		return erroServidor(h.log, c, err, "excluir fornecedor")
	}
	return c.Redirect("/fornecedores")
}
