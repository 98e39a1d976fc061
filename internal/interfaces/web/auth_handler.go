package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rmaia/estoque-web/internal/application/auth"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/pkg/logger"
)

// AuthHandler trata cadastro, login, logout e a conta da empresa logada.
type AuthHandler struct {
	uc       *auth.UseCase
	sessions *SessionManager
	log      *logger.Logger
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.UseCase, sessions *SessionManager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, log: log}
}

// Home lista as empresas cadastradas. Acessível sem sessão.
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	empresas, err := h.uc.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "buscar empresas")
	}
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("home", fiber.Map{
		"EmpresaLogada": h.sessions.EmpresaID(c),
		"Empresas":      empresas,
		"FlashSuccess":  success,
		"FlashError":    errMsg,
	})
}

// CadastrarForm renderiza o formulário de cadastro.
func (h *AuthHandler) CadastrarForm(c *fiber.Ctx) error {
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("cadastroEmpresa", fiber.Map{
		"FlashSuccess": success,
		"FlashError":   errMsg,
	})
}

// Cadastrar processa o formulário de cadastro de empresa.
func (h *AuthHandler) Cadastrar(c *fiber.Ctx) error {
	_, err := h.uc.Cadastrar(auth.CadastroInput{
		Nome:     c.FormValue("nome"),
		Email:    c.FormValue("email"),
		Telefone: c.FormValue("telefone"),
		Endereco: c.FormValue("endereco"),
		Tipo:     c.FormValue("tipo"),
		Senha:    c.FormValue("senha"),
	})
	switch {
	case errors.Is(err, domain.ErrCamposObrigatorios):
		h.sessions.FlashError(c, "Todos os campos são obrigatórios!")
		return c.Redirect("/cadastrarEmpresa")
	case errors.Is(err, domain.ErrEmailJaCadastrado):
		h.sessions.FlashError(c, "O email informado já está cadastrado.")
		return c.Redirect("/cadastrarEmpresa")
	case err != nil:
		h.log.Error().Err(err).Msg("cadastrar empresa")
		h.sessions.FlashError(c, "Ocorreu um erro ao cadastrar a empresa.")
		return c.Redirect("/cadastrarEmpresa")
	}
	h.sessions.FlashSuccess(c, "Empresa cadastrada com sucesso!")
	return c.Redirect("/loginEmpresa")
}

// LoginForm renderiza o formulário de login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("loginEmpresa", fiber.Map{
		"FlashSuccess": success,
		"FlashError":   errMsg,
	})
}

// Login autentica a empresa e guarda o ID na sessão.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	empresa, err := h.uc.Login(c.FormValue("email"), c.FormValue("senha"))
	switch {
	case errors.Is(err, domain.ErrEmpresaNaoEncontrada):
		h.sessions.FlashError(c, "Empresa não encontrada!")
		return c.Redirect("/loginEmpresa")
	case errors.Is(err, domain.ErrSenhaIncorreta):
		h.sessions.FlashError(c, "Senha incorreta!")
		return c.Redirect("/loginEmpresa")
	case err != nil:
		h.log.Error().Err(err).Msg("login empresa")
		h.sessions.FlashError(c, "Erro ao tentar fazer login.")
		return c.Redirect("/loginEmpresa")
	}
	if err := h.sessions.Login(c, empresa.ID); err != nil {
		return erroServidor(h.log, c, err, "gravar sessão")
	}
	h.sessions.FlashSuccess(c, "Login realizado com sucesso!")
	return c.Redirect("/")
}

// Logout destrói a sessão e redireciona para o login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c); err != nil {
		return c.Redirect("/")
	}
	return c.Redirect("/loginEmpresa")
}

// Perfil renderiza os dados da empresa logada.
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	empresa, err := h.uc.Perfil(h.sessions.EmpresaID(c))
	if err != nil {
		return erroServidor(h.log, c, err, "carregar perfil")
	}
	if empresa == nil {
		return c.Status(fiber.StatusNotFound).SendString("Empresa não encontrada")
	}
	return c.Render("perfilEmpresa", fiber.Map{"Empresa": empresa})
}

// EditarForm renderiza o formulário de edição da empresa.
func (h *AuthHandler) EditarForm(c *fiber.Ctx) error {
	empresa, err := h.uc.Perfil(h.sessions.EmpresaID(c))
	if err != nil {
		return erroServidor(h.log, c, err, "carregar dados para edição")
	}
	if empresa == nil {
		return c.Status(fiber.StatusNotFound).SendString("Empresa não encontrada")
	}
	return c.Render("editarEmpresa", fiber.Map{"Empresa": empresa})
}

// Editar atualiza os dados cadastrais, exigindo a senha atual.
func (h *AuthHandler) Editar(c *fiber.Ctx) error {
	err := h.uc.Atualizar(h.sessions.EmpresaID(c), auth.AtualizacaoInput{
		Nome:     c.FormValue("nome"),
		Email:    c.FormValue("email"),
		Telefone: c.FormValue("telefone"),
		Endereco: c.FormValue("endereco"),
		Senha:    c.FormValue("senha"),
	})
	switch {
	case errors.Is(err, domain.ErrSenhaIncorreta):
		return c.Status(fiber.StatusUnauthorized).SendString("Senha incorreta")
	case errors.Is(err, domain.ErrEmpresaNaoEncontrada):
		return c.Status(fiber.StatusNotFound).SendString("Empresa não encontrada")
	case err != nil:
		return erroServidor(h.log, c, err, "atualizar empresa")
	}
	return c.Redirect("/perfilEmpresa")
}

// DeletarForm renderiza a confirmação de exclusão da conta.
func (h *AuthHandler) DeletarForm(c *fiber.Ctx) error {
	return c.Render("deletarEmpresa", fiber.Map{})
}

// Deletar exclui a empresa logada (senha exigida) e encerra a sessão.
func (h *AuthHandler) Deletar(c *fiber.Ctx) error {
	err := h.uc.Excluir(h.sessions.EmpresaID(c), c.FormValue("senha"))
	switch {
	case errors.Is(err, domain.ErrSenhaIncorreta):
		return c.Status(fiber.StatusUnauthorized).SendString("Senha incorreta")
	case errors.Is(err, domain.ErrEmpresaNaoEncontrada):
		return c.Status(fiber.StatusNotFound).SendString("Empresa não encontrada")
	case err != nil:
		return erroServidor(h.log, c, err, "deletar empresa")
	}
	if err := h.sessions.Logout(c); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Erro ao finalizar sessão")
	}
	return c.Redirect("/")
}
