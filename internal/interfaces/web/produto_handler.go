package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rmaia/estoque-web/internal/application/auth"
	"github.com/rmaia/estoque-web/internal/application/fornecedor"
	"github.com/rmaia/estoque-web/internal/application/produto"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/pkg/logger"
	"github.com/shopspring/decimal"
)

// ProdutoHandler trata o CRUD de produtos. Edição e exclusão exigem a
// re-verificação da senha da empresa logada.
type ProdutoHandler struct {
	uc           *produto.UseCase
	fornecedorUC *fornecedor.UseCase
	authUC       *auth.UseCase
	sessions     *SessionManager
	log          *logger.Logger
}

// NewProdutoHandler constrói o handler de produtos.
func NewProdutoHandler(uc *produto.UseCase, fornecedorUC *fornecedor.UseCase, authUC *auth.UseCase, sessions *SessionManager, log *logger.Logger) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, fornecedorUC: fornecedorUC, authUC: authUC, sessions: sessions, log: log}
}

// Listar renderiza a lista de produtos com empresa e fornecedor (junção interna).
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	produtos, err := h.uc.ListarDetalhado()
	if err != nil {
		return erroServidor(h.log, c, err, "listar produtos")
	}
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("produtos", fiber.Map{
		"Produtos":      produtos,
		"EmpresaLogada": h.sessions.EmpresaID(c),
		"FlashSuccess":  success,
		"FlashError":    errMsg,
	})
}

// AdicionarForm renderiza o formulário de cadastro com os fornecedores disponíveis.
func (h *ProdutoHandler) AdicionarForm(c *fiber.Ctx) error {
	fornecedores, err := h.fornecedorUC.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "carregar fornecedores")
	}
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("adicionarProdutos", fiber.Map{
		"Fornecedores": fornecedores,
		"EmpresaID":    h.sessions.EmpresaID(c),
		"FlashSuccess": success,
		"FlashError":   errMsg,
	})
}

// Adicionar cria um produto vinculado à empresa logada e ao fornecedor escolhido.
func (h *ProdutoHandler) Adicionar(c *fiber.Ctx) error {
	preco, quantidade, ok := h.parsePrecoQuantidade(c)
	if !ok {
		return c.Redirect("/adicionarProdutos")
	}
	_, err := h.uc.Criar(produto.CriacaoInput{
		Nome:         c.FormValue("nome"),
		Preco:        preco,
		Quantidade:   quantidade,
		FornecedorID: c.FormValue("fornecedorID"),
		EmpresaID:    h.sessions.EmpresaID(c),
	})
	switch {
	case errors.Is(err, domain.ErrQuantidadeInvalida):
		h.sessions.FlashError(c, "Quantidade não pode ser negativa.")
		return c.Redirect("/adicionarProdutos")
	case err != nil:
		return erroServidor(h.log, c, err, "adicionar produto")
	}
	return c.Redirect("/produtos")
}

// EditarForm renderiza o formulário de edição com a lista de produtos.
func (h *ProdutoHandler) EditarForm(c *fiber.Ctx) error {
	produtos, err := h.uc.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "carregar produtos")
	}
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("editarProdutos", fiber.Map{
		"Produtos":     produtos,
		"FlashSuccess": success,
		"FlashError":   errMsg,
	})
}

// Editar atualiza o produto escolhido (por ID), com senha da empresa exigida.
func (h *ProdutoHandler) Editar(c *fiber.Ctx) error {
	if err := h.authUC.VerificarSenha(h.sessions.EmpresaID(c), c.FormValue("senha")); err != nil {
		if errors.Is(err, domain.ErrSenhaIncorreta) || errors.Is(err, domain.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusForbidden).SendString("Senha inválida")
		}
		return erroServidor(h.log, c, err, "verificar senha")
	}
	preco, quantidade, ok := h.parsePrecoQuantidade(c)
	if !ok {
		return c.Redirect("/editarProdutos")
	}
	err := h.uc.Atualizar(c.FormValue("id"), produto.EdicaoInput{
		Nome:       c.FormValue("nome"),
		Preco:      preco,
		Quantidade: quantidade,
	})
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).SendString("Produto não encontrado")
	case errors.Is(err, domain.ErrQuantidadeInvalida):
		h.sessions.FlashError(c, "Quantidade não pode ser negativa.")
		return c.Redirect("/editarProdutos")
	case err != nil:
		return erroServidor(h.log, c, err, "editar produto")
	}
	return c.Redirect("/produtos")
}

// DeletarForm renderiza a confirmação de exclusão com a lista de produtos.
func (h *ProdutoHandler) DeletarForm(c *fiber.Ctx) error {
	produtos, err := h.uc.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "carregar produtos")
	}
	return c.Render("deletarProduto", fiber.Map{"Produtos": produtos})
}

// Deletar exclui o produto escolhido (por ID), com senha da empresa exigida.
func (h *ProdutoHandler) Deletar(c *fiber.Ctx) error {
	if err := h.authUC.VerificarSenha(h.sessions.EmpresaID(c), c.FormValue("senha")); err != nil {
		if errors.Is(err, domain.ErrSenhaIncorreta) || errors.Is(err, domain.ErrEmpresaNaoEncontrada) {
			return c.Status(fiber.StatusForbidden).SendString("Senha inválida")
		}
		return erroServidor(h.log, c, err, "verificar senha")
	}
	err := h.uc.Excluir(c.FormValue("id"))
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).SendString("Produto não encontrado")
	case err != nil:
		return erroServidor(h.log, c, err, "excluir produto")
	}
	return c.Redirect("/produtos")
}

// parsePrecoQuantidade valida preço e quantidade do formulário; erro de parse
// vira flash e o caller redireciona de volta ao formulário.
func (h *ProdutoHandler) parsePrecoQuantidade(c *fiber.Ctx) (decimal.Decimal, int64, bool) {
	preco, err := decimal.NewFromString(c.FormValue("preco"))
	if err != nil {
		h.sessions.FlashError(c, "Preço inválido.")
		return decimal.Zero, 0, false
	}
	quantidade, err := strconv.ParseInt(c.FormValue("quantidade"), 10, 64)
	if err != nil {
		h.sessions.FlashError(c, "Quantidade inválida.")
		return decimal.Zero, 0, false
	}
	return preco, quantidade, true
}
