package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rmaia/estoque-web/internal/application/estoque"
	"github.com/rmaia/estoque-web/internal/application/produto"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/infrastructure/ops"
	"github.com/rmaia/estoque-web/pkg/logger"
)

// TransacaoHandler registra e lista movimentações de estoque.
type TransacaoHandler struct {
	uc        *estoque.UseCase
	produtoUC *produto.UseCase
	sessions  *SessionManager
	log       *logger.Logger
}

// NewTransacaoHandler constrói o handler de transações.
func NewTransacaoHandler(uc *estoque.UseCase, produtoUC *produto.UseCase, sessions *SessionManager, log *logger.Logger) *TransacaoHandler {
	return &TransacaoHandler{uc: uc, produtoUC: produtoUC, sessions: sessions, log: log}
}

// Listar renderiza o histórico de transações, mais recentes primeiro.
func (h *TransacaoHandler) Listar(c *fiber.Ctx) error {
	transacoes, err := h.uc.ListarTransacoes()
	if err != nil {
		return erroServidor(h.log, c, err, "listar transações")
	}
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("transacoes", fiber.Map{
		"Transacoes":    transacoes,
		"EmpresaLogada": h.sessions.EmpresaID(c),
		"FlashSuccess":  success,
		"FlashError":    errMsg,
	})
}

// FazerForm renderiza o formulário de movimentação com os produtos disponíveis.
func (h *TransacaoHandler) FazerForm(c *fiber.Ctx) error {
	produtos, err := h.produtoUC.Listar()
	if err != nil {
		return erroServidor(h.log, c, err, "carregar produtos")
	}
	success, errMsg := h.sessions.PopFlashes(c)
	return c.Render("fazerTransacao", fiber.Map{
		"Produtos":     produtos,
		"FlashSuccess": success,
		"FlashError":   errMsg,
	})
}

// Fazer registra uma entrada ou saída e ajusta o estoque do produto na mesma
// transação de banco. Saída maior que o estoque disponível é rejeitada.
func (h *TransacaoHandler) Fazer(c *fiber.Ctx) error {
	quantidade, err := strconv.ParseInt(c.FormValue("quantidade"), 10, 64)
	if err != nil {
		h.sessions.FlashError(c, "Quantidade inválida.")
		return c.Redirect("/fazertransacoes")
	}
	err = h.uc.RegistrarTransacao(c.Context(), estoque.TransacaoInput{
		Tipo:       c.FormValue("tipo"),
		Quantidade: quantidade,
		ProdutoID:  c.FormValue("produtoID"),
	})
	switch {
	case errors.Is(err, domain.ErrTipoInvalido):
		h.sessions.FlashError(c, "Tipo de transação inválido.")
		return c.Redirect("/fazertransacoes")
	case errors.Is(err, domain.ErrQuantidadeInvalida):
		h.sessions.FlashError(c, "Quantidade deve ser maior que zero.")
		return c.Redirect("/fazertransacoes")
	case errors.Is(err, domain.ErrEstoqueInsuficiente):
		h.sessions.FlashError(c, "Estoque insuficiente para esta saída.")
		return c.Redirect("/fazertransacoes")
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).SendString("Produto não encontrado")
	case err != nil:
		return erroServidor(h.log, c, err, "registrar transação")
	}
	ops.TransacoesRegistradas.WithLabelValues(c.FormValue("tipo")).Inc()
	h.sessions.FlashSuccess(c, "Transação registrada com sucesso!")
	return c.Redirect("/transacoes")
}
