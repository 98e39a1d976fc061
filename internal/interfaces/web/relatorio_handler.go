package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmaia/estoque-web/internal/application/relatorio"
	"github.com/rmaia/estoque-web/pkg/logger"
)

// RelatorioHandler serve os relatórios de estoque para download.
type RelatorioHandler struct {
	uc       *relatorio.UseCase
	sessions *SessionManager
	log      *logger.Logger
}

// NewRelatorioHandler constrói o handler de relatórios.
func NewRelatorioHandler(uc *relatorio.UseCase, sessions *SessionManager, log *logger.Logger) *RelatorioHandler {
	return &RelatorioHandler{uc: uc, sessions: sessions, log: log}
}

// EstoqueExcel gera a planilha de estoque e a devolve como anexo.
func (h *RelatorioHandler) EstoqueExcel(c *fiber.Ctx) error {
	conteudo, err := h.uc.EstoqueExcel()
	if err != nil {
		return erroServidor(h.log, c, err, "gerar relatório excel")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque.xlsx"`)
	return c.Send(conteudo)
}

// EstoquePDF gera o PDF de estoque da empresa logada e o devolve como anexo.
func (h *RelatorioHandler) EstoquePDF(c *fiber.Ctx) error {
	conteudo, err := h.uc.EstoquePDF(h.sessions.EmpresaID(c))
	if err != nil {
		return erroServidor(h.log, c, err, "gerar relatório pdf")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estoque.pdf"`)
	return c.Send(conteudo)
}
