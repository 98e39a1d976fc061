package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmaia/estoque-web/internal/application/auth"
	"github.com/rmaia/estoque-web/internal/application/estoque"
	"github.com/rmaia/estoque-web/internal/application/fornecedor"
	"github.com/rmaia/estoque-web/internal/application/produto"
	"github.com/rmaia/estoque-web/internal/application/relatorio"
	"github.com/rmaia/estoque-web/pkg/logger"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	FornecedorUC *fornecedor.UseCase
	ProdutoUC    *produto.UseCase
	EstoqueUC    *estoque.UseCase
	RelatorioUC  *relatorio.UseCase
	Sessions     *SessionManager
	Log          *logger.Logger
}

// Router registra as rotas da aplicação.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Log)
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC, deps.AuthUC, deps.Sessions, deps.Log)
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.FornecedorUC, deps.AuthUC, deps.Sessions, deps.Log)
	transacaoHandler := NewTransacaoHandler(deps.EstoqueUC, deps.ProdutoUC, deps.Sessions, deps.Log)
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC, deps.Sessions, deps.Log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Público
	app.Get("/", authHandler.Home)
	app.Get("/cadastrarEmpresa", authHandler.CadastrarForm)
	app.Post("/cadastrarEmpresa", authHandler.Cadastrar)
	app.Get("/loginEmpresa", authHandler.LoginForm)
	app.Post("/loginEmpresa", authHandler.Login)

	// Protegido (exige empresa logada)
	protected := app.Group("/", deps.Sessions.RequireEmpresa())

	protected.Get("/logout", authHandler.Logout)
	protected.Get("/perfilEmpresa", authHandler.Perfil)
	protected.Get("/editarEmpresa", authHandler.EditarForm)
	protected.Post("/editarEmpresa", authHandler.Editar)
	protected.Get("/deletarEmpresa", authHandler.DeletarForm)
	protected.Post("/deletarEmpresa", authHandler.Deletar)

	protected.Get("/fornecedores", fornecedorHandler.Listar)
	protected.Get("/adicionarFornecedores", fornecedorHandler.AdicionarForm)
	protected.Post("/adicionarFornecedores", fornecedorHandler.Adicionar)
	protected.Get("/editarFornecedor", fornecedorHandler.EditarForm)
	protected.Post("/editarFornecedor", fornecedorHandler.Editar)
	protected.Get("/deletarFornecedor", fornecedorHandler.DeletarForm)
	protected.Post("/deletarFornecedor", fornecedorHandler.Deletar)

	protected.Get("/produtos", produtoHandler.Listar)
	protected.Get("/adicionarProdutos", produtoHandler.AdicionarForm)
	protected.Post("/adicionarProdutos", produtoHandler.Adicionar)
	protected.Get("/editarProdutos", produtoHandler.EditarForm)
	protected.Post("/editarProdutos", produtoHandler.Editar)
	protected.Get("/deletarProduto", produtoHandler.DeletarForm)
	protected.Post("/deletarProduto", produtoHandler.Deletar)

	protected.Get("/transacoes", transacaoHandler.Listar)
	protected.Get("/fazertransacoes", transacaoHandler.FazerForm)
	protected.Post("/fazertransacoes", transacaoHandler.Fazer)

	protected.Get("/relatorios/estoque.xlsx", relatorioHandler.EstoqueExcel)
	protected.Get("/relatorios/estoque.pdf", relatorioHandler.EstoquePDF)
}
