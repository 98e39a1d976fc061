package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rmaia/estoque-web/internal/application/auth"
	"github.com/rmaia/estoque-web/internal/application/estoque"
	"github.com/rmaia/estoque-web/internal/application/fornecedor"
	"github.com/rmaia/estoque-web/internal/application/produto"
	"github.com/rmaia/estoque-web/internal/application/relatorio"
	"github.com/rmaia/estoque-web/internal/infrastructure/ops"
	"github.com/rmaia/estoque-web/internal/infrastructure/postgres"
	infrarelatorio "github.com/rmaia/estoque-web/internal/infrastructure/relatorio"
	"github.com/rmaia/estoque-web/internal/interfaces/web"
	"github.com/rmaia/estoque-web/pkg/config"
	"github.com/rmaia/estoque-web/pkg/logger"
)

func runMigrations(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	transacaoRepo := postgres.NewTransacaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(empresaRepo)
	fornecedorUC := fornecedor.NewUseCase(fornecedorRepo)
	produtoUC := produto.NewUseCase(produtoRepo)
	estoqueUC := estoque.NewUseCase(txRunner, transacaoRepo)
	relatorioUC := relatorio.NewUseCase(
		produtoRepo, empresaRepo,
		infrarelatorio.NewMarotoPDFGenerator(),
		infrarelatorio.NewExcelizeGenerator(),
	)

	sessions := web.NewSessionManager(cfg.Session)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	web.Router(app, web.RouterDeps{
		AuthUC:       authUC,
		FornecedorUC: fornecedorUC,
		ProdutoUC:    produtoUC,
		EstoqueUC:    estoqueUC,
		RelatorioUC:  relatorioUC,
		Sessions:     sessions,
		Log:          log,
	})

	opsServer := ops.New(cfg.Metrics.Addr, cfg.Metrics.Enabled)
	go func() {
		if err := opsServer.Start(); err != nil {
			log.Error().Err(err).Msg("listener operacional finalizado")
		}
	}()

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de encerramento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}
	if err := opsServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do listener operacional")
	}

	log.Info().Msg("aplicação parada")
}
