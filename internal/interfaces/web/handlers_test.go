package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmaia/estoque-web/internal/application/auth"
	"github.com/rmaia/estoque-web/internal/application/estoque"
	"github.com/rmaia/estoque-web/internal/application/fornecedor"
	"github.com/rmaia/estoque-web/internal/application/produto"
	"github.com/rmaia/estoque-web/internal/application/relatorio"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
	"github.com/rmaia/estoque-web/internal/interfaces/web"
	"github.com/rmaia/estoque-web/pkg/config"
	"github.com/rmaia/estoque-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmpresaRepo struct{ empresas map[string]*entity.Empresa }

func (f *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	for _, ex := range f.empresas {
		if ex.Email == e.Email {
			return domain.ErrEmailJaCadastrado
		}
	}
	f.empresas[e.ID] = e
	return nil
}
func (f *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) { return f.empresas[id], nil }
func (f *fakeEmpresaRepo) GetByEmail(email string) (*entity.Empresa, error) {
	for _, e := range f.empresas {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}
func (f *fakeEmpresaRepo) Update(e *entity.Empresa) error { f.empresas[e.ID] = e; return nil }
func (f *fakeEmpresaRepo) List() ([]*entity.Empresa, error) {
	out := make([]*entity.Empresa, 0, len(f.empresas))
	for _, e := range f.empresas {
		out = append(out, e)
	}
	return out, nil
}
func (f *fakeEmpresaRepo) Delete(id string) error { delete(f.empresas, id); return nil }

type fakeFornecedorRepo struct{ fornecedores map[string]*entity.Fornecedor }

func (f *fakeFornecedorRepo) Create(fo *entity.Fornecedor) error {
	f.fornecedores[fo.ID] = fo
	return nil
}
func (f *fakeFornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	return f.fornecedores[id], nil
}
func (f *fakeFornecedorRepo) Update(fo *entity.Fornecedor) error {
	f.fornecedores[fo.ID] = fo
	return nil
}
func (f *fakeFornecedorRepo) List() ([]*entity.Fornecedor, error) {
	out := make([]*entity.Fornecedor, 0, len(f.fornecedores))
	for _, fo := range f.fornecedores {
		out = append(out, fo)
	}
	return out, nil
}
func (f *fakeFornecedorRepo) Delete(id string) error { delete(f.fornecedores, id); return nil }

type fakeProdutoRepo struct{ produtos map[string]*entity.Produto }

func (f *fakeProdutoRepo) Create(p *entity.Produto) error             { f.produtos[p.ID] = p; return nil }
func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) { return f.produtos[id], nil }
func (f *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}
func (f *fakeProdutoRepo) Update(p *entity.Produto) error { f.produtos[p.ID] = p; return nil }
func (f *fakeProdutoRepo) UpdateQuantidade(id string, quantidade int64) error {
	f.produtos[id].Quantidade = quantidade
	return nil
}
func (f *fakeProdutoRepo) List() ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(f.produtos))
	for _, p := range f.produtos {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeProdutoRepo) ListDetalhado() ([]*entity.ProdutoDetalhado, error) {
	out := make([]*entity.ProdutoDetalhado, 0, len(f.produtos))
	for _, p := range f.produtos {
		out = append(out, &entity.ProdutoDetalhado{Produto: *p})
	}
	return out, nil
}
func (f *fakeProdutoRepo) Delete(id string) error { delete(f.produtos, id); return nil }

type fakeTransacaoRepo struct{ criadas []*entity.Transacao }

func (f *fakeTransacaoRepo) Create(t *entity.Transacao) error {
	f.criadas = append(f.criadas, t)
	return nil
}
func (f *fakeTransacaoRepo) ListDetalhado() ([]*entity.TransacaoDetalhada, error) {
	out := make([]*entity.TransacaoDetalhada, 0, len(f.criadas))
	for _, tr := range f.criadas {
		out = append(out, &entity.TransacaoDetalhada{Transacao: *tr})
	}
	return out, nil
}

// fakeTxRunner executa o callback direto com os fakes, sem transação real.
type fakeTxRunner struct {
	produtoRepo   *fakeProdutoRepo
	transacaoRepo *fakeTransacaoRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	transacaoRepo repository.TransacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	return fn(r.transacaoRepo, r.produtoRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app           *fiber.App
	empresaRepo   *fakeEmpresaRepo
	fornecedorRepo *fakeFornecedorRepo
	produtoRepo   *fakeProdutoRepo
	transacaoRepo *fakeTransacaoRepo
}

// buildTestEnv monta a aplicação completa (router e views reais) sobre
// repositórios em memória.
func buildTestEnv(t *testing.T) *testEnv {
	t.Helper()

	empresaRepo := &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{}}
	fornecedorRepo := &fakeFornecedorRepo{fornecedores: map[string]*entity.Fornecedor{}}
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{}}
	transacaoRepo := &fakeTransacaoRepo{}
	runner := &fakeTxRunner{produtoRepo: produtoRepo, transacaoRepo: transacaoRepo}

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	sessions := web.NewSessionManager(config.SessionConfig{
		CookieName: "estoque_session",
		Expiration: 60,
	})

	engine := html.New("../../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	web.Router(app, web.RouterDeps{
		AuthUC:       auth.NewUseCase(empresaRepo),
		FornecedorUC: fornecedor.NewUseCase(fornecedorRepo),
		ProdutoUC:    produto.NewUseCase(produtoRepo),
		EstoqueUC:    estoque.NewUseCase(runner, transacaoRepo),
		RelatorioUC:  relatorio.NewUseCase(produtoRepo, empresaRepo, nil, nil),
		Sessions:     sessions,
		Log:          log,
	})

	return &testEnv{
		app:            app,
		empresaRepo:    empresaRepo,
		fornecedorRepo: fornecedorRepo,
		produtoRepo:    produtoRepo,
		transacaoRepo:  transacaoRepo,
	}
}

// postForm envia um POST application/x-www-form-urlencoded, com cookies opcionais.
func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getPath(t *testing.T, app *fiber.App, path string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// cadastraELoga cadastra uma empresa e devolve os cookies de sessão do login.
func cadastraELoga(t *testing.T, env *testEnv) []*http.Cookie {
	t.Helper()

	resp := postForm(t, env.app, "/cadastrarEmpresa", url.Values{
		"nome":     {"Loja do Zé"},
		"email":    {"ze@example.com"},
		"telefone": {"11999990000"},
		"endereco": {"Rua A, 1"},
		"tipo":     {"varejo"},
		"senha":    {"segredo123"},
	}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode, "cadastro válido deve redirecionar")

	resp = postForm(t, env.app, "/loginEmpresa", url.Values{
		"email": {"ze@example.com"},
		"senha": {"segredo123"},
	}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode, "login válido deve redirecionar")
	require.Equal(t, "/", resp.Header.Get("Location"))
	require.NotEmpty(t, resp.Cookies(), "o login deve emitir o cookie de sessão")
	return resp.Cookies()
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — gate de sessão
// ──────────────────────────────────────────────────────────────────────────────

func TestRotasProtegidas_SemSessaoRedirecionaParaLogin(t *testing.T) {
	env := buildTestEnv(t)

	for _, path := range []string{"/produtos", "/fornecedores", "/transacoes", "/perfilEmpresa"} {
		resp := getPath(t, env.app, path, nil)
		resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode,
			"%s sem sessão deve redirecionar", path)
		assert.Equal(t, "/loginEmpresa", resp.Header.Get("Location"))
	}
}

func TestHome_AcessivelSemSessao(t *testing.T) {
	env := buildTestEnv(t)

	resp := getPath(t, env.app, "/", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "a home é pública")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — cadastro e login
// ──────────────────────────────────────────────────────────────────────────────

func TestCadastrarEmpresa_CampoFaltandoNaoPersiste(t *testing.T) {
	env := buildTestEnv(t)

	resp := postForm(t, env.app, "/cadastrarEmpresa", url.Values{
		"nome":  {"Loja do Zé"},
		"email": {"ze@example.com"},
		// endereco, tipo e senha ausentes
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/cadastrarEmpresa", resp.Header.Get("Location"),
		"campos faltando devem voltar ao formulário")
	assert.Empty(t, env.empresaRepo.empresas, "nada deve ser persistido")
}

func TestLogin_SenhaErradaVoltaParaLogin(t *testing.T) {
	env := buildTestEnv(t)
	cadastraELoga(t, env)

	resp := postForm(t, env.app, "/loginEmpresa", url.Values{
		"email": {"ze@example.com"},
		"senha": {"senha-errada"},
	}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/loginEmpresa", resp.Header.Get("Location"))
}

func TestLogin_DaAcessoAsRotasProtegidas(t *testing.T) {
	env := buildTestEnv(t)
	cookies := cadastraELoga(t, env)

	resp := getPath(t, env.app, "/produtos", cookies)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"com sessão, /produtos deve renderizar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — gate de senha em edição/exclusão
// ──────────────────────────────────────────────────────────────────────────────

func TestEditarFornecedor_SenhaErradaRetorna403(t *testing.T) {
	env := buildTestEnv(t)
	cookies := cadastraELoga(t, env)
	env.fornecedorRepo.fornecedores["f1"] = &entity.Fornecedor{ID: "f1", Nome: "ACME"}

	resp := postForm(t, env.app, "/editarFornecedor", url.Values{
		"id":    {"f1"},
		"nome":  {"ACME Ltda"},
		"senha": {"senha-errada"},
	}, cookies)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Senha inválida", string(body))
	assert.Equal(t, "ACME", env.fornecedorRepo.fornecedores["f1"].Nome,
		"nada deve mudar com a senha errada")
}

func TestDeletarFornecedor_Inexistente404(t *testing.T) {
	env := buildTestEnv(t)
	cookies := cadastraELoga(t, env)

	resp := postForm(t, env.app, "/deletarFornecedor", url.Values{
		"id":    {"nao-existe"},
		"senha": {"segredo123"},
	}, cookies)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Fornecedor não encontrado", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — transações de estoque
// ──────────────────────────────────────────────────────────────────────────────

func TestFazerTransacao_EntradaAjustaEstoque(t *testing.T) {
	env := buildTestEnv(t)
	cookies := cadastraELoga(t, env)
	env.produtoRepo.produtos["p1"] = &entity.Produto{ID: "p1", Nome: "Parafuso", Quantidade: 10}

	resp := postForm(t, env.app, "/fazertransacoes", url.Values{
		"produtoID":  {"p1"},
		"tipo":       {"entrada"},
		"quantidade": {"5"},
	}, cookies)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/transacoes", resp.Header.Get("Location"))
	assert.Equal(t, int64(15), env.produtoRepo.produtos["p1"].Quantidade)
	require.Len(t, env.transacaoRepo.criadas, 1)
	assert.Equal(t, entity.TipoEntrada, env.transacaoRepo.criadas[0].Tipo)
}

func TestFazerTransacao_SaidaMaiorQueEstoqueNaoPersiste(t *testing.T) {
	env := buildTestEnv(t)
	cookies := cadastraELoga(t, env)
	env.produtoRepo.produtos["p1"] = &entity.Produto{ID: "p1", Nome: "Parafuso", Quantidade: 3}

	resp := postForm(t, env.app, "/fazertransacoes", url.Values{
		"produtoID":  {"p1"},
		"tipo":       {"saida"},
		"quantidade": {"4"},
	}, cookies)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/fazertransacoes", resp.Header.Get("Location"),
		"saida maior que o estoque deve voltar ao formulário")
	assert.Equal(t, int64(3), env.produtoRepo.produtos["p1"].Quantidade,
		"o estoque não deve mudar")
	assert.Empty(t, env.transacaoRepo.criadas, "nenhum movimento deve ser gravado")
}

func TestFazerTransacao_ProdutoInexistente404(t *testing.T) {
	env := buildTestEnv(t)
	cookies := cadastraELoga(t, env)

	resp := postForm(t, env.app, "/fazertransacoes", url.Values{
		"produtoID":  {"nao-existe"},
		"tipo":       {"entrada"},
		"quantidade": {"1"},
	}, cookies)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Produto não encontrado", string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_EncerraSessao(t *testing.T) {
	env := buildTestEnv(t)
	cookies := cadastraELoga(t, env)

	resp := getPath(t, env.app, "/logout", cookies)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/loginEmpresa", resp.Header.Get("Location"))

	resp = getPath(t, env.app, "/produtos", cookies)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode,
		"após o logout a sessão não deve mais valer")
	assert.Equal(t, "/loginEmpresa", resp.Header.Get("Location"))
}
