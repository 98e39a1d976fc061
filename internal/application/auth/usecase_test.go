package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rmaia/estoque-web/internal/application/auth"
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
)

// fakeEmpresaRepo repositório em memória indexado por id e por email.
type fakeEmpresaRepo struct {
	empresas map[string]*entity.Empresa
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{empresas: map[string]*entity.Empresa{}}
}

func (f *fakeEmpresaRepo) Create(e *entity.Empresa) error {
	for _, existente := range f.empresas {
		if existente.Email == e.Email {
			return domain.ErrEmailJaCadastrado
		}
	}
	f.empresas[e.ID] = e
	return nil
}

func (f *fakeEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	return f.empresas[id], nil
}

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

func cadastroValido() auth.CadastroInput {
	return auth.CadastroInput{
		Nome:     "Loja do Zé",
		Email:    "ze@example.com",
		Telefone: "11999990000",
		Endereco: "Rua A, 1",
		Tipo:     "varejo",
		Senha:    "segredo123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Cadastrar
// ──────────────────────────────────────────────────────────────────────────────

func TestCadastrar_CriaEmpresaComHashBcrypt(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := auth.NewUseCase(repo)

	empresa, err := uc.Cadastrar(cadastroValido())
	require.NoError(t, err)
	require.NotNil(t, empresa)

	assert.NotEmpty(t, empresa.ID, "a empresa deve receber um ID")
	assert.NotEqual(t, "segredo123", empresa.SenhaHash,
		"a senha nunca deve ser guardada em texto claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(empresa.SenhaHash), []byte("segredo123")),
		"o hash deve conferir com a senha original")
	assert.Len(t, repo.empresas, 1, "a empresa deve ser persistida")
}

// Telefone é opcional; qualquer outro campo vazio bloqueia o cadastro.
func TestCadastrar_CamposObrigatorios(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := auth.NewUseCase(repo)

	semNome := cadastroValido()
	semNome.Nome = ""
	_, err := uc.Cadastrar(semNome)
	assert.ErrorIs(t, err, domain.ErrCamposObrigatorios)

	semSenha := cadastroValido()
	semSenha.Senha = ""
	_, err = uc.Cadastrar(semSenha)
	assert.ErrorIs(t, err, domain.ErrCamposObrigatorios)

	assert.Empty(t, repo.empresas, "nada deve ser persistido com campos faltando")

	semTelefone := cadastroValido()
	semTelefone.Telefone = ""
	_, err = uc.Cadastrar(semTelefone)
	assert.NoError(t, err, "telefone é opcional")
}

func TestCadastrar_EmailDuplicado(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := auth.NewUseCase(repo)

	_, err := uc.Cadastrar(cadastroValido())
	require.NoError(t, err)

	_, err = uc.Cadastrar(cadastroValido())
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login / VerificarSenha
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_SucessoESenhaErrada(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := auth.NewUseCase(repo)
	cadastrada, err := uc.Cadastrar(cadastroValido())
	require.NoError(t, err)

	empresa, err := uc.Login("ze@example.com", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, cadastrada.ID, empresa.ID)

	_, err = uc.Login("ze@example.com", "outra-senha")
	assert.ErrorIs(t, err, domain.ErrSenhaIncorreta)
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	uc := auth.NewUseCase(newFakeEmpresaRepo())

	_, err := uc.Login("ninguem@example.com", "tanto-faz")
	assert.ErrorIs(t, err, domain.ErrEmpresaNaoEncontrada)
}

func TestVerificarSenha(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := auth.NewUseCase(repo)
	empresa, err := uc.Cadastrar(cadastroValido())
	require.NoError(t, err)

	assert.NoError(t, uc.VerificarSenha(empresa.ID, "segredo123"))
	assert.ErrorIs(t, uc.VerificarSenha(empresa.ID, "errada"), domain.ErrSenhaIncorreta)
	assert.ErrorIs(t, uc.VerificarSenha("id-inexistente", "segredo123"), domain.ErrEmpresaNaoEncontrada)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Atualizar / Excluir
// ──────────────────────────────────────────────────────────────────────────────

func TestAtualizar_ExigeSenhaAtual(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := auth.NewUseCase(repo)
	empresa, err := uc.Cadastrar(cadastroValido())
	require.NoError(t, err)

	err = uc.Atualizar(empresa.ID, auth.AtualizacaoInput{
		Nome:     "Loja Nova",
		Email:    "novo@example.com",
		Telefone: "11888880000",
		Endereco: "Rua B, 2",
		Senha:    "errada",
	})
	assert.ErrorIs(t, err, domain.ErrSenhaIncorreta)
	assert.Equal(t, "Loja do Zé", repo.empresas[empresa.ID].Nome,
		"nada deve mudar com a senha errada")

	err = uc.Atualizar(empresa.ID, auth.AtualizacaoInput{
		Nome:     "Loja Nova",
		Email:    "novo@example.com",
		Telefone: "11888880000",
		Endereco: "Rua B, 2",
		Senha:    "segredo123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Loja Nova", repo.empresas[empresa.ID].Nome)
	assert.Equal(t, "novo@example.com", repo.empresas[empresa.ID].Email)
}

func TestExcluir(t *testing.T) {
	repo := newFakeEmpresaRepo()
	uc := auth.NewUseCase(repo)
	empresa, err := uc.Cadastrar(cadastroValido())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Excluir(empresa.ID, "errada"), domain.ErrSenhaIncorreta)
	assert.Len(t, repo.empresas, 1, "a empresa deve continuar existindo após senha errada")

	require.NoError(t, uc.Excluir(empresa.ID, "segredo123"))
	assert.Empty(t, repo.empresas)
}
