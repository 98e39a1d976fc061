package relatorio

import (
	"github.com/rmaia/estoque-web/internal/domain"
	"github.com/rmaia/estoque-web/internal/domain/entity"
	"github.com/rmaia/estoque-web/internal/domain/repository"
)

// PDFGenerator porto para a geração do relatório de estoque em PDF.
// Implementado em infrastructure/relatorio com Maroto.
type PDFGenerator interface {
	GerarEstoquePDF(empresa *entity.Empresa, produtos []*entity.ProdutoDetalhado) ([]byte, error)
}

// ExcelGenerator porto para a exportação do relatório de estoque em Excel.
// Implementado em infrastructure/relatorio com excelize.
type ExcelGenerator interface {
	GerarEstoqueExcel(produtos []*entity.ProdutoDetalhado) ([]byte, error)
}

// UseCase monta os relatórios de estoque da posição atual (produtos com
// fornecedor e empresa) nos formatos PDF e Excel.
type UseCase struct {
	produtoRepo repository.ProdutoRepository
	empresaRepo repository.EmpresaRepository
	pdf         PDFGenerator
	excel       ExcelGenerator
}

// NewUseCase constrói o caso de uso de relatórios.
func NewUseCase(
	produtoRepo repository.ProdutoRepository,
	empresaRepo repository.EmpresaRepository,
	pdf PDFGenerator,
	excel ExcelGenerator,
) *UseCase {
	return &UseCase{produtoRepo: produtoRepo, empresaRepo: empresaRepo, pdf: pdf, excel: excel}
}

// EstoquePDF gera o PDF da posição de estoque, com o cabeçalho da empresa logada.
func (uc *UseCase) EstoquePDF(empresaID string) ([]byte, error) {
	empresa, err := uc.empresaRepo.GetByID(empresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrEmpresaNaoEncontrada
	}
	produtos, err := uc.produtoRepo.ListDetalhado()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GerarEstoquePDF(empresa, produtos)
}

// EstoqueExcel gera a planilha da posição de estoque.
func (uc *UseCase) EstoqueExcel() ([]byte, error) {
	produtos, err := uc.produtoRepo.ListDetalhado()
	if err != nil {
		return nil, err
	}
	return uc.excel.GerarEstoqueExcel(produtos)
}
