package relatorio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	apprelatorio "github.com/rmaia/estoque-web/internal/application/relatorio"
	"github.com/rmaia/estoque-web/internal/domain/entity"
)

var _ apprelatorio.ExcelGenerator = (*ExcelizeGenerator)(nil)

// ExcelizeGenerator implementa relatorio.ExcelGenerator usando excelize.
type ExcelizeGenerator struct{}

// NewExcelizeGenerator constrói o gerador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

// GerarEstoqueExcel monta a planilha da posição de estoque e devolve seus bytes.
func (g *ExcelizeGenerator) GerarEstoqueExcel(produtos []*entity.ProdutoDetalhado) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"produto",
		"fornecedor",
		"empresa",
		"preco",
		"quantidade",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabeçalho: %w", err)
	}

	row := 2
	for _, p := range produtos {
		linha := []interface{}{
			p.Nome,
			p.FornecedorNome,
			p.EmpresaNome,
			p.Preco.InexactFloat64(),
			p.Quantidade,
		}
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(sheet, cell, &linha); err != nil {
			return nil, fmt.Errorf("excel: linha %d: %w", row, err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escrever buffer: %w", err)
	}
	return buf.Bytes(), nil
}
