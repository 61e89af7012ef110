package dataset

import (
	"fmt"

	"github.com/insight-engine/datagen/internal/sample"
)

// Controllership is the accounting ledger table
// (controladoria_contabilidade.csv).
func Controllership() TableSpec {
	tipos := []string{"Receita", "Despesa", "Transferência", "Ajuste"}
	tipoWeights := []float64{0.4, 0.45, 0.1, 0.05}

	centrosCusto := []string{"Vendas", "Administrativo", "Produção", "Logística", "Marketing"}
	centroWeights := []float64{0.3, 0.2, 0.25, 0.15, 0.1}

	moedas := []string{"BRL", "USD", "EUR"}
	moedaWeights := []float64{0.9, 0.08, 0.02}

	return TableSpec{
		Domain:   "controllership",
		FileName: "controladoria_contabilidade.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "Data_Lancamento", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.YearsAgo(1), g.Now))
				}},
				{Name: "Conta_Debito", Gen: func(r *Row) any {
					return fmt.Sprintf("1.%d", g.Sample.IntBetween(1000, 9999))
				}},
				{Name: "Conta_Credito", Gen: func(r *Row) any {
					return fmt.Sprintf("2.%d", g.Sample.IntBetween(1000, 9999))
				}},
				{Name: "Valor", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.LogNormal(8, 1.5))
				}},
				{Name: "Historico", Gen: func(r *Row) any {
					return g.Faker.Sentence(5)
				}},
				{Name: "Tipo_Lancamento", Gen: func(r *Row) any {
					return g.Sample.Weighted(tipos, tipoWeights)
				}},
				{Name: "Centro_Custo", Gen: func(r *Row) any {
					return g.Sample.Weighted(centrosCusto, centroWeights)
				}},
				{Name: "Filial", Gen: func(r *Row) any {
					return fmt.Sprintf("FIL%02d", g.Sample.IntBetween(1, 50))
				}},
				{Name: "Documento", Gen: func(r *Row) any {
					return fmt.Sprintf("DOC%d", g.Sample.IntBetween(100000, 999999))
				}},
				{Name: "Fornecedor_Cliente", Gen: func(r *Row) any {
					if g.Sample.Maybe(0.5) {
						return g.Faker.Company()
					}
					return g.Faker.Name()
				}},
				{Name: "Moeda", Gen: func(r *Row) any {
					return g.Sample.Weighted(moedas, moedaWeights)
				}},
				{Name: "Taxa_Cambio", Gen: func(r *Row) any {
					if g.Sample.Maybe(0.1) {
						return sample.Round4(g.Sample.Uniform(1, 6))
					}
					return 1.0
				}},
				{Name: "Competencia", Gen: func(r *Row) any {
					d := r.TimeOf("Data_Lancamento")
					return fmt.Sprintf("%d-%02d", d.Year(), int(d.Month()))
				}},
				{Name: "Usuario", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "Aprovado", Gen: func(r *Row) any {
					return g.Sample.Maybe(0.5)
				}},
				{Name: "Observacoes", Null: 0.7, Gen: func(r *Row) any {
					return g.Faker.Sentence(6) + "."
				}},
				{Name: "Categoria", Gen: func(r *Row) any {
					return g.Faker.Word()
				}},
				{Name: "Subcategoria", Gen: func(r *Row) any {
					return g.Faker.Word()
				}},
			}
		},
	}
}
