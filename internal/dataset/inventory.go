package dataset

import (
	"fmt"

	"github.com/insight-engine/datagen/internal/sample"
)

// Inventory is the stock movements table (inventario_produtos.csv).
func Inventory() TableSpec {
	categories := []string{"Eletrônicos", "Roupas", "Alimentos", "Ferramentas", "Móveis"}
	categoryWeights := []float64{0.25, 0.2, 0.2, 0.15, 0.2}

	movementTypes := []string{"Entrada", "Saída", "Ajuste", "Transferência"}
	movementWeights := []float64{0.3, 0.5, 0.15, 0.05}

	statuses := []string{"Disponível", "Reservado", "Danificado", "Vencido"}
	statusWeights := []float64{0.8, 0.1, 0.05, 0.05}

	return TableSpec{
		Domain:   "inventory",
		FileName: "inventario_produtos.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "SKU", Gen: func(r *Row) any {
					return fmt.Sprintf("SKU%d", g.Sample.IntBetween(10000, 99999))
				}},
				{Name: "Nome_Produto", Gen: func(r *Row) any {
					return g.Faker.Sentence(3)
				}},
				{Name: "Categoria", Gen: func(r *Row) any {
					return g.Sample.Weighted(categories, categoryWeights)
				}},
				{Name: "Fornecedor", Gen: func(r *Row) any {
					return g.Faker.Company()
				}},
				{Name: "Quantidade_Estoque", Gen: func(r *Row) any {
					return g.Sample.IntBetween(0, 10000)
				}},
				{Name: "Valor_Unitario", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.LogNormal(5, 1.5))
				}},
				{Name: "Valor_Total", Gen: func(r *Row) any {
					return sample.Round2(float64(r.Int("Quantidade_Estoque")) * r.Float("Valor_Unitario"))
				}},
				{Name: "Localizacao", Gen: func(r *Row) any {
					return fmt.Sprintf("Armazém %d - Prateleira %d",
						g.Sample.IntBetween(1, 10), g.Sample.IntBetween(1, 100))
				}},
				{Name: "Data_Ultima_Movimentacao", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.YearsAgo(1), g.Now))
				}},
				{Name: "Tipo_Movimentacao", Gen: func(r *Row) any {
					return g.Sample.Weighted(movementTypes, movementWeights)
				}},
				{Name: "Quantidade_Movimentada", Gen: func(r *Row) any {
					return g.Sample.IntBetween(1, 500)
				}},
				{Name: "Saldo_Apos_Movimentacao", Gen: func(r *Row) any {
					return r.Int("Quantidade_Estoque")
				}},
				{Name: "Motivo", Gen: func(r *Row) any {
					return g.Faker.Sentence(4)
				}},
				{Name: "Responsavel", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "Data_Vencimento", Null: 0.7, Gen: func(r *Row) any {
					return Date(r.TimeOf("Data_Ultima_Movimentacao").AddDate(0, 0, g.Sample.IntBetween(30, 730)))
				}},
				{Name: "Lote", Gen: func(r *Row) any {
					return fmt.Sprintf("LOTE%d", g.Sample.IntBetween(1000, 9999))
				}},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
			}
		},
	}
}
