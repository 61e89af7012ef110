package dataset

import (
	"fmt"

	"github.com/insight-engine/datagen/internal/sample"
)

// Ecommerce is the online sales order table (vendas_ecommerce.csv).
func Ecommerce() TableSpec {
	statuses := []string{"Concluído", "Pendente", "Cancelado", "Devolvido"}
	statusWeights := []float64{0.75, 0.15, 0.08, 0.02}

	paymentMethods := []string{"Cartão de Crédito", "Boleto", "PIX", "Transferência"}
	paymentWeights := []float64{0.5, 0.25, 0.2, 0.05}

	channels := []string{"Site", "App Mobile", "Marketplace", "Loja Física"}
	channelWeights := []float64{0.4, 0.3, 0.2, 0.1}

	categories := []string{"Eletrônicos", "Roupas", "Casa e Jardim", "Livros", "Esportes"}
	categoryWeights := []float64{0.3, 0.25, 0.2, 0.15, 0.1}

	return TableSpec{
		Domain:   "ecommerce",
		FileName: "vendas_ecommerce.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "ID_Pedido", Gen: func(r *Row) any {
					return fmt.Sprintf("PED%06d", r.Index)
				}},
				{Name: "Data_Pedido", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.YearsAgo(2), g.Now))
				}},
				{Name: "Cliente_ID", Gen: func(r *Row) any {
					return fmt.Sprintf("CLI%05d", g.Sample.IntBetween(1, 10000))
				}},
				{Name: "Produto", Gen: func(r *Row) any {
					return g.Faker.Sentence(3)
				}},
				{Name: "Quantidade", Gen: func(r *Row) any {
					q := int(g.Sample.Normal(2, 1.5))
					if q < 1 {
						q = 1
					}
					return q
				}},
				{Name: "Preco_Unitario", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.Normal(150, 80))
				}},
				{Name: "Total", Gen: func(r *Row) any {
					// Freight and discount are drawn here so the total can be
					// derived from all its inputs; their columns come later.
					freight := sample.Round2(g.Sample.Normal(15, 8))
					discount := 0.0
					if g.Sample.Maybe(0.3) {
						discount = sample.Round2(g.Sample.Uniform(0, r.Float("Preco_Unitario")*0.3))
					}
					r.Set("Frete", freight)
					r.Set("Desconto", discount)

					total := float64(r.Int("Quantidade"))*r.Float("Preco_Unitario") + freight - discount
					return sample.Round2(total)
				}},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
				{Name: "Metodo_Pagamento", Gen: func(r *Row) any {
					return g.Sample.Weighted(paymentMethods, paymentWeights)
				}},
				{Name: "Frete", Gen: presetBy("Total")},
				{Name: "Desconto", Gen: presetBy("Total")},
				{Name: "Canal_Venda", Gen: func(r *Row) any {
					return g.Sample.Weighted(channels, channelWeights)
				}},
				{Name: "Cidade", Gen: func(r *Row) any {
					return g.Faker.City()
				}},
				{Name: "Estado", Gen: func(r *Row) any {
					return g.Faker.StateAbbr()
				}},
				{Name: "Avaliacao", Null: 0.3, Gen: func(r *Row) any {
					return g.Sample.IntBetween(1, 5)
				}},
				{Name: "Data_Entrega", Null: 0.1, Gen: func(r *Row) any {
					return Date(r.TimeOf("Data_Pedido").AddDate(0, 0, g.Sample.IntBetween(1, 15)))
				}},
				{Name: "Motivo_Cancelamento", Null: 0.9, Gen: func(r *Row) any {
					return g.Faker.Sentence(6) + "."
				}},
				{Name: "Valor_Devolvido", Gen: func(r *Row) any {
					if g.Sample.Maybe(0.05) {
						return sample.Round2(g.Sample.Uniform(0, r.Float("Total")))
					}
					return 0.0
				}},
				{Name: "Categoria_Produto", Gen: func(r *Row) any {
					return g.Sample.Weighted(categories, categoryWeights)
				}},
				{Name: "SKU", Gen: func(r *Row) any {
					return fmt.Sprintf("SKU%d", g.Sample.IntBetween(10000, 99999))
				}},
			}
		},
	}
}

// presetBy is the generator for columns always pre-set by an earlier field.
// It only runs if the pre-setting field was skipped, which would be a spec
// bug.
func presetBy(field string) func(r *Row) any {
	return func(r *Row) any {
		panic(fmt.Sprintf("dataset: column expected to be pre-set by %q", field))
	}
}
