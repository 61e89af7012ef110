package dataset

import (
	"fmt"
	"strings"

	"github.com/insight-engine/datagen/internal/sample"
)

// Suppliers is the supplier registry table (fornecedores_compras.csv).
func Suppliers() TableSpec {
	categories := []string{"Matéria Prima", "Serviços", "Equipamentos", "Software", "Logística"}
	categoryWeights := []float64{0.3, 0.2, 0.2, 0.15, 0.15}

	statuses := []string{"Ativo", "Inativo", "Suspenso", "Preferencial"}
	statusWeights := []float64{0.75, 0.15, 0.05, 0.05}

	paymentTerms := []string{"À vista", "15 dias", "30 dias", "45 dias", "60 dias"}
	paymentWeights := []float64{0.2, 0.3, 0.3, 0.15, 0.05}

	paymentForms := []string{"Boleto", "Transferência", "Cartão", "Cheque"}

	return TableSpec{
		Domain:   "suppliers",
		FileName: "fornecedores_compras.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "ID_Fornecedor", Gen: func(r *Row) any {
					return fmt.Sprintf("FOR%05d", r.Index)
				}},
				{Name: "Nome_Empresa", Gen: func(r *Row) any {
					return g.Faker.Company()
				}},
				{Name: "CNPJ", Gen: func(r *Row) any {
					return g.Faker.CNPJ()
				}},
				{Name: "Contato", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "Email", Gen: func(r *Row) any {
					return g.Faker.Email()
				}},
				{Name: "Telefone", Gen: func(r *Row) any {
					return g.Faker.Phone()
				}},
				{Name: "Categoria", Gen: func(r *Row) any {
					return g.Sample.Weighted(categories, categoryWeights)
				}},
				{Name: "Prazo_Pagamento", Gen: func(r *Row) any {
					return g.Sample.Weighted(paymentTerms, paymentWeights)
				}},
				{Name: "Valor_Total_Compras", Gen: func(r *Row) any {
					// Registration and last-purchase dates are drawn here
					// because total spend depends on both; their columns
					// appear later in the schema.
					registered := g.Faker.DateBetween(g.YearsAgo(10), g.Now)
					r.Set("Data_Cadastro", Date(registered))

					if g.Sample.Maybe(0.1) {
						r.Set("Ultima_Compra", nil)
						return 0.0
					}
					last := registered.AddDate(0, 0, g.Sample.IntBetween(0, 1095))
					r.Set("Ultima_Compra", Date(last))
					return sample.Round2(g.Sample.LogNormal(10, 1.5))
				}},
				{Name: "Ultima_Compra", Gen: presetBy("Valor_Total_Compras")},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
				{Name: "Avaliacao", Gen: func(r *Row) any {
					return sample.Round1(g.Sample.Uniform(1, 5))
				}},
				{Name: "Condicoes_Pagamento", Gen: func(r *Row) any {
					return choice(g, paymentForms)
				}},
				{Name: "Desconto_Medio", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.Uniform(0, 15))
				}},
				{Name: "Produtos_Fornecidos", Gen: func(r *Row) any {
					n := g.Sample.IntBetween(1, 5)
					words := make([]string, n)
					for i := range words {
						words[i] = g.Faker.Word()
					}
					return strings.Join(words, ", ")
				}},
				{Name: "Cidade", Gen: func(r *Row) any {
					return g.Faker.City()
				}},
				{Name: "Estado", Gen: func(r *Row) any {
					return g.Faker.StateAbbr()
				}},
				{Name: "Data_Cadastro", Gen: presetBy("Valor_Total_Compras")},
			}
		},
	}
}
