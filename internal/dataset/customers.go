package dataset

import (
	"fmt"
	"strings"

	"github.com/insight-engine/datagen/internal/sample"
)

// Customers is the customer base table (dados_clientes.csv).
func Customers() TableSpec {
	genders := []string{"Masculino", "Feminino", "Outro"}
	genderWeights := []float64{0.48, 0.5, 0.02}

	statuses := []string{"Ativo", "Inativo", "Bloqueado", "VIP"}
	statusWeights := []float64{0.7, 0.25, 0.03, 0.02}

	channels := []string{"Site", "Indicação", "Redes Sociais", "Email Marketing", "Busca Orgânica"}
	channelWeights := []float64{0.3, 0.2, 0.2, 0.15, 0.15}

	preferences := []string{"Eletrônicos", "Roupas", "Casa", "Esportes", "Livros"}

	return TableSpec{
		Domain:   "customers",
		FileName: "dados_clientes.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "ID_Cliente", Gen: func(r *Row) any {
					return fmt.Sprintf("CLI%06d", r.Index)
				}},
				{Name: "Nome", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "CPF_CNPJ", Gen: func(r *Row) any {
					if g.Sample.Maybe(0.9) {
						return g.Faker.CPF()
					}
					return g.Faker.CNPJ()
				}},
				{Name: "Email", Gen: func(r *Row) any {
					return g.Faker.Email()
				}},
				{Name: "Telefone", Gen: func(r *Row) any {
					return g.Faker.Phone()
				}},
				{Name: "Data_Cadastro", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.YearsAgo(5), g.Now))
				}},
				{Name: "Data_Ultima_Compra", Null: 0.2, Gen: func(r *Row) any {
					return Date(r.TimeOf("Data_Cadastro").AddDate(0, 0, g.Sample.IntBetween(0, 730)))
				}},
				{Name: "Valor_Total_Compras", Gen: func(r *Row) any {
					// Customers who never purchased have no spend.
					if r.IsNull("Data_Ultima_Compra") {
						return 0.0
					}
					return sample.Round2(g.Sample.LogNormal(7, 1.5))
				}},
				{Name: "Numero_Pedidos", Gen: func(r *Row) any {
					if r.Float("Valor_Total_Compras") > 0 {
						return g.Sample.IntBetween(1, 50)
					}
					return 0
				}},
				{Name: "Cidade", Gen: func(r *Row) any {
					return g.Faker.City()
				}},
				{Name: "Estado", Gen: func(r *Row) any {
					return g.Faker.StateAbbr()
				}},
				{Name: "CEP", Gen: func(r *Row) any {
					return g.Faker.Postcode()
				}},
				{Name: "Idade", Gen: func(r *Row) any {
					return g.Sample.IntBetween(18, 80)
				}},
				{Name: "Genero", Gen: func(r *Row) any {
					return g.Sample.Weighted(genders, genderWeights)
				}},
				{Name: "Renda_Estimada", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.LogNormal(9, 1))
				}},
				{Name: "Score_Credito", Gen: func(r *Row) any {
					return g.Sample.IntBetween(0, 1000)
				}},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
				{Name: "Preferencias", Gen: func(r *Row) any {
					k := g.Sample.IntBetween(1, 3)
					return strings.Join(g.Sample.PickK(preferences, k), ", ")
				}},
				{Name: "Canal_Aquisicao", Gen: func(r *Row) any {
					return g.Sample.Weighted(channels, channelWeights)
				}},
			}
		},
	}
}
