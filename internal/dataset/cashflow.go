package dataset

import (
	"fmt"

	"github.com/insight-engine/datagen/internal/sample"
)

// Cashflow is the cash movements table (financas_fluxo_caixa.csv).
//
// It is the only domain with cross-row state: a running balance threaded
// through the rows. Every row's Saldo_Anterior equals the previous row's
// Saldo_Apos, which also means its rows cannot be generated out of order.
func Cashflow() TableSpec {
	types := []string{"Entrada", "Saída"}
	typeWeights := []float64{0.45, 0.55}

	categories := []string{"Vendas", "Salários", "Fornecedores", "Impostos", "Investimentos", "Despesas Operacionais"}
	categoryWeights := []float64{0.25, 0.2, 0.15, 0.1, 0.1, 0.2}

	accounts := []string{"Conta Corrente", "Conta Poupança", "Caixa", "Investimentos"}
	accountWeights := []float64{0.6, 0.2, 0.15, 0.05}

	currencies := []string{"BRL", "USD", "EUR"}
	currencyWeights := []float64{0.95, 0.04, 0.01}

	forecast := []string{"Realizado", "Previsão"}

	return TableSpec{
		Domain:   "cashflow",
		FileName: "financas_fluxo_caixa.csv",
		Fields: func(g *Generator) []Field {
			// Opening balance; carried across rows for the whole run.
			balance := 100000.0

			return []Field{
				{Name: "Data", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.YearsAgo(1), g.Now))
				}},
				{Name: "Tipo", Gen: func(r *Row) any {
					return g.Sample.Weighted(types, typeWeights)
				}},
				{Name: "Descricao", Gen: func(r *Row) any {
					return g.Faker.Sentence(4)
				}},
				{Name: "Valor", Gen: func(r *Row) any {
					if r.Str("Tipo") == "Entrada" {
						return sample.Round2(g.Sample.LogNormal(8, 1.2))
					}
					return sample.Round2(g.Sample.LogNormal(7, 1.5))
				}},
				{Name: "Categoria", Gen: func(r *Row) any {
					return g.Sample.Weighted(categories, categoryWeights)
				}},
				{Name: "Subcategoria", Gen: func(r *Row) any {
					return g.Faker.Word()
				}},
				{Name: "Conta", Gen: func(r *Row) any {
					return g.Sample.Weighted(accounts, accountWeights)
				}},
				{Name: "Saldo_Anterior", Gen: func(r *Row) any {
					return sample.Round2(balance)
				}},
				{Name: "Saldo_Apos", Gen: func(r *Row) any {
					delta := r.Float("Valor")
					if r.Str("Tipo") != "Entrada" {
						delta = -delta
					}
					balance += delta
					return sample.Round2(balance)
				}},
				{Name: "Responsavel", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "Comprovante", Gen: func(r *Row) any {
					return fmt.Sprintf("COMP%d", g.Sample.IntBetween(100000, 999999))
				}},
				{Name: "Centro_Custo", Gen: func(r *Row) any {
					return g.Faker.Word()
				}},
				{Name: "Projeto", Null: 0.7, Gen: func(r *Row) any {
					return g.Faker.Sentence(2)
				}},
				{Name: "Moeda", Gen: func(r *Row) any {
					return g.Sample.Weighted(currencies, currencyWeights)
				}},
				{Name: "Taxa_Cambio", Gen: func(r *Row) any {
					if g.Sample.Maybe(0.1) {
						return sample.Round4(g.Sample.Uniform(1, 6))
					}
					return 1.0
				}},
				{Name: "Previsao_Realizado", Gen: func(r *Row) any {
					return choice(g, forecast)
				}},
				{Name: "Observacoes", Null: 0.8, Gen: func(r *Row) any {
					return g.Faker.Sentence(6) + "."
				}},
			}
		},
	}
}
