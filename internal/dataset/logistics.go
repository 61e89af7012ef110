package dataset

import (
	"fmt"

	"github.com/insight-engine/datagen/internal/sample"
)

// Logistics is the delivery tracking table (logistica_entregas.csv).
func Logistics() TableSpec {
	carriers := []string{"Correios", "FedEx", "DHL", "Transportadora XYZ", "Jadlog"}
	carrierWeights := []float64{0.4, 0.2, 0.15, 0.15, 0.1}

	statuses := []string{"Entregue", "Em Trânsito", "Atrasado", "Extraviado", "Devolvido"}
	statusWeights := []float64{0.7, 0.2, 0.05, 0.03, 0.02}

	return TableSpec{
		Domain:   "logistics",
		FileName: "logistica_entregas.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "ID_Entrega", Gen: func(r *Row) any {
					return fmt.Sprintf("ENT%06d", r.Index)
				}},
				{Name: "Pedido_ID", Gen: func(r *Row) any {
					// Sampled independently; not validated against the
					// e-commerce order IDs.
					return fmt.Sprintf("PED%06d", g.Sample.IntBetween(1, 10000))
				}},
				{Name: "Transportadora", Gen: func(r *Row) any {
					return g.Sample.Weighted(carriers, carrierWeights)
				}},
				{Name: "Data_Saida", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.DaysAgo(180), g.Now))
				}},
				{Name: "Data_Prevista", Gen: func(r *Row) any {
					return Date(r.TimeOf("Data_Saida").AddDate(0, 0, g.Sample.IntBetween(1, 10)))
				}},
				{Name: "Data_Entrega", Null: 0.1, Gen: func(r *Row) any {
					return Date(r.TimeOf("Data_Prevista").AddDate(0, 0, g.Sample.IntBetween(-2, 5)))
				}},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
				{Name: "Peso_Kg", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.Normal(5, 3))
				}},
				{Name: "Volume_M3", Gen: func(r *Row) any {
					return sample.Round3(g.Sample.Normal(0.05, 0.03))
				}},
				{Name: "Valor_Frete", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.Normal(25, 15))
				}},
				{Name: "Destinatario", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "Endereco", Gen: func(r *Row) any {
					return g.Faker.StreetAddress()
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
				{Name: "Rastreamento", Gen: func(r *Row) any {
					return fmt.Sprintf("BR%d", g.Sample.IntBetween(100000000, 999999999))
				}},
				{Name: "Motivo_Atraso", Null: 0.85, Gen: func(r *Row) any {
					return g.Faker.Sentence(6) + "."
				}},
				{Name: "Tentativas_Entrega", Gen: func(r *Row) any {
					return g.Sample.IntBetween(1, 3)
				}},
				{Name: "Responsavel", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
			}
		},
	}
}
