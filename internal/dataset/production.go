package dataset

import (
	"fmt"
	"time"

	"github.com/insight-engine/datagen/internal/sample"
)

// Production is the manufacturing orders table (producao_manufatura.csv).
func Production() TableSpec {
	machines := []string{"Máquina A", "Máquina B", "Máquina C", "Linha Automática 1", "Linha Automática 2"}
	machineWeights := []float64{0.2, 0.2, 0.2, 0.2, 0.2}

	statuses := []string{"Concluída", "Em Andamento", "Parada", "Cancelada"}
	statusWeights := []float64{0.6, 0.3, 0.08, 0.02}

	shifts := []string{"Manhã", "Tarde", "Noite"}
	shiftWeights := []float64{0.4, 0.35, 0.25}

	grades := []string{"A", "B", "C", "D"}

	return TableSpec{
		Domain:   "production",
		FileName: "producao_manufatura.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "ID_Ordem", Gen: func(r *Row) any {
					return fmt.Sprintf("ORD%06d", r.Index)
				}},
				{Name: "Produto", Gen: func(r *Row) any {
					return g.Faker.Sentence(3)
				}},
				{Name: "Quantidade_Planejada", Gen: func(r *Row) any {
					return g.Sample.IntBetween(100, 10000)
				}},
				{Name: "Quantidade_Produzida", Gen: func(r *Row) any {
					// Beta(8,2) skews towards fulfilling most of the plan.
					return int(float64(r.Int("Quantidade_Planejada")) * g.Sample.Beta(8, 2))
				}},
				{Name: "Data_Inicio", Gen: func(r *Row) any {
					return DateTime(g.Faker.DateBetween(g.DaysAgo(180), g.Now))
				}},
				{Name: "Data_Fim", Gen: func(r *Row) any {
					minutes := g.Sample.IntBetween(1, 480)
					r.Set("Tempo_Producao_Min", minutes)
					return DateTime(r.TimeOf("Data_Inicio").Add(time.Duration(minutes) * time.Minute))
				}},
				{Name: "Maquina", Gen: func(r *Row) any {
					return g.Sample.Weighted(machines, machineWeights)
				}},
				{Name: "Operador", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "Tempo_Producao_Min", Gen: presetBy("Data_Fim")},
				{Name: "Eficiencia", Gen: func(r *Row) any {
					produced := float64(r.Int("Quantidade_Produzida"))
					planned := float64(r.Int("Quantidade_Planejada"))
					return sample.Round2(produced / planned * 100)
				}},
				{Name: "Defeitos", Gen: func(r *Row) any {
					return g.Sample.IntBetween(0, int(float64(r.Int("Quantidade_Produzida"))*0.05))
				}},
				{Name: "Custo_Materia_Prima", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.LogNormal(8, 1))
				}},
				{Name: "Custo_Mao_Obra", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.LogNormal(7, 0.8))
				}},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
				{Name: "Linha_Producao", Gen: func(r *Row) any {
					return fmt.Sprintf("Linha %d", g.Sample.IntBetween(1, 10))
				}},
				{Name: "Turno", Gen: func(r *Row) any {
					return g.Sample.Weighted(shifts, shiftWeights)
				}},
				{Name: "Qualidade", Gen: func(r *Row) any {
					return choice(g, grades)
				}},
				{Name: "Observacoes", Null: 0.8, Gen: func(r *Row) any {
					return g.Faker.Sentence(6) + "."
				}},
			}
		},
	}
}
