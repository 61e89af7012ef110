package dataset

import (
	"fmt"
	"strings"

	"github.com/insight-engine/datagen/internal/sample"
)

// HR is the employee roster table (recursos_humanos.csv).
func HR() TableSpec {
	statuses := []string{"Ativo", "Demitido", "Afastado", "Férias"}
	statusWeights := []float64{0.8, 0.15, 0.03, 0.02}

	departments := []string{"Vendas", "TI", "RH", "Financeiro", "Operações"}
	deptWeights := []float64{0.25, 0.2, 0.1, 0.15, 0.3}

	genders := []string{"Masculino", "Feminino", "Outro"}
	genderWeights := []float64{0.48, 0.5, 0.02}

	educationLevels := []string{"Ensino Fundamental", "Ensino Médio", "Superior", "Pós-graduação"}
	educationWeights := []float64{0.1, 0.4, 0.4, 0.1}

	maritalStatuses := []string{"Solteiro", "Casado", "Divorciado", "Viúvo"}
	benefits := []string{"Vale Alimentação", "Plano de Saúde", "Vale Transporte", "Seguro de Vida"}

	return TableSpec{
		Domain:   "hr",
		FileName: "recursos_humanos.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "ID_Funcionario", Gen: func(r *Row) any {
					return fmt.Sprintf("FUN%05d", r.Index)
				}},
				{Name: "Nome", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "CPF", Gen: func(r *Row) any {
					return g.Faker.CPF()
				}},
				{Name: "Data_Admissao", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.YearsAgo(10), g.Now))
				}},
				{Name: "Cargo", Gen: func(r *Row) any {
					return g.Faker.Job()
				}},
				{Name: "Salario", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.LogNormal(9, 0.8))
				}},
				{Name: "Departamento", Gen: func(r *Row) any {
					return g.Sample.Weighted(departments, deptWeights)
				}},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
				{Name: "Data_Demissao", Null: 0.8, Gen: func(r *Row) any {
					return Date(r.TimeOf("Data_Admissao").AddDate(0, 0, g.Sample.IntBetween(365, 3650)))
				}},
				{Name: "Idade", Gen: func(r *Row) any {
					return g.Sample.IntBetween(18, 65)
				}},
				{Name: "Genero", Gen: func(r *Row) any {
					return g.Sample.Weighted(genders, genderWeights)
				}},
				{Name: "Escolaridade", Gen: func(r *Row) any {
					return g.Sample.Weighted(educationLevels, educationWeights)
				}},
				{Name: "Estado_Civil", Gen: func(r *Row) any {
					return choice(g, maritalStatuses)
				}},
				{Name: "Dependentes", Gen: func(r *Row) any {
					return g.Sample.IntBetween(0, 5)
				}},
				{Name: "Horas_Extras", Gen: func(r *Row) any {
					if g.Sample.Maybe(0.4) {
						return g.Sample.IntBetween(0, 40)
					}
					return 0
				}},
				{Name: "Faltas", Gen: func(r *Row) any {
					return g.Sample.IntBetween(0, 30)
				}},
				{Name: "Avaliacao", Gen: func(r *Row) any {
					return sample.Round1(g.Sample.Uniform(1, 5))
				}},
				{Name: "Beneficios", Gen: func(r *Row) any {
					k := g.Sample.IntBetween(1, 4)
					return strings.Join(g.Sample.PickK(benefits, k), ", ")
				}},
				{Name: "Cidade", Gen: func(r *Row) any {
					return g.Faker.City()
				}},
				{Name: "Estado", Gen: func(r *Row) any {
					return g.Faker.StateAbbr()
				}},
			}
		},
	}
}
