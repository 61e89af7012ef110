package dataset

import (
	"fmt"

	"github.com/insight-engine/datagen/internal/sample"
)

// Marketing is the campaign performance table (marketing_digital.csv).
// CTR, CPC and CPA are derived ratios guarded against zero denominators:
// a campaign with no impressions, clicks or conversions reports 0, not NaN.
func Marketing() TableSpec {
	channels := []string{"Google Ads", "Facebook", "Instagram", "LinkedIn", "Email Marketing"}
	channelWeights := []float64{0.3, 0.25, 0.2, 0.15, 0.1}

	statuses := []string{"Ativa", "Pausada", "Finalizada", "Cancelada"}
	statusWeights := []float64{0.4, 0.2, 0.35, 0.05}

	segments := []string{"18-24", "25-34", "35-44", "45-54", "55+"}
	segmentWeights := []float64{0.2, 0.3, 0.25, 0.15, 0.1}

	objectives := []string{"Aumento Vendas", "Geração Leads", "Brand Awareness", "Retenção"}

	// Assumed average value of one conversion when deriving ROI.
	const conversionValue = 50

	return TableSpec{
		Domain:   "marketing",
		FileName: "marketing_digital.csv",
		Fields: func(g *Generator) []Field {
			return []Field{
				{Name: "ID_Campanha", Gen: func(r *Row) any {
					return fmt.Sprintf("CAMP%05d", r.Index)
				}},
				{Name: "Nome_Campanha", Gen: func(r *Row) any {
					return g.Faker.Sentence(4)
				}},
				{Name: "Data_Inicio", Gen: func(r *Row) any {
					return Date(g.Faker.DateBetween(g.YearsAgo(1), g.Now))
				}},
				{Name: "Data_Fim", Gen: func(r *Row) any {
					return Date(r.TimeOf("Data_Inicio").AddDate(0, 0, g.Sample.IntBetween(7, 90)))
				}},
				{Name: "Canal", Gen: func(r *Row) any {
					return g.Sample.Weighted(channels, channelWeights)
				}},
				{Name: "Investimento", Gen: func(r *Row) any {
					return sample.Round2(g.Sample.LogNormal(7, 1.2))
				}},
				{Name: "Impressoes", Gen: func(r *Row) any {
					return int(g.Sample.LogNormal(12, 1.5))
				}},
				{Name: "Cliques", Gen: func(r *Row) any {
					// Low CTR by construction.
					return int(float64(r.Int("Impressoes")) * g.Sample.Beta(2, 20))
				}},
				{Name: "Conversoes", Gen: func(r *Row) any {
					return int(float64(r.Int("Cliques")) * g.Sample.Beta(1, 10))
				}},
				{Name: "CTR", Gen: func(r *Row) any {
					impressions := r.Int("Impressoes")
					if impressions == 0 {
						return 0.0
					}
					return sample.Round2(float64(r.Int("Cliques")) / float64(impressions) * 100)
				}},
				{Name: "CPC", Gen: func(r *Row) any {
					clicks := r.Int("Cliques")
					if clicks == 0 {
						return 0.0
					}
					return sample.Round2(r.Float("Investimento") / float64(clicks))
				}},
				{Name: "CPA", Gen: func(r *Row) any {
					conversions := r.Int("Conversoes")
					if conversions == 0 {
						return 0.0
					}
					return sample.Round2(r.Float("Investimento") / float64(conversions))
				}},
				{Name: "ROI", Gen: func(r *Row) any {
					investment := r.Float("Investimento")
					gain := float64(r.Int("Conversoes")*conversionValue) - investment
					return sample.Round2(gain / investment * 100)
				}},
				{Name: "Publico_Alvo", Gen: func(r *Row) any {
					return fmt.Sprintf("%d pessoas", g.Sample.IntBetween(10000, 100000))
				}},
				{Name: "Segmento", Gen: func(r *Row) any {
					return g.Sample.Weighted(segments, segmentWeights)
				}},
				{Name: "Status", Gen: func(r *Row) any {
					return g.Sample.Weighted(statuses, statusWeights)
				}},
				{Name: "Responsavel", Gen: func(r *Row) any {
					return g.Faker.Name()
				}},
				{Name: "Objetivo", Gen: func(r *Row) any {
					return choice(g, objectives)
				}},
				{Name: "Metricas_Adicionais", Gen: func(r *Row) any {
					return fmt.Sprintf("Engajamento: %d%%, Bounce Rate: %d%%",
						g.Sample.IntBetween(1, 20), g.Sample.IntBetween(30, 80))
				}},
			}
		},
	}
}
