package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insight-engine/datagen/internal/sample"
)

func generate(t *testing.T, spec TableSpec, seed uint64, rows int) *Table {
	t.Helper()
	tbl, err := testGenerator(seed).Generate(spec, rows)
	require.NoError(t, err)
	return tbl
}

func column(t *testing.T, tbl *Table, name string) int {
	return indexOf(t, tbl.Header, name)
}

func TestEcommerce_TotalDerivation(t *testing.T) {
	tbl := generate(t, Ecommerce(), 42, 500)

	qty := column(t, tbl, "Quantidade")
	price := column(t, tbl, "Preco_Unitario")
	freight := column(t, tbl, "Frete")
	discount := column(t, tbl, "Desconto")
	total := column(t, tbl, "Total")

	for i, row := range tbl.Rows {
		want := sample.Round2(float64(row[qty].(int))*row[price].(float64) +
			row[freight].(float64) - row[discount].(float64))
		assert.Equal(t, want, row[total].(float64), "row %d", i)
	}
}

func TestEcommerce_QuantityFlooredAtOne(t *testing.T) {
	tbl := generate(t, Ecommerce(), 7, 2000)
	qty := column(t, tbl, "Quantidade")
	for _, row := range tbl.Rows {
		assert.GreaterOrEqual(t, row[qty].(int), 1)
	}
}

func TestEcommerce_SequentialOrderIDs(t *testing.T) {
	tbl := generate(t, Ecommerce(), 7, 20)
	id := column(t, tbl, "ID_Pedido")
	for i, row := range tbl.Rows {
		assert.Equal(t, fmt.Sprintf("PED%06d", i+1), row[id].(string))
	}
}

func TestCashflow_BalancePrefixConsistency(t *testing.T) {
	tbl := generate(t, Cashflow(), 42, 1000)

	before := column(t, tbl, "Saldo_Anterior")
	after := column(t, tbl, "Saldo_Apos")

	for i := 1; i < len(tbl.Rows); i++ {
		assert.Equal(t, tbl.Rows[i-1][after].(float64), tbl.Rows[i][before].(float64),
			"row %d opening balance", i)
	}
}

func TestCashflow_BalanceMovesWithType(t *testing.T) {
	tbl := generate(t, Cashflow(), 13, 500)

	tipo := column(t, tbl, "Tipo")
	before := column(t, tbl, "Saldo_Anterior")
	after := column(t, tbl, "Saldo_Apos")

	for i, row := range tbl.Rows {
		if row[tipo].(string) == "Entrada" {
			assert.Greater(t, row[after].(float64), row[before].(float64), "row %d inflow", i)
		} else {
			assert.Less(t, row[after].(float64), row[before].(float64), "row %d outflow", i)
		}
	}
}

// The ratio guards are exercised directly: the natural distributions almost
// never produce zero impressions, so the rows are driven by hand.
func TestMarketing_RatioGuards(t *testing.T) {
	fields := Marketing().Fields(testGenerator(1))
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	r := &Row{Index: 1, values: map[string]any{
		"Investimento": 1000.0,
		"Impressoes":   0,
		"Cliques":      0,
		"Conversoes":   0,
	}}

	assert.Equal(t, 0.0, byName["CTR"].Gen(r))
	assert.Equal(t, 0.0, byName["CPC"].Gen(r))
	assert.Equal(t, 0.0, byName["CPA"].Gen(r))
}

func TestMarketing_FunnelMonotonic(t *testing.T) {
	tbl := generate(t, Marketing(), 9, 500)

	impressions := column(t, tbl, "Impressoes")
	clicks := column(t, tbl, "Cliques")
	conversions := column(t, tbl, "Conversoes")

	for i, row := range tbl.Rows {
		assert.LessOrEqual(t, row[clicks].(int), row[impressions].(int), "row %d clicks", i)
		assert.LessOrEqual(t, row[conversions].(int), row[clicks].(int), "row %d conversions", i)
	}
}

func TestProduction_EfficiencyMatchesQuantities(t *testing.T) {
	tbl := generate(t, Production(), 21, 300)

	planned := column(t, tbl, "Quantidade_Planejada")
	produced := column(t, tbl, "Quantidade_Produzida")
	efficiency := column(t, tbl, "Eficiencia")

	for i, row := range tbl.Rows {
		want := sample.Round2(float64(row[produced].(int)) / float64(row[planned].(int)) * 100)
		assert.Equal(t, want, row[efficiency].(float64), "row %d", i)
	}
}

func TestInventory_TotalValueDerivation(t *testing.T) {
	tbl := generate(t, Inventory(), 33, 300)

	stock := column(t, tbl, "Quantidade_Estoque")
	unit := column(t, tbl, "Valor_Unitario")
	total := column(t, tbl, "Valor_Total")
	balance := column(t, tbl, "Saldo_Apos_Movimentacao")

	for i, row := range tbl.Rows {
		want := sample.Round2(float64(row[stock].(int)) * row[unit].(float64))
		assert.Equal(t, want, row[total].(float64), "row %d", i)
		assert.Equal(t, row[stock].(int), row[balance].(int), "row %d balance mirrors stock", i)
	}
}

func TestCustomers_PurchaseConsistency(t *testing.T) {
	tbl := generate(t, Customers(), 8, 1000)

	last := column(t, tbl, "Data_Ultima_Compra")
	total := column(t, tbl, "Valor_Total_Compras")
	orders := column(t, tbl, "Numero_Pedidos")

	sawNull := false
	for i, row := range tbl.Rows {
		if row[last] == nil {
			sawNull = true
			assert.Equal(t, 0.0, row[total].(float64), "row %d never purchased", i)
			assert.Equal(t, 0, row[orders].(int), "row %d never purchased", i)
		}
	}
	assert.True(t, sawNull, "expected some customers without purchases")
}

func TestSuppliers_LastPurchaseConsistency(t *testing.T) {
	tbl := generate(t, Suppliers(), 8, 1000)

	last := column(t, tbl, "Ultima_Compra")
	total := column(t, tbl, "Valor_Total_Compras")
	registered := column(t, tbl, "Data_Cadastro")

	sawNull := false
	for i, row := range tbl.Rows {
		require.NotNil(t, row[registered], "row %d registration date", i)
		if row[last] == nil {
			sawNull = true
			assert.Equal(t, 0.0, row[total].(float64), "row %d", i)
		} else {
			reg := row[registered].(Date).Time()
			assert.False(t, row[last].(Date).Time().Before(reg), "row %d purchase before registration", i)
		}
	}
	assert.True(t, sawNull, "expected some suppliers without purchases")
}

func TestHR_DismissalAfterAdmission(t *testing.T) {
	tbl := generate(t, HR(), 15, 1000)

	admission := column(t, tbl, "Data_Admissao")
	dismissal := column(t, tbl, "Data_Demissao")

	for i, row := range tbl.Rows {
		if row[dismissal] == nil {
			continue
		}
		adm := row[admission].(Date).Time()
		dis := row[dismissal].(Date).Time()
		assert.True(t, dis.After(adm), "row %d dismissal %v before admission %v", i, dis, adm)
	}
}

func TestLogistics_DateChain(t *testing.T) {
	tbl := generate(t, Logistics(), 4, 500)

	departure := column(t, tbl, "Data_Saida")
	expected := column(t, tbl, "Data_Prevista")

	for i, row := range tbl.Rows {
		dep := row[departure].(Date).Time()
		exp := row[expected].(Date).Time()
		assert.True(t, exp.After(dep), "row %d expected date", i)
	}
}
