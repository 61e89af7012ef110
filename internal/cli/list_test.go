package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "DOMAIN")
	assert.Contains(t, out, "ecommerce")
	assert.Contains(t, out, "vendas_ecommerce.csv")
	assert.Contains(t, out, "financas_fluxo_caixa.csv")
}

func TestListJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewListCommand(rootOpts)
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string         `json:"status"`
		Data   []CatalogEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 10)

	assert.Equal(t, "ecommerce", resp.Data[0].Domain)
	assert.Equal(t, 20, resp.Data[0].Columns)
	assert.Equal(t, "cashflow", resp.Data[9].Domain)
	assert.Equal(t, 17, resp.Data[9].Columns)
}
