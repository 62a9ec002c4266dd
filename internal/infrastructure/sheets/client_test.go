package sheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelie7divas/atelie-api/internal/domain/entity"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/sheets"
)

func TestDecodeDataset_CoageNumerosEmTexto(t *testing.T) {
	// Células numéricas da planilha podem voltar como texto.
	raw := []byte(`{
		"users": [],
		"products": [
			{"id":"p1","sku":"VES-001","name":"Vestido","costPrice":"45.5","salePrice":"129.9","minStock":"2","currentStock":"8"}
		],
		"transactions": [
			{"id":"tx1","productId":"p1","type":"SALE","quantity":"3","unitPrice":"129.9","totalValue":"389.7","timestamp":"2025-02-01T10:00:00.000Z"}
		],
		"stores": [],
		"rawMaterials": []
	}`)

	ds, err := sheets.DecodeDataset(raw)
	require.NoError(t, err)
	require.Len(t, ds.Products, 1)

	p := ds.Products[0]
	assert.Equal(t, 8, p.CurrentStock, "currentStock em texto vira número")
	assert.Equal(t, 2, p.MinStock)
	assert.True(t, p.CostPrice.Equal(decimal.RequireFromString("45.5")))

	require.Len(t, ds.Transactions, 1)
	assert.Equal(t, 3, ds.Transactions[0].Quantity)
	assert.True(t, ds.Transactions[0].TotalValue.Equal(decimal.RequireFromString("389.7")))
}

func TestDecodeDataset_ConfigComStoresSerializadoEmString(t *testing.T) {
	// O remoto serializa valores aninhados como JSON em string dentro da célula.
	raw := []byte(`{
		"users": [{"id":"u1","name":"Carla","email":"carla@7divas.com","role":"ADMIN","status":"ATIVO"}],
		"products": [], "transactions": [], "stores": [], "rawMaterials": [],
		"config": {
			"companyName": "Ateliê 7 Divas",
			"accentColor": "#D4AF37",
			"stores": "[{\"id\":\"s1\",\"name\":\"Loja Matriz\",\"status\":\"ATIVA\"}]"
		}
	}`)

	ds, err := sheets.DecodeDataset(raw)
	require.NoError(t, err)
	assert.Equal(t, "Ateliê 7 Divas", ds.Config.CompanyName)
	require.Len(t, ds.Config.Stores, 1, "string JSON aninhada é desserializada de volta")
	assert.Equal(t, "Loja Matriz", ds.Config.Stores[0].Name)
}

func TestDecodeDataset_PayloadMalformado(t *testing.T) {
	_, err := sheets.DecodeDataset([]byte(`<html>login do google</html>`))
	assert.Error(t, err, "HTML de redirect de auth não pode passar por dataset")
}

func TestFetchAll_MontaQueryEDevolveDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "getAllData", r.URL.Query().Get("action"))
		w.Write([]byte(`{"users":[{"id":"u1","email":"carla@7divas.com"}],"products":[],"transactions":[],"stores":[],"rawMaterials":[]}`))
	}))
	defer srv.Close()

	ds, err := sheets.NewClient().FetchAll(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, ds.Users, 1)
	assert.Equal(t, "carla@7divas.com", ds.Users[0].Email)
}

func TestFetchAll_StatusNaoOKVistoComoErro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := sheets.NewClient().FetchAll(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestPushAll_FormatoDaRequisicao(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true,"timestamp":"2025-02-01T10:00:00.000Z"}`))
	}))
	defer srv.Close()

	data := entity.Dataset{
		Users:  []entity.User{{ID: "u1", Email: "carla@7divas.com"}},
		Config: entity.AppConfig{CompanyName: "Ateliê 7 Divas"},
	}
	res, err := sheets.NewClient().PushAll(context.Background(), srv.URL, data)
	require.NoError(t, err)
	assert.True(t, res.Confirmed, "success:true confirma o push")
	assert.Equal(t, "2025-02-01T10:00:00.000Z", res.Timestamp)

	// text/plain dribla o preflight CORS do Apps Script.
	assert.Equal(t, "text/plain", gotContentType)

	var body struct {
		Action string          `json:"action"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, "syncAll", body.Action)
	assert.Contains(t, string(body.Data), `"users"`)
	assert.Contains(t, string(body.Data), `"config"`)
}

func TestPushAll_RespostaIlegivelNaoConfirma(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>redirect do script.googleusercontent</html>`))
	}))
	defer srv.Close()

	res, err := sheets.NewClient().PushAll(context.Background(), srv.URL, entity.Dataset{})
	require.NoError(t, err, "resposta ilegível não é erro de transporte")
	assert.False(t, res.Confirmed, "sem corpo verificável o resultado fica em sent")
}
