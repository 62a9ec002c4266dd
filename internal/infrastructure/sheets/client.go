// Package sheets fala com o web app do Google Apps Script que guarda a cópia
// remota dos dados em uma planilha (uma aba por coleção).
//
// Protocolo: GET ?action=getAllData devolve o dataset completo;
// POST {action:"syncAll", data:{...}} substitui cada aba presente por inteiro
// (clear-then-write). O POST usa Content-Type text/plain porque o Apps Script
// não lida com preflight CORS; a resposta é lida em melhor esforço.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/atelie7divas/atelie-api/internal/domain/entity"
)

const requestTimeout = 30 * time.Second

// envelope formato frouxo do GET getAllData: linhas como mapas planos.
type envelope struct {
	Users        []map[string]any `json:"users"`
	Products     []map[string]any `json:"products"`
	Transactions []map[string]any `json:"transactions"`
	Stores       []map[string]any `json:"stores"`
	RawMaterials []map[string]any `json:"rawMaterials"`
	Config       map[string]any   `json:"config"`
}

// pushEnvelope corpo do POST syncAll.
type pushEnvelope struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

// PushResult resultado de um push. Confirmed=true somente quando o servidor
// respondeu um corpo legível com success:true; Confirmed=false sem erro
// significa que a requisição completou mas a resposta não pôde ser verificada.
type PushResult struct {
	Confirmed bool
	Timestamp string
}

// Client cliente HTTP do web app. A URL é passada por chamada porque vive no
// AppConfig e pode mudar em runtime pelo painel de manutenção.
type Client struct {
	http *http.Client
}

// NewClient constrói o cliente com timeout fixo por requisição.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: requestTimeout},
	}
}

// FetchAll busca o dataset completo da planilha, coagindo linhas frouxas para
// os tipos do domínio. Erros de rede ou parse retornam erro e nenhum dado.
func (c *Client) FetchAll(ctx context.Context, webAppURL string) (*entity.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, webAppURL+"?action=getAllData", nil)
	if err != nil {
		return nil, fmt.Errorf("montar requisição getAllData: %w", err)
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("getAllData: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getAllData: status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("ler resposta getAllData: %w", err)
	}
	return DecodeDataset(body)
}

// DecodeDataset decodifica o payload remoto: normaliza as linhas (números em
// texto, valores aninhados em string) e então projeta nos tipos do domínio.
func DecodeDataset(raw []byte) (*entity.Dataset, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("payload remoto malformado: %w", err)
	}

	normalizeRows(env.Users)
	normalizeRows(env.Products)
	normalizeRows(env.Transactions)
	normalizeRows(env.Stores)
	normalizeRows(env.RawMaterials)
	if env.Config != nil {
		normalizeRow(env.Config)
	}

	// Reserializa o envelope normalizado e decodifica nos structs tipados.
	clean, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("renormalizar payload: %w", err)
	}
	var ds entity.Dataset
	if err := json.Unmarshal(clean, &ds); err != nil {
		return nil, fmt.Errorf("payload remoto incompatível: %w", err)
	}
	return &ds, nil
}

// PushAll envia o snapshot completo para a planilha. A requisição é
// fire-and-forget do ponto de vista da aplicação: um erro aqui é sempre de
// transporte; o corpo de resposta só promove o resultado a "confirmado".
func (c *Client) PushAll(ctx context.Context, webAppURL string, data entity.Dataset) (PushResult, error) {
	payload, err := json.Marshal(pushEnvelope{Action: "syncAll", Data: data})
	if err != nil {
		return PushResult{}, fmt.Errorf("serializar snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webAppURL, bytes.NewReader(payload))
	if err != nil {
		return PushResult{}, fmt.Errorf("montar requisição syncAll: %w", err)
	}
	// text/plain evita o preflight CORS que o Apps Script não responde.
	req.Header.Set("Content-Type", "text/plain")

	res, err := c.http.Do(req)
	if err != nil {
		return PushResult{}, fmt.Errorf("syncAll: %w", err)
	}
	defer res.Body.Close()

	// Melhor esforço: o Apps Script responde {success, timestamp}, mas o
	// contrato não garante corpo legível (redirects do script.googleusercontent).
	var ack struct {
		Success   bool   `json:"success"`
		Timestamp string `json:"timestamp"`
		Error     string `json:"error"`
	}
	body, readErr := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if readErr == nil && json.Unmarshal(body, &ack) == nil && ack.Success {
		return PushResult{Confirmed: true, Timestamp: ack.Timestamp}, nil
	}
	return PushResult{Confirmed: false}, nil
}
