package sheets

import (
	"encoding/json"
	"strconv"
	"strings"
)

// A planilha é uma interface externa de tipagem frouxa: células numéricas podem
// voltar como texto e valores aninhados (ex.: config.stores) chegam como JSON
// serializado em string. Tudo é validado/coagido na leitura; presença e tipo de
// campo nunca são assumidos.

// numericFieldHints nomes de campo cujo texto numérico deve virar número,
// mesma regra do backend da planilha.
var numericFieldHints = []string{"price", "stock", "quantity"}

// normalizeRows aplica normalizeRow a cada linha.
func normalizeRows(rows []map[string]any) []map[string]any {
	for _, row := range rows {
		normalizeRow(row)
	}
	return rows
}

// normalizeRow coage valores de uma linha vinda da planilha, in place.
func normalizeRow(row map[string]any) {
	for key, val := range row {
		s, ok := val.(string)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}

		// Valor aninhado serializado em string pelo remoto — desserializa de volta.
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
			var nested any
			if err := json.Unmarshal([]byte(trimmed), &nested); err == nil {
				row[key] = nested
				continue
			}
		}

		if isNumericField(key) {
			if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
				row[key] = n
			}
		}
	}
}

func isNumericField(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range numericFieldHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
