// Package localdb implementa o armazenamento local durável do serviço: um
// arquivo SQLite com uma única tabela chave/valor, cada chave guardando uma
// coleção serializada em JSON (o equivalente do localStorage do painel web).
package localdb

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Chaves fixas, uma por coleção, sob o prefixo compartilhado da aplicação.
const (
	KeyConfig       = "7divas_config"
	KeyUsers        = "7divas_users"
	KeyProducts     = "7divas_products"
	KeyStores       = "7divas_stores"
	KeyRawMaterials = "7divas_raw"
	KeyTransactions = "7divas_tx"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// KV armazenamento chave/valor sobre SQLite.
type KV struct {
	db *sqlx.DB
}

// Open abre (ou cria) o arquivo SQLite e garante o schema.
// WAL e busy_timeout evitam bloqueio entre o loop de sync e os handlers.
func Open(path string) (*KV, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("abrir banco local: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("inicializar schema kv: %w", err)
	}
	return &KV{db: db}, nil
}

// Close fecha o arquivo.
func (k *KV) Close() error {
	return k.db.Close()
}

// Get devolve o valor da chave. found=false quando a chave não existe.
func (k *KV) Get(key string) (value []byte, found bool, err error) {
	var raw string
	err = k.db.Get(&raw, `SELECT value FROM kv_store WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ler chave %s: %w", key, err)
	}
	return []byte(raw), true, nil
}

// Put grava a chave sobrescrevendo o valor anterior (overwrite, nunca append:
// uma falha no meio da escrita não corrompe estado antigo de outras chaves).
func (k *KV) Put(key string, value []byte) error {
	_, err := k.db.Exec(
		`INSERT INTO kv_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("gravar chave %s: %w", key, err)
	}
	return nil
}
