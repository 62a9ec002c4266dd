// Package state implementa o Local State Store: as seis coleções e o singleton
// de configuração como fonte única de verdade para a UI, com persistência
// durável a cada mutação e notificação de mudança para o motor de sync.
//
// Nada aqui é global: o Store é construído em cmd/api e injetado em quem
// precisa (handlers, casos de uso, motor de sync).
package state

import (
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"github.com/atelie7divas/atelie-api/internal/domain"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
	"github.com/atelie7divas/atelie-api/internal/domain/seed"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/localdb"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/metrics"
	"github.com/atelie7divas/atelie-api/pkg/logger"
)

// Persister contrato do armazenamento local durável (chave -> JSON).
type Persister interface {
	Get(key string) (value []byte, found bool, err error)
	Put(key string, value []byte) error
}

// Store guarda as coleções em memória atrás de um RWMutex. Os métodos de
// mutação persistem a coleção tocada antes de retornar e sinalizam o canal de
// mudanças (gatilho do push com debounce).
type Store struct {
	mu sync.RWMutex

	cfg          entity.AppConfig
	users        []entity.User
	products     []entity.Product
	stores       []entity.Store
	rawMaterials []entity.RawMaterialEntry
	transactions []entity.Transaction

	kv      Persister
	log     *logger.Logger
	changed chan struct{}
}

// New carrega cada coleção do armazenamento local; chave ausente ou valor
// ilegível cai para o dataset semente. A lista de lojas da configuração semeia
// a coleção Stores quando não há override local.
func New(kv Persister, log *logger.Logger) *Store {
	s := &Store{
		kv:      kv,
		log:     log,
		changed: make(chan struct{}, 1),
	}

	if !s.load(localdb.KeyConfig, &s.cfg) {
		s.cfg = seed.Config()
	}
	if !s.load(localdb.KeyUsers, &s.users) {
		s.users = seed.Users()
	}
	if !s.load(localdb.KeyProducts, &s.products) {
		s.products = seed.Products()
	}
	if !s.load(localdb.KeyStores, &s.stores) {
		s.stores = slices.Clone(s.cfg.Stores)
	}
	if !s.load(localdb.KeyRawMaterials, &s.rawMaterials) {
		s.rawMaterials = seed.RawMaterials()
	}
	if !s.load(localdb.KeyTransactions, &s.transactions) {
		s.transactions = seed.Transactions()
	}

	s.updateGauges()
	return s
}

// load devolve false quando a chave não existe ou o JSON está corrompido
// (parse malformado é tratado como ausente, caindo no seed).
func (s *Store) load(key string, dst any) bool {
	raw, found, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("leitura do banco local falhou, usando seed")
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("valor local corrompido, usando seed")
		return false
	}
	return true
}

// Changes canal sinalizado (sem bloqueio) a cada mutação local. O motor de
// sync o consome para rearmar o debounce do push.
func (s *Store) Changes() <-chan struct{} {
	return s.changed
}

// ── Config ────────────────────────────────────────────────────────────────────

// Config devolve uma cópia da configuração.
func (s *Store) Config() entity.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneConfig(s.cfg)
}

// GasWebAppURL endpoint de sincronização corrente (vazio = sync desligado).
func (s *Store) GasWebAppURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.GasWebAppURL
}

// SetConfig substitui a configuração local (painéis admin/TI). A coleção de
// lojas acompanha a lista do config quando ela vem preenchida (invariante:
// config.Stores espelha a coleção).
func (s *Store) SetConfig(cfg entity.AppConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cloneConfig(cfg)
	if len(s.cfg.Stores) > 0 {
		s.stores = slices.Clone(s.cfg.Stores)
		s.persist(localdb.KeyStores, s.stores)
	}
	s.persist(localdb.KeyConfig, s.cfg)
	s.notify()
}

// ── Users ─────────────────────────────────────────────────────────────────────

// Users devolve uma cópia da coleção de usuários.
func (s *Store) Users() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.users)
}

// UserByEmail busca por email (case-insensitive, espaços aparados).
func (s *Store) UserByEmail(email string) (entity.User, bool) {
	needle := strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.ToLower(u.Email) == needle {
			return u, true
		}
	}
	return entity.User{}, false
}

// CreateUser adiciona um usuário; o email é a chave única de login.
func (s *Store) CreateUser(u entity.User) error {
	needle := strings.ToLower(strings.TrimSpace(u.Email))
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.ToLower(existing.Email) == needle {
			return domain.ErrEmailAlreadyExists
		}
	}
	s.users = append(s.users, u)
	s.persist(localdb.KeyUsers, s.users)
	s.notify()
	return nil
}

// UpdateUser substitui o usuário de mesmo ID. Usuários nunca são removidos
// fisicamente; desativação é feita por aqui via Status.
func (s *Store) UpdateUser(u entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			s.persist(localdb.KeyUsers, s.users)
			s.notify()
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// ── Products ──────────────────────────────────────────────────────────────────

// Products devolve uma cópia da coleção de produtos.
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// ProductByID busca um produto.
func (s *Store) ProductByID(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// CreateProduct adiciona um produto ao acervo.
func (s *Store) CreateProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	s.persist(localdb.KeyProducts, s.products)
	s.notify()
}

// UpdateProduct substitui o produto de mesmo ID (formulário de edição direta).
func (s *Store) UpdateProduct(p entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.persist(localdb.KeyProducts, s.products)
			s.notify()
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// DeleteProduct remove o produto do acervo.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = slices.Delete(s.products, i, i+1)
			s.persist(localdb.KeyProducts, s.products)
			s.notify()
			return nil
		}
	}
	return domain.ErrProductNotFound
}

// ApplyInventoryChange aplica uma movimentação de estoque de forma atômica:
// o delta no contador corrente e o lançamento imutável acontecem juntos ou
// nenhum acontece. delta negativo nunca pode deixar o estoque abaixo de zero.
func (s *Store) ApplyInventoryChange(productID string, delta int, tx entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != productID {
			continue
		}
		if delta < 0 && s.products[i].CurrentStock+delta < 0 {
			return &domain.InsufficientStockError{Available: s.products[i].CurrentStock}
		}
		s.products[i].CurrentStock += delta
		s.transactions = append(s.transactions, tx)
		s.persist(localdb.KeyProducts, s.products)
		s.persist(localdb.KeyTransactions, s.transactions)
		s.notify()
		return nil
	}
	return domain.ErrProductNotFound
}

// ── Stores ────────────────────────────────────────────────────────────────────

// Stores devolve uma cópia da coleção de lojas.
func (s *Store) Stores() []entity.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.stores)
}

// CreateStore adiciona uma loja, mantendo o espelho em config.Stores.
func (s *Store) CreateStore(st entity.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores = append(s.stores, st)
	s.syncConfigStoresLocked()
}

// UpdateStore substitui a loja de mesmo ID, mantendo o espelho em config.Stores.
func (s *Store) UpdateStore(st entity.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stores {
		if s.stores[i].ID == st.ID {
			s.stores[i] = st
			s.syncConfigStoresLocked()
			return nil
		}
	}
	return domain.ErrNotFound
}

// syncConfigStoresLocked espelha a coleção de lojas dentro do AppConfig
// (invariante: config.Stores sempre casa com a coleção). Chamar com lock.
func (s *Store) syncConfigStoresLocked() {
	s.cfg.Stores = slices.Clone(s.stores)
	s.persist(localdb.KeyStores, s.stores)
	s.persist(localdb.KeyConfig, s.cfg)
	s.notify()
}

// ── Raw materials ─────────────────────────────────────────────────────────────

// RawMaterials devolve uma cópia da coleção de insumos.
func (s *Store) RawMaterials() []entity.RawMaterialEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rawMaterials)
}

// CreateRawMaterial registra uma compra de insumo.
func (s *Store) CreateRawMaterial(rm entity.RawMaterialEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawMaterials = append(s.rawMaterials, rm)
	s.persist(localdb.KeyRawMaterials, s.rawMaterials)
	s.notify()
}

// UpdateRawMaterial substitui o lançamento de mesmo ID (painel financeiro).
func (s *Store) UpdateRawMaterial(rm entity.RawMaterialEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rawMaterials {
		if s.rawMaterials[i].ID == rm.ID {
			s.rawMaterials[i] = rm
			s.persist(localdb.KeyRawMaterials, s.rawMaterials)
			s.notify()
			return nil
		}
	}
	return domain.ErrNotFound
}

// DeleteRawMaterial remove o lançamento (painel financeiro).
func (s *Store) DeleteRawMaterial(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rawMaterials {
		if s.rawMaterials[i].ID == id {
			s.rawMaterials = slices.Delete(s.rawMaterials, i, i+1)
			s.persist(localdb.KeyRawMaterials, s.rawMaterials)
			s.notify()
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Transactions ──────────────────────────────────────────────────────────────

// Transactions devolve uma cópia do livro de movimentos. Lançamentos são
// imutáveis: não existe Update/Delete.
func (s *Store) Transactions() []entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.transactions)
}

// ── Sync ──────────────────────────────────────────────────────────────────────

// Snapshot devolve uma cópia profunda das seis coleções + config (payload do push).
func (s *Store) Snapshot() entity.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return entity.Dataset{
		Users:        slices.Clone(s.users),
		Products:     slices.Clone(s.products),
		Transactions: slices.Clone(s.transactions),
		Stores:       slices.Clone(s.stores),
		RawMaterials: slices.Clone(s.rawMaterials),
		Config:       cloneConfig(s.cfg),
	}
}

// ReplaceAll substitui as seis coleções pelo dataset remoto (last-writer-wins
// na granularidade de coleção inteira). A config remota só é aplicada quando
// traz CompanyName, e a GasWebAppURL local é sempre preservada: o remoto não
// pode redirecionar o cliente para outro endpoint.
//
// Não sinaliza o canal de mudanças: dado recém-puxado não deve reagendar um
// push de eco para a planilha.
func (s *Store) ReplaceAll(ds entity.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = slices.Clone(ds.Users)
	s.products = slices.Clone(ds.Products)
	s.transactions = slices.Clone(ds.Transactions)
	s.stores = slices.Clone(ds.Stores)
	s.rawMaterials = slices.Clone(ds.RawMaterials)
	if ds.Config.CompanyName != "" {
		localURL := s.cfg.GasWebAppURL
		s.cfg = cloneConfig(ds.Config)
		s.cfg.GasWebAppURL = localURL
	}

	s.persist(localdb.KeyUsers, s.users)
	s.persist(localdb.KeyProducts, s.products)
	s.persist(localdb.KeyTransactions, s.transactions)
	s.persist(localdb.KeyStores, s.stores)
	s.persist(localdb.KeyRawMaterials, s.rawMaterials)
	s.persist(localdb.KeyConfig, s.cfg)
}

// ── internos ──────────────────────────────────────────────────────────────────

// persist serializa e sobrescreve a chave. Falha de escrita não aborta a
// mutação em memória (no pior caso perde-se a última alteração, nunca as
// anteriores); fica registrada em log.
func (s *Store) persist(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("serializar coleção")
		return
	}
	if err := s.kv.Put(key, raw); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("persistir coleção local")
	}
	s.updateGaugesLocked()
}

func (s *Store) notify() {
	select {
	case s.changed <- struct{}{}:
	default: // já há um sinal pendente
	}
}

func (s *Store) updateGauges() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.updateGaugesLocked()
}

func (s *Store) updateGaugesLocked() {
	metrics.CollectionSize.WithLabelValues("users").Set(float64(len(s.users)))
	metrics.CollectionSize.WithLabelValues("products").Set(float64(len(s.products)))
	metrics.CollectionSize.WithLabelValues("transactions").Set(float64(len(s.transactions)))
	metrics.CollectionSize.WithLabelValues("stores").Set(float64(len(s.stores)))
	metrics.CollectionSize.WithLabelValues("rawMaterials").Set(float64(len(s.rawMaterials)))
}

func cloneConfig(cfg entity.AppConfig) entity.AppConfig {
	out := cfg
	out.Stores = slices.Clone(cfg.Stores)
	return out
}
