// Package sync implementa o laço de sincronização com a planilha remota:
// push do snapshot completo com debounce após mutações locais e pull periódico
// com substituição integral das coleções.
//
// O lado do push é uma pequena máquina de estados {Idle, Pending, Pushing}:
// mutação rearma o prazo (Idle/Pending -> Pending), prazo vencido dispara o
// push (Pending -> Pushing), push concluído volta a Idle. Um push concorrente
// é descartado, nunca enfileirado.
package sync

import (
	"context"
	"sync"
	"time"

	"github.com/atelie7divas/atelie-api/internal/application/state"
	"github.com/atelie7divas/atelie-api/internal/domain/entity"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/metrics"
	"github.com/atelie7divas/atelie-api/internal/infrastructure/sheets"
	"github.com/atelie7divas/atelie-api/pkg/logger"
)

// Remote contrato do cliente da planilha (sheets.Client em produção).
type Remote interface {
	FetchAll(ctx context.Context, webAppURL string) (*entity.Dataset, error)
	PushAll(ctx context.Context, webAppURL string, data entity.Dataset) (sheets.PushResult, error)
}

// PushStatus indicador grosso exibido pela UI. "sent" = requisição completou
// mas a resposta não pôde ser verificada; "confirmed" = o servidor respondeu
// success:true. Ambos contam como sucesso para a UI.
type PushStatus string

const (
	StatusIdle      PushStatus = "idle"
	StatusSent      PushStatus = "sent"
	StatusConfirmed PushStatus = "confirmed"
	StatusError     PushStatus = "error"
)

type machineState int

const (
	stateIdle machineState = iota
	statePending
	statePushing
)

// Options prazos do motor (os padrões de produção vêm do pkg/config: 3s / 20s).
type Options struct {
	PushDebounce time.Duration
	PullInterval time.Duration
}

// Report estado corrente para o endpoint de status.
type Report struct {
	Status     PushStatus `json:"status"`
	Configured bool       `json:"configured"`
	LastPushAt time.Time  `json:"lastPushAt,omitzero"`
	LastPullAt time.Time  `json:"lastPullAt,omitzero"`
	LastError  string     `json:"lastError,omitempty"`
}

// Engine motor de sincronização. Run roda em uma única goroutine; pushes
// forçados pelo painel de manutenção passam pelo mesmo guarda de voo único.
type Engine struct {
	store  *state.Store
	remote Remote
	log    *logger.Logger
	opts   Options

	mu         sync.Mutex
	st         machineState
	status     PushStatus
	lastPushAt time.Time
	lastPullAt time.Time
	lastErr    string
	armedURL   string // última URL para a qual o pull inicial já foi feito

	force chan struct{}
}

// NewEngine constrói o motor.
func NewEngine(store *state.Store, remote Remote, log *logger.Logger, opts Options) *Engine {
	return &Engine{
		store:  store,
		remote: remote,
		log:    log,
		opts:   opts,
		status: StatusIdle,
		force:  make(chan struct{}, 1),
	}
}

// Run processa mutações, prazos de debounce e o tique de pull até ctx encerrar.
// Nenhuma requisição em voo é cancelada no meio; o encerramento espera o laço
// terminar o passo corrente.
func (e *Engine) Run(ctx context.Context) {
	debounce := time.NewTimer(time.Hour)
	if !debounce.Stop() {
		<-debounce.C
	}
	// O tique de pull só corre com endpoint configurado; limpar o endpoint
	// para o ticker.
	ticker := time.NewTicker(e.opts.PullInterval)
	defer ticker.Stop()

	// Carga inicial quando o endpoint já vem configurado do boot.
	e.pullIfNewlyConfigured(ctx)
	armed := e.store.GasWebAppURL() != ""
	if !armed {
		ticker.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-e.store.Changes():
			// A mudança pode ter sido justamente configurar (ou limpar) o endpoint.
			e.pullIfNewlyConfigured(ctx)
			if e.store.GasWebAppURL() == "" {
				if armed {
					ticker.Stop()
					armed = false
				}
				continue
			}
			if !armed {
				ticker.Reset(e.opts.PullInterval)
				armed = true
			}
			e.mu.Lock()
			if e.st == stateIdle {
				e.st = statePending
			}
			e.mu.Unlock()
			// Debounce de borda de saída: cada mutação rearma o prazo.
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(e.opts.PushDebounce)

		case <-debounce.C:
			e.push(ctx)

		case <-e.force:
			e.push(ctx)

		case <-ticker.C:
			e.pull(ctx, false)
		}
	}
}

// ForceSync pull + push imediatos (ação do painel de manutenção). O push passa
// pelo laço para respeitar o guarda de voo único; se já houver um pedido
// pendente, este é descartado.
func (e *Engine) ForceSync(ctx context.Context) {
	e.pull(ctx, true)
	select {
	case e.force <- struct{}{}:
	default:
	}
}

// Status devolve o relatório corrente.
func (e *Engine) Status() Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Report{
		Status:     e.status,
		Configured: e.store.GasWebAppURL() != "",
		LastPushAt: e.lastPushAt,
		LastPullAt: e.lastPullAt,
		LastError:  e.lastErr,
	}
}

// pullIfNewlyConfigured dispara um pull imediato quando o endpoint acabou de
// ser configurado (ou trocado); limpa o estado armado quando é removido.
func (e *Engine) pullIfNewlyConfigured(ctx context.Context) {
	url := e.store.GasWebAppURL()
	e.mu.Lock()
	changed := url != e.armedURL
	e.armedURL = url
	e.mu.Unlock()
	if changed && url != "" {
		e.pull(ctx, false)
	}
}

// push envia o snapshot completo. Voo único: se já há um push em andamento, o
// pedido é descartado. Falha de rede é não-fatal: log + status "error".
func (e *Engine) push(ctx context.Context) {
	url := e.store.GasWebAppURL()
	if url == "" {
		e.mu.Lock()
		e.st = stateIdle
		e.mu.Unlock()
		return
	}

	e.mu.Lock()
	if e.st == statePushing {
		e.mu.Unlock()
		metrics.PushTotal.WithLabelValues("dropped").Inc()
		return
	}
	e.st = statePushing
	e.mu.Unlock()

	res, err := e.remote.PushAll(ctx, url, e.store.Snapshot())

	e.mu.Lock()
	defer e.mu.Unlock()
	e.st = stateIdle
	e.lastPushAt = time.Now()
	if err != nil {
		e.status = StatusError
		e.lastErr = err.Error()
		metrics.PushTotal.WithLabelValues("error").Inc()
		e.log.Warn().Err(err).Msg("push para a planilha falhou")
		return
	}
	e.lastErr = ""
	if res.Confirmed {
		e.status = StatusConfirmed
		metrics.PushTotal.WithLabelValues("confirmed").Inc()
	} else {
		e.status = StatusSent
		metrics.PushTotal.WithLabelValues("sent").Inc()
	}
	e.log.Debug().Bool("confirmed", res.Confirmed).Msg("push para a planilha concluído")
}

// pull busca o dataset remoto e substitui as coleções locais por inteiro.
// Regras: resposta sem usuários não é aplicada; erro de rede/parse deixa o
// estado local intocado (o sistema funciona offline). Enquanto há um push
// pendente ou em voo o pull é pulado — edições locais dentro da janela de
// debounce vencem; o próximo tique tenta de novo. force ignora esse desvio.
func (e *Engine) pull(ctx context.Context, force bool) {
	url := e.store.GasWebAppURL()
	if url == "" {
		return
	}

	if !force {
		e.mu.Lock()
		busy := e.st != stateIdle
		e.mu.Unlock()
		if busy {
			metrics.PullTotal.WithLabelValues("skipped").Inc()
			return
		}
	}

	ds, err := e.remote.FetchAll(ctx, url)
	if err != nil {
		metrics.PullTotal.WithLabelValues("error").Inc()
		e.log.Warn().Err(err).Msg("pull da planilha falhou, mantendo cópia local")
		return
	}
	if len(ds.Users) == 0 {
		metrics.PullTotal.WithLabelValues("empty").Inc()
		e.log.Debug().Msg("pull sem usuários, estado local mantido")
		return
	}

	e.store.ReplaceAll(*ds)
	e.mu.Lock()
	e.lastPullAt = time.Now()
	e.mu.Unlock()
	metrics.PullTotal.WithLabelValues("applied").Inc()
	e.log.Debug().Msg("pull aplicado")
}
