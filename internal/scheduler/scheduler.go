package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hugohenrick/bizit/pkg/logger"
	"github.com/robfig/cron/v3"
)

// LateShipmentFlagger marca remessas pendentes vencidas como atrasadas
type LateShipmentFlagger interface {
	FlagLate(ctx context.Context, now time.Time) (int, error)
}

// Scheduler executa as tarefas periódicas da aplicação
type Scheduler struct {
	cron     *cron.Cron
	expr     string
	flagger  LateShipmentFlagger
	logger   logger.Logger
	now      func() time.Time
	jobLimit time.Duration
	startup  sync.WaitGroup
}

// NewScheduler cria um agendador. expr é uma expressão cron de 5 campos.
func NewScheduler(expr string, flagger LateShipmentFlagger, log logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{
		cron:     cron.New(),
		expr:     expr,
		flagger:  flagger,
		logger:   log,
		now:      time.Now,
		jobLimit: 2 * time.Minute,
	}
}

// Start agenda as tarefas e inicia o cron. A verificação de atrasos também roda uma vez na partida.
func (s *Scheduler) Start() error {
	s.logger.Info("iniciando agendador", "late_shipment_cron", s.expr)

	if _, err := s.cron.AddFunc(s.expr, s.flagLateShipments); err != nil {
		return fmt.Errorf("expressão cron inválida %q: %w", s.expr, err)
	}

	s.startup.Add(1)
	go func() {
		defer s.startup.Done()
		s.flagLateShipments()
	}()
	s.cron.Start()
	return nil
}

// Stop para o cron e aguarda as tarefas em andamento, inclusive a verificação da partida
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info("parando agendador")
	cronDone := s.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.startup.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.logger.Warn("tarefas agendadas ainda em andamento no encerramento")
	}
}

func (s *Scheduler) flagLateShipments() {
	ctx, cancel := context.WithTimeout(context.Background(), s.jobLimit)
	defer cancel()

	marked, err := s.flagger.FlagLate(ctx, s.now())
	if err != nil {
		s.logger.Error("falha ao marcar remessas atrasadas", "error", err)
		return
	}
	s.logger.Debug("verificação de remessas atrasadas concluída", "marked", marked)
}
