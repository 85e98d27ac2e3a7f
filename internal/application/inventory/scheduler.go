package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/controle-estoque/pkg/logger"
)

// AlertScheduler corre el escáner al iniciar y luego cada intervalo, en la goroutine del llamador:
// una corrida nunca se solapa con otra.
type AlertScheduler struct {
	scanner  Scanner
	notifier Notifier
	interval time.Duration
	log      *logger.Logger
}

// NewAlertScheduler construye el planificador.
func NewAlertScheduler(scanner Scanner, notifier Notifier, interval time.Duration, log *logger.Logger) *AlertScheduler {
	return &AlertScheduler{
		scanner:  scanner,
		notifier: notifier,
		interval: interval,
		log:      log.Named("alerts"),
	}
}

// Run bloquea hasta que ctx se cancela. Un error de escaneo se registra y la próxima corrida sigue en pie.
func (s *AlertScheduler) Run(ctx context.Context) error {
	s.log.Info().Dur("interval", s.interval).Msg("planificador de alertas iniciado")

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("planificador de alertas detenido")
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce ejecuta una corrida y notifica si hubo violaciones.
func (s *AlertScheduler) RunOnce(ctx context.Context) {
	report, err := s.scanner.Scan(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("escaneo de stock bajo")
		return
	}
	if report.Empty() {
		s.log.Debug().Str("run_id", report.RunID).Int("scanned", report.Scanned).Msg("sin productos bajo el mínimo")
		return
	}
	s.log.Info().Str("run_id", report.RunID).Int("alerts", len(report.Items)).Msg("productos con stock bajo")
	if err := s.notifier.Notify(ctx, report); err != nil {
		s.log.Error().Err(err).Str("run_id", report.RunID).Msg("notificar alertas")
	}
}
