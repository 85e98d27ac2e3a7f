package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
)

func (s *shell) alertsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "Alertas de estoque mínimo",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Executar uma verificação agora",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			report, err := app.Scanner.Scan(cmd.Context())
			if err != nil {
				return err
			}
			if report.Empty() {
				success(s.out, "Nenhum produto abaixo do mínimo (%d verificados)", report.Scanned)
				return nil
			}
			fmt.Fprintln(s.out, lowStockTable(report))
			return nil
		},
	})

	var interval time.Duration
	watch := &cobra.Command{
		Use:   "watch",
		Short: "Verificar ao iniciar e depois periodicamente até Ctrl+C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			if interval <= 0 {
				interval = app.Config.Inventory.AlertInterval
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.watch(ctx, app, interval)
		},
	}
	watch.Flags().DurationVar(&interval, "interval", 0, "intervalo entre verificações (padrão ALERT_INTERVAL)")
	cmd.AddCommand(watch)

	return cmd
}

func (s *shell) watch(ctx context.Context, app *App, interval time.Duration) error {
	notifier := inventory.MultiNotifier{
		NewTerminalNotifier(s.out),
		inventory.NewLogNotifier(app.Log),
	}
	muted(s.out, "Verificando estoque a cada %s (Ctrl+C para sair)", interval)
	return inventory.NewAlertScheduler(app.Scanner, notifier, interval, app.Log).Run(ctx)
}

func lowStockTable(report *dto.LowStockReport) string {
	rows := make([][]string, 0, len(report.Items))
	for _, item := range report.Items {
		rows = append(rows, []string{
			strconv.FormatInt(item.ProductID, 10),
			item.ProductName,
			strconv.FormatInt(item.Quantity, 10),
			strconv.FormatInt(item.MinQuantity, 10),
		})
	}
	return renderTable(
		[]string{"ID", "Produto", "Quantidade", "Mínimo"},
		rows,
		func(int) bool { return true },
	)
}
