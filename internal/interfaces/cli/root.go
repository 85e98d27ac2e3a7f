// Package cli es la capa de presentación: comandos cobra que recogen texto libre,
// llaman a los casos de uso y dibujan el resultado en la terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/controle-estoque/internal/domain"
	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/logger"
)

// shell estado compartido por los comandos; la base se abre al primer uso.
type shell struct {
	out    io.Writer
	errOut io.Writer

	dbPath   string
	logLevel string

	app *App
}

// Execute ejecuta la CLI con args y devuelve el código de salida del proceso.
// out recibe tablas y mensajes; errOut los logs y el error final.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	s := &shell{out: out, errOut: errOut}
	root := s.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	if err != nil {
		PrintError(errOut, err)
		return 1
	}
	return 0
}

func (s *shell) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "estoque",
		Short: "Controle de estoque local",
		Long: `Controle de estoque local: catálogo de produtos e categorias, livro de
movimentações (entradas e saídas) e alertas de estoque mínimo.

Os dados ficam em um único arquivo SQLite (DB_PATH ou --db).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(s.out)
	root.SetErr(s.errOut)

	root.PersistentFlags().StringVar(&s.dbPath, "db", "", "arquivo do banco de dados (sobrescreve DB_PATH)")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "nível de log (sobrescreve LOG_LEVEL)")

	root.AddCommand(
		s.categoryCommand(),
		s.productCommand(),
		s.movementCommand(),
		s.stockCommand(),
		s.alertsCommand(),
		s.exportCommand(),
		s.migrateCommand(),
	)
	return root
}

// application carga la configuración y abre la base la primera vez que un comando la necesita.
func (s *shell) application(cmd *cobra.Command) (*App, error) {
	if s.app != nil {
		return s.app, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	if s.dbPath != "" {
		cfg.DB.Path = s.dbPath
	}
	if s.logLevel != "" {
		cfg.App.LogLevel = s.logLevel
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   s.errOut,
	})

	app, err := NewApp(cmd.Context(), cfg, log)
	if err != nil {
		return nil, err
	}
	s.app = app
	return app, nil
}

func (s *shell) close() error {
	if s.app == nil {
		return nil
	}
	err := s.app.Close()
	s.app = nil
	return err
}

// userError traduce los errores de dominio a mensajes para la terminal; el resto se propaga tal cual.
func userError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return errors.New(notFound)
	case errors.Is(err, domain.ErrInvalidInput):
		return fmt.Errorf("dados inválidos: %w", err)
	case errors.Is(err, domain.ErrConflict):
		return errors.New("o produto possui movimentações registradas")
	default:
		return err
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q: %w", s, domain.ErrInvalidInput)
	}
	return id, nil
}
