package cli

import (
	"context"

	"github.com/jhoicas/controle-estoque/internal/application/inventory"
	"github.com/jhoicas/controle-estoque/internal/application/report"
	"github.com/jhoicas/controle-estoque/internal/application/usecase"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/export"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/pdf"
	"github.com/jhoicas/controle-estoque/internal/infrastructure/sqlite"
	"github.com/jhoicas/controle-estoque/pkg/config"
	"github.com/jhoicas/controle-estoque/pkg/currency"
	"github.com/jhoicas/controle-estoque/pkg/logger"
	"github.com/jhoicas/controle-estoque/pkg/validator"
)

// App reúne el handle de base de datos y los casos de uso ya cableados.
type App struct {
	Config *config.Config
	Log    *logger.Logger
	DB     *sqlite.DB
	Money  *currency.Formatter

	Categories *usecase.CategoryUseCase
	Products   *usecase.ProductUseCase
	Ledger     *inventory.RegisterMovementUseCase
	Scanner    *inventory.LowStockScanner
	Reports    *report.UseCase
}

// NewApp abre la base de datos (migraciones incluidas) y construye los casos de uso.
func NewApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := sqlite.Open(ctx, cfg.DB, log.Named("sqlite"))
	if err != nil {
		return nil, err
	}

	validate := validator.MustNew()
	money := currency.NewFormatter(cfg.App.Locale)

	categoryRepo := sqlite.NewCategoryRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	movementRepo := sqlite.NewMovementRepository(db)
	levelRepo := sqlite.NewStockLevelRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	productUC := usecase.NewProductUseCase(productRepo, movementRepo, txRunner, validate, cfg.Inventory.DeletePolicy)
	scanner := inventory.NewLowStockScanner(levelRepo)

	return &App{
		Config:     cfg,
		Log:        log,
		DB:         db,
		Money:      money,
		Categories: usecase.NewCategoryUseCase(categoryRepo, validate),
		Products:   productUC,
		Ledger:     inventory.NewRegisterMovementUseCase(txRunner, movementRepo, validate),
		Scanner:    scanner,
		Reports: report.NewUseCase(
			productUC, scanner, export.NewCSVWriter(), pdf.NewMarotoStockReport(money),
			"Relatório de estoque",
		),
	}, nil
}

// Close libera la base de datos.
func (a *App) Close() error {
	return a.DB.Close()
}
