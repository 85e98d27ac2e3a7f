package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/application/inventory"
)

var _ inventory.Notifier = (*TerminalNotifier)(nil)

// TerminalNotifier muestra las violaciones en un recuadro de aviso.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier construye el notificador sobre out.
func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Notify(_ context.Context, report *dto.LowStockReport) error {
	var b strings.Builder
	b.WriteString(warningStyle.Render("Estoque mínimo"))
	for _, item := range report.Items {
		fmt.Fprintf(&b, "\n%s: %d unidades (mínimo %d)", item.ProductName, item.Quantity, item.MinQuantity)
	}
	_, err := fmt.Fprintln(n.out, alertBoxStyle.Render(b.String()))
	return err
}
