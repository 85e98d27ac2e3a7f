package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
)

func (s *shell) stockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Correções de estoque",
	}

	var note string
	adjust := &cobra.Command{
		Use:   "adjust PRODUTO_ID QUANTIDADE",
		Short: "Levar a quantidade ao valor contado, registrando a diferença no livro",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return userError(err, productNotFound)
			}
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			target := dto.ParseIntOrZero(args[1])
			mov, err := app.Ledger.AdjustStock(cmd.Context(), dto.AdjustStockRequest{
				ProductID: id,
				Target:    target,
				Note:      note,
			})
			if err != nil {
				return userError(err, productNotFound)
			}
			if mov == nil {
				muted(s.out, "Quantidade já é %d; nada a ajustar", target)
				return nil
			}
			success(s.out, "Estoque ajustado para %d (%s de %d)", target, mov.Type, mov.Quantity)
			return nil
		},
	}
	adjust.Flags().StringVar(&note, "note", "", "observação (padrão \"ajuste manual\")")
	cmd.AddCommand(adjust)
	return cmd
}
