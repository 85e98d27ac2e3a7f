package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

func (s *shell) movementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movement",
		Short: "Registrar e consultar movimentações",
	}
	cmd.AddCommand(
		s.postMovementCommand("in", "Registrar entrada", entity.MovementTypeIn),
		s.postMovementCommand("out", "Registrar saída", entity.MovementTypeOut),
		s.movementListCommand(),
	)
	return cmd
}

func (s *shell) postMovementCommand(use, short, movementType string) *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   use + " PRODUTO_ID QUANTIDADE",
		Short: short,
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
			mov, err := app.Ledger.PostMovement(cmd.Context(), dto.PostMovementRequest{
				ProductID: id,
				Type:      movementType,
				Quantity:  dto.ParseIntOrZero(args[1]),
				Note:      note,
			})
			if err != nil {
				return userError(err, productNotFound)
			}
			success(s.out, "Movimentação %d registrada: %s de %d em %s",
				mov.ID, mov.Type, mov.Quantity, mov.Date.Format(entity.MovementTimeLayout))
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "observação")
	return cmd
}

func (s *shell) movementListCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Últimas movimentações (mais recentes primeiro)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = app.Config.Inventory.MovementsLimit
			}
			movements, err := app.Ledger.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(movements) == 0 {
				muted(s.out, "Nenhuma movimentação registrada")
				return nil
			}
			rows := make([][]string, 0, len(movements))
			for _, m := range movements {
				rows = append(rows, []string{
					strconv.FormatInt(m.ID, 10),
					m.ProductName,
					m.Type,
					strconv.FormatInt(m.Quantity, 10),
					m.Date.Format(entity.MovementTimeLayout),
					m.Note,
				})
			}
			fmt.Fprintln(s.out, renderTable(
				[]string{"ID", "Produto", "Tipo", "Quantidade", "Data", "Observação"}, rows, nil))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "quantidade máxima de linhas (padrão MOVEMENTS_LIMIT)")
	return cmd
}
