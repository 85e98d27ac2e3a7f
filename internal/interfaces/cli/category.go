package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (s *shell) categoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Gerenciar categorias",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NOME",
		Short: "Adicionar categoria",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			added, err := app.Categories.Add(cmd.Context(), args[0])
			if err != nil {
				return userError(err, "")
			}
			if !added {
				warning(s.out, "Categoria %q já existe", args[0])
				return nil
			}
			success(s.out, "Categoria %q adicionada", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Listar categorias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			categories, err := app.Categories.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(categories) == 0 {
				muted(s.out, "Nenhuma categoria cadastrada")
				return nil
			}
			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name})
			}
			fmt.Fprintln(s.out, renderTable([]string{"ID", "Nome"}, rows, nil))
			return nil
		},
	})

	return cmd
}
