package cli

import (
	"github.com/spf13/cobra"
)

func (s *shell) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Criar ou atualizar o esquema do banco de dados",
		Long: `Aplica as migrações pendentes. Arquivos criados pela versão anterior do
programa são adotados sem alterar tabelas existentes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			version, err := app.DB.SchemaVersion(cmd.Context())
			if err != nil {
				return err
			}
			success(s.out, "Esquema na versão %d (%s)", version, app.Config.DB.Path)
			return nil
		},
	}
}
