package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (s *shell) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exportar o catálogo",
	}

	var csvOut string
	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Exportar produtos para CSV (ID,Nome,Categoria,Preco,Quantidade,MinEstoque)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			if csvOut == "-" {
				_, err = app.Reports.ExportCSV(cmd.Context(), s.out)
				return err
			}
			f, err := os.Create(csvOut)
			if err != nil {
				return fmt.Errorf("criar %s: %w", csvOut, err)
			}
			defer func() { err = errors.Join(err, f.Close()) }()

			n, err := app.Reports.ExportCSV(cmd.Context(), f)
			if err != nil {
				return err
			}
			success(s.out, "%d produtos exportados para %s", n, csvOut)
			return nil
		},
	}
	csvCmd.Flags().StringVarP(&csvOut, "out", "o", "produtos.csv", "arquivo de destino (\"-\" para a saída padrão)")

	var pdfOut string
	pdfCmd := &cobra.Command{
		Use:   "pdf",
		Short: "Gerar relatório de estoque em PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			doc, err := app.Reports.ExportPDF(cmd.Context())
			if err != nil {
				return err
			}
			if err := os.WriteFile(pdfOut, doc, 0o644); err != nil {
				return fmt.Errorf("gravar %s: %w", pdfOut, err)
			}
			success(s.out, "Relatório gravado em %s", pdfOut)
			return nil
		},
	}
	pdfCmd.Flags().StringVarP(&pdfOut, "out", "o", "estoque.pdf", "arquivo de destino")

	cmd.AddCommand(csvCmd, pdfCmd)
	return cmd
}
