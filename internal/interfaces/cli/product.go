package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhoicas/controle-estoque/internal/application/dto"
	"github.com/jhoicas/controle-estoque/internal/domain/entity"
)

const productNotFound = "produto não encontrado"

func (s *shell) productCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Gerenciar produtos",
	}
	cmd.AddCommand(
		s.productAddCommand(),
		s.productUpdateCommand(),
		s.productDeleteCommand(),
		s.productGetCommand(),
		s.productListCommand(),
	)
	return cmd
}

// bindProductForm registra los campos del formulario como texto libre: lo que no sea número vale 0.
func bindProductForm(cmd *cobra.Command, form *dto.ProductForm) {
	cmd.Flags().StringVar(&form.Name, "name", "", "nome do produto")
	cmd.Flags().StringVar(&form.Category, "category", "", "nome da categoria (vazio = sem categoria)")
	cmd.Flags().StringVar(&form.Price, "price", "0", "preço unitário")
	cmd.Flags().StringVar(&form.Quantity, "qty", "0", "quantidade")
	cmd.Flags().StringVar(&form.MinQuantity, "min", "0", "estoque mínimo")
}

func (s *shell) formRequest(cmd *cobra.Command, app *App, form dto.ProductForm) (dto.ProductRequest, error) {
	categoryID, err := app.Categories.ResolveID(cmd.Context(), form.Category)
	if err != nil {
		return dto.ProductRequest{}, err
	}
	if categoryID == nil && form.Category != "" {
		warning(s.out, "Categoria %q não encontrada; produto fica sem categoria", form.Category)
	}
	return form.ToRequest(categoryID), nil
}

func (s *shell) productAddCommand() *cobra.Command {
	var form dto.ProductForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Adicionar produto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			req, err := s.formRequest(cmd, app, form)
			if err != nil {
				return err
			}
			id, err := app.Products.Create(cmd.Context(), req)
			if err != nil {
				return userError(err, productNotFound)
			}
			success(s.out, "Produto %q adicionado (ID %d)", req.Name, id)
			return nil
		},
	}
	bindProductForm(cmd, &form)
	return cmd
}

func (s *shell) productUpdateCommand() *cobra.Command {
	var form dto.ProductForm
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Sobrescrever todos os campos de um produto (inclusive a quantidade)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return userError(err, productNotFound)
			}
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			req, err := s.formRequest(cmd, app, form)
			if err != nil {
				return err
			}
			if err := app.Products.Update(cmd.Context(), id, req); err != nil {
				return userError(err, productNotFound)
			}
			success(s.out, "Produto %d atualizado", id)
			return nil
		},
	}
	bindProductForm(cmd, &form)
	return cmd
}

func (s *shell) productDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Excluir produto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return userError(err, productNotFound)
			}
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			if err := app.Products.Delete(cmd.Context(), id); err != nil {
				return userError(err, productNotFound)
			}
			success(s.out, "Produto %d excluído", id)
			return nil
		},
	}
}

func (s *shell) productGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Mostrar um produto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return userError(err, productNotFound)
			}
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			p, err := app.Products.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("%s: %d", productNotFound, id)
			}
			category := ""
			if p.CategoryID != nil {
				category = strconv.FormatInt(*p.CategoryID, 10)
			}
			fmt.Fprintln(s.out, renderTable(
				[]string{"ID", "Nome", "Categoria ID", "Preço", "Quantidade", "Mínimo"},
				[][]string{{
					strconv.FormatInt(p.ID, 10), p.Name, category,
					app.Money.Format(p.Price), strconv.FormatInt(p.Quantity, 10), strconv.FormatInt(p.MinQuantity, 10),
				}},
				nil,
			))
			return nil
		},
	}
}

func (s *shell) productListCommand() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar produtos (ordenados por nome)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := s.application(cmd)
			if err != nil {
				return err
			}
			products, err := app.Products.List(cmd.Context(), search)
			if err != nil {
				return err
			}
			if len(products) == 0 {
				muted(s.out, "Nenhum produto encontrado")
				return nil
			}
			fmt.Fprintln(s.out, productTable(app, products))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filtra por nome do produto ou da categoria (diferencia maiúsculas)")
	return cmd
}

func productTable(app *App, products []entity.ProductView) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		category := ""
		if p.CategoryName != nil {
			category = *p.CategoryName
		}
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			category,
			app.Money.Format(p.Price),
			strconv.FormatInt(p.Quantity, 10),
			strconv.FormatInt(p.MinQuantity, 10),
		})
	}
	return renderTable(
		[]string{"ID", "Nome", "Categoria", "Preço", "Quantidade", "Mínimo"},
		rows,
		func(row int) bool { return products[row].LowStock },
	)
}
