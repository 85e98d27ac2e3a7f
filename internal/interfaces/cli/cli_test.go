package cli_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-estoque/internal/interfaces/cli"
)

type harness struct {
	t    *testing.T
	dir  string
	path string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	return &harness{t: t, dir: dir, path: filepath.Join(dir, "estoque.db")}
}

// run ejecuta la CLI y devuelve stdout, stderr y el código de salida.
func (h *harness) run(args ...string) (string, string, int) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	code := cli.Execute(context.Background(), append([]string{"--db", h.path}, args...), &out, &errOut)
	return out.String(), errOut.String(), code
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, errOut, code := h.run(args...)
	require.Equal(h.t, 0, code, "stderr: %s", errOut)
	return out
}

func TestCategory_AddYList(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun("category", "add", "Ferragens"), "adicionada")
	assert.Contains(t, h.mustRun("category", "add", "Ferragens"), "já existe")

	out := h.mustRun("category", "list")
	assert.Equal(t, 1, strings.Count(out, "Ferragens"))
}

func TestProduct_FlujoCompleto(t *testing.T) {
	h := newHarness(t)
	h.mustRun("category", "add", "Ferragens")

	out := h.mustRun("product", "add", "--name", "Parafuso", "--category", "Ferragens",
		"--price", "1234.5", "--qty", "abc", "--min", "2")
	assert.Contains(t, out, "ID 1")

	out = h.mustRun("product", "list")
	assert.Contains(t, out, "Parafuso")
	assert.Contains(t, out, "Ferragens")
	assert.Contains(t, out, "1.234,50", "preço no locale pt-BR")

	out = h.mustRun("product", "list", "--search", "ferragens")
	assert.Contains(t, out, "Nenhum produto")

	h.mustRun("movement", "in", "1", "10", "--note", "NF 1")
	h.mustRun("movement", "out", "1", "3")

	out = h.mustRun("product", "get", "1")
	assert.Contains(t, out, "7")

	out = h.mustRun("movement", "list", "--limit", "1")
	assert.Contains(t, out, "saida")
	assert.NotContains(t, out, "NF 1")

	out = h.mustRun("stock", "adjust", "1", "2")
	assert.Contains(t, out, "saida de 5")

	out = h.mustRun("alerts", "check")
	assert.Contains(t, out, "Parafuso")

	h.mustRun("product", "delete", "1")
	_, errOut, code := h.run("product", "get", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "produto não encontrado")
}

func TestProduct_NombreRequerido(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("product", "add", "--price", "3")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "dados inválidos")
}

func TestMovement_ProductoInexistente(t *testing.T) {
	h := newHarness(t)

	_, errOut, code := h.run("movement", "in", "99", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "produto não encontrado")

	out := h.mustRun("movement", "list")
	assert.Contains(t, out, "Nenhuma movimentação")
}

func TestMovement_CantidadNoNumerica(t *testing.T) {
	h := newHarness(t)
	h.mustRun("product", "add", "--name", "Parafuso")

	_, errOut, code := h.run("movement", "out", "1", "muitos")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "dados inválidos")
}

func TestAlerts_SinViolaciones(t *testing.T) {
	h := newHarness(t)
	h.mustRun("product", "add", "--name", "Parafuso", "--qty", "10", "--min", "2")

	assert.Contains(t, h.mustRun("alerts", "check"), "Nenhum produto abaixo do mínimo")
}

func TestExport_CSV(t *testing.T) {
	h := newHarness(t)
	h.mustRun("category", "add", "Ferragens")
	h.mustRun("product", "add", "--name", "Parafuso", "--category", "Ferragens", "--price", "0.25", "--qty", "100", "--min", "10")
	h.mustRun("product", "add", "--name", "Arruela")

	dest := filepath.Join(h.dir, "saida.csv")
	assert.Contains(t, h.mustRun("export", "csv", "--out", dest), "2 produtos")

	f, err := os.Open(dest)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"ID", "Nome", "Categoria", "Preco", "Quantidade", "MinEstoque"}, records[0])
	assert.Equal(t, []string{"2", "Arruela", "", "0", "0", "0"}, records[1])
	assert.Equal(t, []string{"1", "Parafuso", "Ferragens", "0.25", "100", "10"}, records[2])
}

func TestExport_PDF(t *testing.T) {
	h := newHarness(t)
	h.mustRun("product", "add", "--name", "Parafuso", "--qty", "1", "--min", "5")

	dest := filepath.Join(h.dir, "estoque.pdf")
	h.mustRun("export", "pdf", "--out", dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestMigrate(t *testing.T) {
	h := newHarness(t)

	assert.Contains(t, h.mustRun("migrate"), "versão 2")
}

func TestDeletePolicyRestrict(t *testing.T) {
	h := newHarness(t)
	t.Setenv("DELETE_POLICY", "restrict")
	h.mustRun("product", "add", "--name", "Parafuso")
	h.mustRun("movement", "in", "1", "1")

	_, errOut, code := h.run("product", "delete", "1")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "movimentações registradas")
}
