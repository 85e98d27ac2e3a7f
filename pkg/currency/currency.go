// Package currency formatea precios según la configuración regional (APP_LOCALE).
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter imprime montos con separadores del locale configurado.
type Formatter struct {
	printer *message.Printer
	tag     language.Tag
}

// NewFormatter acepta etiquetas BCP 47 ("pt-BR", "es-CO", "en"). Una etiqueta inválida cae en pt-BR.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &Formatter{printer: message.NewPrinter(tag), tag: tag}
}

// Tag locale efectivo.
func (f *Formatter) Tag() language.Tag { return f.tag }

// Format dos decimales, con separador de miles.
func (f *Formatter) Format(d decimal.Decimal) string {
	return f.printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Int entero con separador de miles.
func (f *Formatter) Int(n int64) string {
	return f.printer.Sprintf("%d", n)
}
