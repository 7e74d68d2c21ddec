package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/diedev/firex-web/internal/application/dto"
	"github.com/diedev/firex-web/internal/application/validation"
	"github.com/diedev/firex-web/internal/domain/entity"
)

// Los precios se muestran en pesos sin decimales con separador de miles "." (150000 -> $150.000).
var pricePrinter = message.NewPrinter(language.Spanish)

// FormatCOP formatea un precio en pesos colombianos.
func FormatCOP(d decimal.Decimal) string {
	n := d.Round(0).IntPart()
	if n < 0 {
		return "-" + pricePrinter.Sprintf("$%d", -n)
	}
	return pricePrinter.Sprintf("$%d", n)
}

// foldAccents minúsculas y sin tildes: "Extintor Químico" -> "extintor quimico". La ñ se conserva.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningExceptTilde)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// isCombiningExceptTilde marcas diacríticas salvo la virgulilla (ñ).
func isCombiningExceptTilde(r rune) bool {
	return unicode.Is(unicode.Mn, r) && r != '\u0303'
}

// containsFold búsqueda por subcadena sin distinguir mayúsculas ni tildes.
func containsFold(haystack, needle string) bool {
	return strings.Contains(foldAccents(haystack), foldAccents(needle))
}

// ── Vistas ──

func productCard(p entity.Product) dto.ProductCard {
	card := dto.ProductCard{
		Product:      p,
		PriceLabel:   FormatCOP(p.Price),
		StockLevel:   p.StockLevel(),
		CanAddToCart: p.Purchasable(),
	}
	switch card.StockLevel {
	case entity.StockOut:
		card.StockBadge = "Agotado"
	case entity.StockLow:
		card.StockBadge = fmt.Sprintf("Últimas %d unidades", p.Stock)
	}
	return card
}

func productCards(ps []entity.Product) []dto.ProductCard {
	out := make([]dto.ProductCard, 0, len(ps))
	for _, p := range ps {
		out = append(out, productCard(p))
	}
	return out
}

func requestView(sr entity.ServiceRequest) dto.ServiceRequestView {
	return dto.ServiceRequestView{
		ServiceRequest: sr,
		StatusLabel:    sr.Status.Label(),
		TelefonoLabel:  validation.FormatPhone(sr.Telefono),
	}
}

func requestViews(srs []entity.ServiceRequest) []dto.ServiceRequestView {
	out := make([]dto.ServiceRequestView, 0, len(srs))
	for _, sr := range srs {
		out = append(out, requestView(sr))
	}
	return out
}

func cartView(c *entity.Cart, msg string) *dto.CartView {
	v := &dto.CartView{Cart: c, Empty: c.IsEmpty(), Message: msg}
	if c != nil {
		v.TotalPriceLabel = FormatCOP(c.TotalPrice)
	} else {
		v.TotalPriceLabel = FormatCOP(decimal.Zero)
	}
	return v
}
