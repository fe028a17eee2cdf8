package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"storefront/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Writer receives everything printed by this package.
var Writer io.Writer = os.Stdout

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	saleStyle    = lipgloss.NewStyle().Foreground(colorError)
)

func Success(format string, args ...any) {
	fmt.Fprint(Writer, successStyle.Render("✓ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Warning(format string, args ...any) {
	fmt.Fprint(Writer, warningStyle.Render("⚠ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Error(format string, args ...any) {
	fmt.Fprint(Writer, errorStyle.Render("✗ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Info(format string, args ...any) {
	fmt.Fprint(Writer, infoStyle.Render("ℹ "))
	fmt.Fprintf(Writer, format+"\n", args...)
}

func Muted(format string, args ...any) {
	fmt.Fprintln(Writer, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a header followed by a blank line.
func Section(title string) {
	fmt.Fprintln(Writer)
	fmt.Fprintln(Writer, primaryStyle.Render(title))
	fmt.Fprintln(Writer)
}

// JSON writes v indented.
func JSON(v any) error {
	enc := json.NewEncoder(Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func price(p models.Product) string {
	s := "$" + p.Price.StringFixed(2)
	if p.IsOnSale && p.OriginalPrice != nil {
		s = saleStyle.Render(s) + " " + mutedStyle.Render("$"+p.OriginalPrice.StringFixed(2))
	}
	return s
}

func Products(products []models.Product) {
	w := tabwriter.NewWriter(Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tRATING")
	for _, p := range products {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s (%d)\n",
			p.ID, p.Title, p.Category, price(p), p.Rating.StringFixed(1), p.ReviewCount)
	}
	_ = w.Flush()
}

func Product(p models.Product) {
	fmt.Fprintln(Writer, primaryStyle.Render(p.Title))
	if p.Badge != nil {
		fmt.Fprintln(Writer, warningStyle.Render(*p.Badge))
	}
	fmt.Fprintln(Writer, p.Description)
	fmt.Fprintln(Writer)
	w := tabwriter.NewWriter(Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID\t%s\n", p.ID)
	_, _ = fmt.Fprintf(w, "Category\t%s\n", p.Category)
	_, _ = fmt.Fprintf(w, "Price\t%s\n", price(p))
	_, _ = fmt.Fprintf(w, "Rating\t%s (%d reviews)\n", p.Rating.StringFixed(1), p.ReviewCount)
	_, _ = fmt.Fprintf(w, "Image\t%s\n", p.Image)
	_ = w.Flush()
}

func Categories(categories []models.Category) {
	w := tabwriter.NewWriter(Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tPRODUCTS")
	for _, c := range categories {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", c.Name, c.ProductCount)
	}
	_ = w.Flush()
}

func Cart(items []models.CartItemWithProduct) {
	w := tabwriter.NewWriter(Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PRODUCT\tTITLE\tQTY\tPRICE\tLINE TOTAL")
	for _, item := range items {
		line := item.Product.Price.Mul(decimalQty(item.Quantity))
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t$%s\t$%s\n",
			item.ProductID, item.Product.Title, item.Quantity,
			item.Product.Price.StringFixed(2), line.StringFixed(2))
	}
	_ = w.Flush()
}

func Summary(s models.CartSummary) {
	w := tabwriter.NewWriter(Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Items\t%s\n", strconv.Itoa(s.ItemCount))
	_, _ = fmt.Fprintf(w, "Subtotal\t$%s\n", s.Subtotal.StringFixed(2))
	_, _ = fmt.Fprintf(w, "Tax\t$%s\n", s.Tax.StringFixed(2))
	_, _ = fmt.Fprintf(w, "Shipping\t%s\n", shipping(s))
	_, _ = fmt.Fprintf(w, "Total\t$%s\n", s.Total.StringFixed(2))
	_ = w.Flush()
}

func shipping(s models.CartSummary) string {
	if s.Shipping.IsZero() {
		return "Free"
	}
	return "$" + s.Shipping.StringFixed(2)
}

func Favorites(favorites []models.FavoriteWithProduct) {
	products := make([]models.Product, 0, len(favorites))
	for _, fav := range favorites {
		products = append(products, fav.Product)
	}
	Products(products)
}

func decimalQty(q int) decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}
