package commands

import (
	"fmt"
	"strings"

	"storefront/catalog"
	"storefront/client"
	"storefront/cmd/shop/output"

	"github.com/spf13/cobra"
)

var (
	searchText string
	categories []string
	minPrice   string
	maxPrice   string
	minRating  string
	sortKey    string
	page       int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products",
	Long: `List one page of the catalog.

Examples:
  shop products --search headphones
  shop products --category Electronics --category Accessories --sort price-asc
  shop products --min-price 50 --max-price 200 --min-rating 4.5 --page 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := catalog.Query{
			Filters: catalog.Filters{
				Search:     searchText,
				Categories: categories,
				PriceMin:   catalog.ParseDecimal(minPrice),
				PriceMax:   catalog.ParseDecimal(maxPrice),
				MinRating:  catalog.ParseDecimal(minRating),
			},
			Sort: catalog.ParseSortKey(sortKey),
			Page: page,
		}

		result, err := client.NewCatalog(newClient()).Query(cmd.Context(), q)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}

		if jsonOutput {
			return output.JSON(result)
		}

		if result.TotalItems == 0 {
			output.Warning("No products match your filters")
			return nil
		}

		output.Section(fmt.Sprintf("Products (page %d of %d)", result.Page, result.TotalPages))
		output.Products(result.Items)
		output.Muted("Showing %d-%d of %d products", result.Start, result.End, result.TotalItems)
		return nil
	},
}

var productCmd = &cobra.Command{
	Use:   "product <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		product, err := newClient().Product(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load product %s: %w", args[0], err)
		}

		if jsonOutput {
			return output.JSON(product)
		}
		output.Product(*product)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with product counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := newClient().Categories(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}

		if jsonOutput {
			return output.JSON(cats)
		}
		output.Categories(cats)
		return nil
	},
}

func sortKeyNames() string {
	names := make([]string, len(catalog.SortKeys))
	for i, k := range catalog.SortKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func init() {
	rootCmd.AddCommand(productsCmd, productCmd, categoriesCmd)

	productsCmd.Flags().StringVarP(&searchText, "search", "s", "", "Match title, description or category")
	productsCmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Only these categories (repeatable)")
	productsCmd.Flags().StringVar(&minPrice, "min-price", "", "Minimum price")
	productsCmd.Flags().StringVar(&maxPrice, "max-price", "", "Maximum price")
	productsCmd.Flags().StringVar(&minRating, "min-rating", "", "Minimum rating")
	productsCmd.Flags().StringVar(&sortKey, "sort", string(catalog.SortFeatured), "Sort order: "+sortKeyNames())
	productsCmd.Flags().IntVarP(&page, "page", "p", 1, "Page number")
}
