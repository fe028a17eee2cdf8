package commands

import (
	"fmt"
	"strconv"

	"storefront/client"
	"storefront/cmd/shop/output"

	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and change the cart",
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cart items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := newClient().Cart(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}

		if jsonOutput {
			return output.JSON(items)
		}
		if len(items) == 0 {
			output.Info("Your cart is empty")
			return nil
		}
		output.Cart(items)
		return nil
	},
}

var cartSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show cart totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := newClient().CartSummary(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load cart summary: %w", err)
		}

		if jsonOutput {
			return output.JSON(summary)
		}
		output.Summary(*summary)
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id> [quantity]",
	Short: "Add a product to the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity := 1
		if len(args) == 2 {
			q, err := parseQuantity(args[1])
			if err != nil {
				return err
			}
			quantity = q
		}

		ctx := cmd.Context()
		c := newClient()
		product, err := c.Product(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load product %s: %w", args[0], err)
		}

		cart, err := loadCart(cmd, c)
		if err != nil {
			return err
		}
		mut, err := cart.Add(ctx, *product, quantity)
		return reportCart(cart, mut, err, fmt.Sprintf("Added %d x %s to cart", quantity, product.Title))
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set the quantity of a cart item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := parseQuantity(args[1])
		if err != nil {
			return err
		}

		cart, err := loadCart(cmd, newClient())
		if err != nil {
			return err
		}
		mut, err := cart.UpdateQuantity(cmd.Context(), args[0], quantity)
		return reportCart(cart, mut, err, fmt.Sprintf("Set quantity of %s to %d", args[0], quantity))
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := loadCart(cmd, newClient())
		if err != nil {
			return err
		}
		mut, err := cart.Remove(cmd.Context(), args[0])
		return reportCart(cart, mut, err, fmt.Sprintf("Removed %s from cart", args[0]))
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		cart, err := loadCart(cmd, newClient())
		if err != nil {
			return err
		}
		mut, err := cart.Clear(cmd.Context())
		return reportCart(cart, mut, err, "Cart cleared")
	},
}

func parseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(s)
	if err != nil || q < 1 {
		return 0, fmt.Errorf("quantity must be a positive integer, got %q", s)
	}
	return q, nil
}

func loadCart(cmd *cobra.Command, c *client.Client) (*client.CartMirror, error) {
	cart := client.NewCartMirror(c)
	if err := cart.Refresh(cmd.Context()); err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

func reportCart(cart *client.CartMirror, mut client.Mutation, err error, done string) error {
	if err != nil {
		output.Error("%s %s: %s", mut.Kind, mut.State, err)
		return err
	}

	if jsonOutput {
		return output.JSON(cart.Summary())
	}
	output.Success("%s", done)
	if mut.Err != nil {
		output.Warning("Cart could not be refreshed: %s", mut.Err)
	}
	output.Summary(cart.Summary())
	return nil
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartListCmd, cartSummaryCmd, cartAddCmd, cartSetCmd, cartRemoveCmd, cartClearCmd)
}
