package commands

import (
	"fmt"

	"storefront/client"
	"storefront/cmd/shop/output"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Show and change favorites",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite products",
	RunE: func(cmd *cobra.Command, args []string) error {
		favorites, err := newClient().Favorites(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load favorites: %w", err)
		}

		if jsonOutput {
			return output.JSON(favorites)
		}
		if len(favorites) == 0 {
			output.Info("No favorites yet")
			return nil
		}
		output.Favorites(favorites)
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeFavorite(cmd, args[0], func(fm *client.FavoritesMirror, c *client.Client) (client.Mutation, error) {
			product, err := c.Product(cmd.Context(), args[0])
			if err != nil {
				return client.Mutation{Kind: client.MutationAddFavorite, ProductID: args[0]}, err
			}
			return fm.Add(cmd.Context(), *product)
		})
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeFavorite(cmd, args[0], func(fm *client.FavoritesMirror, c *client.Client) (client.Mutation, error) {
			return fm.Remove(cmd.Context(), args[0])
		})
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <product-id>",
	Short: "Add or remove a product from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeFavorite(cmd, args[0], func(fm *client.FavoritesMirror, c *client.Client) (client.Mutation, error) {
			product, err := c.Product(cmd.Context(), args[0])
			if err != nil {
				return client.Mutation{Kind: client.MutationAddFavorite, ProductID: args[0]}, err
			}
			return fm.Toggle(cmd.Context(), *product)
		})
	},
}

func changeFavorite(cmd *cobra.Command, productID string, change func(*client.FavoritesMirror, *client.Client) (client.Mutation, error)) error {
	c := newClient()
	fm := client.NewFavoritesMirror(c)
	if err := fm.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	mut, err := change(fm, c)
	if err != nil {
		output.Error("%s %s: %s", mut.Kind, productID, err)
		return err
	}

	if jsonOutput {
		return output.JSON(fm.Items())
	}
	if mut.Kind == client.MutationRemoveFavorite {
		output.Success("Removed %s from favorites", productID)
	} else {
		output.Success("Added %s to favorites", productID)
	}
	output.Muted("%d favorites", len(fm.Items()))
	return nil
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd, favoritesToggleCmd)
}
