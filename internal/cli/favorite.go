package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (cli *TinycardsCLI) ListFavorites(ctx context.Context) error {
	favorites, err := cli.api.GetFavorites(ctx, 0)
	if err != nil {
		return fmt.Errorf("api.GetFavorites > %w", err)
	}
	if len(favorites) == 0 {
		return cli.printFailure("No favorites")
	}

	w := tabwriter.NewWriter(cli.stdoutWriter, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "FAVORITE ID\tDECK ID\tTITLE"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	for _, favorite := range favorites {
		deckID, title := "", ""
		if favorite.Deck != nil {
			deckID, title = favorite.Deck.ID, favorite.Deck.Title
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", favorite.ID, deckID, title); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return w.Flush()
}

// AddFavorite saves the deck with a title of the logged-in user as a favorite.
func (cli *TinycardsCLI) AddFavorite(ctx context.Context, title string) error {
	deck, err := cli.api.FindDeckByTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("api.FindDeckByTitle > %w", err)
	}
	favorite, err := cli.api.AddFavorite(ctx, deck.ID)
	if err != nil {
		return fmt.Errorf("api.AddFavorite > %w", err)
	}
	return cli.printSuccess("Added the deck %q as the favorite %s", deck.Title, favorite.ID)
}

func (cli *TinycardsCLI) RemoveFavorite(ctx context.Context, favoriteID string) error {
	removed, err := cli.api.RemoveFavorite(ctx, favoriteID)
	if err != nil {
		return fmt.Errorf("api.RemoveFavorite > %w", err)
	}
	return cli.printSuccess("Removed the favorite %s", removed)
}
