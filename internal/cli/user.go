package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

// ShowUser prints a user. userID 0 means the logged-in user.
func (cli *TinycardsCLI) ShowUser(ctx context.Context, userID int64) error {
	user, err := cli.api.GetUserInfo(ctx, userID)
	if err != nil {
		return fmt.Errorf("api.GetUserInfo > %w", err)
	}

	if _, err := cli.bold.Fprintf(cli.stdoutWriter, "%s (%s)\n", user.Username, user.Fullname); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	w := tabwriter.NewWriter(cli.stdoutWriter, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"ID", strconv.FormatInt(user.ID, 10)},
		{"Email", user.Email},
		{"Learning language", user.LearningLanguage},
		{"UI language", user.UILanguage},
		{"Subscribers", strconv.Itoa(user.SubscriberCount)},
		{"Subscriptions", strconv.Itoa(user.SubscriptionCount)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s:\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return w.Flush()
}

func (cli *TinycardsCLI) Subscribe(ctx context.Context, userID int64) error {
	subscribed, err := cli.api.Subscribe(ctx, userID)
	if err != nil {
		return fmt.Errorf("api.Subscribe > %w", err)
	}
	return cli.printSuccess("Subscribed to the user %d", subscribed)
}

func (cli *TinycardsCLI) Unsubscribe(ctx context.Context, userID int64) error {
	unsubscribed, err := cli.api.Unsubscribe(ctx, userID)
	if err != nil {
		return fmt.Errorf("api.Unsubscribe > %w", err)
	}
	return cli.printSuccess("Unsubscribed from the user %d", unsubscribed)
}

func (cli *TinycardsCLI) ShowTrends(ctx context.Context, query tinycards.TrendsQuery) error {
	trendables, err := cli.api.GetTrends(ctx, query)
	if err != nil {
		return fmt.Errorf("api.GetTrends > %w", err)
	}
	if len(trendables) == 0 {
		return cli.printFailure("No trends")
	}

	w := tabwriter.NewWriter(cli.stdoutWriter, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "TYPE\tID\tNAME\tCARDS\tFAVORITES"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	for _, trendable := range trendables {
		name := trendable.Data.Name
		if name == "" {
			name = trendable.Data.Username
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			trendable.Type, trendable.ID, name, trendable.Data.CardCount, trendable.Data.FavoriteCount); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return w.Flush()
}

func (cli *TinycardsCLI) Search(ctx context.Context, query tinycards.SearchQuery) error {
	results, err := cli.api.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("api.Search > %w", err)
	}
	if len(results) == 0 {
		return cli.printFailure("No results for %q", query.Query)
	}

	w := tabwriter.NewWriter(cli.stdoutWriter, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "TYPE\tID\tNAME\tFRESHNESS"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	for _, result := range results {
		freshness := "-"
		if result.Data.AverageFreshness != nil {
			freshness = strconv.FormatFloat(*result.Data.AverageFreshness, 'f', 2, 64)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", result.Type, result.ID, result.Data.Name, freshness); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return w.Flush()
}
