package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

func newQuoteCmd(c *cli) *cobra.Command {
	var preferNew bool

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show a fresh quote from the configured providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			q := c.app.Quotes.NewQuote(ctx, preferNew)

			fmt.Fprintln(cmd.OutOrStdout(), renderCard(q, c.app.Store.Read(ctx, c.profile)))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&preferNew, "new", "n", false, "avoid quotes shown recently")

	return cmd
}

func newTodayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the quote of the day for the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			q := c.app.Quotes.QuoteOfTheDay(ctx, c.profile)

			fmt.Fprintln(cmd.OutOrStdout(), renderCard(q, c.app.Store.Read(ctx, c.profile)))

			return nil
		},
	}
}

func newFavoritesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite quotes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List favorite quotes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec := c.app.Store.Read(cmd.Context(), c.profile)
			out := cmd.OutOrStdout()

			if len(rec.Favorites) == 0 {
				fmt.Fprintln(out, "No favorites yet.")
				return nil
			}

			for _, q := range rec.Favorites {
				fmt.Fprintln(out, renderCard(q, rec))
			}

			return nil
		},
	}

	var author, id string

	add := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a quote to favorites, or today's quote when no text is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var q domain.Quote
			if len(args) == 0 {
				q = c.app.Quotes.QuoteOfTheDay(ctx, c.profile)
			} else {
				q = domain.Quote{ID: id, Content: args[0], Author: author}
				if q.ID == "" {
					q.ID = uuid.NewString()
				}
			}

			if !q.Valid() {
				return domain.NewValidationError("quote", "content and author are required")
			}

			favorites := c.app.Store.AddFavorite(ctx, c.profile, q)
			if !containsQuote(favorites, q.ID) {
				return errors.New("favorite was not saved; storage is unavailable or full")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d favorites)\n", q.ID, len(favorites))

			return nil
		},
	}

	add.Flags().StringVarP(&author, "author", "a", domain.UnknownAuthor, "author of the quote")
	add.Flags().StringVar(&id, "id", "", "identifier for the quote (generated when empty)")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a favorite by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !c.app.Store.IsFavorite(ctx, c.profile, args[0]) {
				return domain.NewNotFoundError("favorite", args[0])
			}

			favorites := c.app.Store.RemoveFavorite(ctx, c.profile, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%d favorites)\n", args[0], len(favorites))

			return nil
		},
	}

	cmd.AddCommand(list, add, remove)

	return cmd
}

func containsQuote(quotes []domain.Quote, id string) bool {
	for _, q := range quotes {
		if q.ID == id {
			return true
		}
	}

	return false
}

func newPrefsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change display and notification preferences",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderPreferences(c.app.Store.Read(cmd.Context(), c.profile)))
			return nil
		},
	}

	var (
		theme, fontSize, accent, clock string
		notifications                  bool
	)

	set := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch domain.PreferencesPatch

			flags := cmd.Flags()
			if flags.Changed("theme") {
				t := domain.Theme(theme)
				patch.Theme = &t
			}

			if flags.Changed("font-size") {
				f := domain.FontSize(fontSize)
				patch.FontSize = &f
			}

			if flags.Changed("accent") {
				patch.AccentColor = &accent
			}

			if flags.Changed("notifications") {
				patch.NotificationsEnabled = &notifications
			}

			if flags.Changed("time") {
				patch.NotificationTime = &clock
			}

			if patch == (domain.PreferencesPatch{}) {
				return errors.New("nothing to change; pass at least one flag")
			}

			if err := patch.Validate(); err != nil {
				return err
			}

			rec := c.app.Store.Write(cmd.Context(), c.profile, patch)
			fmt.Fprint(cmd.OutOrStdout(), renderPreferences(rec))

			return nil
		},
	}

	set.Flags().StringVar(&theme, "theme", "", "light or dark")
	set.Flags().StringVar(&fontSize, "font-size", "", "small, medium or large")
	set.Flags().StringVar(&accent, "accent", "", "accent colour as #RGB or #RRGGBB")
	set.Flags().BoolVar(&notifications, "notifications", false, "enable the daily reminder")
	set.Flags().StringVar(&clock, "time", "", "daily reminder time as HH:mm")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset preferences and favorites to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.app.Store.Clear(cmd.Context(), c.profile)
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared preferences for %s\n", c.profile)

			return nil
		},
	}

	cmd.AddCommand(show, set, clearCmd)

	return cmd
}

func newCategoriesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [id]",
		Short: "List catalog categories, or show a random quote from one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				q, err := c.app.Catalog.RandomCategoryQuote(args[0])
				if err != nil {
					return err
				}

				fmt.Fprintln(out, renderCard(q, c.app.Store.Read(cmd.Context(), c.profile)))

				return nil
			}

			for _, category := range c.app.Catalog.Categories() {
				quotes, err := c.app.Catalog.CategoryQuotes(category.ID)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, renderCategory(category, len(quotes)))
			}

			return nil
		},
	}
}

func newProvidersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "Fetch once from every provider and report the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses := c.app.Aggregator.Probe(cmd.Context())
			out := cmd.OutOrStdout()

			if len(statuses) == 0 {
				fmt.Fprintln(out, "No providers enabled.")
				return nil
			}

			for _, s := range statuses {
				fmt.Fprintln(out, renderProviderStatus(s))
			}

			return nil
		},
	}
}
