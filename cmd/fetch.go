package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/EO-DataHub/eodhp-posts-filter/api/handlers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:       "fetch users|posts|author <user-id>",
	Short:     "Fetch users or posts from the REST API and print them as JSON",
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{"users", "posts", "author"},
	RunE: func(cmd *cobra.Command, args []string) error {

		// Load the config and set up logging
		commonSetUp()

		return runFetch(cmd.Context(), handlers.PostsFetcher(newPostsService(appCfg)), cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(ctx context.Context, svc handlers.PostsFetcher, out io.Writer, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		result any
		err    error
	)

	switch args[0] {
	case "users":
		result, err = svc.GetAllUsers(ctx)
	case "posts":
		result, err = svc.GetAllPosts(ctx)
	case "author":
		if len(args) != 2 {
			return fmt.Errorf("author requires a user id")
		}
		userID, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return fmt.Errorf("invalid user id %q: %w", args[1], convErr)
		}
		result, err = svc.GetPostsByAuthor(ctx, userID)
	default:
		return fmt.Errorf("unknown resource %q, expected users, posts or author", args[0])
	}

	if err != nil {
		log.Error().Err(err).Str("resource", args[0]).Msg("Failed to fetch")
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
