package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
)

var queryContainerIDs []string

var queryCmd = &cobra.Command{
	Use:     "query <term>",
	Short:   "Look up how much of an item a user has and where",
	Example: `  fridgectl query --user alice mleko`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		db, repo, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		_, vUC, err := newPipeline(ctx, repo)
		if err != nil {
			return err
		}

		out, err := vUC.ProcessQuery(ctx, model.Scope{UserID: user}, voice.QueryInput{
			Term:         strings.Join(args, " "),
			ContainerIDs: queryContainerIDs,
		})
		if err != nil {
			return err
		}
		renderQueryOutput(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVarP(&userID, "user", "u", "", "User id whose inventory is searched")
	queryCmd.Flags().StringSliceVar(&queryContainerIDs, "container", nil, "Restrict the search to these container ids")
	rootCmd.AddCommand(queryCmd)
}
