package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
)

var commandCmd = &cobra.Command{
	Use:     "command <text>",
	Short:   "Run a natural-language command for a user",
	Example: `  fridgectl command --user alice "dodaj 2 mleka na górną półkę"`,
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

		invUC, vUC, err := newPipeline(ctx, repo)
		if err != nil {
			return err
		}

		sc := model.Scope{UserID: user}
		def, err := invUC.GetDefaultShelf(ctx, sc)
		if err != nil {
			return fmt.Errorf("default shelf: %w", err)
		}
		input := voice.CommandInput{Text: strings.Join(args, " ")}
		if def.Shelf != nil {
			input.DefaultShelfID = def.Shelf.Shelf.ID
		}

		out, err := vUC.ProcessCommand(ctx, sc, input)
		if err != nil {
			return err
		}
		renderCommandOutput(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	commandCmd.Flags().StringVarP(&userID, "user", "u", "", "User id the command acts for")
	rootCmd.AddCommand(commandCmd)
}
