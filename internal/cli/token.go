package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fridge-inventory/config"
	"fridge-inventory/internal/model"
	"fridge-inventory/pkg/scope"
)

var tokenUsername string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for local testing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := requireUser(cmd)
		if err != nil {
			return err
		}

		token, err := issueToken(cfg.JWT, model.Scope{UserID: user, Username: tokenUsername})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&userID, "user", "u", "", "User id to put in the token subject")
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "Optional display name")
	rootCmd.AddCommand(tokenCmd)
}

func issueToken(jwtCfg config.JWTConfig, sc model.Scope) (string, error) {
	token, err := scope.New(jwtCfg.SecretKey, jwtCfg.Issuer, jwtCfg.TTL).CreateToken(sc)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
