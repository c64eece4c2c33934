// ABOUTME: CLI command for creating a user account.
// ABOUTME: The username must be unique; the password is stored as a bcrypt hash.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/service"
	"github.com/spf13/cobra"
)

var (
	registerAge    int
	registerGender string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new user account",
	Long: `Create a new user account.

The username comes from --user (or FITNESS_USER) and the password from
FITNESS_PASSWORD or a prompt.

EXAMPLES:

  fitness register --user alice --age 30 --gender female
  FITNESS_PASSWORD=secret fitness register -u bob --age 41 --gender male`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := resolveUser()
		if err != nil {
			return err
		}
		gender, ok := models.ParseGender(registerGender)
		if !ok {
			return fmt.Errorf("unknown gender %q (use %s)", registerGender, strings.Join(genderNames(), ", "))
		}
		password, err := resolvePassword(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		u, err := svc.Register(cmd.Context(), service.Registration{
			Username: username,
			Password: password,
			Age:      registerAge,
			Gender:   gender,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Registered %s\n", u.Username)
		fmt.Fprintf(out, "  %s\n", color.New(color.Faint).Sprintf("ID: %d", u.ID))
		return nil
	},
}

func genderNames() []string {
	names := make([]string, len(models.AllGenders))
	for i, g := range models.AllGenders {
		names[i] = strings.ToLower(string(g))
	}
	return names
}

func init() {
	registerCmd.Flags().IntVar(&registerAge, "age", 0, "age in years (1-150)")
	registerCmd.Flags().StringVar(&registerGender, "gender", "", "male, female or other")
	_ = registerCmd.MarkFlagRequired("age")
	_ = registerCmd.MarkFlagRequired("gender")
	rootCmd.AddCommand(registerCmd)
}
