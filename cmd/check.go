package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mheijink/brief/mail"
)

var checkCmd = &cobra.Command{
	Use:   "check [address or mailbox ...]",
	Short: "Validate addresses and mailboxes against the brief grammar",
	Long: `Check parses each argument as a mailbox ("Name <user@domain>" or
"<user@domain>"), falling back to a bare address ("user@domain") when no
angle brackets are present. The exit code is non-zero if any input is
invalid.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, arg := range args {
			if parsed, err := checkInput(arg); err != nil {
				failed++
				fmt.Printf("invalid: %q: %v\n", arg, err)
			} else {
				fmt.Printf("ok: %s\n", parsed)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d inputs invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkInput parses s as a mailbox, then as a bare address when no angle
// brackets occur at all. It returns the canonical rendering.
func checkInput(s string) (string, error) {
	mb, err := mail.ParseMailbox(s)
	if err == nil {
		return mb.String(), nil
	}

	if errors.Is(err, mail.ErrMissingAngleBrackets) {
		addr, aerr := mail.ParseAddress(s)
		if aerr == nil {
			return addr.String(), nil
		}
		return "", aerr
	}

	return "", err
}
