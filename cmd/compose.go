package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mheijink/brief/compose"
	"github.com/mheijink/brief/mail"
)

var (
	composeFrom    string
	composeTo      string
	composeSubject string
	composeBody    string
	composeOutput  string
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Build and render a message from validated addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := mail.ParseAddress(composeFrom)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		to, err := mail.ParseAddress(composeTo)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}

		builder := mail.NewMessageBuilder()
		if err := builder.SetFrom(from); err != nil {
			return err
		}
		if err := builder.SetTo(to); err != nil {
			return err
		}
		msg, err := builder.Build()
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if composeOutput != "" {
			file, err := os.Create(composeOutput)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer file.Close()
			out = file
		}

		opts := compose.Options{
			Subject: composeSubject,
			Body:    composeBody,
		}
		if err := compose.Write(out, msg, opts); err != nil {
			return fmt.Errorf("render message: %w", err)
		}
		return nil
	},
}

func init() {
	composeCmd.Flags().StringVar(&composeFrom, "from", "", "Sender address (user@domain)")
	composeCmd.Flags().StringVar(&composeTo, "to", "", "Recipient address (user@domain)")
	composeCmd.Flags().StringVarP(&composeSubject, "subject", "s", "", "Subject line")
	composeCmd.Flags().StringVarP(&composeBody, "body", "b", "", "Message body text")
	composeCmd.Flags().StringVarP(&composeOutput, "output", "o", "", "Write the message to a file instead of stdout")

	_ = composeCmd.MarkFlagRequired("from")
	_ = composeCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(composeCmd)
}
