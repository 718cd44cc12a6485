package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hopebridge/contentsync/internal/content"
	"github.com/hopebridge/contentsync/internal/httpclient"
	"github.com/hopebridge/contentsync/internal/remote"
)

func newContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Submit a contact form message to the content server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			endpoint, _ := flags.GetString("endpoint")
			timeout, _ := flags.GetDuration("timeout")

			submission := content.ContactSubmission{SubmittedAt: time.Now().UTC()}
			submission.Name, _ = flags.GetString("name")
			submission.Email, _ = flags.GetString("email")
			submission.Subject, _ = flags.GetString("subject")
			submission.Message, _ = flags.GetString("message")

			source, err := remote.NewHTTPSource(httpclient.NewDefaultClient(timeout), endpoint,
				remote.WithLogger(zap.S().Named("remote")))
			if err != nil {
				return err
			}

			id, err := source.SubmitContact(cmd.Context(), submission)
			if err != nil {
				return fmt.Errorf("failed to submit contact message: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}

	cmd.Flags().String("endpoint", "", "Content server endpoint")
	cmd.Flags().String("name", "", "Sender name")
	cmd.Flags().String("email", "", "Sender email")
	cmd.Flags().String("subject", "", "Message subject")
	cmd.Flags().String("message", "", "Message body")
	cmd.Flags().Duration("timeout", 30*time.Second, "Request timeout")
	for _, name := range []string{"endpoint", "name", "email", "message"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
