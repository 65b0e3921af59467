// Command contact sends one message through the site's contact form flow,
// straight to the backend's /api/contact endpoint.
//
//	contact --name "Ada" --email ada@example.com --subject "Hello there" --message "..."
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/form"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/relay"
	"portfolio-backend/pkg/validation"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var name, email, subject, message string

	cmd := &cobra.Command{
		Use:           "contact",
		Short:         "Send a message through the contact form",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := form.New(validation.New(), relay.New(cfg.ContactEndpoint(), relay.WithTimeout(cfg.RelayTimeout)))
			values := map[form.Field]string{
				form.FieldName:    name,
				form.FieldEmail:   email,
				form.FieldSubject: subject,
				form.FieldMessage: message,
			}
			for field, value := range values {
				if err := f.Set(field, value); err != nil {
					return err
				}
			}
			return send(cmd.Context(), f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&email, "email", "", "reply-to address")
	cmd.Flags().StringVar(&subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&message, "message", "", "message body")
	return cmd
}

// send submits the form once and prints what the contact section would show
func send(ctx context.Context, f *form.Form, out io.Writer) error {
	status, err := f.Submit(ctx)
	view := f.View()

	for _, v := range view.Violations {
		fmt.Fprintf(out, "%s: %s\n", v.Field, v.Reason)
	}

	switch status {
	case domain.StatusSuccess:
		fmt.Fprintln(out, view.Title)
		fmt.Fprintln(out, view.Message)
	case domain.StatusError:
		fmt.Fprintln(out, view.Banner)
	}
	return err
}
