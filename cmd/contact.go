package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spigell/interview-simulator/internal/contact"
	"github.com/spigell/interview-simulator/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message to the interview-simulator authors",
	Run: func(cmd *cobra.Command, _ []string) {
		sendContact(cmd)
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)

	contactCmd.Flags().String("name", "", "your name")
	contactCmd.Flags().String("email", "", "your email")
	contactCmd.Flags().String("subject", "", "one of: "+strings.Join(contact.Subjects, ", "))
	contactCmd.Flags().String("message", "", "your message")
}

func sendContact(cmd *cobra.Command) {
	logger, config := setup()

	accessKey, err := secrets.Load(secrets.Source{
		Name:  "web3forms access key",
		Value: config.Contact.AccessKey,
		File:  config.Contact.AccessKeyFile,
	})
	if err != nil {
		logger.Fatal("loading contact access key", zap.Error(err),
			zap.String("hint", "set WEB3FORMS_ACCESS_KEY or contact.access-key-file"),
		)
	}

	msg, err := readMessage(cmd)
	if err != nil {
		logger.Fatal("reading the message", zap.Error(err))
	}

	client := contact.New(accessKey, logger)
	client.Endpoint = config.Contact.Endpoint
	client.HTTPClient.Timeout = config.Contact.Timeout

	err = client.Submit(context.Background(), msg)

	var (
		netErr      *contact.NetworkError
		rejectedErr *contact.RejectedError
		responseErr *contact.ResponseError
	)
	switch {
	case err == nil:
		fmt.Fprintln(cmd.OutOrStdout(), "Thank you for your message! We'll get back to you soon.")
	case errors.As(err, &netErr):
		logger.Fatal("network error occurred", zap.Error(netErr.Err))
	case errors.As(err, &rejectedErr):
		logger.Fatal("failed to send message", zap.String("reason", rejectedErr.Message))
	case errors.As(err, &responseErr):
		logger.Fatal("unexpected response, please try again",
			zap.Int("status", responseErr.StatusCode),
			zap.String("body", responseErr.Body),
		)
	default:
		logger.Fatal("an unexpected error occurred", zap.Error(err))
	}
}

// readMessage takes each field from its flag, prompting for the ones left empty.
func readMessage(cmd *cobra.Command) (contact.Message, error) {
	var msg contact.Message
	var err error

	required := func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New("this field is required")
		}
		return nil
	}

	fields := []struct {
		flag  string
		label string
		dest  *string
	}{
		{flag: "name", label: "Your Name", dest: &msg.Name},
		{flag: "email", label: "Your Email", dest: &msg.Email},
	}

	for _, f := range fields {
		if *f.dest, err = flagOrPrompt(cmd, f.flag, f.label, required); err != nil {
			return msg, err
		}
	}

	msg.Subject, _ = cmd.Flags().GetString("subject")
	if msg.Subject == "" {
		subjectPrompt := promptui.Select{
			Label: "Subject",
			Items: contact.Subjects,
		}
		if _, msg.Subject, err = subjectPrompt.Run(); err != nil {
			return msg, err
		}
	}

	if msg.Message, err = flagOrPrompt(cmd, "message", "Your Message", required); err != nil {
		return msg, err
	}

	return msg, nil
}

func flagOrPrompt(cmd *cobra.Command, flag, label string, validate promptui.ValidateFunc) (string, error) {
	value, _ := cmd.Flags().GetString(flag)
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}

	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}

	value, err := prompt.Run()
	return strings.TrimSpace(value), err
}
