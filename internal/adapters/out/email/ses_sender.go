// Package email contains NotificationSender implementations. SESSender
// delivers over Amazon SES v2; LogSender writes to the log for local
// development where no SES identity is configured.
package email

import (
	"context"

	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

var _ ports.NotificationSender = (*SESSender)(nil)

// SESSender sends notifications as plain-text email through Amazon SES v2.
type SESSender struct {
	client    *sesv2.Client
	fromEmail string
}

// NewSESSender creates a sender for Amazon SES. Credentials are loaded from
// the environment.
func NewSESSender(ctx context.Context, region, fromEmail string) (*SESSender, error) {
	if region == "" {
		return nil, errs.NewValueIsRequiredError("region")
	}
	if fromEmail == "" {
		return nil, errs.NewValueIsRequiredError("fromEmail")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &SESSender{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
	}, nil
}

// Send delivers one notification to the recipient's email address.
func (s *SESSender) Send(ctx context.Context, recipient, title, message string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(title),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(message),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	_, err := s.client.SendEmail(ctx, input)
	return err
}
