package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// ISender sends composed emails. Implementations are safe for concurrent use.
type ISender interface {
	Send(ctx context.Context, e Email) error
}

// SESConfig holds the SES sender configuration.
type SESConfig struct {
	Region string
	Sender string
}

type sesSender struct {
	client *ses.Client
	sender string
}

// NewSESSender creates an ISender backed by AWS SES.
func NewSESSender(ctx context.Context, cfg SESConfig) (ISender, error) {
	if cfg.Sender == "" {
		return nil, fmt.Errorf("email: sender address is required")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("email: load AWS config: %w", err)
	}

	return &sesSender{
		client: ses.NewFromConfig(awsCfg),
		sender: cfg.Sender,
	}, nil
}

func (s *sesSender) Send(ctx context.Context, e Email) error {
	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{e.Recipient},
			CcAddresses: e.CC,
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(e.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(e.Body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("email: send via SES: %w", err)
	}
	return nil
}
