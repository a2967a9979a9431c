package gateway

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/agrimart/agrimart/internal/pkg/logger"
	"github.com/agrimart/agrimart/internal/pkg/models"
)

// snsProvider is the secondary SMS provider
type snsProvider struct {
	client  *sns.Client
	timeout time.Duration
}

// newSNSProvider returns nil when the AWS credentials are absent or the
// client cannot be initialized, which removes the provider from the chain.
func newSNSProvider(cfg models.AWSConfig, timeout time.Duration) *snsProvider {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)))
	if err != nil {
		logger.Warn("AWS SNS init failed", logger.Err(err))
		return nil
	}

	logger.Info("AWS SNS provider initialized", logger.String("region", cfg.Region))
	return &snsProvider{client: sns.NewFromConfig(awsCfg), timeout: timeout}
}

func (p *snsProvider) Name() string { return "aws-sns" }

func (p *snsProvider) Send(ctx context.Context, phone, message string) sendResult {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		logger.Warn("AWS SNS send failed",
			logger.String("to", phone),
			logger.Err(err))
		return sendFailed
	}

	logger.Info("AWS SNS SMS sent",
		logger.String("to", phone),
		logger.String("message_id", aws.ToString(out.MessageId)))
	return sendOK
}
