package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"resume-assist/internal/shared/telemetry"
)

const (
	defaultRegion   = "us-east-1"
	waitTimeSeconds = 5
)

// SQSReceiver drains job batches from an AWS SQS queue.
type SQSReceiver struct {
	client   *sqs.Client
	queueURL string
}

// NewSQSReceiver constructs an SQS-backed receiver.
func NewSQSReceiver(ctx context.Context, region, queueURL string) (*SQSReceiver, error) {
	queueURL = strings.TrimSpace(queueURL)
	if queueURL == "" {
		return nil, fmt.Errorf("sqs queue url is required")
	}
	region = strings.TrimSpace(region)
	if region == "" {
		region = defaultRegion
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SQSReceiver{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// Receive performs one long poll and returns the decoded batches.
// Messages are deleted once read; a batch that fails to decode is
// logged, deleted, and skipped.
func (r *SQSReceiver) Receive(ctx context.Context, maxMessages int32) ([]Batch, error) {
	if maxMessages <= 0 || maxMessages > 10 {
		maxMessages = 10
	}

	out, err := r.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(r.queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	})
	if err != nil {
		return nil, fmt.Errorf("sqs receive message: %w", err)
	}

	batches := make([]Batch, 0, len(out.Messages))
	for _, msg := range out.Messages {
		if msg.Body != nil {
			batch, err := DecodeBatch([]byte(*msg.Body))
			if err != nil {
				telemetry.Warn("queue.batch.undecodable", map[string]any{
					"err": err.Error(),
				})
			} else {
				batches = append(batches, batch)
			}
		}

		if msg.ReceiptHandle == nil {
			continue
		}
		if _, err := r.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(r.queueURL),
			ReceiptHandle: msg.ReceiptHandle,
		}); err != nil {
			telemetry.Warn("queue.message.delete_failed", map[string]any{
				"err": err.Error(),
			})
		}
	}
	return batches, nil
}

var _ Receiver = (*SQSReceiver)(nil)
