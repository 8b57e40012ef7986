package reporters

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("q-123")}, nil
}

func TestSQSReporterSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	reporter := &sqsReporter{
		id:       "queue-1",
		typ:      TypeSQS,
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := reporter.Report(context.Background(), Report{
		MessageID:  "msg-1",
		Recipients: []string{"+2348012345678"},
		Status:     "pending",
	})
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["message_id"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != "msg-1" {
		t.Fatalf("message_id attribute missing or wrong: %#v", attr)
	}
	if attr.DataType == nil || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("DataType should be String, got %#v", attr.DataType)
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"message_id":"msg-1"`) {
		t.Fatalf("MessageBody missing message_id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSReporterError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("queue unavailable")}
	reporter := &sqsReporter{
		id:       "queue-1",
		typ:      TypeSQS,
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := reporter.Report(context.Background(), Report{MessageID: "msg-1"})
	if err == nil {
		t.Fatalf("expected error from SQS client")
	}
	if !strings.Contains(err.Error(), "queue unavailable") {
		t.Fatalf("error = %v", err)
	}
}
