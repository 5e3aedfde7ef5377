package aws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/regime-co/regime-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	value *string
	err   error
}

func (f fakeSecrets) GetSecretValue(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		arn      string
		fallback string
		svc      fakeSecrets
		want     string
		wantErr  bool
	}{
		{name: "plain secret", arn: "arn:secret", svc: fakeSecrets{value: aws.String("sk_test_123")}, want: "sk_test_123"},
		{name: "single key json", arn: "arn:secret", svc: fakeSecrets{value: aws.String(`{"RESEND_API_KEY":"re_123"}`)}, want: "re_123"},
		{name: "multi key json stays raw", arn: "arn:secret", svc: fakeSecrets{value: aws.String(`{"a":"1","b":"2"}`)}, want: `{"a":"1","b":"2"}`},
		{name: "fetch error falls back", arn: "arn:secret", fallback: "from-env", svc: fakeSecrets{err: errors.New("denied")}, want: "from-env"},
		{name: "no arn uses env", fallback: "from-env", want: "from-env"},
		{name: "nothing configured", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECRET_ARN", tt.arn)
			t.Setenv("TEST_SECRET", tt.fallback)
			client := &SecretsManagerClient{svc: tt.svc}

			got, err := client.GetSecretString(ctx, "TEST_SECRET_ARN", "TEST_SECRET")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeQueue struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeQueue) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	return &sqs.SendMessageOutput{}, f.err
}

func TestSQSPublisher_Publish(t *testing.T) {
	queue := &fakeQueue{}
	publisher := &SQSPublisher{svc: queue, queueURL: "https://sqs.example/notifications"}

	msg := business.NotificationMessage{
		ID:             "n-1",
		Template:       business.TemplateOrderShipped,
		RecipientEmail: "ayesha@example.com",
		Data:           map[string]any{"order_number": "RG-20261019-AB12"},
	}
	require.NoError(t, publisher.Publish(context.Background(), msg))

	assert.Equal(t, "https://sqs.example/notifications", aws.ToString(queue.input.QueueUrl))
	var decoded business.NotificationMessage
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(queue.input.MessageBody)), &decoded))
	assert.Equal(t, msg.ID, decoded.ID)
	assert.Equal(t, "RG-20261019-AB12", decoded.Data["order_number"])
	assert.Equal(t, "order_shipped", aws.ToString(queue.input.MessageAttributes["template"].StringValue))

	queue.err = errors.New("throttled")
	assert.ErrorContains(t, publisher.Publish(context.Background(), msg), "throttled")
}
