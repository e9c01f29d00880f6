package sqsgath

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/klauspost/compress/zstd"

	"github.com/joelmbaka/ai-python-tutor-app/api"
)

// maxMsgBytes is the SQS message size ceiling with headroom for the
// envelope fields.
const maxMsgBytes = 250 * 1024

// send marshals and sends one event. Send faults are logged and
// swallowed so a broken result stream never aborts an evaluation.
func (s *sqsGatherer) send(msg interface{}) {
	b, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("failed to marshal stream message", "error", err)
		return
	}

	_, err = s.client.SendMessage(context.TODO(), &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueUrl),
		MessageBody: aws.String(string(b)),
	})
	if err != nil {
		s.log.Error("failed to send stream message", "queue", s.queueUrl, "error", err)
	}
}

// sendFinishJob compresses the response when the plain encoding would
// exceed the queue's payload ceiling.
func (s *sqsGatherer) sendFinishJob(resp *api.ExecResponse) {
	msg := api.NewFinishJob(s.evalUuid, resp)

	plain, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("failed to marshal job response", "error", err)
		return
	}
	if len(plain) <= maxMsgBytes {
		s.send(msg)
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("failed to marshal job response", "error", err)
		return
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		s.log.Error("failed to create zstd writer", "error", err)
		return
	}
	compressed := enc.EncodeAll(body, nil)
	enc.Close()

	msg.Response = nil
	msg.Zstd = true
	msg.CompressedResponse = base64.StdEncoding.EncodeToString(compressed)
	s.log.Info("compressed oversized job response",
		"plain_bytes", len(plain),
		"compressed_bytes", len(msg.CompressedResponse))
	s.send(msg)
}
