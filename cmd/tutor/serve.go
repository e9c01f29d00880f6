package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/semaphore"

	"github.com/joelmbaka/ai-python-tutor-app/api"
	"github.com/joelmbaka/ai-python-tutor-app/internal/analysis"
	"github.com/joelmbaka/ai-python-tutor-app/internal/environment"
	"github.com/joelmbaka/ai-python-tutor-app/internal/feedback"
	"github.com/joelmbaka/ai-python-tutor-app/internal/gatherer"
	"github.com/joelmbaka/ai-python-tutor-app/internal/gatherer/natsgath"
	"github.com/joelmbaka/ai-python-tutor-app/internal/gatherer/sqsgath"
	"github.com/joelmbaka/ai-python-tutor-app/internal/sandbox"
	"github.com/joelmbaka/ai-python-tutor-app/internal/tester"
)

func serveCmd(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "consume submissions from the configured transport",
		Action: func(ctx context.Context, _ *cli.Command) error {
			cfg, err := environment.ReadEnvConfig()
			if err != nil {
				return err
			}
			svc, runner, err := buildService(cfg, log)
			if err != nil {
				return err
			}
			defer runner.Shutdown()

			switch cfg.Transport {
			case environment.TransportNATS:
				return serveNats(ctx, cfg, svc, log)
			case environment.TransportSQS:
				return serveSqs(ctx, cfg, svc, log)
			}
			return fmt.Errorf("unknown transport %q", cfg.Transport)
		},
	}
}

// buildService assembles the evaluation pipeline from config. The
// returned runner must be shut down by the caller.
func buildService(cfg *environment.EnvConfig, log *slog.Logger) (*tester.Service, sandbox.Runner, error) {
	runner, err := sandbox.New(sandbox.Config{PythonBin: cfg.PythonBin, Logger: log})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up sandbox: %w", err)
	}

	pythonBin := cfg.PythonBin
	if pythonBin == "" {
		pythonBin, _ = sandbox.DetectPython()
	}

	svc := tester.NewService(
		tester.New(runner, log),
		analysis.New(pythonBin, log),
		feedback.New(cfg.OpenAIBaseUrl, cfg.OpenAIApiKey, cfg.OpenAIModel, log),
		log,
	)
	return svc, runner, nil
}

// handle processes one submission: execute, then analyze. One
// submission never takes down the worker.
func handle(ctx context.Context, svc *tester.Service, msg api.SubmissionMsg, gath gatherer.ResultGatherer) {
	resp := svc.Execute(ctx, msg.Exec, gath)
	svc.Analyze(ctx, msg.Analyze, resp, gath)
}

func serveNats(ctx context.Context, cfg *environment.EnvConfig, svc *tester.Service, log *slog.Logger) error {
	nc, err := nats.Connect(cfg.NatsURL, nats.Name("tutor-worker"))
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer nc.Drain()

	msgs := make(chan *nats.Msg, 64)
	sub, err := nc.ChanQueueSubscribe(cfg.NatsSubject, "tutor-workers", msgs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", cfg.NatsSubject, err)
	}
	defer sub.Unsubscribe()

	log.Info("listening for submissions",
		"transport", "nats",
		"subject", cfg.NatsSubject,
		"concurrency", cfg.Concurrency)

	sem := semaphore.NewWeighted(int64(cfg.Concurrency))
	for {
		select {
		case <-ctx.Done():
			log.Info("shutting down, waiting for in-flight evaluations")
			if err := sem.Acquire(context.Background(), int64(cfg.Concurrency)); err != nil {
				return err
			}
			return nil
		case m := <-msgs:
			var subm api.SubmissionMsg
			if err := json.Unmarshal(m.Data, &subm); err != nil {
				log.Error("failed to decode submission", "error", err)
				continue
			}
			replyTo := subm.ReplyTo
			if replyTo == "" {
				replyTo = m.Reply
			}
			if replyTo == "" {
				log.Error("submission has no reply subject", "eval_uuid", subm.Exec.EvalUuid)
				continue
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				continue
			}
			go func() {
				defer sem.Release(1)
				gath := natsgath.New(nc, subm.Exec.EvalUuid, replyTo, log)
				handle(ctx, svc, subm, gath)
			}()
		}
	}
}

func serveSqs(ctx context.Context, cfg *environment.EnvConfig, svc *tester.Service, log *slog.Logger) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AwsRegion))
	if err != nil {
		return fmt.Errorf("failed to load aws config: %w", err)
	}
	client := sqs.NewFromConfig(awsCfg)

	log.Info("listening for submissions",
		"transport", "sqs",
		"queue", cfg.SubmSqsUrl,
		"concurrency", cfg.Concurrency)

	sem := semaphore.NewWeighted(int64(cfg.Concurrency))
	for {
		if ctx.Err() != nil {
			log.Info("shutting down, waiting for in-flight evaluations")
			if err := sem.Acquire(context.Background(), int64(cfg.Concurrency)); err != nil {
				return err
			}
			return nil
		}

		out, err := client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(cfg.SubmSqsUrl),
			MaxNumberOfMessages: 1,
			WaitTimeSeconds:     5,
		})
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Error("failed to receive messages", "error", err)
			time.Sleep(time.Second)
			continue
		}

		for _, m := range out.Messages {
			var subm api.SubmissionMsg
			if err := json.Unmarshal([]byte(*m.Body), &subm); err != nil {
				log.Error("failed to decode submission", "error", err)
				continue
			}
			respQueue := subm.ReplyTo
			if respQueue == "" {
				respQueue = cfg.ResponseSqsUrl
			}
			gath, err := sqsgath.New(ctx, subm.Exec.EvalUuid, respQueue, cfg.AwsRegion, log)
			if err != nil {
				log.Error("failed to set up response gatherer", "error", err)
				continue
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				continue
			}
			receipt := m.ReceiptHandle
			go func() {
				defer sem.Release(1)
				handle(ctx, svc, subm, gath)
				_, err := client.DeleteMessage(context.Background(), &sqs.DeleteMessageInput{
					QueueUrl:      aws.String(cfg.SubmSqsUrl),
					ReceiptHandle: receipt,
				})
				if err != nil {
					log.Error("failed to delete message", "error", err)
				}
			}()
		}
	}
}
