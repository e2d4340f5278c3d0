package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type Producer struct {
	l               *slog.Logger
	w               *kafka.Writer
	submissionTopic string
}

func NewProducer(l *slog.Logger, brokers []string, submissionTopic string) *Producer {
	l = l.WithGroup("kafka").With("topic", submissionTopic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:               l,
		w:               w,
		submissionTopic: submissionTopic,
	}
}

type SubmissionEvent struct {
	RecordID uuid.UUID `json:"record_id"`
	Kind     string    `json:"kind"`
	Email    string    `json:"email"`
}

func (p *Producer) SendSubmission(ctx context.Context, recordID uuid.UUID, kind, email string) {
	event := SubmissionEvent{
		RecordID: recordID,
		Kind:     kind,
		Email:    email,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(recordID.String()),
		Value: b,
		Topic: p.submissionTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
