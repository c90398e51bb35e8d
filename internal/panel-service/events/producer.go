package events

import (
	"Panel_Sync_Service/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// ActivityProducer publishes a server lifecycle transition to the activity
// topic, keyed by the local server id so per-server ordering is preserved.
type ActivityProducer interface {
	PublishStatusChange(ctx context.Context, panelServerID int64, action string, status string) error
}

type activityProducer struct {
	writer infra.KafkaWriter
}

type activityEvent struct {
	PanelServerID int64     `json:"panel_server_id"`
	Action        string    `json:"action"`
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
}

func (p *activityProducer) PublishStatusChange(ctx context.Context, panelServerID int64, action string, status string) error {
	b, err := json.Marshal(activityEvent{
		PanelServerID: panelServerID,
		Action:        action,
		Status:        status,
		Timestamp:     time.Now(),
	})
	if err != nil {
		return fmt.Errorf("ActivityProducer.PublishStatusChange: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(panelServerID, 10)),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("ActivityProducer.PublishStatusChange: %w", err)
	}
	return nil
}

func NewActivityProducer(writer infra.KafkaWriter) ActivityProducer {
	return &activityProducer{
		writer: writer,
	}
}
