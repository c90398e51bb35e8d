package events

import (
	"Panel_Sync_Service/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActivityProducer_PublishStatusChange(t *testing.T) {
	testErr := errors.New("test error")

	t.Run("Success Event keyed by server id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := infra.NewMockKafkaWriter(ctrl)
		producer := NewActivityProducer(writer)

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "201", string(msgs[0].Key))
				var event activityEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, int64(201), event.PanelServerID)
				assert.Equal(t, "power", event.Action)
				assert.Equal(t, "running", event.Status)
				assert.False(t, event.Timestamp.IsZero())
				return nil
			},
		)

		assert.NoError(t, producer.PublishStatusChange(context.Background(), 201, "power", "running"))
	})

	t.Run("Failure Writer error wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := infra.NewMockKafkaWriter(ctrl)
		producer := NewActivityProducer(writer)

		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(testErr)

		err := producer.PublishStatusChange(context.Background(), 201, "create", "pending_install")
		require.Error(t, err)
		assert.ErrorIs(t, err, testErr)
	})
}
