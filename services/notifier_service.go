package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/redis/go-redis/v9"
	"requisition-actions-server/models"
)

const LineItemEventQueue = "lineitem_events"

// Notifier publishes line-item events for downstream consumers
type Notifier interface {
	PublishLineItemEvent(ctx context.Context, event *models.LineItemEvent) error
}

type NotifierService struct {
	client *redis.Client
}

func NewNotifierService(host string, port int) *NotifierService {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port),
	})
	return &NotifierService{client: client}
}

// PublishLineItemEvent pushes a line-item-added event onto the downstream queue
func (n *NotifierService) PublishLineItemEvent(ctx context.Context, event *models.LineItemEvent) error {
	var err error
	xray.Capture(ctx, "Redis.LPush", func(ctx1 context.Context) error {
		jsonData, marshalErr := json.Marshal(event)
		if marshalErr != nil {
			err = marshalErr
			return marshalErr
		}
		err = n.client.LPush(ctx, LineItemEventQueue, string(jsonData)).Err()

		// Add metadata to subsegment
		if seg := xray.GetSegment(ctx1); seg != nil {
			seg.AddMetadata("redis.queue_key", LineItemEventQueue)
			seg.AddMetadata("redis.operation", "LPUSH")
		}

		return err
	})
	return err
}

// Ping checks Redis connection
func (n *NotifierService) Ping(ctx context.Context) error {
	var err error
	xray.Capture(ctx, "Redis.Ping", func(ctx1 context.Context) error {
		err = n.client.Ping(ctx).Err()

		// Add metadata to subsegment
		if seg := xray.GetSegment(ctx1); seg != nil {
			seg.AddMetadata("redis.operation", "PING")
		}

		return err
	})
	return err
}
