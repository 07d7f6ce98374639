// Package notifier fans change notifications out to live subscriptions.
// Every successful write publishes on a per-collection redis channel;
// subscribers react by re-reading the full result set, so the payload
// carries no data and a lost message is corrected by the next write.
package notifier

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Notifier struct {
	client *redis.Client
}

func New(client *redis.Client) *Notifier {
	return &Notifier{
		client: client,
	}
}

func shiftsChannel(userID int64) string {
	return fmt.Sprintf("shifts:%d", userID)
}

func dtrChannel(shiftID uuid.UUID) string {
	return fmt.Sprintf("dtr:%s", shiftID)
}

// ShiftsChanged signals that the user's shift collection changed.
func (n *Notifier) ShiftsChanged(ctx context.Context, userID int64) error {
	return n.client.Publish(ctx, shiftsChannel(userID), "").Err()
}

// DTRChanged signals that the shift's DTR entry collection changed.
func (n *Notifier) DTRChanged(ctx context.Context, shiftID uuid.UUID) error {
	return n.client.Publish(ctx, dtrChannel(shiftID), "").Err()
}

// SubscribeShifts opens a subscription on the user's shift channel. The
// caller must Close it; the subscription also ends with ctx.
func (n *Notifier) SubscribeShifts(ctx context.Context, userID int64) *redis.PubSub {
	return n.client.Subscribe(ctx, shiftsChannel(userID))
}

// SubscribeDTR opens a subscription on the shift's DTR channel.
func (n *Notifier) SubscribeDTR(ctx context.Context, shiftID uuid.UUID) *redis.PubSub {
	return n.client.Subscribe(ctx, dtrChannel(shiftID))
}
