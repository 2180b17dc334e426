package consumer

import (
	"context"
	"encoding/json"
	"time"

	market "github.com/muhammadchandra19/exchange/services/bar-engine/internal/domain/market/v1"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/config"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/logger"
	"github.com/muhammadchandra19/exchange/services/bar-engine/pkg/util"
	"github.com/segmentio/kafka-go"
)

// BarEvent is the live bar payload on the bar topic.
type BarEvent struct {
	InstrumentID string    `json:"instrument_id"`
	TradingDate  time.Time `json:"trading_date"`
	BeginTime    time.Time `json:"begin_time"`
	EndTime      time.Time `json:"end_time"`
	Open         float64   `json:"open"`
	High         float64   `json:"high"`
	Low          float64   `json:"low"`
	Close        float64   `json:"close"`
	Volume       int64     `json:"volume"`
	Turnover     float64   `json:"turnover"`
	OpenInterest float64   `json:"open_interest"`
}

// BarConsumer consumes live bars from the bar topic and feeds them into the
// cache. It also drives day-rollover eviction when the feed moves past the
// cache's session day.
type BarConsumer struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface

	cache   market.BarCache
	msgChan chan kafka.Message
}

// NewBarConsumer creates a new BarConsumer.
func NewBarConsumer(config config.BarKafkaConfig, logger logger.Interface, cache market.BarCache) *BarConsumer {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &BarConsumer{
		kafkaReader: kafkaReader,
		logger:      logger,
		cache:       cache,
		msgChan:     make(chan kafka.Message),
	}
}

// Start starts the BarConsumer.
func (c *BarConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting bar consumer", logger.Field{
		Key:   "action",
		Value: "bar_consumer_start",
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "bar_consumer_stop",
			})
			close(c.msgChan)
			return
		default:
			msg, err := c.kafkaReader.ReadMessage(ctx)
			if err != nil {
				c.logger.ErrorContext(ctx, err, logger.Field{
					Key:   "action",
					Value: "read_message",
				})
				continue
			}

			c.msgChan <- msg
		}
	}
}

// Stop stops the BarConsumer.
func (c *BarConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping bar consumer", logger.Field{
		Key:   "action",
		Value: "bar_consumer_stop",
	})
	return c.kafkaReader.Close()
}

// Subscribe drains the message channel and applies bars to the cache.
func (c *BarConsumer) Subscribe(ctx context.Context) {
	for msg := range c.msgChan {
		msgCtx := util.WithRequestID(ctx, "")

		var event BarEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.ErrorContext(msgCtx, err, logger.Field{
				Key:   "action",
				Value: "unmarshal_bar",
			})
			continue
		}

		c.handleBar(msgCtx, &event)

		if err := c.kafkaReader.CommitMessages(msgCtx, msg); err != nil {
			c.logger.ErrorContext(msgCtx, err, logger.Field{
				Key:   "action",
				Value: "commit_message",
			})
		}
	}
}

func (c *BarConsumer) handleBar(ctx context.Context, event *BarEvent) {
	if event.TradingDate.After(c.cache.SessionDay()) {
		c.cache.Reset(event.TradingDate)
	}

	c.cache.OnBar(ctx, &market.Bar{
		InstrumentID: event.InstrumentID,
		TradingDate:  event.TradingDate,
		BeginTime:    event.BeginTime,
		EndTime:      event.EndTime,
		Open:         event.Open,
		High:         event.High,
		Low:          event.Low,
		Close:        event.Close,
		Volume:       event.Volume,
		Turnover:     event.Turnover,
		OpenInterest: event.OpenInterest,
	})
}
