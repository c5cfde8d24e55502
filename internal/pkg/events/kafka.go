package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultQueueSize = 1000
	writeTimeout     = 10 * time.Second
)

var jsonMarshal = json.Marshal

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher queues events on a buffered channel and writes them to a
// single topic from one goroutine, keyed by company name so that changes to
// one company stay ordered within a partition.
type KafkaPublisher struct {
	writer    KafkaWriter
	events    chan Event
	logger    *slog.Logger
	closeChan chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	// mu orders Publish against Close: once closed is set no send can reach
	// events, so the final drain in eventLoop sees every accepted event.
	mu     sync.RWMutex
	closed bool
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, defaultQueueSize, logger)
}

func newKafkaPublisher(writer KafkaWriter, queueSize int, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &KafkaPublisher{
		writer:    writer,
		events:    make(chan Event, queueSize),
		logger:    logger.With("component", "kafka_publisher"),
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
	}

	go p.eventLoop()
	return p
}

// Publish never blocks. When the queue is full the event is dropped and logged.
func (p *KafkaPublisher) Publish(_ context.Context, event Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("publisher closed, dropping event", "event_type", event.Type, "company_name", event.CompanyName)
		return
	}

	select {
	case p.events <- event:
	default:
		p.logger.Warn("kafka publisher queue full, dropping event",
			"event_type", event.Type,
			"company_name", event.CompanyName,
		)
	}
}

func (p *KafkaPublisher) eventLoop() {
	defer close(p.done)
	for {
		select {
		case event := <-p.events:
			p.sendEvent(event)
		case <-p.closeChan:
			// flush what is already queued
			for {
				select {
				case event := <-p.events:
					p.sendEvent(event)
				default:
					return
				}
			}
		}
	}
}

func (p *KafkaPublisher) sendEvent(event Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("failed to serialize event", "error", err, "event_id", event.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.CompanyName),
		Value: value,
	})
	if err != nil {
		p.logger.Error("failed to produce event",
			"error", err,
			"event_type", event.Type,
			"company_name", event.CompanyName,
		)
	}
}

// Close stops accepting events, flushes the queue and closes the writer.
func (p *KafkaPublisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.closeChan)
		p.mu.Unlock()

		<-p.done
		err = p.writer.Close()
	})
	return err
}
