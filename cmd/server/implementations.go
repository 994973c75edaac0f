package main

import (
	"encoding/json"
	"log"
	"sync/atomic"

	"github.com/Ko-stant/labyrinth-engine/internal/protocol"
	"github.com/Ko-stant/labyrinth-engine/internal/ws"
)

// BroadcasterImpl implements Broadcaster using WebSocket hub
type BroadcasterImpl struct {
	hub      *ws.Hub
	sequence SequenceGenerator
	logger   Logger
}

func NewBroadcaster(hub *ws.Hub, sequence SequenceGenerator, logger Logger) *BroadcasterImpl {
	return &BroadcasterImpl{
		hub:      hub,
		sequence: sequence,
		logger:   logger,
	}
}

func (b *BroadcasterImpl) BroadcastEvent(eventType string, payload any) {
	envelope := protocol.PatchEnvelope{
		Sequence: b.sequence.Next(),
		Type:     eventType,
		Payload:  payload,
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		b.logger.Printf("failed to marshal %s: %v", eventType, err)
		return
	}
	// New viewers should see the current labyrinth straight away.
	if eventType == protocol.PatchLabyrinthBuilt {
		b.hub.Retain(data)
	}
	b.logger.Printf("broadcasting %s to %d clients", eventType, b.hub.Count())
	b.hub.Broadcast(data)
}

// LoggerImpl implements Logger using standard log package
type LoggerImpl struct{}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// SequenceGeneratorImpl implements SequenceGenerator using atomic counter
type SequenceGeneratorImpl struct {
	counter atomic.Uint64
}

func NewSequenceGenerator() *SequenceGeneratorImpl {
	return &SequenceGeneratorImpl{}
}

func (sg *SequenceGeneratorImpl) Next() uint64 {
	return sg.counter.Add(1)
}

func (sg *SequenceGeneratorImpl) Current() uint64 {
	return sg.counter.Load()
}
