// Package broker publishes workflow requests to a STOMP message broker.
package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-stomp/stomp"
	"github.com/go-stomp/stomp/frame"
	jsoniter "github.com/json-iterator/go"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const contentTypeJSON = "application/json"

// Sender is the subset of *stomp.Conn used to publish.
type Sender interface {
	Send(destination, contentType string, body []byte, opts ...func(*frame.Frame) error) error
	Disconnect() error
}

// DialFunc opens a broker connection.
type DialFunc func() (Sender, error)

// Publisher sends started workflows to the graph engine queue. The connection
// is opened on first use and re-opened after a failed send.
type Publisher struct {
	dial        DialFunc
	destination string
	log         logger.Interface

	mu   sync.Mutex
	conn Sender
}

// NewPublisher returns a Publisher dialing addr over TCP.
func NewPublisher(addr, login, passcode, destination string, log logger.Interface) *Publisher {
	dial := func() (Sender, error) {
		opts := []func(*stomp.Conn) error{stomp.ConnOpt.HeartBeat(time.Minute, 0)}
		if login != "" {
			opts = append(opts, stomp.ConnOpt.Login(login, passcode))
		}

		return stomp.Dial("tcp", addr, opts...)
	}

	return NewPublisherWithDialer(dial, destination, log)
}

// NewPublisherWithDialer -.
func NewPublisherWithDialer(dial DialFunc, destination string, log logger.Interface) *Publisher {
	return &Publisher{dial: dial, destination: destination, log: log}
}

// Publish sends wf as JSON, tagged with the graph name and target node.
func (p *Publisher) Publish(_ context.Context, wf *entity.WorkflowInstance) error {
	body, err := json.Marshal(wf)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		conn, dErr := p.dial()
		if dErr != nil {
			return fmt.Errorf("broker - Publish - dial: %w", dErr)
		}

		p.conn = conn
	}

	err = p.conn.Send(p.destination, contentTypeJSON, body,
		stomp.SendOpt.Header("graph", wf.Name),
		stomp.SendOpt.Header("node", wf.NodeID),
	)
	if err != nil {
		p.log.Warn("broker send failed, dropping connection", "destination", p.destination, "error", err.Error())

		_ = p.conn.Disconnect()
		p.conn = nil

		return fmt.Errorf("broker - Publish - send: %w", err)
	}

	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}

	err := p.conn.Disconnect()
	p.conn = nil

	return err
}
