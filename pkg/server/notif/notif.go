/* Copyright 2025 Fieldsync Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package notif provides best-effort push notification publishing.
// Publishing never blocks or fails a request: notifications are handed to a
// background dispatcher and delivery failures are only logged.
package notif

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fieldsync/fieldsync/pkg/server/log"
	"github.com/pkg/errors"
)

// TopicNewOrders is the topic to which new order events are published
const TopicNewOrders = "new_orders"

// Notification is a message published to a topic
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Publisher enqueues a notification for delivery
type Publisher interface {
	Publish(topic string, n Notification)
}

// Backend delivers a notification to a topic
type Backend interface {
	Send(topic string, n Notification) error
}

type envelope struct {
	topic        string
	notification Notification
}

// Dispatcher delivers notifications on a background goroutine so that the
// request path never waits on the backend.
type Dispatcher struct {
	backend Backend
	queue   chan envelope
	done    chan struct{}
}

// NewDispatcher creates a dispatcher with the given queue size and starts
// its delivery loop
func NewDispatcher(backend Backend, queueSize int) *Dispatcher {
	d := &Dispatcher{
		backend: backend,
		queue:   make(chan envelope, queueSize),
		done:    make(chan struct{}),
	}

	go d.run()

	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for e := range d.queue {
		if err := d.backend.Send(e.topic, e.notification); err != nil {
			log.WithFields(log.Fields{
				"topic": e.topic,
			}).ErrorWrap(err, "sending notification")
		}
	}
}

// Publish enqueues a notification. It never blocks: when the queue is full
// the notification is dropped with a warning.
func (d *Dispatcher) Publish(topic string, n Notification) {
	select {
	case d.queue <- envelope{topic: topic, notification: n}:
	default:
		log.WithFields(log.Fields{
			"topic": topic,
		}).Warn("notification queue full, dropping notification")
	}
}

// Close stops accepting notifications and waits for queued ones to drain
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

// WebhookBackend delivers notifications by POSTing them as JSON to a
// configured URL
type WebhookBackend struct {
	URL    string
	Client *http.Client
}

// NewWebhookBackend creates a webhook backend for the given URL
func NewWebhookBackend(url string) *WebhookBackend {
	return &WebhookBackend{
		URL: url,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type webhookPayload struct {
	Topic        string       `json:"topic"`
	Notification Notification `json:"notification"`
}

// Send implements Backend by POSTing the notification to the webhook URL
func (b *WebhookBackend) Send(topic string, n Notification) error {
	payload := webhookPayload{Topic: topic, Notification: n}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshalling payload")
	}

	res, err := b.Client.Post(b.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "posting to webhook")
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return errors.Errorf("webhook responded with status %d", res.StatusCode)
	}

	return nil
}

// StdoutBackend logs notifications instead of delivering them.
// This is useful for development and testing.
type StdoutBackend struct{}

// NewStdoutBackend creates a stdout backend
func NewStdoutBackend() *StdoutBackend {
	return &StdoutBackend{}
}

// Send implements Backend by logging the notification
func (b *StdoutBackend) Send(topic string, n Notification) error {
	log.WithFields(log.Fields{
		"topic": topic,
		"title": n.Title,
		"body":  n.Body,
	}).Info("notification")

	return nil
}
