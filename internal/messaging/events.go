package messaging

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
)

const (
	SubjectUserRegistered = "user.registered"
	SubjectSiteCreated    = "site.created"
	SubjectSiteUpdated    = "site.updated"
	SubjectSiteDeleted    = "site.deleted"
)

// Publisher emits best-effort domain events over NATS. When no NATS URL is
// configured publishing becomes a no-op so the API does not depend on the
// broker being up.
type Publisher struct {
	nc *nats.Conn
}

func Connect(url string) *Publisher {
	if url == "" {
		log.Println("NATS_URL not set, domain events disabled")
		return &Publisher{}
	}

	nc, err := nats.Connect(url)
	if err != nil {
		log.Printf("NATS connection failed, domain events disabled: %v", err)
		return &Publisher{}
	}

	log.Println("Connected to NATS")
	return &Publisher{nc: nc}
}

// Publish serializes payload as JSON and fires it at subject. Failures are
// logged, never returned: events must not fail the request that emitted them.
func (p *Publisher) Publish(subject string, payload interface{}) {
	if p.nc == nil || !p.nc.IsConnected() {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to encode %s event: %v", subject, err)
		return
	}

	if err := p.nc.Publish(subject, data); err != nil {
		log.Printf("failed to publish %s event: %v", subject, err)
	}
}

func (p *Publisher) Close() {
	if p.nc != nil && p.nc.IsConnected() {
		p.nc.Close()
	}
}
