package events

import (
	"testing"
	"time"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []string
	bus.Subscribe(func(Event) { order = append(order, "first") })
	bus.Subscribe(func(Event) { order = append(order, "second") })
	bus.Subscribe(func(Event) { order = append(order, "third") })

	bus.Publish(Event{Type: TypeGroomed, At: time.Unix(1700000000, 0)})

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("delivery order %v", order)
	}
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	var count int
	unsubscribe := bus.Subscribe(func(Event) { count++ })

	bus.Publish(Event{Type: TypePetted})
	unsubscribe()
	unsubscribe() // second call is a no-op
	bus.Publish(Event{Type: TypePetted})

	if count != 1 {
		t.Fatalf("received %d events, want 1", count)
	}
}

func TestBus_PublishCarriesPayload(t *testing.T) {
	bus := NewBus()
	var got Event
	bus.Subscribe(func(evt Event) { got = evt })

	at := time.Unix(1700000000, 0)
	bus.Publish(Event{Type: TypePurchase, At: at, Data: "carrot_single"})

	if got.Type != TypePurchase || !got.At.Equal(at) || got.Data != "carrot_single" {
		t.Fatalf("delivered event %+v", got)
	}
}
