package event

import "testing"

func TestPublishIsDeferredUntilFlush(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.Subscribe(BulletFired, ListenerFunc(func(e Event) { got = append(got, e.Type) }))

	d.Publish(Event{Type: BulletFired})
	d.Publish(Event{Type: BulletExpired})
	if len(got) != 0 {
		t.Fatalf("listener called before Flush: %v", got)
	}
	if d.Pending() != 2 {
		t.Fatalf("Pending() = %d, expected 2", d.Pending())
	}

	if n := d.Flush(); n != 2 {
		t.Errorf("Flush() = %d, expected 2", n)
	}
	if len(got) != 1 || got[0] != BulletFired {
		t.Errorf("got %v, expected [BulletFired]", got)
	}
	if d.Pending() != 0 {
		t.Errorf("queue not drained: %d", d.Pending())
	}
}

func TestFlushDeliversEventsPublishedByListeners(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.Subscribe(CircleDestroyed, ListenerFunc(func(e Event) {
		d.Publish(Event{Type: CircleSpawned})
	}))
	d.Subscribe(CircleSpawned, ListenerFunc(func(e Event) { count++ }))

	d.Publish(Event{Type: CircleDestroyed})
	if n := d.Flush(); n != 2 {
		t.Errorf("Flush() = %d, expected 2", n)
	}
	if count != 1 {
		t.Errorf("chained event delivered %d times, expected 1", count)
	}
}

func TestDispatchOrderFollowsSubscription(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(BulletFired, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(BulletFired, ListenerFunc(func(Event) { order = append(order, 2) }))

	d.Dispatch(Event{Type: BulletFired})
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, expected [1 2]", order)
	}
}
