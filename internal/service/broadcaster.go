package service

// Broadcaster pushes whole-collection snapshots to subscribed clients after a
// mutation. Delivery is at-least-once; ordering across clients is not
// guaranteed. The WebSocket hub implements this.
type Broadcaster interface {
	BroadcastSnapshot(collection string, payload interface{})
}
