// Package notifier delivers invoice change events to live subscribers.
//
// Hub is the in-process fan-out used by the SSE endpoint. Every subscriber owns a
// small buffered channel; an event that does not fit is dropped for that
// subscriber only, so a slow client never blocks a transition. Delivery is
// at-most-once and nothing is replayed after a reconnect.
//
// RedisBridge makes the hub span several processes: Publish goes to a Redis
// channel, and every process relays what it receives from Redis into its own
// hub.
package notifier
