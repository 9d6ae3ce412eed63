// Package subject provides publishers whose events are sent manually.
//
// A Passthrough keeps an explicit list of attached sinks. Send fans each value out synchronously
// to every sink attached at the time of the call, so operators subscribed to a Passthrough observe
// events in exactly the order they were sent.
package subject
