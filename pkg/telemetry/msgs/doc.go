// Package msgs defines the telemetry events a robot publishes
// and the typed envelope carrying them over the wire.
package msgs

// Telemetry only flows one way:
//
// Producer: robot (edgebot, edgebot-sim)
// Consumer: monitors (edgemon)
