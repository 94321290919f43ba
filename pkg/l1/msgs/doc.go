// Package msgs provides the sensor event schemas and the typed envelope.
package msgs

// Events are produced by the sensor daemon whenever a read completes,
// successful or not, and consumed by monitors, dashboards and shells.
//
// Producer: pmsd
// Consumer: pmsmon, websocket clients
