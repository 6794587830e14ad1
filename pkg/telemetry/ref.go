// Package telemetry reports what the robot is doing to monitors
// without ever blocking the control loop.
package telemetry

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// RobotRef identifies a robot.
type RobotRef struct {
	// Type is the robot type.
	Type string
	// ID is unique ID of the device.
	ID string
}

// Name retrieves the name from ref.
func (r RobotRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates RobotRef is valid.
func (r RobotRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// Meta describes a robot to monitors.
type Meta struct {
	Description string            `json:"description,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
	States      []string          `json:"states,omitempty"`
}

// MachineID retrieves the unique ID identifying the machine,
// falling back to the host name.
func MachineID() string {
	id, err := machineid.ID()
	if err == nil {
		return id
	}
	glog.Warningf("machine id unavailable: %v", err)
	if id, err = os.Hostname(); err == nil {
		return id
	}
	return "unknown"
}
