// Package env sets up the sensor daemon from flags, environment and config files.
package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// AppID keys the protected machine ID so the raw ID is never published.
const AppID = "pms.go"

// MachineID retrieves the unique ID identifying the machine. The hostname
// is used when the machine ID is not available, e.g. in containers.
func MachineID() string {
	id, err := machineid.ProtectedID(AppID)
	if err == nil {
		return id[:16]
	}
	glog.V(1).Infof("machine id unavailable: %v", err)
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return "unknown"
}
