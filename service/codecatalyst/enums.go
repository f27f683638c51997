package codecatalyst

import "github.com/reoring/sdkmodel"

// InstanceType is the compute size of a dev environment.
type InstanceType string

const (
	InstanceTypeDevStandard1Small  InstanceType = "dev.standard1.small"
	InstanceTypeDevStandard1Medium InstanceType = "dev.standard1.medium"
	InstanceTypeDevStandard1Large  InstanceType = "dev.standard1.large"
	InstanceTypeDevStandard1Xlarge InstanceType = "dev.standard1.xlarge"
	// InstanceTypeUnknownToSDKVersion stands for a value added by the service
	// after this client was generated.
	InstanceTypeUnknownToSDKVersion InstanceType = ""
)

var instanceTypes = sdkmodel.NewEnumSet(
	InstanceTypeDevStandard1Small,
	InstanceTypeDevStandard1Medium,
	InstanceTypeDevStandard1Large,
	InstanceTypeDevStandard1Xlarge,
)

// InstanceTypeFromValue resolves a wire value; nil yields nil.
func InstanceTypeFromValue(v *string) *InstanceType { return instanceTypes.FromValue(v) }

// Values returns the known variants.
func (InstanceType) Values() []InstanceType { return instanceTypes.KnownValues() }

// Value returns the wire value; the unknown variant has none.
func (e InstanceType) Value() (string, bool) { return sdkmodel.EnumValue(e) }

// DevEnvironmentStatus is the lifecycle state of a dev environment.
type DevEnvironmentStatus string

const (
	DevEnvironmentStatusPending             DevEnvironmentStatus = "PENDING"
	DevEnvironmentStatusRunning             DevEnvironmentStatus = "RUNNING"
	DevEnvironmentStatusStarting            DevEnvironmentStatus = "STARTING"
	DevEnvironmentStatusStopping            DevEnvironmentStatus = "STOPPING"
	DevEnvironmentStatusStopped             DevEnvironmentStatus = "STOPPED"
	DevEnvironmentStatusFailed              DevEnvironmentStatus = "FAILED"
	DevEnvironmentStatusDeleting            DevEnvironmentStatus = "DELETING"
	DevEnvironmentStatusDeleted             DevEnvironmentStatus = "DELETED"
	DevEnvironmentStatusUnknownToSDKVersion DevEnvironmentStatus = ""
)

var devEnvironmentStatuses = sdkmodel.NewEnumSet(
	DevEnvironmentStatusPending,
	DevEnvironmentStatusRunning,
	DevEnvironmentStatusStarting,
	DevEnvironmentStatusStopping,
	DevEnvironmentStatusStopped,
	DevEnvironmentStatusFailed,
	DevEnvironmentStatusDeleting,
	DevEnvironmentStatusDeleted,
)

func DevEnvironmentStatusFromValue(v *string) *DevEnvironmentStatus {
	return devEnvironmentStatuses.FromValue(v)
}

func (DevEnvironmentStatus) Values() []DevEnvironmentStatus { return devEnvironmentStatuses.KnownValues() }

func (e DevEnvironmentStatus) Value() (string, bool) { return sdkmodel.EnumValue(e) }

// enumPtr stores a typed variant as its wire value. The unknown variant has
// no wire value and clears the field.
func enumPtr[E ~string](e E) *string {
	if e == "" {
		return nil
	}
	s := string(e)
	return &s
}
