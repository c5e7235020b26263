package v1specs

import (
	"time"

	"github.com/google/uuid"
)

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{Value: v, Set: true}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}

	return d
}

// NewOptUUID returns new OptUUID with value set to v.
func NewOptUUID(v uuid.UUID) OptUUID {
	return OptUUID{Value: v, Set: true}
}

// OptUUID is optional uuid.UUID.
type OptUUID struct {
	Value uuid.UUID
	Set   bool
}

// IsSet returns true if OptUUID was set.
func (o OptUUID) IsSet() bool { return o.Set }

// SetTo sets value to v.
func (o *OptUUID) SetTo(v uuid.UUID) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptUUID) Get() (v uuid.UUID, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptUUID) Or(d uuid.UUID) uuid.UUID {
	if v, ok := o.Get(); ok {
		return v
	}

	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{Value: v, Set: true}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}

	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}

	return d
}

// NewOptSensorStatus returns new OptSensorStatus with value set to v.
func NewOptSensorStatus(v SensorStatus) OptSensorStatus {
	return OptSensorStatus{Value: v, Set: true}
}

// OptSensorStatus is optional SensorStatus.
type OptSensorStatus struct {
	Value SensorStatus
	Set   bool
}

// IsSet returns true if OptSensorStatus was set.
func (o OptSensorStatus) IsSet() bool { return o.Set }

// SetTo sets value to v.
func (o *OptSensorStatus) SetTo(v SensorStatus) {
	o.Set = true
	o.Value = v
}

// Or returns value if set, or given parameter if does not.
func (o OptSensorStatus) Or(d SensorStatus) SensorStatus {
	if o.Set {
		return o.Value
	}

	return d
}

// NewOptExportFormat returns new OptExportFormat with value set to v.
func NewOptExportFormat(v ExportFormat) OptExportFormat {
	return OptExportFormat{Value: v, Set: true}
}

// OptExportFormat is optional ExportFormat.
type OptExportFormat struct {
	Value ExportFormat
	Set   bool
}

// IsSet returns true if OptExportFormat was set.
func (o OptExportFormat) IsSet() bool { return o.Set }

// Or returns value if set, or given parameter if does not.
func (o OptExportFormat) Or(d ExportFormat) ExportFormat {
	if o.Set {
		return o.Value
	}

	return d
}
