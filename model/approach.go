package model

import (
	"fmt"
	"time"
)

// CloseApproach はNEOの地球への接近記録を表すモデルです。
type CloseApproach struct {
	Time     time.Time // 最接近時刻 (UTC, 分精度)
	Distance float64   // 接近距離 (au)
	Velocity float64   // 相対速度 (km/s)

	designation string
	neo         *NearEarthObject
}

// NewCloseApproach はCloseApproachの新しいインスタンスを作成します。
// NEOへの参照は紐付けられるまでnilのままです。
func NewCloseApproach(designation, timeStr string, distance, velocity float64) (*CloseApproach, error) {
	if designation == "" {
		return nil, NewTypeError("designation", "designation must be a non-empty string")
	}
	t, err := ParseCalendarTime(timeStr)
	if err != nil {
		return nil, err
	}
	return &CloseApproach{
		Time:        t,
		Distance:    distance,
		Velocity:    velocity,
		designation: designation,
	}, nil
}

// Designation returns the designation this approach was loaded with.
func (a *CloseApproach) Designation() string {
	return a.designation
}

// NEO returns the linked object, or nil if the approach is unlinked.
func (a *CloseApproach) NEO() *NearEarthObject {
	return a.neo
}

// Attach links the approach to neo in both directions. An approach can be
// attached only once and only to the object named by its designation.
func (a *CloseApproach) Attach(neo *NearEarthObject) error {
	if neo == nil {
		return &Error{Kind: KindLink, Field: "neo", Message: "cannot attach to a nil object"}
	}
	if a.neo != nil {
		return &Error{Kind: KindLink, Field: "neo", Message: fmt.Sprintf("approach of %s is already linked", a.designation)}
	}
	if neo.Designation != a.designation {
		return &Error{
			Kind:    KindLink,
			Field:   "designation",
			Message: fmt.Sprintf("approach of %s cannot be linked to %s", a.designation, neo.Designation),
		}
	}
	a.neo = neo
	neo.approaches = append(neo.approaches, a)
	return nil
}

// TimeString returns the approach time without seconds.
func (a *CloseApproach) TimeString() string {
	return FormatCalendarTime(a.Time)
}

func (a *CloseApproach) String() string {
	name := a.designation
	if a.neo != nil {
		name = a.neo.Fullname()
	}
	return fmt.Sprintf("On %s, '%s' approaches Earth at a distance of %.2f au and a velocity of %.2f km/s.",
		a.TimeString(), name, a.Distance, a.Velocity)
}
