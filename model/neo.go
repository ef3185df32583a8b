package model

import (
	"fmt"
	"math"
)

// NearEarthObject は地球近傍天体を表すモデルです。
// Approachesはデータベース構築時の紐付けで一度だけ設定されます。
type NearEarthObject struct {
	Designation string   // 仮符号（主キー）
	Name        string   // IAU名（空文字は名前なし）
	Diameter    Diameter // 直径 (km)
	Hazardous   bool     // 潜在的に危険な天体かどうか

	approaches []*CloseApproach
}

// NewNearEarthObject は新しいNearEarthObjectインスタンスを作成します。
func NewNearEarthObject(designation, name string, diameter Diameter, hazardous bool) (*NearEarthObject, error) {
	neo := &NearEarthObject{
		Designation: designation,
		Name:        name,
		Diameter:    diameter,
		Hazardous:   hazardous,
		approaches:  []*CloseApproach{},
	}
	if err := neo.Validate(); err != nil {
		return nil, err
	}
	return neo, nil
}

// NearEarthObjectFromFields builds an NEO from a decoded structured record,
// checking the primitive type of every field.
func NearEarthObjectFromFields(fields map[string]any) (*NearEarthObject, error) {
	designation, ok := fields["designation"].(string)
	if !ok {
		return nil, NewTypeError("designation", "%v is not a string value", fields["designation"])
	}

	var name string
	switch v := fields["name"].(type) {
	case nil:
	case string:
		name = v
	default:
		return nil, NewTypeError("name", "%v is not a string value", v)
	}

	diameter := UnknownDiameter()
	switch v := fields["diameter_km"].(type) {
	case nil:
	case float64:
		diameter = KnownDiameter(v)
	default:
		return nil, NewTypeError("diameter_km", "%v is not a float value", v)
	}

	hazardous, ok := fields["potentially_hazardous"].(bool)
	if !ok {
		return nil, NewTypeError("potentially_hazardous", "%v is not a boolean value", fields["potentially_hazardous"])
	}

	return NewNearEarthObject(designation, name, diameter, hazardous)
}

// Validate はNEOのデータバリデーションを行います。
func (n *NearEarthObject) Validate() error {
	if n.Designation == "" {
		return NewTypeError("designation", "designation must be a non-empty string")
	}
	return nil
}

// Approaches returns the linked close approaches in load order.
func (n *NearEarthObject) Approaches() []*CloseApproach {
	return n.approaches
}

// Fullname returns "designation (name)", or the designation alone when the
// object has no name.
func (n *NearEarthObject) Fullname() string {
	if n.Name == "" {
		return n.Designation
	}
	return fmt.Sprintf("%s (%s)", n.Designation, n.Name)
}

func (n *NearEarthObject) String() string {
	hazard := "is not"
	if n.Hazardous {
		hazard = "is"
	}
	size := "an unknown diameter"
	if km, ok := n.Diameter.Km(); ok {
		size = fmt.Sprintf("a diameter of %.3f km", km)
	}
	return fmt.Sprintf("NEO %s has %s and %s potentially hazardous.", n.Fullname(), size, hazard)
}

// NEOFields is the structured form of an NEO.
type NEOFields struct {
	Designation string   `json:"designation"`
	Name        string   `json:"name"`
	DiameterKm  *float64 `json:"diameter_km"`
	Hazardous   bool     `json:"potentially_hazardous"`
}

// StructuredFields returns the nested-output form: absent name is "",
// unknown diameter is nil.
func (n *NearEarthObject) StructuredFields() NEOFields {
	f := NEOFields{
		Designation: n.Designation,
		Name:        n.Name,
		Hazardous:   n.Hazardous,
	}
	if km, ok := n.Diameter.Km(); ok {
		f.DiameterKm = &km
	}
	return f
}

// TabularFields returns the flat-output form in column order.
func (n *NearEarthObject) TabularFields() []string {
	diameter := ""
	if km, ok := n.Diameter.Km(); ok {
		diameter = formatFloat(km)
	}
	return []string{n.Designation, n.Name, diameter, formatBool(n.Hazardous)}
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// ParseTabularNEO reads the NEO columns of a tabular output row back into an
// NEO, applying the same empty-value rules used when writing it.
func ParseTabularNEO(row map[string]string) (*NearEarthObject, error) {
	diameter, err := ParseDiameter(row["diameter_km"])
	if err != nil {
		return nil, err
	}
	if km, ok := diameter.Km(); ok && math.IsInf(km, 0) {
		return nil, NewFormatError("diameter_km", "%q is not finite", row["diameter_km"])
	}

	var hazardous bool
	switch row["potentially_hazardous"] {
	case "True":
		hazardous = true
	case "False":
		hazardous = false
	default:
		return nil, NewTypeError("potentially_hazardous", "%q is not a boolean value", row["potentially_hazardous"])
	}

	return NewNearEarthObject(row["designation"], row["name"], diameter, hazardous)
}
