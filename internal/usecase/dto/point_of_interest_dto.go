package dto

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"strings"

	"github.com/cityinfo-api/internal/pkg/patch"
)

// PointOfInterestDTO - точка интереса в ответах API
type PointOfInterestDTO struct {
	XMLName     xml.Name `json:"-" xml:"PointOfInterestDto"`
	ID          int64    `json:"id" xml:"Id"`
	Name        string   `json:"name" xml:"Name"`
	Description *string  `json:"description" xml:"Description,omitempty"`
}

// PointOfInterestList is rendered as a JSON array, or as a single XML root element.
type PointOfInterestList []PointOfInterestDTO

func (l PointOfInterestList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeXMLList(e, "ArrayOfPointOfInterestDto", l)
}

// PointOfInterestForCreationDTO - тело запроса на создание точки интереса
type PointOfInterestForCreationDTO struct {
	Name        string  `json:"name" xml:"Name" validate:"required,max=50"`
	Description *string `json:"description" xml:"Description" validate:"omitempty,max=200,nefield=Name"`
}

// PointOfInterestForUpdateDTO - тело запроса на полное обновление; также цель patch-документа
type PointOfInterestForUpdateDTO struct {
	Name        string  `json:"name" xml:"Name" validate:"required,max=50"`
	Description *string `json:"description" xml:"Description" validate:"omitempty,max=200,nefield=Name"`
}

var _ patch.Target = (*PointOfInterestForUpdateDTO)(nil)

var errNullName = errors.New("name cannot be null")

// SetField implements patch.Target. Field names are the json names, compared case-insensitively.
func (d *PointOfInterestForUpdateDTO) SetField(field string, value json.RawMessage) error {
	switch strings.ToLower(field) {
	case "name":
		var name *string
		if err := json.Unmarshal(value, &name); err != nil {
			return err
		}
		if name == nil {
			return errNullName
		}
		d.Name = *name
	case "description":
		var description *string
		if err := json.Unmarshal(value, &description); err != nil {
			return err
		}
		d.Description = description
	default:
		return patch.ErrUnknownField
	}
	return nil
}

// RemoveField implements patch.Target.
func (d *PointOfInterestForUpdateDTO) RemoveField(field string) error {
	switch strings.ToLower(field) {
	case "name":
		d.Name = ""
	case "description":
		d.Description = nil
	default:
		return patch.ErrUnknownField
	}
	return nil
}
