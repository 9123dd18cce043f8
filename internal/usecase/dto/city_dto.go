package dto

import "encoding/xml"

// CityDTO - город вместе с точками интереса
type CityDTO struct {
	XMLName          xml.Name             `json:"-" xml:"CityDto"`
	ID               int64                `json:"id" xml:"Id"`
	Name             string               `json:"name" xml:"Name"`
	Description      *string              `json:"description" xml:"Description,omitempty"`
	PointsOfInterest []PointOfInterestDTO `json:"pointsOfInterest" xml:"PointsOfInterest>PointOfInterestDto"`
}

// CityWithoutPointsOfInterestDTO - город без вложенной коллекции
type CityWithoutPointsOfInterestDTO struct {
	XMLName     xml.Name `json:"-" xml:"CityWithoutPointsOfInterestDto"`
	ID          int64    `json:"id" xml:"Id"`
	Name        string   `json:"name" xml:"Name"`
	Description *string  `json:"description" xml:"Description,omitempty"`
}

// CityList is rendered as a JSON array, or as a single XML root element.
type CityList []CityWithoutPointsOfInterestDTO

func (l CityList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeXMLList(e, "ArrayOfCityWithoutPointsOfInterestDto", l)
}

// CityListQuery - параметры запроса списка городов
type CityListQuery struct {
	Name        string `json:"name" query:"name"`
	SearchQuery string `json:"searchQuery" query:"searchQuery"`
	PageNumber  int    `json:"pageNumber" query:"pageNumber" validate:"min=1"`
	PageSize    int    `json:"pageSize" query:"pageSize" validate:"min=1"`
}

func encodeXMLList[T any](e *xml.Encoder, root string, items []T) error {
	start := xml.StartElement{Name: xml.Name{Local: root}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, item := range items {
		if err := e.Encode(item); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
