package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexPrice is a monetary amount in rupees. Catalog data and persisted
// documents carry prices either as a plain number or as a "₹"-prefixed
// string; both decode to the same float64 here, so everything downstream
// works with one numeric representation.
type FlexPrice float64

func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "₹"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return v, nil
}

func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := parseAmount(s)
		if err != nil {
			return err
		}
		*p = FlexPrice(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = FlexPrice(f)
	return nil
}

func (p FlexPrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

func (p *FlexPrice) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*p = FlexPrice(raw.Double())
	case bsontype.Int32:
		*p = FlexPrice(raw.Int32())
	case bsontype.Int64:
		*p = FlexPrice(raw.Int64())
	case bsontype.String:
		v, err := parseAmount(raw.StringValue())
		if err != nil {
			return err
		}
		*p = FlexPrice(v)
	default:
		return fmt.Errorf("cannot decode %v as a price", t)
	}
	return nil
}

func (p FlexPrice) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(p))
}

// Product is a catalog entry. The catalog is static and read only.
type Product struct {
	ID              int               `bson:"id" json:"id"`
	Name            string            `bson:"name" json:"name"`
	Category        string            `bson:"category" json:"category"`
	Price           FlexPrice         `bson:"price" json:"price"`
	OriginalPrice   FlexPrice         `bson:"original_price,omitempty" json:"original_price,omitempty"`
	Discount        int               `bson:"discount,omitempty" json:"discount,omitempty"`
	Rating          float64           `bson:"rating" json:"rating"`
	Reviews         int               `bson:"reviews" json:"reviews"`
	Image           string            `bson:"image" json:"image"`
	Description     string            `bson:"description" json:"description"`
	FullDescription string            `bson:"full_description,omitempty" json:"full_description,omitempty"`
	Features        []string          `bson:"features,omitempty" json:"features,omitempty"`
	Specs           map[string]string `bson:"specs,omitempty" json:"specs,omitempty"`
}
