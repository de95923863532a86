package services

import (
	"fmt"
	"math"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
)

// DefaultDistance is assumed, in miles, when no route distance is known.
const DefaultDistance = 100.0

const (
	perWeightUnit   = 2.0
	perDistanceUnit = 1.5
	distanceUnit    = 100.0
)

// ShippingCalculator prices parcels and estimates delivery dates per service level.
//
// Pricing rule:
//
//	cost = baseRate[service] + ceil(weight)*2 + ceil(distance/100)*1.5
//
// rounded to cents. A 3 kg express parcel over the default distance costs 20.49.
type ShippingCalculator struct {
	baseRates    map[parcel.Service]float64
	deliveryDays map[parcel.Service]int
}

// NewShippingCalculator returns a calculator with the standard, express and overnight
// rate and transit-day tables.
func NewShippingCalculator() ShippingCalculator {
	return ShippingCalculator{
		baseRates: map[parcel.Service]float64{
			parcel.Standard:  5.99,
			parcel.Express:   12.99,
			parcel.Overnight: 24.99,
		},
		deliveryDays: map[parcel.Service]int{
			parcel.Standard:  5,
			parcel.Express:   2,
			parcel.Overnight: 1,
		},
	}
}

// ShippingCost prices a parcel of weight over distance with the given service.
func (c ShippingCalculator) ShippingCost(weight float64, service parcel.Service, distance float64) (float64, error) {
	base, ok := c.baseRates[service]
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause("shipping.service", fmt.Errorf("%q has no rate", string(service)))
	}
	if weight <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("parcelDetails.weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	if distance < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is negative", distance))
	}

	cost := base + math.Ceil(weight)*perWeightUnit + math.Ceil(distance/distanceUnit)*perDistanceUnit
	return math.Round(cost*100) / 100, nil
}

// EstimatedDeliveryDate adds the service's delivery days to now.
func (c ShippingCalculator) EstimatedDeliveryDate(service parcel.Service, now time.Time) (time.Time, error) {
	days, ok := c.deliveryDays[service]
	if !ok {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("shipping.service", fmt.Errorf("%q has no delivery time", string(service)))
	}
	return now.AddDate(0, 0, days), nil
}

// Quote builds the shipping block of a parcel at DefaultDistance.
func (c ShippingCalculator) Quote(weight float64, service parcel.Service, now time.Time) (parcel.Shipping, error) {
	cost, err := c.ShippingCost(weight, service, DefaultDistance)
	if err != nil {
		return parcel.Shipping{}, err
	}
	eta, err := c.EstimatedDeliveryDate(service, now)
	if err != nil {
		return parcel.Shipping{}, err
	}
	return parcel.Shipping{Service: service, Cost: cost, EstimatedDelivery: eta}, nil
}
