package parcel_test

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

var created = time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)

func validRecipient() parcel.Recipient {
	return parcel.Recipient{
		Name:  "Bo Diaz",
		Email: "Bo@Example.com",
		Phone: "555-0101",
		Address: kernel.Address{
			Street:  "12 Oak St",
			City:    "Austin",
			State:   "TX",
			ZipCode: "73301",
		},
	}
}

func validDetails() parcel.Details {
	return parcel.Details{
		Weight:      3,
		Dimensions:  parcel.Dimensions{Length: 30, Width: 20, Height: 10},
		Description: "Books",
		Value:       40,
	}
}

func validShipping() parcel.Shipping {
	return parcel.Shipping{Service: parcel.Express, Cost: 20.49, EstimatedDelivery: created.AddDate(0, 0, 2)}
}

func newParcel() *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), "PKG1", kernel.NewUUID(), validRecipient(), validDetails(), validShipping(), created)
	if err != nil {
		panic(err)
	}
	return p
}
