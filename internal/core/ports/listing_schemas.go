package ports

import "parceltrack/internal/pkg/listing"

var defaultSort = []listing.SortKey{{Field: "createdAt", Desc: true}}

// UserListing whitelists the user list filters. Name and email match by substring and the
// value "all" switches a filter off.
var UserListing = listing.Schema{
	Fields: map[string]listing.Field{
		"name":      {Kind: listing.KindString, Contains: true},
		"email":     {Kind: listing.KindString, Contains: true},
		"phone":     {Kind: listing.KindString},
		"role":      {Kind: listing.KindString},
		"isActive":  {Kind: listing.KindBool},
		"createdAt": {Kind: listing.KindTime},
	},
	Wildcard:    "all",
	DefaultSort: defaultSort,
}

// ParcelListing whitelists the parcel list filters.
var ParcelListing = listing.Schema{
	Fields: map[string]listing.Field{
		"trackingNumber":                  {Kind: listing.KindString},
		"status":                          {Kind: listing.KindString},
		"paymentStatus":                   {Kind: listing.KindString},
		"sender":                          {Kind: listing.KindUUID},
		"assignedCourier":                 {Kind: listing.KindUUID},
		"assignedAgent":                   {Kind: listing.KindUUID},
		"recipient.name":                  {Kind: listing.KindString},
		"recipient.email":                 {Kind: listing.KindString},
		"recipient.phone":                 {Kind: listing.KindString},
		"recipient.address.street":        {Kind: listing.KindString},
		"recipient.address.city":          {Kind: listing.KindString},
		"recipient.address.state":         {Kind: listing.KindString},
		"recipient.address.zipCode":       {Kind: listing.KindString},
		"recipient.address.country":       {Kind: listing.KindString},
		"parcelDetails.weight":            {Kind: listing.KindNumber},
		"parcelDetails.value":             {Kind: listing.KindNumber},
		"parcelDetails.category":          {Kind: listing.KindString},
		"parcelDetails.dimensions.length": {Kind: listing.KindNumber},
		"parcelDetails.dimensions.width":  {Kind: listing.KindNumber},
		"parcelDetails.dimensions.height": {Kind: listing.KindNumber},
		"shipping.service":                {Kind: listing.KindString},
		"shipping.cost":                   {Kind: listing.KindNumber},
		"shipping.estimatedDelivery":      {Kind: listing.KindTime},
		"createdAt":                       {Kind: listing.KindTime},
		"updatedAt":                       {Kind: listing.KindTime},
	},
	Aliases: map[string]string{
		"weight":   "parcelDetails.weight",
		"service":  "shipping.service",
		"category": "parcelDetails.category",
	},
	Search:      []string{"trackingNumber", "recipient.name", "recipient.email"},
	DefaultSort: defaultSort,
}

// DeliveryListing whitelists the delivery list filters.
var DeliveryListing = listing.Schema{
	Fields: map[string]listing.Field{
		"status":            {Kind: listing.KindString},
		"parcel":            {Kind: listing.KindUUID},
		"courier":           {Kind: listing.KindUUID},
		"attempts":          {Kind: listing.KindNumber},
		"pickupDate":        {Kind: listing.KindTime},
		"estimatedDelivery": {Kind: listing.KindTime},
		"actualDelivery":    {Kind: listing.KindTime},
		"createdAt":         {Kind: listing.KindTime},
		"updatedAt":         {Kind: listing.KindTime},
	},
	DefaultSort: defaultSort,
}
