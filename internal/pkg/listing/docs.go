// Package listing turns list-endpoint query strings into a typed, whitelisted Query and
// shapes paginated results.
//
// Supported query string forms:
//
//	status=pending                        equality
//	recipient.address.city=Austin         equality on a nested field
//	weight[gte]=5                         comparison (gt, gte, lt, lte)
//	parcelDetails[weight][lt]=10          bracketed nesting
//	parcelDetails.weight.gt=1             dotted operator
//	status[in]=pending,in_transit         membership, comma separated
//	search=austin                         OR of contains over the schema's search fields
//	sort=-createdAt,trackingNumber        ordering, "-" for descending
//	page=2&limit=10                       pagination
//
// Only fields declared in a Schema are accepted. Unknown fields and values that do not parse
// for their field are validation errors. Syntactically broken keys yield ErrMalformedQuery.
package listing
