package inventory

import (
	"github.com/opensvc/sfclient/util/jsonfield"
)

// Page is a chunk of a query result. A non-empty ContinuationToken
// means more items can be fetched by passing the token to the next query.
type Page[T any] struct {
	ContinuationToken *string
	Items             []T
}

func (t *Page[T]) fields(c jsonfield.Codec[T]) jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("ContinuationToken", &t.ContinuationToken, jsonfield.String),
		jsonfield.RequiredList("Items", &t.Items, c),
	}
}

// More returns true if the query has more items to fetch.
func (t Page[T]) More() bool {
	return t.ContinuationToken != nil && *t.ContinuationToken != ""
}

// Next returns the continuation token, or an empty string.
func (t Page[T]) Next() string {
	if t.ContinuationToken == nil {
		return ""
	}
	return *t.ContinuationToken
}
