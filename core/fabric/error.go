package fabric

import (
	"fmt"

	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// FabricError is the body of the api error responses.
	FabricError struct {
		Detail FabricErrorDetail
	}

	// FabricErrorDetail describes the error.
	FabricErrorDetail struct {
		Code    string
		Message *string
	}
)

var FabricErrorCodec = jsonfield.Object[FabricError]()

func (t *FabricError) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Error", &t.Detail, jsonfield.Object[FabricErrorDetail]()),
	}
}

func (t *FabricErrorDetail) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Code", &t.Code, jsonfield.String),
		jsonfield.Optional("Message", &t.Message, jsonfield.String),
	}
}

func (t FabricError) Error() string {
	if t.Detail.Message == nil {
		return t.Detail.Code
	}
	return fmt.Sprintf("%s: %s", t.Detail.Code, *t.Detail.Message)
}
