package client

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexibleID accepts both string and numeric object IDs; PAPI returns
// either depending on the collection.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

func (id FlexibleID) String() string {
	return string(id)
}

func (id FlexibleID) Int() (int, error) {
	return strconv.Atoi(string(id))
}

// CreateResponse is the body returned by every PAPI collection POST.
type CreateResponse struct {
	ID FlexibleID `json:"id"`
}

// Persona identifies a user, group or well known SID.
type Persona struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}
