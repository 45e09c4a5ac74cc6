package customer

import (
	"encoding/json"
	"time"

	"github.com/circulo-sport/courtdesk/store"
)

type Customer struct {
	ID           string    `json:"id"`
	MemberNumber string    `json:"memberNumber"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

func ID(c Customer) string { return c.ID }

func (c *Customer) UnmarshalJSON(data []byte) error {
	type plain Customer

	*c = Customer{}
	aux := struct {
		*plain
		CreatedAt json.RawMessage `json:"createdAt"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.CreatedAt, _ = store.LenientTime(aux.CreatedAt)

	return nil
}
