package domain

type ClientStatus string

const (
	ClientStatusActive     ClientStatus = "ACTIVE"
	ClientStatusRestricted ClientStatus = "RESTRICTED"
)

func (s ClientStatus) Valid() bool {
	return s == ClientStatusActive || s == ClientStatusRestricted
}

type Client struct {
	ID     int32        `json:"id"`
	Name   string       `json:"name"`
	Rut    string       `json:"rut"`
	Phone  string       `json:"phone"`
	Email  string       `json:"email"`
	Status ClientStatus `json:"status"`
}

// ClientDetails holds the fields a client update is allowed to touch.
type ClientDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
