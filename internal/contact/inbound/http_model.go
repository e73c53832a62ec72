package inbound

type EnquiryRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Company  string   `json:"company"`
	Products []string `json:"products"`
	Message  string   `json:"message"`
	Website  string   `json:"website"`
}

type EnquiryResponse struct {
	Reference string `json:"reference"`

	msg string
}

// Message is lifted into the response envelope by the router.
func (r EnquiryResponse) Message() string {
	return r.msg
}
