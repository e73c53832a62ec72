package enquiry

// Form holds the contact fields typed by the user. Website is the hidden
// honeypot field and stays empty for humans.
//
// Products is derived from the selector and overwritten whenever the form is
// read from a Session.
type Form struct {
	Name     string
	Email    string
	Phone    string
	Company  string
	Message  string
	Website  string
	Products []string
}

// Payload is the JSON body sent to the relay. Products carries display names,
// not identifiers, so the email reads naturally.
type Payload struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Company  string   `json:"company"`
	Message  string   `json:"message"`
	Website  string   `json:"website"`
	Products []string `json:"products"`
}

// Reply is the relay's JSON answer.
type Reply struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *struct {
		Reference string `json:"reference"`
	} `json:"data,omitempty"`
}

// Reference returns the relay's enquiry reference, if it sent one.
func (r *Reply) Reference() string {
	if r == nil || r.Data == nil {
		return ""
	}
	return r.Data.Reference
}

func (f Form) payload(productNames []string) Payload {
	if productNames == nil {
		productNames = []string{}
	}
	return Payload{
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Company:  f.Company,
		Message:  f.Message,
		Website:  f.Website,
		Products: productNames,
	}
}
