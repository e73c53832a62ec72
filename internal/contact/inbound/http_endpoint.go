package inbound

import (
	"github.com/shandysiswandi/enquiry/internal/contact/usecase"
	"github.com/shandysiswandi/enquiry/internal/pkg/router"
)

type HTTPEndpoint struct {
	uc uc
}

// SendEnquiry relays a contact-form submission to the sales mailbox.
func (h *HTTPEndpoint) SendEnquiry(r *router.Request) (any, error) {
	var req EnquiryRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := h.uc.SendEnquiry(r.Context(), usecase.SendEnquiryInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Products: req.Products,
		Message:  req.Message,
		Website:  req.Website,
	})
	if err != nil {
		return nil, err
	}

	return EnquiryResponse{Reference: out.Reference, msg: out.Message}, nil
}
