package inbound

import (
	"github.com/shandysiswandi/enquiry/internal/pkg/router"
)

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/contact", end.SendEnquiry)
}
