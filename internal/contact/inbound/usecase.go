package inbound

import (
	"context"

	"github.com/shandysiswandi/enquiry/internal/contact/usecase"
)

type uc interface {
	SendEnquiry(ctx context.Context, in usecase.SendEnquiryInput) (*usecase.SendEnquiryOutput, error)
}
