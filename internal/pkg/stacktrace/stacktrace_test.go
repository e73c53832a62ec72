package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternalPaths(t *testing.T) {
	stack := []byte(`goroutine 7 [running]:
runtime/debug.Stack()
	/usr/local/go/src/runtime/debug/stack.go:26 +0x5e
github.com/shandysiswandi/enquiry/internal/pkg/router.middlewareRecoverer.func1.1()
	/app/internal/pkg/router/middleware_recover.go:40 +0x1a5
panic({0x8e2f60?, 0xa4d1c0?})
	/usr/local/go/src/runtime/panic.go:785 +0x132
github.com/shandysiswandi/enquiry/internal/contact/inbound.(*HTTPEndpoint).SendEnquiry(...)
	/app/internal/contact/inbound/http_endpoint.go:31
`)

	assert.Equal(t, []string{
		"internal/pkg/router/middleware_recover.go:40",
		"internal/contact/inbound/http_endpoint.go:31",
	}, InternalPaths(stack))
	assert.Empty(t, InternalPaths([]byte("goroutine 1 [running]:\nmain.main()\n\t/app/main.go:9 +0x1d\n")))
}
