package middleware

import (
	"context"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/device"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
)

type deviceCtxKey struct{}

// DeviceAuth authenticates hardware devices via the X-API-Key header and
// stores the resolved device in the request context.
func DeviceAuth(deviceService device.DeviceService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("X-API-Key")

			d, err := deviceService.Authenticate(r.Context(), apiKey)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), deviceCtxKey{}, d)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// DeviceFromContext returns the device resolved by DeviceAuth.
func DeviceFromContext(ctx context.Context) (device.Device, bool) {
	d, ok := ctx.Value(deviceCtxKey{}).(device.Device)
	return d, ok
}
