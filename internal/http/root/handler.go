// Package root serves the greeting at the application root.
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/composeapps/web-app/internal/platform/logging"
)

// Register wires the root greeting into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "read-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greet the world",
		Tags:        []string{"Root"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "root get", zap.String("path", "/"))
	return &GetOutput{Body: Greeting{Hello: "World"}}, nil
}
