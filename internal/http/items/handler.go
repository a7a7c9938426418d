// Package items serves the item lookup endpoint.
package items

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/composeapps/web-app/internal/platform/logging"
)

// Register wires item routes into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "read-item",
		Method:      http.MethodGet,
		Path:        "/items/{item_id}",
		Summary:     "Read an item",
		Description: "Echoes the item identifier and the optional q query parameter.",
		Tags:        []string{"Items"},
	}, getHandler)
}

func getHandler(ctx context.Context, input *GetInput) (*GetOutput, error) {
	applog.LogInfo(ctx, "item get",
		zap.Int64("itemId", input.ItemID),
		zap.Bool("hasQuery", input.QSet),
	)
	return &GetOutput{Body: Item{ItemID: input.ItemID, Q: input.query()}}, nil
}
