package handler

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// Schema serves the OpenAPI document as YAML, or as JSON when the client
// asks for ?format=json.
func (h *Handler) Schema(c echo.Context) error {
	if c.QueryParam("format") != "json" {
		return c.Blob(http.StatusOK, "application/vnd.oai.openapi; charset=utf-8", openAPIDocument)
	}

	var document map[string]any
	if err := yaml.Unmarshal(openAPIDocument, &document); err != nil {
		return fmt.Errorf("decode openapi document: %w", err)
	}
	return c.JSON(http.StatusOK, document)
}
