package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/dto"
)

// guideAPI is a thin client for the service's /api/v1 routes.
type guideAPI struct {
	client *clients.Client
}

func newGuideAPI() (*guideAPI, error) {
	headers := map[string]string{"User-Agent": "rashictl"}
	if subject != "" {
		headers["X-User-ID"] = subject
	}

	if roles != "" {
		headers["X-User-Roles"] = roles
	}

	client, err := clients.New(&clients.Config{
		BaseURL:     serverURL,
		ServiceName: "rashi-tree-guide",
		Timeout:     timeout,
		Headers:     headers,
	})
	if err != nil {
		return nil, err
	}

	return &guideAPI{client: client}, nil
}

func (a *guideAPI) get(ctx context.Context, path string, target any) error {
	resp, err := a.client.Get(ctx, path, nil)
	if err != nil {
		return err
	}

	return explain(clients.ReadJSON(resp, target))
}

func (a *guideAPI) rashis(ctx context.Context) (dto.RashiListResponse, error) {
	var out dto.RashiListResponse
	err := a.get(ctx, "/api/v1/rashis", &out)

	return out, err
}

func (a *guideAPI) trees(ctx context.Context, key string) (dto.TreesByRashiResponse, error) {
	var out dto.TreesByRashiResponse
	err := a.get(ctx, "/api/v1/rashis/"+url.PathEscape(key)+"/trees", &out)

	return out, err
}

func (a *guideAPI) catalogReport(ctx context.Context) (dto.CatalogReportResponse, error) {
	var out dto.CatalogReportResponse
	err := a.get(ctx, "/api/v1/operator/catalog", &out)

	return out, err
}

func (a *guideAPI) compute(ctx context.Context, req dto.ComputeRequest) (dto.ComputeResponse, error) {
	var out dto.ComputeResponse

	resp, err := a.client.PostJSON(ctx, "/api/v1/rashi/compute", req)
	if err != nil {
		return out, err
	}

	return out, explain(clients.ReadJSON(resp, &out))
}

// explain turns an error envelope into a readable error.
func explain(err error) error {
	var statusErr *clients.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var envelope dto.ErrorResponse
	if json.Unmarshal([]byte(statusErr.Body), &envelope) != nil || envelope.Error.Code == "" {
		return fmt.Errorf("service answered %d %s", statusErr.StatusCode, http.StatusText(statusErr.StatusCode))
	}

	return fmt.Errorf("%s (%d): %s", envelope.Error.Code, statusErr.StatusCode, envelope.Error.Message)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
