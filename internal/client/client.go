// Package client is a small REST client for the brewnote service, used by
// the brewnotectl command.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/brewnote/brewnote/internal/model"
	"github.com/brewnote/brewnote/internal/storage"
	"github.com/brewnote/brewnote/internal/views"
)

// Client talks to a running brewnote service.
type Client struct {
	http *resty.Client
}

// New builds a client against the service base URL, e.g. http://127.0.0.1:8077.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	return &Client{http: c}
}

// BeanList is the reply shape of the bean listing endpoint.
type BeanList struct {
	Beans []BeanView `json:"beans"`
	Count int        `json:"count"`
}

// BeanView is a bean plus its derived display score.
type BeanView struct {
	model.Bean
	DisplayScore float64 `json:"displayScore"`
}

// RecipeList is the reply shape of the recipe listing endpoint.
type RecipeList struct {
	Recipes []model.Recipe `json:"recipes"`
	Count   int            `json:"count"`
	Facets  struct {
		Types       []string `json:"types"`
		Drippers    []string `json:"drippers"`
		RoastLevels []string `json:"roastLevels"`
		BeanAmounts []string `json:"beanAmounts"`
	} `json:"facets"`
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: %s", model.ErrNotFound, resp.String())
	}
	if resp.IsError() {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// ListBeans fetches the bean catalogue, optionally narrowed by a search query.
func (c *Client) ListBeans(ctx context.Context, query string) (*BeanList, error) {
	var out BeanList
	req := c.http.R().SetContext(ctx).SetResult(&out)
	if query != "" {
		req.SetQueryParam("q", query)
	}
	if err := check(req.Get("/api/beans")); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBean fetches one bean by id.
func (c *Client) GetBean(ctx context.Context, id string) (*BeanView, error) {
	var out BeanView
	err := check(c.http.R().SetContext(ctx).SetResult(&out).Get("/api/beans/" + url.PathEscape(id)))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBean adds a bean to the catalogue.
func (c *Client) CreateBean(ctx context.Context, b model.Bean) (*BeanView, error) {
	var out BeanView
	err := check(c.http.R().SetContext(ctx).SetBody(&b).SetResult(&out).Post("/api/beans"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBean removes a bean.
func (c *Client) DeleteBean(ctx context.Context, id string) error {
	return check(c.http.R().SetContext(ctx).Delete("/api/beans/" + url.PathEscape(id)))
}

// AddRecord logs a tasting record against a bean.
func (c *Client) AddRecord(ctx context.Context, beanID string, rec model.TastingRecord) (*model.TastingRecord, error) {
	var out model.TastingRecord
	err := check(c.http.R().SetContext(ctx).SetBody(&rec).SetResult(&out).
		Post("/api/beans/" + url.PathEscape(beanID) + "/records"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRecipes fetches recipes, optionally filtered, together with facets.
func (c *Client) ListRecipes(ctx context.Context, filter views.RecipeFilter) (*RecipeList, error) {
	var out RecipeList
	req := c.http.R().SetContext(ctx).SetResult(&out)
	if filter.Type != "" {
		req.SetQueryParam("type", filter.Type)
	}
	if filter.Dripper != "" {
		req.SetQueryParam("dripper", filter.Dripper)
	}
	if filter.RoastLevel != "" {
		req.SetQueryParam("roastLevel", filter.RoastLevel)
	}
	if filter.BeanAmount != "" {
		req.SetQueryParam("beanAmount", filter.BeanAmount)
	}
	if err := check(req.Get("/api/recipes")); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecipe fetches one recipe by id.
func (c *Client) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	var out model.Recipe
	err := check(c.http.R().SetContext(ctx).SetResult(&out).Get("/api/recipes/" + url.PathEscape(id)))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateRecipe adds a recipe.
func (c *Client) CreateRecipe(ctx context.Context, r model.Recipe) (*model.Recipe, error) {
	var out model.Recipe
	err := check(c.http.R().SetContext(ctx).SetBody(&r).SetResult(&out).Post("/api/recipes"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRecipe removes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return check(c.http.R().SetContext(ctx).Delete("/api/recipes/" + url.PathEscape(id)))
}

// ExportSnapshot downloads the full journal backup. The filename is the
// server's suggested backup name from the Content-Disposition header.
func (c *Client) ExportSnapshot(ctx context.Context) (*storage.Snapshot, string, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/snapshot")
	if err := check(resp, err); err != nil {
		return nil, "", err
	}
	var snap storage.Snapshot
	if err := json.Unmarshal(resp.Body(), &snap); err != nil {
		return nil, "", fmt.Errorf("decode snapshot: %w", err)
	}
	filename := ""
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		filename = params["filename"]
	}
	return &snap, filename, nil
}

// ImportSnapshot uploads a raw backup payload and returns the imported counts.
func (c *Client) ImportSnapshot(ctx context.Context, raw []byte) (beans, recipes int, err error) {
	var out struct {
		Beans   int `json:"beans"`
		Recipes int `json:"recipes"`
	}
	err = check(c.http.R().SetContext(ctx).SetBody(raw).SetResult(&out).Post("/api/snapshot"))
	if err != nil {
		return 0, 0, err
	}
	return out.Beans, out.Recipes, nil
}

// Health probes the service.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	err := check(c.http.R().SetContext(ctx).SetResult(&out).Get("/api/health"))
	if err != nil {
		return "", err
	}
	if out.Status != "healthy" {
		return out.Status, fmt.Errorf("service unhealthy")
	}
	return out.Status, nil
}
