// Package client is a typed HTTP client for the agenda API with an
// in-memory cache of list results.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"agenda_tecnica/internal/domain/entities"
)

// NewActividad is the create payload. Empty fields take the server defaults.
type NewActividad struct {
	Tipo       string `json:"tipo,omitempty"`
	Cliente    string `json:"cliente"`
	Horario    string `json:"horario,omitempty"`
	Servicio   string `json:"servicio,omitempty"`
	Direccion  string `json:"direccion,omitempty"`
	Telefono   string `json:"telefono,omitempty"`
	Costo      string `json:"costo,omitempty"`
	Estado     string `json:"estado,omitempty"`
	AssignedTo string `json:"assigned_to,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	Fecha      string `json:"fecha,omitempty"`
	Notas      string `json:"notas,omitempty"`
}

// Patch is a partial update. Nil fields are not sent.
type Patch struct {
	Tipo       *string `json:"tipo,omitempty"`
	Cliente    *string `json:"cliente,omitempty"`
	Horario    *string `json:"horario,omitempty"`
	Servicio   *string `json:"servicio,omitempty"`
	Direccion  *string `json:"direccion,omitempty"`
	Telefono   *string `json:"telefono,omitempty"`
	Costo      *string `json:"costo,omitempty"`
	Estado     *string `json:"estado,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	CreatedBy  *string `json:"created_by,omitempty"`
	Fecha      *string `json:"fecha,omitempty"`
	Notas      *string `json:"notas,omitempty"`
}

// ListTTL bounds how long a cached list is served.
const ListTTL = 30 * time.Second

type Client struct {
	baseURL string
	client  *http.Client
	loc     *time.Location
	now     func() time.Time

	mu    sync.Mutex
	gen   uint64
	lists map[entities.ListFilter]listEntry
}

type listEntry struct {
	items     []entities.Actividad
	fetchedAt time.Time
}

// New creates a client for the given address or URL.
func New(addr string, httpClient *http.Client) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(addr), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: baseURL,
		client:  httpClient,
		loc:     entities.LoadLocation(""),
		now:     time.Now,
		lists:   map[entities.ListFilter]listEntry{},
	}
}

// WithLocation sets the timezone used to resolve "today". It should match
// the server's APP_TIMEZONE.
func (c *Client) WithLocation(loc *time.Location) *Client {
	if loc != nil {
		c.loc = loc
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns the activities of a filter, from cache when possible. An
// empty fecha, "hoy" or "today" is resolved to the current date first, so
// the cache never serves a previous day. A response that arrives after a
// mutation started is returned but not cached.
func (c *Client) List(ctx context.Context, filter entities.ListFilter) ([]entities.Actividad, error) {
	now := c.now()
	filter.Fecha = c.resolveFecha(filter.Fecha, now)

	c.mu.Lock()
	if e, ok := c.lists[filter]; ok && now.Sub(e.fetchedAt) < ListTTL {
		c.mu.Unlock()
		return cloneItems(e.items), nil
	}
	gen := c.gen
	c.mu.Unlock()

	var items []entities.Actividad
	err := c.do(ctx, http.MethodGet, "/v1/actividades?"+filterQuery(filter).Encode(), nil, &items)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Actividad{}
	}

	c.mu.Lock()
	if c.gen == gen {
		c.lists[filter] = listEntry{items: cloneItems(items), fetchedAt: now}
	}
	c.mu.Unlock()
	return items, nil
}

func (c *Client) Get(ctx context.Context, id string) (entities.Actividad, error) {
	var a entities.Actividad
	err := c.do(ctx, http.MethodGet, "/v1/actividades/"+url.PathEscape(id), nil, &a)
	return a, err
}

func (c *Client) Resumen(ctx context.Context, fecha string) (entities.Resumen, error) {
	q := url.Values{}
	if fecha != "" {
		q.Set("fecha", fecha)
	}
	var r entities.Resumen
	err := c.do(ctx, http.MethodGet, "/v1/actividades/resumen?"+q.Encode(), nil, &r)
	return r, err
}

func (c *Client) Create(ctx context.Context, in NewActividad) (entities.Actividad, error) {
	defer c.mutate()()
	var a entities.Actividad
	err := c.do(ctx, http.MethodPost, "/v1/actividades", in, &a)
	return a, err
}

func (c *Client) Update(ctx context.Context, id string, patch Patch) (entities.Actividad, error) {
	defer c.mutate()()
	var a entities.Actividad
	err := c.do(ctx, http.MethodPut, "/v1/actividades/"+url.PathEscape(id), patch, &a)
	return a, err
}

func (c *Client) UpdateEstado(ctx context.Context, id, estado string) (entities.Actividad, error) {
	defer c.mutate()()
	var a entities.Actividad
	err := c.do(ctx, http.MethodPatch, "/v1/actividades/"+url.PathEscape(id)+"/estado", map[string]string{"estado": estado}, &a)
	return a, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	defer c.mutate()()
	return c.do(ctx, http.MethodDelete, "/v1/actividades/"+url.PathEscape(id), nil, nil)
}

// Invalidate drops every cached list.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.gen++
	clear(c.lists)
	c.mu.Unlock()
}

// mutate invalidates when a mutation starts and again when it ends, so
// lists fetched while it was in flight are never kept.
func (c *Client) mutate() func() {
	c.Invalidate()
	return c.Invalidate
}

func (c *Client) do(ctx context.Context, method, path string, payload any, dest any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp)
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func (c *Client) resolveFecha(fecha string, now time.Time) string {
	fecha = strings.TrimSpace(fecha)
	switch strings.ToLower(fecha) {
	case "", "hoy", "today":
		return entities.FechaDe(now, c.loc)
	}
	return fecha
}

func filterQuery(f entities.ListFilter) url.Values {
	q := url.Values{}
	if f.Fecha != "" {
		q.Set("fecha", f.Fecha)
	}
	if f.AssignedTo != "" {
		q.Set("assigned_to", f.AssignedTo)
	}
	if f.CreatedBy != "" {
		q.Set("created_by", f.CreatedBy)
	}
	return q
}

func cloneItems(items []entities.Actividad) []entities.Actividad {
	out := make([]entities.Actividad, len(items))
	copy(out, items)
	return out
}
