// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/priyamvada/skillscope/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/priyamvada/skillscope/ent/analysisevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisEvent is the client for interacting with the AnalysisEvent builders.
	AnalysisEvent *AnalysisEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisEvent = NewAnalysisEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AnalysisEvent: NewAnalysisEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		AnalysisEvent: NewAnalysisEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisEvent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.AnalysisEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AnalysisEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisEventMutation:
		return c.AnalysisEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisEventClient is a client for the AnalysisEvent schema.
type AnalysisEventClient struct {
	config
}

// NewAnalysisEventClient returns a client for the AnalysisEvent from the given config.
func NewAnalysisEventClient(c config) *AnalysisEventClient {
	return &AnalysisEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisevent.Hooks(f(g(h())))`.
func (c *AnalysisEventClient) Use(hooks ...Hook) {
	c.hooks.AnalysisEvent = append(c.hooks.AnalysisEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisevent.Intercept(f(g(h())))`.
func (c *AnalysisEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisEvent = append(c.inters.AnalysisEvent, interceptors...)
}

// Create returns a builder for creating a AnalysisEvent entity.
func (c *AnalysisEventClient) Create() *AnalysisEventCreate {
	mutation := newAnalysisEventMutation(c.config, OpCreate)
	return &AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisEvent entities.
func (c *AnalysisEventClient) CreateBulk(builders ...*AnalysisEventCreate) *AnalysisEventCreateBulk {
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisEventClient) MapCreateBulk(slice any, setFunc func(*AnalysisEventCreate, int)) *AnalysisEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisEventCreateBulk{err: fmt.Errorf("calling to AnalysisEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisEvent.
func (c *AnalysisEventClient) Update() *AnalysisEventUpdate {
	mutation := newAnalysisEventMutation(c.config, OpUpdate)
	return &AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisEventClient) UpdateOne(_m *AnalysisEvent) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEvent(_m))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisEventClient) UpdateOneID(id int) *AnalysisEventUpdateOne {
	mutation := newAnalysisEventMutation(c.config, OpUpdateOne, withAnalysisEventID(id))
	return &AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisEvent.
func (c *AnalysisEventClient) Delete() *AnalysisEventDelete {
	mutation := newAnalysisEventMutation(c.config, OpDelete)
	return &AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisEventClient) DeleteOne(_m *AnalysisEvent) *AnalysisEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisEventClient) DeleteOneID(id int) *AnalysisEventDeleteOne {
	builder := c.Delete().Where(analysisevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisEventDeleteOne{builder}
}

// Query returns a query builder for AnalysisEvent.
func (c *AnalysisEventClient) Query() *AnalysisEventQuery {
	return &AnalysisEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisEvent entity by its id.
func (c *AnalysisEventClient) Get(ctx context.Context, id int) (*AnalysisEvent, error) {
	return c.Query().Where(analysisevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisEventClient) GetX(ctx context.Context, id int) *AnalysisEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnalysisEventClient) Hooks() []Hook {
	return c.hooks.AnalysisEvent
}

// Interceptors returns the client interceptors.
func (c *AnalysisEventClient) Interceptors() []Interceptor {
	return c.inters.AnalysisEvent
}

func (c *AnalysisEventClient) mutate(ctx context.Context, m *AnalysisEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisEvent []ent.Hook
	}
	inters struct {
		AnalysisEvent []ent.Interceptor
	}
)
