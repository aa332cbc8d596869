// Package fake provides stand-in for cgrates.Client returning canned responses without any network activity.
// Responses are produced by Registry, a map of remote method names to result providers.
package fake

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/umputun/cgrates/app/cgrates"
)

// ErrUnknownMethod returned for method names not known to cgrates.Engine
var ErrUnknownMethod = errors.New("unknown method")

// Provider makes result for a single call
type Provider func() interface{}

// Registry maps remote method names to result providers.
// All cgrates.Methods() registered, methods without a provider answer with "OK".
type Registry struct {
	lock      sync.RWMutex
	providers map[string]Provider
}

// NewRegistry makes registry with canned results for GetCDRs and GetAccount
func NewRegistry() *Registry {
	res := Registry{providers: map[string]Provider{}}
	for _, m := range cgrates.Methods() {
		res.providers[m] = nil
	}
	res.providers[cgrates.MethodGetCDRs] = cdrs
	res.providers[cgrates.MethodGetAccount] = account
	return &res
}

// Set replaces provider for method, nil provider resets it to the default "OK"
func (r *Registry) Set(method string, p Provider) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.providers[method]; !ok {
		return errors.Wrapf(ErrUnknownMethod, "can't set provider for %s", method)
	}
	r.providers[method] = p
	return nil
}

// Known checks if method registered
func (r *Registry) Known(method string) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	_, ok := r.providers[method]
	return ok
}

// Result returns raw result for method
func (r *Registry) Result(method string) (interface{}, error) {
	r.lock.RLock()
	p, ok := r.providers[method]
	r.lock.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMethod, "no provider for %s", method)
	}
	if p == nil {
		return "OK", nil
	}
	return p(), nil
}

// Respond makes response for method with a fresh id
func (r *Registry) Respond(method string) (*cgrates.Response, error) {
	res, err := r.Result(method)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(res)
	if err != nil {
		return nil, errors.Wrapf(err, "can't marshal result for %s", method)
	}
	return &cgrates.Response{ID: uuid.NewString(), Result: b}, nil
}

func cdrs() interface{} {
	return []map[string]interface{}{
		{
			"OrderID":     1,
			"Account":     uuid.NewString(),
			"Cost":        100,
			"ExtraFields": map[string]interface{}{},
			"ExtraInfo":   nil,
		},
	}
}

func account() interface{} {
	return map[string]interface{}{"BalanceMap": nil}
}

// Client implements cgrates.Engine with responses from Registry, arguments ignored.
// It never fails for methods of cgrates.Engine.
type Client struct {
	Registry *Registry
}

// New makes fake client with default registry
func New() *Client {
	return &Client{Registry: NewRegistry()}
}

func (c *Client) respond(method string) (*cgrates.Response, error) {
	reg := c.Registry
	if reg == nil {
		reg = NewRegistry()
	}
	return reg.Respond(method)
}

// Ping returns "OK"
func (c *Client) Ping(context.Context) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodPing)
}

// SetTPDestination returns canned response
func (c *Client) SetTPDestination(context.Context, cgrates.TPDestination) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodSetTPDestination)
}

// GetTPDestination returns canned response
func (c *Client) GetTPDestination(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetTPDestination)
}

// RemoveTPDestination returns canned response
func (c *Client) RemoveTPDestination(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodRemoveTPDestination)
}

// SetTPRate returns canned response
func (c *Client) SetTPRate(context.Context, cgrates.TPRate) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodSetTPRate)
}

// GetTPRate returns canned response
func (c *Client) GetTPRate(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetTPRate)
}

// RemoveTPRate returns canned response
func (c *Client) RemoveTPRate(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodRemoveTPRate)
}

// SetTPDestinationRate returns canned response
func (c *Client) SetTPDestinationRate(context.Context, cgrates.TPDestinationRate) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodSetTPDestinationRate)
}

// GetTPDestinationRate returns canned response
func (c *Client) GetTPDestinationRate(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetTPDestinationRate)
}

// RemoveTPDestinationRate returns canned response
func (c *Client) RemoveTPDestinationRate(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodRemoveTPDestinationRate)
}

// SetTPRatingPlan returns canned response
func (c *Client) SetTPRatingPlan(context.Context, cgrates.TPRatingPlan) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodSetTPRatingPlan)
}

// GetTPRatingPlan returns canned response
func (c *Client) GetTPRatingPlan(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetTPRatingPlan)
}

// RemoveTPRatingPlan returns canned response
func (c *Client) RemoveTPRatingPlan(context.Context, cgrates.TPResourceID) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodRemoveTPRatingPlan)
}

// SetTPRatingProfile returns canned response
func (c *Client) SetTPRatingProfile(context.Context, cgrates.TPRatingProfile) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodSetTPRatingProfile)
}

// GetTPRatingProfile returns canned response
func (c *Client) GetTPRatingProfile(context.Context, cgrates.RatingProfileKey) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetTPRatingProfile)
}

// RemoveTPRatingProfile returns canned response
func (c *Client) RemoveTPRatingProfile(context.Context, cgrates.RatingProfileKey) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodRemoveTPRatingProfile)
}

// LoadTariffPlanFromStorDB returns canned response
func (c *Client) LoadTariffPlanFromStorDB(context.Context, cgrates.LoadTariffPlan) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodLoadTariffPlanFromStorDB)
}

// SetAccount returns canned response
func (c *Client) SetAccount(context.Context, cgrates.AccountRequest) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodSetAccount)
}

// GetAccount returns account with empty BalanceMap
func (c *Client) GetAccount(context.Context, cgrates.AccountRequest) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetAccount)
}

// RemoveAccount returns canned response
func (c *Client) RemoveAccount(context.Context, cgrates.AccountRequest) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodRemoveAccount)
}

// AddBalance returns canned response
func (c *Client) AddBalance(context.Context, cgrates.BalanceRequest) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodAddBalance)
}

// DebitBalance returns canned response
func (c *Client) DebitBalance(context.Context, cgrates.BalanceRequest) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodDebitBalance)
}

// GetCDRs returns a single cdr
func (c *Client) GetCDRs(context.Context, cgrates.CDRsFilter) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetCDRs)
}

// ProcessExternalCDR returns canned response
func (c *Client) ProcessExternalCDR(context.Context, cgrates.ExternalCDR) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodProcessExternalCDR)
}

// SetChargerProfile returns canned response
func (c *Client) SetChargerProfile(context.Context, cgrates.ChargerProfile) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodSetChargerProfile)
}

// GetChargerProfile returns canned response
func (c *Client) GetChargerProfile(context.Context, cgrates.ChargerProfile) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetChargerProfile)
}

// RemoveChargerProfile returns canned response
func (c *Client) RemoveChargerProfile(context.Context, cgrates.ChargerProfile) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodRemoveChargerProfile)
}

// GetCost returns canned response
func (c *Client) GetCost(context.Context, cgrates.CostRequest) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetCost)
}

// GetMaxSessionTime returns canned response
func (c *Client) GetMaxSessionTime(context.Context, cgrates.MaxSessionTimeRequest) (*cgrates.Response, error) {
	return c.respond(cgrates.MethodGetMaxSessionTime)
}
