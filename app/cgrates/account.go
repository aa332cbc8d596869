package cgrates

import (
	"context"
)

// balance defaults used when caller leaves fields empty
const (
	DefaultBalanceExpiry         = "*unlimited"
	DefaultBalanceDestinationIDs = "*any"
	DefaultBalanceWeight         = 10.0
)

// AccountRequest identifies account, extra fields (i.e. "ActionPlanIDs") passed through
type AccountRequest struct {
	Tenant  string // optional, sent as null if empty
	Account string
	Extra   Params
}

// Balance describes balance to add or debit. Empty strings and nil Weight replaced with defaults or null.
type Balance struct {
	ID             string
	ExpiryTime     string   // defaults to DefaultBalanceExpiry
	RatingSubject  string
	Categories     string   // ";" separated
	DestinationIDs string   // ";" separated, defaults to DefaultBalanceDestinationIDs
	TimingIDs      string
	Weight         *float64 // defaults to DefaultBalanceWeight
	SharedGroups   string
	Blocker        bool
	Disabled       bool
}

// BalanceRequest adds or debits balance of the account
type BalanceRequest struct {
	Account         string
	Tenant          string
	BalanceType     string // i.e. "*monetary"
	Value           float64
	Balance         Balance
	Overwrite       bool
	ActionExtraData map[string]interface{}
	Cdrlog          bool
	Extra           Params
}

// SetAccount creates or updates account
func (c *Client) SetAccount(ctx context.Context, req AccountRequest) (*Response, error) {
	return c.account(ctx, MethodSetAccount, req)
}

// GetAccount returns account with balances
func (c *Client) GetAccount(ctx context.Context, req AccountRequest) (*Response, error) {
	return c.account(ctx, MethodGetAccount, req)
}

// RemoveAccount removes account
func (c *Client) RemoveAccount(ctx context.Context, req AccountRequest) (*Response, error) {
	return c.account(ctx, MethodRemoveAccount, req)
}

// AddBalance adds Value to account balance
func (c *Client) AddBalance(ctx context.Context, req BalanceRequest) (*Response, error) {
	return c.balance(ctx, MethodAddBalance, req)
}

// DebitBalance debits Value from account balance
func (c *Client) DebitBalance(ctx context.Context, req BalanceRequest) (*Response, error) {
	return c.balance(ctx, MethodDebitBalance, req)
}

func (c *Client) account(ctx context.Context, method string, req AccountRequest) (*Response, error) {
	if err := validate(method, present("Account", req.Account)); err != nil {
		return nil, err
	}
	return c.Call(ctx, method, accountParams(req))
}

func (c *Client) balance(ctx context.Context, method string, req BalanceRequest) (*Response, error) {
	if err := validate(method, present("Account", req.Account), present("Tenant", req.Tenant),
		present("BalanceType", req.BalanceType)); err != nil {
		return nil, err
	}
	return c.Call(ctx, method, balanceParams(req))
}

func accountParams(req AccountRequest) Params {
	return merge(Params{"Tenant": nullable(req.Tenant), "Account": req.Account}, req.Extra)
}

func balanceParams(req BalanceRequest) Params {
	b := req.Balance
	weight := DefaultBalanceWeight
	if b.Weight != nil {
		weight = *b.Weight
	}
	extraData := req.ActionExtraData
	if extraData == nil {
		extraData = map[string]interface{}{}
	}

	return merge(Params{
		"Account":     req.Account,
		"Tenant":      req.Tenant,
		"BalanceType": req.BalanceType,
		"Value":       req.Value,
		"Balance": Params{
			"ID":             nullable(b.ID),
			"ExpiryTime":     strOr(b.ExpiryTime, DefaultBalanceExpiry),
			"RatingSubject":  nullable(b.RatingSubject),
			"Categories":     nullable(b.Categories),
			"DestinationIDs": strOr(b.DestinationIDs, DefaultBalanceDestinationIDs),
			"TimingIDs":      nullable(b.TimingIDs),
			"Weight":         weight,
			"SharedGroups":   nullable(b.SharedGroups),
			"Blocker":        b.Blocker,
			"Disabled":       b.Disabled,
		},
		"ActionExtraData": extraData,
		"Overwrite":       req.Overwrite,
		"Cdrlog":          req.Cdrlog,
	}, req.Extra)
}
