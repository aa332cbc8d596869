package cgrates

import (
	"context"
)

// remote method names
const (
	MethodPing                     = "APIerSv2.Ping"
	MethodSetTPDestination         = "APIerSv2.SetTPDestination"
	MethodGetTPDestination         = "APIerSv1.GetTPDestination"
	MethodRemoveTPDestination      = "APIerSv1.RemoveTPDestination"
	MethodSetTPRate                = "APIerSv1.SetTPRate"
	MethodGetTPRate                = "APIerSv1.GetTPRate"
	MethodRemoveTPRate             = "APIerSv1.RemoveTPRate"
	MethodSetTPDestinationRate     = "APIerSv1.SetTPDestinationRate"
	MethodGetTPDestinationRate     = "APIerSv1.GetTPDestinationRate"
	MethodRemoveTPDestinationRate  = "APIerSv1.RemoveTPDestinationRate"
	MethodSetTPRatingPlan          = "APIerSv1.SetTPRatingPlan"
	MethodGetTPRatingPlan          = "APIerSv1.GetTPRatingPlan"
	MethodRemoveTPRatingPlan       = "APIerSv1.RemoveTPRatingPlan"
	MethodSetTPRatingProfile       = "APIerSv1.SetTPRatingProfile"
	MethodGetTPRatingProfile       = "APIerSv1.GetTPRatingProfile"
	MethodRemoveTPRatingProfile    = "APIerSv1.RemoveTPRatingProfile"
	MethodSetAccount               = "APIerSv2.SetAccount"
	MethodGetAccount               = "APIerSv2.GetAccount"
	MethodRemoveAccount            = "APIerSv1.RemoveAccount"
	MethodLoadTariffPlanFromStorDB = "APIerSv1.LoadTariffPlanFromStorDb"
	MethodAddBalance               = "APIerSv1.AddBalance"
	MethodDebitBalance             = "APIerSv1.DebitBalance"
	MethodGetCDRs                  = "APIerSv2.GetCDRs"
	MethodProcessExternalCDR       = "CDRsV1.ProcessExternalCDR"
	MethodSetChargerProfile        = "APIerSv1.SetChargerProfile"
	MethodGetChargerProfile        = "APIerSv1.GetChargerProfile"
	MethodRemoveChargerProfile     = "APIerSv1.RemoveChargerProfile"
	MethodGetCost                  = "APIerSv1.GetCost"
	MethodGetMaxSessionTime        = "Responder.GetMaxSessionTime"
)

// Methods returns names of all remote methods supported by Engine
func Methods() []string {
	return []string{
		MethodPing,
		MethodSetTPDestination, MethodGetTPDestination, MethodRemoveTPDestination,
		MethodSetTPRate, MethodGetTPRate, MethodRemoveTPRate,
		MethodSetTPDestinationRate, MethodGetTPDestinationRate, MethodRemoveTPDestinationRate,
		MethodSetTPRatingPlan, MethodGetTPRatingPlan, MethodRemoveTPRatingPlan,
		MethodSetTPRatingProfile, MethodGetTPRatingProfile, MethodRemoveTPRatingProfile,
		MethodSetAccount, MethodGetAccount, MethodRemoveAccount,
		MethodLoadTariffPlanFromStorDB,
		MethodAddBalance, MethodDebitBalance,
		MethodGetCDRs, MethodProcessExternalCDR,
		MethodSetChargerProfile, MethodGetChargerProfile, MethodRemoveChargerProfile,
		MethodGetCost, MethodGetMaxSessionTime,
	}
}

// Engine defines all operations supported by cgr-engine api.
// Implemented by Client and by fake.Client.
type Engine interface {
	Ping(ctx context.Context) (*Response, error)

	SetTPDestination(ctx context.Context, req TPDestination) (*Response, error)
	GetTPDestination(ctx context.Context, id TPResourceID) (*Response, error)
	RemoveTPDestination(ctx context.Context, id TPResourceID) (*Response, error)

	SetTPRate(ctx context.Context, req TPRate) (*Response, error)
	GetTPRate(ctx context.Context, id TPResourceID) (*Response, error)
	RemoveTPRate(ctx context.Context, id TPResourceID) (*Response, error)

	SetTPDestinationRate(ctx context.Context, req TPDestinationRate) (*Response, error)
	GetTPDestinationRate(ctx context.Context, id TPResourceID) (*Response, error)
	RemoveTPDestinationRate(ctx context.Context, id TPResourceID) (*Response, error)

	SetTPRatingPlan(ctx context.Context, req TPRatingPlan) (*Response, error)
	GetTPRatingPlan(ctx context.Context, id TPResourceID) (*Response, error)
	RemoveTPRatingPlan(ctx context.Context, id TPResourceID) (*Response, error)

	SetTPRatingProfile(ctx context.Context, req TPRatingProfile) (*Response, error)
	GetTPRatingProfile(ctx context.Context, key RatingProfileKey) (*Response, error)
	RemoveTPRatingProfile(ctx context.Context, key RatingProfileKey) (*Response, error)

	LoadTariffPlanFromStorDB(ctx context.Context, req LoadTariffPlan) (*Response, error)

	SetAccount(ctx context.Context, req AccountRequest) (*Response, error)
	GetAccount(ctx context.Context, req AccountRequest) (*Response, error)
	RemoveAccount(ctx context.Context, req AccountRequest) (*Response, error)

	AddBalance(ctx context.Context, req BalanceRequest) (*Response, error)
	DebitBalance(ctx context.Context, req BalanceRequest) (*Response, error)

	GetCDRs(ctx context.Context, filter CDRsFilter) (*Response, error)
	ProcessExternalCDR(ctx context.Context, cdr ExternalCDR) (*Response, error)

	SetChargerProfile(ctx context.Context, req ChargerProfile) (*Response, error)
	GetChargerProfile(ctx context.Context, req ChargerProfile) (*Response, error)
	RemoveChargerProfile(ctx context.Context, req ChargerProfile) (*Response, error)

	GetCost(ctx context.Context, req CostRequest) (*Response, error)
	GetMaxSessionTime(ctx context.Context, req MaxSessionTimeRequest) (*Response, error)
}

// Ping checks if engine is alive, result is "Pong"
func (c *Client) Ping(ctx context.Context) (*Response, error) {
	return c.Call(ctx, MethodPing)
}
