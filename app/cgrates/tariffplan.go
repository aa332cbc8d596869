package cgrates

import (
	"context"
)

// TPResourceID identifies a tariff plan resource (destination, rate and so on) within tariff plan TPid
type TPResourceID struct {
	TPid string
	ID   string
}

// TPDestination is a named list of prefixes
type TPDestination struct {
	TPid     string
	ID       string
	Prefixes []string
	Extra    Params // merged into parameter object, explicit fields win
}

// RateSlot is a single rate definition of TPRate
type RateSlot struct {
	ConnectFee         float64
	Rate               float64
	RateUnit           string // i.e. "60s"
	RateIncrement      string // i.e. "1s"
	GroupIntervalStart string // i.e. "0s"
}

// TPRate is a named list of rate slots
type TPRate struct {
	TPid      string
	ID        string
	RateSlots []RateSlot
	Extra     Params
}

// DestinationRate binds rate to destination. Nil RoundingDecimals, MaxCost and empty MaxCostStrategy sent as null,
// engine applies its own defaults for them.
type DestinationRate struct {
	RoundingDecimals *int
	RateID           string
	DestinationID    string
	MaxCost          *float64
	MaxCostStrategy  string
	RoundingMethod   string // i.e. "*up"
}

// TPDestinationRate is a named list of destination rates
type TPDestinationRate struct {
	TPid             string
	ID               string
	DestinationRates []DestinationRate
	Extra            Params
}

// RatingPlanBinding binds destination rates to timing
type RatingPlanBinding struct {
	TimingID           string
	Weight             float64
	DestinationRatesID string
}

// TPRatingPlan is a named list of rating plan bindings
type TPRatingPlan struct {
	TPid               string
	ID                 string
	RatingPlanBindings []RatingPlanBinding
	Extra              Params
}

// RatingPlanActivation activates rating plan from ActivationTime
type RatingPlanActivation struct {
	ActivationTime   string
	FallbackSubjects string
	RatingPlanID     string
}

// TPRatingProfile attaches rating plans to load id, tenant, category and subject
type TPRatingProfile struct {
	TPid                  string
	LoadID                string
	Tenant                string // optional
	Category              string
	Subject               string
	RatingPlanActivations []RatingPlanActivation
	Extra                 Params
}

// RatingProfileKey identifies rating profile. Remote side knows it by composite id LoadID:Tenant:Category:Subject
type RatingProfileKey struct {
	TPid     string
	LoadID   string
	Tenant   string
	Category string
	Subject  string
}

// ID returns composite rating profile id
func (k RatingProfileKey) ID() string {
	return compositeKey(k.LoadID, k.Tenant, k.Category, k.Subject)
}

// LoadTariffPlan loads tariff plan TPid from stor db into data db
type LoadTariffPlan struct {
	TPid           string
	DryRun         bool
	SkipValidation bool // remote Validate is true unless set
	Extra          Params
}

// SetTPDestination creates or updates destination
func (c *Client) SetTPDestination(ctx context.Context, req TPDestination) (*Response, error) {
	if err := validate(MethodSetTPDestination, present("TPid", req.TPid), present("ID", req.ID),
		given("Prefixes", req.Prefixes != nil)); err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodSetTPDestination, destinationParams(req))
}

// GetTPDestination returns destination with its prefixes
func (c *Client) GetTPDestination(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodGetTPDestination, id)
}

// RemoveTPDestination removes destination
func (c *Client) RemoveTPDestination(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodRemoveTPDestination, id)
}

// SetTPRate creates or updates rate
func (c *Client) SetTPRate(ctx context.Context, req TPRate) (*Response, error) {
	if err := validate(MethodSetTPRate, present("TPid", req.TPid), present("ID", req.ID),
		given("RateSlots", req.RateSlots != nil)); err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodSetTPRate, rateParams(req))
}

// GetTPRate returns rate
func (c *Client) GetTPRate(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodGetTPRate, id)
}

// RemoveTPRate removes rate
func (c *Client) RemoveTPRate(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodRemoveTPRate, id)
}

// SetTPDestinationRate creates or updates destination rate
func (c *Client) SetTPDestinationRate(ctx context.Context, req TPDestinationRate) (*Response, error) {
	if err := validate(MethodSetTPDestinationRate, present("TPid", req.TPid), present("ID", req.ID),
		given("DestinationRates", req.DestinationRates != nil)); err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodSetTPDestinationRate, destinationRateParams(req))
}

// GetTPDestinationRate returns destination rate
func (c *Client) GetTPDestinationRate(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodGetTPDestinationRate, id)
}

// RemoveTPDestinationRate removes destination rate
func (c *Client) RemoveTPDestinationRate(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodRemoveTPDestinationRate, id)
}

// SetTPRatingPlan creates or updates rating plan
func (c *Client) SetTPRatingPlan(ctx context.Context, req TPRatingPlan) (*Response, error) {
	if err := validate(MethodSetTPRatingPlan, present("TPid", req.TPid), present("ID", req.ID),
		given("RatingPlanBindings", req.RatingPlanBindings != nil)); err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodSetTPRatingPlan, ratingPlanParams(req))
}

// GetTPRatingPlan returns rating plan
func (c *Client) GetTPRatingPlan(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodGetTPRatingPlan, id)
}

// RemoveTPRatingPlan removes rating plan
func (c *Client) RemoveTPRatingPlan(ctx context.Context, id TPResourceID) (*Response, error) {
	return c.tpResource(ctx, MethodRemoveTPRatingPlan, id)
}

// SetTPRatingProfile creates or updates rating profile
func (c *Client) SetTPRatingProfile(ctx context.Context, req TPRatingProfile) (*Response, error) {
	if err := validate(MethodSetTPRatingProfile, present("TPid", req.TPid), present("LoadID", req.LoadID),
		present("Category", req.Category), present("Subject", req.Subject),
		given("RatingPlanActivations", req.RatingPlanActivations != nil)); err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodSetTPRatingProfile, ratingProfileParams(req))
}

// GetTPRatingProfile returns rating profile by composite key
func (c *Client) GetTPRatingProfile(ctx context.Context, key RatingProfileKey) (*Response, error) {
	return c.ratingProfile(ctx, MethodGetTPRatingProfile, key)
}

// RemoveTPRatingProfile removes rating profile by composite key
func (c *Client) RemoveTPRatingProfile(ctx context.Context, key RatingProfileKey) (*Response, error) {
	return c.ratingProfile(ctx, MethodRemoveTPRatingProfile, key)
}

// LoadTariffPlanFromStorDB activates tariff plan
func (c *Client) LoadTariffPlanFromStorDB(ctx context.Context, req LoadTariffPlan) (*Response, error) {
	if err := validate(MethodLoadTariffPlanFromStorDB, present("TPid", req.TPid)); err != nil {
		return nil, err
	}
	return c.Call(ctx, MethodLoadTariffPlanFromStorDB, loadTariffPlanParams(req))
}

func (c *Client) tpResource(ctx context.Context, method string, id TPResourceID) (*Response, error) {
	if err := validate(method, present("TPid", id.TPid), present("ID", id.ID)); err != nil {
		return nil, err
	}
	return c.Call(ctx, method, tpResourceParams(id))
}

func (c *Client) ratingProfile(ctx context.Context, method string, key RatingProfileKey) (*Response, error) {
	if err := validate(method, present("TPid", key.TPid), present("LoadID", key.LoadID), present("Tenant", key.Tenant),
		present("Category", key.Category), present("Subject", key.Subject)); err != nil {
		return nil, err
	}
	return c.Call(ctx, method, ratingProfileKeyParams(key))
}

func tpResourceParams(id TPResourceID) Params {
	return Params{"TPid": id.TPid, "ID": id.ID}
}

func ratingProfileKeyParams(key RatingProfileKey) Params {
	return Params{"TPid": key.TPid, "RatingProfileId": key.ID()}
}

func destinationParams(req TPDestination) Params {
	return merge(Params{"TPid": req.TPid, "ID": req.ID, "Prefixes": req.Prefixes}, req.Extra)
}

func rateParams(req TPRate) Params {
	slots := make([]Params, 0, len(req.RateSlots))
	for _, s := range req.RateSlots {
		slots = append(slots, Params{
			"ConnectFee":         s.ConnectFee,
			"Rate":               s.Rate,
			"RateUnit":           s.RateUnit,
			"RateIncrement":      s.RateIncrement,
			"GroupIntervalStart": s.GroupIntervalStart,
		})
	}
	return merge(Params{"TPid": req.TPid, "ID": req.ID, "RateSlots": slots}, req.Extra)
}

func destinationRateParams(req TPDestinationRate) Params {
	rates := make([]Params, 0, len(req.DestinationRates))
	for _, r := range req.DestinationRates {
		rates = append(rates, Params{
			"RoundingDecimals": intOrNil(r.RoundingDecimals),
			"RateId":           r.RateID,
			"MaxCost":          floatOrNil(r.MaxCost),
			"MaxCostStrategy":  nullable(r.MaxCostStrategy),
			"DestinationId":    r.DestinationID,
			"RoundingMethod":   r.RoundingMethod,
		})
	}
	return merge(Params{"TPid": req.TPid, "ID": req.ID, "DestinationRates": rates}, req.Extra)
}

func ratingPlanParams(req TPRatingPlan) Params {
	bindings := make([]Params, 0, len(req.RatingPlanBindings))
	for _, b := range req.RatingPlanBindings {
		bindings = append(bindings, Params{
			"TimingId":           b.TimingID,
			"Weight":             b.Weight,
			"DestinationRatesId": b.DestinationRatesID,
		})
	}
	return merge(Params{"TPid": req.TPid, "ID": req.ID, "RatingPlanBindings": bindings}, req.Extra)
}

func ratingProfileParams(req TPRatingProfile) Params {
	activations := make([]Params, 0, len(req.RatingPlanActivations))
	for _, a := range req.RatingPlanActivations {
		activations = append(activations, Params{
			"ActivationTime":   a.ActivationTime,
			"FallbackSubjects": a.FallbackSubjects,
			"RatingPlanId":     a.RatingPlanID,
		})
	}
	return merge(Params{
		"TPid":                  req.TPid,
		"ID":                    nil, // rating profile has no plain id, remote side derives it
		"RatingPlanActivations": activations,
		"LoadId":                req.LoadID,
		"Category":              req.Category,
		"Subject":               req.Subject,
		"Tenant":                nullable(req.Tenant),
	}, req.Extra)
}

func loadTariffPlanParams(req LoadTariffPlan) Params {
	return merge(Params{"TPid": req.TPid, "DryRun": req.DryRun, "Validate": !req.SkipValidation}, req.Extra)
}
