package cgrates

import (
	"context"
)

// ChargerProfile identifies charger profile, the rest of profile fields (i.e. "RunID", "AttributeIDs") go to Extra
type ChargerProfile struct {
	ID     string
	Tenant string
	Extra  Params
}

// SetChargerProfile creates or updates charger profile
func (c *Client) SetChargerProfile(ctx context.Context, req ChargerProfile) (*Response, error) {
	return c.chargerProfile(ctx, MethodSetChargerProfile, req)
}

// GetChargerProfile returns charger profile
func (c *Client) GetChargerProfile(ctx context.Context, req ChargerProfile) (*Response, error) {
	return c.chargerProfile(ctx, MethodGetChargerProfile, req)
}

// RemoveChargerProfile removes charger profile
func (c *Client) RemoveChargerProfile(ctx context.Context, req ChargerProfile) (*Response, error) {
	return c.chargerProfile(ctx, MethodRemoveChargerProfile, req)
}

func (c *Client) chargerProfile(ctx context.Context, method string, req ChargerProfile) (*Response, error) {
	if err := validate(method, present("ID", req.ID), present("Tenant", req.Tenant)); err != nil {
		return nil, err
	}
	return c.Call(ctx, method, merge(Params{"ID": req.ID, "Tenant": req.Tenant}, req.Extra))
}
