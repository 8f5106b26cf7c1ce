package resources

import (
	"context"

	"github.com/apextrack/go-admin-console/gateway"
)

type OffersClient struct {
	gw *gateway.Gateway
}

func NewOffersClient(gw *gateway.Gateway) *OffersClient {
	return &OffersClient{gw: gw}
}

// Offer statuses as reported by the server.
const (
	OfferStatusActive  = "active"
	OfferStatusPaused  = "paused"
	OfferStatusPending = "pending"
)

type Offer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	Status         string `json:"status"`
	Country        string `json:"country"`
	Device         string `json:"device"`
	CanShowToProxy bool   `json:"can_show_to_proxy"`
}

// OfferInput carries the writable offer fields. Pointer fields are
// omitted when nil so partial updates only touch what the caller set.
type OfferInput struct {
	Name           *string `json:"name,omitempty"`
	URL            *string `json:"url,omitempty"`
	Status         *string `json:"status,omitempty"`
	Country        *string `json:"country,omitempty"`
	Device         *string `json:"device,omitempty"`
	CanShowToProxy *bool   `json:"can_show_to_proxy,omitempty"`
}

// Ack is the generic write acknowledgment envelope.
type Ack struct {
	Message string `json:"message"`
}

func (c *OffersClient) List(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	if err := c.gw.Do(ctx, "GET", "/offers", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *OffersClient) Get(ctx context.Context, id string) (*Offer, error) {
	var offer Offer
	if err := c.gw.Do(ctx, "GET", "/offers/"+id, nil, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

func (c *OffersClient) Create(ctx context.Context, input OfferInput) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "POST", "/offers", input, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *OffersClient) Update(ctx context.Context, id string, input OfferInput) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "PUT", "/offers/"+id, input, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (c *OffersClient) Delete(ctx context.Context, id string) (*Ack, error) {
	var ack Ack
	if err := c.gw.Do(ctx, "DELETE", "/offers/"+id, nil, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}
