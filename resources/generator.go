package resources

import (
	"context"

	"github.com/apextrack/go-admin-console/gateway"
)

type GeneratorClient struct {
	gw *gateway.Gateway
}

func NewGeneratorClient(gw *gateway.Gateway) *GeneratorClient {
	return &GeneratorClient{gw: gw}
}

// GeneratorData holds the choices the generation form is built from.
type GeneratorData struct {
	Offers           []Offer  `json:"offers"`
	Domains          []string `json:"domains"`
	RedirectTypes    []string `json:"redirect_types"`
	Types            []string `json:"types"`
	GenerationModes  []string `json:"generation_modes"`
	ShortenerChoices []string `json:"shortener_choices"`
}

// GeneratePayload is the structured (non-upload) generation request body.
// Field names match the original console form exactly.
type GeneratePayload struct {
	Offer           string `json:"offer,omitempty"`
	SharedDomain    string `json:"shared_domain"`
	RedirectType    string `json:"redirect_type"`
	Type            string `json:"type"`
	GenerationMode  string `json:"generation_mode"`
	ShortenerChoice string `json:"shortener_choice,omitempty"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
}

type GenerateResponse struct {
	FinalSharedURL                   string `json:"final_shared_url"`
	SmartlinkURLAfterFirstShortening string `json:"smartlink_url_after_first_shortening,omitempty"`
}

// Data fetches the generator form metadata.
func (c *GeneratorClient) Data(ctx context.Context) (*GeneratorData, error) {
	var data GeneratorData
	if err := c.gw.Do(ctx, "GET", "/generator-data", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Generate submits a generation request as structured JSON.
func (c *GeneratorClient) Generate(ctx context.Context, payload GeneratePayload) (*GenerateResponse, error) {
	var resp GenerateResponse
	if err := c.gw.Do(ctx, "POST", "/generate-smartlink", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateUpload submits a generation request as multipart form data.
// Required when binary assets ride along: the remote service cannot mix
// structured JSON and attachments in one encoding.
func (c *GeneratorClient) GenerateUpload(ctx context.Context, form *gateway.Form) (*GenerateResponse, error) {
	var resp GenerateResponse
	if err := c.gw.Upload(ctx, "POST", "/generate-smartlink", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
