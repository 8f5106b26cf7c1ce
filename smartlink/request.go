// Package smartlink drives the multi-stage, mode-dependent link
// generation workflow: validate locally, pick the body encoding, submit,
// and interpret the two-stage result.
package smartlink

import (
	apierrors "github.com/apextrack/go-admin-console/internal/errors"
)

// GenerationMode selects single or double shortening. The server only
// distinguishes the double-shortener wire value; every other mode value
// is single.
type GenerationMode string

// ModeDoubleShortener is the wire value for double-shortener generation.
const ModeDoubleShortener GenerationMode = "smartlink_external_self"

// IsDouble reports whether the mode produces an intermediate shortened
// URL in addition to the final shared URL.
func (m GenerationMode) IsDouble() bool {
	return m == ModeDoubleShortener
}

// Asset is a binary attachment for the generated page.
type Asset struct {
	FileName string
	Content  []byte
}

// DeliveryType values as offered by the generator metadata.
const (
	DeliveryRender         = "render"
	DeliveryDirectRedirect = "direct_redirect"
)

// Request is a single generation submission. Field names follow the
// console form.
type Request struct {
	OfferID         string         // optional offer reference
	SharedDomain    string         // required
	RedirectType    string         // required, e.g. "301", "302"
	Type            string         // required delivery type: render or direct redirect
	Mode            GenerationMode // required
	ShortenerChoice string         // required iff Mode is double shortener
	MetaTitle       string         // optional meta override
	MetaDescription string         // optional meta override
	OGImage         *Asset         // optional Open Graph image
	Favicon         *Asset         // optional favicon
}

// HasAssets reports whether the request must be sent as multipart.
func (r Request) HasAssets() bool {
	return r.OGImage != nil || r.Favicon != nil
}

// Validate applies the local rules. A request that fails here never
// reaches the network.
func (r Request) Validate() error {
	if r.SharedDomain == "" {
		return &apierrors.ValidationError{Field: "shared_domain", Reason: "domain is required"}
	}
	if r.RedirectType == "" {
		return &apierrors.ValidationError{Field: "redirect_type", Reason: "redirect type is required"}
	}
	if r.Type == "" {
		return &apierrors.ValidationError{Field: "type", Reason: "delivery type is required"}
	}
	if r.Mode == "" {
		return &apierrors.ValidationError{Field: "generation_mode", Reason: "generation mode is required"}
	}
	if r.Mode.IsDouble() && r.ShortenerChoice == "" {
		return &apierrors.ValidationError{Field: "shortener_choice", Reason: "required when using the double shortener"}
	}
	if !r.Mode.IsDouble() && r.ShortenerChoice != "" {
		// A choice left over from a prior double-mode selection must not
		// leak into a single-mode submission.
		return &apierrors.ValidationError{Field: "shortener_choice", Reason: "only valid with the double shortener"}
	}
	return nil
}
