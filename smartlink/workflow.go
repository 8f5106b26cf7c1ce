package smartlink

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/apextrack/go-admin-console/gateway"
	"github.com/apextrack/go-admin-console/resources"
)

// State is the workflow position: Idle → Submitting → {Succeeded,
// Failed}, re-enterable from either terminal state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Result is what the workflow surfaces to the caller. The intermediate
// URL is set only for double-shortener submissions: the submitted mode
// controls display, not whatever the payload happens to carry.
type Result struct {
	FinalSharedURL           string
	IntermediateShortenedURL string
}

// Workflow runs generation submissions against the generator client.
// Resubmission with identical inputs is not idempotent; the server may
// mint a new shortened URL per call, and the workflow never suppresses a
// resubmission.
type Workflow struct {
	client *resources.GeneratorClient

	lock   sync.Mutex
	state  State
	result *Result
	err    error
}

func NewWorkflow(client *resources.GeneratorClient) (*Workflow, error) {
	if client == nil {
		return nil, errors.New("[NewWorkflow] generator client is required")
	}
	return &Workflow{client: client}, nil
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.state
}

// Result returns the last successful result, if any.
func (w *Workflow) Result() *Result {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.result
}

// Err returns the failure of the last submission, if any.
func (w *Workflow) Err() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.err
}

// Submit validates req and, if it passes, sends it. Validation failures
// never enter Submitting and never touch the network. Gateway failures
// surface verbatim; a session-expired failure needs no special handling
// here because the gateway has already torn the session down.
func (w *Workflow) Submit(ctx context.Context, req Request) (*Result, error) {
	if err := w.begin(req); err != nil {
		return nil, err
	}

	resp, err := w.send(ctx, req)
	if err != nil {
		w.finish(nil, err)
		return nil, err
	}

	result := &Result{FinalSharedURL: resp.FinalSharedURL}
	if req.Mode.IsDouble() {
		result.IntermediateShortenedURL = resp.SmartlinkURLAfterFirstShortening
	}
	w.finish(result, nil)
	return result, nil
}

func (w *Workflow) begin(req Request) error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.state == StateSubmitting {
		return errors.New("[Workflow.Submit] submission already in progress")
	}
	if err := req.Validate(); err != nil {
		return err
	}
	w.state = StateSubmitting
	w.result = nil
	w.err = nil
	return nil
}

func (w *Workflow) finish(result *Result, err error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if err != nil {
		w.state = StateFailed
		w.err = err
		return
	}
	w.state = StateSucceeded
	w.result = result
}

func (w *Workflow) send(ctx context.Context, req Request) (*resources.GenerateResponse, error) {
	if !req.HasAssets() {
		return w.client.Generate(ctx, resources.GeneratePayload{
			Offer:           req.OfferID,
			SharedDomain:    req.SharedDomain,
			RedirectType:    req.RedirectType,
			Type:            req.Type,
			GenerationMode:  string(req.Mode),
			ShortenerChoice: req.ShortenerChoice,
			MetaTitle:       req.MetaTitle,
			MetaDescription: req.MetaDescription,
		})
	}

	form := gateway.NewForm()
	if req.OfferID != "" {
		form.AddField("offer", req.OfferID)
	}
	form.AddField("shared_domain", req.SharedDomain)
	form.AddField("redirect_type", req.RedirectType)
	form.AddField("type", req.Type)
	form.AddField("generation_mode", string(req.Mode))
	if req.ShortenerChoice != "" {
		form.AddField("shortener_choice", req.ShortenerChoice)
	}
	if req.MetaTitle != "" {
		form.AddField("meta_title", req.MetaTitle)
	}
	if req.MetaDescription != "" {
		form.AddField("meta_description", req.MetaDescription)
	}
	if req.OGImage != nil {
		form.AddFile("og_image_file", req.OGImage.FileName, req.OGImage.Content)
	}
	if req.Favicon != nil {
		form.AddFile("favicon_file", req.Favicon.FileName, req.Favicon.Content)
	}
	return w.client.GenerateUpload(ctx, form)
}
