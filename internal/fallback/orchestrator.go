package fallback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eleven-am/marketplace-analytics/internal/analytics"
	"github.com/eleven-am/marketplace-analytics/internal/synthesis"
)

var (
	ErrUpstreamUnavailable = errors.New("upstream analytics unavailable")
	ErrContextUnavailable  = errors.New("caller model context unavailable")
)

const (
	EndpointDashboard = "dashboard"
	EndpointModel     = "model"
)

// Source is the authoritative analytics API.
type Source interface {
	Dashboard(ctx context.Context, tf analytics.Timeframe) (*analytics.Dashboard, error)
	ModelAnalytics(ctx context.Context, modelID string, tf analytics.Timeframe, iv analytics.Interval) (*analytics.ModelAnalytics, error)
	Models(ctx context.Context) ([]analytics.ModelInfo, error)
}

// Recorder receives one Event per served request. Recording failures are logged and dropped.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

type Event struct {
	Endpoint string
	Origin   Origin
	// Reason is why the real path was skipped; nil for real responses.
	Reason error
	// ContextErr is set when the caller's models could not be fetched.
	ContextErr error
}

type Orchestrator struct {
	source    Source
	generator *synthesis.Generator
	recorder  Recorder
	logger    *slog.Logger
}

type Option func(*Orchestrator)

func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

func New(source Source, generator *synthesis.Generator, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		source:    source,
		generator: generator,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Dashboard serves the caller's dashboard. When the upstream has nothing usable it
// synthesizes one over the caller's real listings, or over catalog models when those
// cannot be fetched.
func (o *Orchestrator) Dashboard(ctx context.Context, tf analytics.Timeframe) (Result[*analytics.Dashboard], error) {
	if !tf.Valid() {
		return Result[*analytics.Dashboard]{}, &analytics.ConfigurationError{Timeframe: tf, Reason: "unknown timeframe"}
	}

	d, err := o.source.Dashboard(ctx, tf)
	if err == nil && !d.IsEmpty() {
		o.record(ctx, Event{Endpoint: EndpointDashboard, Origin: OriginReal})
		return Real(d), nil
	}
	if ctx.Err() != nil {
		return Result[*analytics.Dashboard]{}, ctx.Err()
	}
	reason := unavailable(err)

	var synthetic *analytics.Dashboard
	models, ctxErr := o.callerModels(ctx)
	if ctxErr != nil {
		synthetic, err = o.generator.Dashboard(tf, o.generator.DefaultModelCount())
	} else {
		synthetic, err = o.generator.DashboardFor(tf, models)
	}
	if err != nil {
		return Result[*analytics.Dashboard]{}, err
	}

	o.logger.Warn("serving synthetic dashboard",
		"timeframe", tf,
		"models", synthetic.TotalModels,
		"reason", reason,
		"context_error", ctxErr,
	)
	o.record(ctx, Event{Endpoint: EndpointDashboard, Origin: OriginSynthetic, Reason: reason, ContextErr: ctxErr})
	return Synthetic(synthetic, reason), nil
}

// ModelAnalytics serves one model's analytics. An empty interval selects the
// timeframe's default.
func (o *Orchestrator) ModelAnalytics(ctx context.Context, modelID string, tf analytics.Timeframe, iv analytics.Interval) (Result[*analytics.ModelAnalytics], error) {
	if iv == "" {
		iv = analytics.DefaultInterval(tf)
	}
	if _, err := analytics.PointCount(tf, iv); err != nil {
		return Result[*analytics.ModelAnalytics]{}, err
	}

	m, err := o.source.ModelAnalytics(ctx, modelID, tf, iv)
	if err == nil && !m.IsEmpty() {
		o.record(ctx, Event{Endpoint: EndpointModel, Origin: OriginReal})
		return Real(m), nil
	}
	if ctx.Err() != nil {
		return Result[*analytics.ModelAnalytics]{}, ctx.Err()
	}
	reason := unavailable(err)

	req := synthesis.ModelRequest{ModelID: modelID, Timeframe: tf, Interval: iv}
	models, ctxErr := o.callerModels(ctx)
	if ctxErr == nil {
		req.Model = findModel(models, modelID)
	}

	synthetic, err := o.generator.ModelAnalytics(req)
	if err != nil {
		return Result[*analytics.ModelAnalytics]{}, err
	}

	o.logger.Warn("serving synthetic model analytics",
		"model_id", modelID,
		"timeframe", tf,
		"interval", iv,
		"known_model", req.Model != nil,
		"reason", reason,
		"context_error", ctxErr,
	)
	o.record(ctx, Event{Endpoint: EndpointModel, Origin: OriginSynthetic, Reason: reason, ContextErr: ctxErr})
	return Synthetic(synthetic, reason), nil
}

func (o *Orchestrator) callerModels(ctx context.Context) ([]analytics.ModelInfo, error) {
	models, err := o.source.Models(ctx)
	if err != nil {
		o.logger.Debug("caller models unavailable", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrContextUnavailable, err)
	}
	return models, nil
}

func (o *Orchestrator) record(ctx context.Context, ev Event) {
	if o.recorder == nil {
		return
	}
	if err := o.recorder.Record(context.WithoutCancel(ctx), ev); err != nil {
		o.logger.Error("failed to record serve event", "endpoint", ev.Endpoint, "error", err)
	}
}

func unavailable(err error) error {
	if err == nil {
		return fmt.Errorf("%w: empty payload", ErrUpstreamUnavailable)
	}
	return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
}

func findModel(models []analytics.ModelInfo, id string) *analytics.ModelInfo {
	for i := range models {
		if models[i].ID == id {
			m := models[i]
			return &m
		}
	}
	return nil
}
