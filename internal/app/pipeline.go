package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yourusername/media-relay-go/internal/domain"
	"github.com/yourusername/media-relay-go/pkg/logger"
	"go.uber.org/zap"
)

// helpText is sent in response to /help.
const helpText = `I watch for social media links and relay the media back here.

/help - show this text
/curse - send a random comment

Supported: Instagram posts/reels, YouTube Shorts, Twitter/X statuses, TikTok share links.`

// Pipeline is the acquisition orchestrator: it matches incoming message text
// against the handler registry, runs the matched platform's fetch, selects
// one media file and hands it to the delivery transport. One independent task
// per message; no retries, no shared state between runs.
type Pipeline struct {
	registry       domain.Registry
	sender         domain.MediaSender
	repo           domain.FetchRepository
	comments       *Comments
	failureMessage string
	logger         *zap.Logger
	events         *logger.MultiLogger
}

// NewPipeline creates a new acquisition pipeline
func NewPipeline(
	registry domain.Registry,
	sender domain.MediaSender,
	repo domain.FetchRepository,
	comments *Comments,
	failureMessage string,
	log *zap.Logger,
	events *logger.MultiLogger,
) *Pipeline {
	return &Pipeline{
		registry:       registry,
		sender:         sender,
		repo:           repo,
		comments:       comments,
		failureMessage: failureMessage,
		logger:         log,
		events:         events,
	}
}

// Dispatch returns the first registered handler matching text
func (p *Pipeline) Dispatch(text string) (domain.Handler, string, bool) {
	return p.registry.Dispatch(text)
}

// HandleCommand answers a slash command directly
func (p *Pipeline) HandleCommand(ctx context.Context, chatID int64, command string) {
	var err error
	switch command {
	case "help", "h", "?":
		err = p.sender.SendText(chatID, helpText)
	case "curse":
		err = p.sender.SendText(chatID, p.comments.BuildCaption())
	default:
		return
	}
	if err != nil {
		p.logger.Warn("Failed to answer command",
			zap.String("command", command), zap.Error(err))
	}
}

// HandleMessage dispatches message text and, on a match, runs the pipeline
// as an independent task. Messages without a recognized URL are ignored.
// The task carries its own panic boundary so a crash in one run can never
// take the message loop down with it.
func (p *Pipeline) HandleMessage(ctx context.Context, chatID int64, text string) {
	handler, target, ok := p.registry.Dispatch(text)
	if !ok {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("Panic in pipeline run",
					zap.String("handler", handler.Name),
					zap.String("url", target),
					zap.Any("panic", r))
				if p.events != nil {
					p.events.LogAppError("pipeline panic",
						zap.String("handler", handler.Name),
						zap.Any("panic", r))
				}
				p.notifyFailure(chatID)
			}
		}()

		if err := p.Handle(ctx, chatID, handler, target); err != nil {
			p.logger.Error("Pipeline run failed",
				zap.String("handler", handler.Name),
				zap.String("url", target),
				zap.Error(err))
			p.notifyFailure(chatID)
		}
	}()
}

// Handle runs one full acquisition: fetch, select, deliver. The fetch
// workspace is released on every exit path. Every failure surfaces to the
// caller, panics included: a panic anywhere past record creation is converted
// to an error so the history row still reaches a terminal status. The only
// local degradation is the classifier's unknown-on-error, which the selector
// filters.
func (p *Pipeline) Handle(ctx context.Context, chatID int64, handler domain.Handler, target string) (err error) {
	p.logger.Info("Handling url",
		zap.String("handler", handler.Name),
		zap.String("url", target))

	record := domain.NewFetchRecord(target, domain.Platform(handler.Name))
	p.recordCreate(record)
	p.logEvent("fetch_started", record)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in pipeline run: %v", r)
			p.finishRecord(record, err)
		}
	}()

	result, err := handler.Fetch(ctx, target)
	if err != nil {
		p.finishRecord(record, err)
		return err
	}
	defer result.Cleanup()

	winner, err := SelectMedia(ctx, result)
	if err != nil {
		p.finishRecord(record, err)
		return err
	}

	caption := ""
	if p.comments != nil {
		caption = p.comments.BuildCaption()
	}

	if err := p.sender.SendMedia(chatID, winner.Kind, winner.Path, caption); err != nil {
		err = fmt.Errorf("failed to deliver media: %w", err)
		p.finishRecord(record, err)
		return err
	}

	record.MarkCompleted(filepath.Base(winner.Path), winner.Kind)
	p.recordUpdate(record)
	p.logEvent("fetch_completed", record)

	p.logger.Info("Media delivered",
		zap.String("handler", handler.Name),
		zap.String("kind", winner.Kind.String()),
		zap.String("file", filepath.Base(winner.Path)))

	return nil
}

// Probe runs fetch and selection for a URL without delivering anything. The
// workspace is deleted before the report is returned. Used by the HTTP API.
func (p *Pipeline) Probe(ctx context.Context, text string) (record *domain.FetchRecord, err error) {
	handler, target, ok := p.registry.Dispatch(text)
	if !ok {
		return nil, domain.ErrUnsupportedURL
	}

	record = domain.NewFetchRecord(target, domain.Platform(handler.Name))
	p.recordCreate(record)
	p.logEvent("probe_started", record)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in pipeline run: %v", r)
			p.finishRecord(record, err)
		}
	}()

	result, err := handler.Fetch(ctx, target)
	if err != nil {
		p.finishRecord(record, err)
		return record, err
	}
	defer result.Cleanup()

	winner, err := SelectMedia(ctx, result)
	if err != nil {
		p.finishRecord(record, err)
		return record, err
	}

	record.MarkCompleted(filepath.Base(winner.Path), winner.Kind)
	p.recordUpdate(record)
	p.logEvent("probe_completed", record)

	return record, nil
}

func (p *Pipeline) notifyFailure(chatID int64) {
	if err := p.sender.SendText(chatID, p.failureMessage); err != nil {
		p.logger.Warn("Failed to send failure notice", zap.Error(err))
	}
}

func (p *Pipeline) finishRecord(record *domain.FetchRecord, err error) {
	record.MarkFailed(err)
	p.recordUpdate(record)
	p.logEvent("fetch_failed", record)
	if p.events != nil {
		p.events.LogAppError("pipeline run failed",
			zap.String("id", record.ID),
			zap.Error(err))
	}
}

func (p *Pipeline) recordCreate(record *domain.FetchRecord) {
	if p.repo == nil {
		return
	}
	if err := p.repo.Create(record); err != nil {
		p.logger.Warn("Failed to create fetch record", zap.Error(err))
	}
}

func (p *Pipeline) recordUpdate(record *domain.FetchRecord) {
	if p.repo == nil {
		return
	}
	if err := p.repo.Update(record); err != nil {
		p.logger.Warn("Failed to update fetch record", zap.Error(err))
	}
}

func (p *Pipeline) logEvent(event string, record *domain.FetchRecord) {
	if p.events == nil {
		return
	}
	p.events.LogFetchEvent(event,
		zap.String("id", record.ID),
		zap.String("url", record.URL),
		zap.String("platform", string(record.Platform)),
		zap.String("status", string(record.Status)))
}
