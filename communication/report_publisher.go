package communication

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/report"
)

const (
	publisherComponent = "report-publisher"
	contentTypeJson    = "application/json"
	publishTimeout     = 5 * time.Second
)

var (
	ErrMarshallingReport  = errors.New("unexpected error marshalling report")
	ErrPublishingReport   = errors.New("error publishing report")
	ErrDeclaringExchanges = errors.New("error declaring report exchange")
)

// Publisher sends the report of a run somewhere outside the process
type Publisher interface {
	Publish(ctx context.Context, rep *report.Report) error
	Close() error
}

// Broker is the subset of RabbitMQ used to publish reports
type Broker interface {
	DeclareExchanges(exchangesConfig []ExchangeDeclarationConfig) error
	PublishMessageInExchange(ctx context.Context, publishingConfig PublishingConfig, message []byte) error
	KillBadBunny() error
}

// NewPublisher returns a RabbitMQ backed publisher if the config enables it, otherwise a NoopPublisher
func NewPublisher(config PublisherConfig) (Publisher, error) {
	if !config.Enabled || config.URL == "" {
		log.Debugf("[component: %s] publishing disabled", publisherComponent)
		return NoopPublisher{}, nil
	}

	rabbitMQ, err := NewRabbitMQ(config.URL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to RabbitMQ: %w", err)
	}

	publisher, err := NewReportPublisher(rabbitMQ, config)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}
	return publisher, nil
}

// ReportPublisher publishes every report as JSON in an exchange
type ReportPublisher struct {
	broker    Broker
	config    PublisherConfig
	closeOnce sync.Once
	closeErr  error
}

// NewReportPublisher declares the report exchange and returns a publisher that uses it
func NewReportPublisher(broker Broker, config PublisherConfig) (*ReportPublisher, error) {
	if config.ExchangeConfig.Name != "" {
		err := broker.DeclareExchanges([]ExchangeDeclarationConfig{config.ExchangeConfig})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDeclaringExchanges, err)
		}
	}

	if config.PublishingConfig.Exchange == "" {
		config.PublishingConfig.Exchange = config.ExchangeConfig.Name
	}
	if config.PublishingConfig.ContentType == "" {
		config.PublishingConfig.ContentType = contentTypeJson
	}

	log.Infof("[component: %s][status: OK] publishing reports in exchange %q", publisherComponent, config.PublishingConfig.Exchange)
	return &ReportPublisher{
		broker: broker,
		config: config,
	}, nil
}

func (rp *ReportPublisher) Publish(ctx context.Context, rep *report.Report) error {
	reportBytes, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshallingReport, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = rp.broker.PublishMessageInExchange(ctx, rp.config.PublishingConfig, reportBytes)
	if err != nil {
		log.Errorf("[component: %s][run: %s][status: ERROR] error publishing report: %s", publisherComponent, rep.GetRunID(), err.Error())
		return fmt.Errorf("%w: %w", ErrPublishingReport, err)
	}

	log.Debugf("[component: %s][run: %s][status: OK] report published", publisherComponent, rep.GetRunID())
	return nil
}

// Close closes the broker connection. It is safe to call more than once and from several goroutines.
func (rp *ReportPublisher) Close() error {
	rp.closeOnce.Do(func() {
		rp.closeErr = rp.broker.KillBadBunny()
	})
	return rp.closeErr
}

// NoopPublisher drops every report
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *report.Report) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
