package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/DataDog/datadog-api-client-go/v2/api/datadog"
	"github.com/DataDog/datadog-api-client-go/v2/api/datadogV2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/diode"
)

const (
	defaultDataDogSite    = "datadoghq.com"
	defaultDataDogSource  = "go"
	defaultDataDogTimeout = 5 * time.Second
	dataDogBufferSize     = 1000
	dataDogPollInterval   = 10 * time.Millisecond
)

// logSubmitter is the part of the datadog logs api the writer needs.
type logSubmitter interface {
	SubmitLog(ctx context.Context, body []datadogV2.HTTPLogItem,
		o ...datadogV2.SubmitLogOptionalParameters) (interface{}, *http.Response, error)
}

// DataDogWriter ships every written log line to the datadog logs intake.
type DataDogWriter struct {
	api      logSubmitter
	ctx      context.Context //nolint:containedctx
	timeout  time.Duration
	source   string
	service  string
	tags     string
	hostname string
}

// NewDataDogWriter returns a non-blocking writer sending log lines to datadog.
func NewDataDogWriter(cfg Log) (io.Writer, error) {
	if cfg.DataDog.APIKey == "" {
		return nil, ErrDataDogAPIKeyIsEmpty
	}

	api := datadogV2.NewLogsApi(datadog.NewAPIClient(datadog.NewConfiguration()))

	w := newDataDogWriter(api, cfg)

	return diode.NewWriter(w, dataDogBufferSize, dataDogPollInterval, func(missed int) {
		_, _ = fmt.Fprintf(os.Stderr, "datadog logger dropped %d messages\n", missed)
	}), nil
}

func newDataDogWriter(api logSubmitter, cfg Log) *DataDogWriter {
	site := cfg.DataDog.Site
	if site == "" {
		site = defaultDataDogSite
	}

	source := cfg.DataDog.Source
	if source == "" {
		source = defaultDataDogSource
	}

	timeout := cfg.DataDog.Timeout
	if timeout == 0 {
		timeout = defaultDataDogTimeout
	}

	ctx := context.WithValue(context.Background(), datadog.ContextAPIKeys, map[string]datadog.APIKey{
		"apiKeyAuth": {Key: cfg.DataDog.APIKey},
	})
	ctx = context.WithValue(ctx, datadog.ContextServerVariables, map[string]string{"site": site})

	hostname, _ := os.Hostname()

	return &DataDogWriter{
		api:      api,
		ctx:      ctx,
		timeout:  timeout,
		source:   source,
		service:  cfg.ServiceName,
		tags:     fmt.Sprintf("app:%s,env:%s", cfg.AppName, cfg.LogEnv),
		hostname: hostname,
	}
}

// Write implements io.Writer.
func (w *DataDogWriter) Write(p []byte) (int, error) {
	ctx, cancel := context.WithTimeout(w.ctx, w.timeout)
	defer cancel()

	item := datadogV2.HTTPLogItem{
		Ddsource: datadog.PtrString(w.source),
		Ddtags:   datadog.PtrString(w.tags),
		Hostname: datadog.PtrString(w.hostname),
		Message:  string(p),
		Service:  datadog.PtrString(w.service),
	}

	if _, _, err := w.api.SubmitLog(ctx, []datadogV2.HTTPLogItem{item}); err != nil {
		return 0, errors.Wrap(err, "submit log to datadog")
	}

	return len(p), nil
}
