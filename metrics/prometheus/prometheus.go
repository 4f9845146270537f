package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/squareup/rowply/errors"
	"github.com/squareup/rowply/metrics"
)

type Factory struct {
	listenAddr string
	lock       sync.Mutex
	httpServer *http.Server
	started    bool
}

func NewFactory(listenAddr string) metrics.Factory {
	return &Factory{listenAddr: listenAddr}
}

func (f *Factory) CreateCounter(name string, description string) (metrics.Counter, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	if !f.started {
		return nil, errors.NewInternalError("metrics factory not started")
	}
	counter := promauto.NewCounter(prometheus.CounterOpts{
		Name: name,
		Help: description,
	})
	return &Counter{pCounter: counter}, nil
}

func (f *Factory) Start() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.started {
		return errors.NewInternalError("metrics factory already started")
	}
	listenAddr := "localhost:2112"
	if f.listenAddr != "" {
		listenAddr = f.listenAddr
	}
	f.httpServer = &http.Server{Addr: listenAddr, Handler: promhttp.Handler()}
	f.started = true
	go func() {
		if err := f.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("metrics http server failed %+v", err)
		}
	}()
	return nil
}

func (f *Factory) Stop() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if !f.started {
		return errors.NewInternalError("metrics factory not started")
	}
	f.started = false
	return f.httpServer.Close()
}

type Counter struct {
	pCounter prometheus.Counter
}

func (c *Counter) Inc() {
	c.pCounter.Inc()
}
