package metrics

import (
	"sync"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/anft-xyz/goapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}
	cli      statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// client returns the datadog agent client when datadog.enabled is set, otherwise the log client
func client() statsCli {
	initOnce.Do(func() {
		if !viper.GetBool("datadog.enabled") {
			cli = &LogClient{}
			return
		}
		addr := viper.GetString("datadog.address")
		c, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, fallback to log")
			cli = &LogClient{}
			return
		}
		log.Log().WithField("addr", addr).Info("connected to datadog agent")
		cli = c
	})
	return cli
}
