/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/anft-xyz/goapi/base/env"
	"github.com/anft-xyz/goapi/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix. Tags are passed as key/value pairs.
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		ddTags: []string{
			"host:", // remove unused host tag
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type Metrics struct {
	pkgName string
	ddTags  []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

func (mt *Metrics) tags(tags []string) []string {
	return append(append([]string{}, mt.ddTags...), parseTag(tags)...)
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	if err := client().Gauge(mt.key(key), val, mt.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpAvg"}).Warn("bump failed")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if err := client().Count(mt.key(key), int64(val), mt.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpSum"}).Warn("bump failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := client().Histogram(mt.key(key), val, mt.tags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpHistogram"}).Warn("bump failed")
	}
}

// BumpTime starts a timer, End() records the elapsed milliseconds:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  mt.tags(tags),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	dur := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := client().TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "func": "BumpTime"}).Warn("bump failed")
	}
}

func parseTag(tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", strings.Join(tags, ",")).Warn("odd tag length, last tag dropped")
		tags = tags[:len(tags)-1]
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
