package timing_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gradjit/gradjit/internal/timing"
)

func TestAddAccumulates(t *testing.T) {
	var tm timing.Timer
	tm.Add("backward", 2*time.Millisecond)
	tm.Add("backward", 3*time.Millisecond)
	tm.Add("forward", time.Millisecond)

	assert.Equal(t, 5*time.Millisecond, tm.Total("backward"))
	assert.Equal(t, 2, tm.Calls("backward"))
	assert.Equal(t, 1, tm.Calls("forward"))
	assert.Zero(t, tm.Total("missing"))
}

func TestTrack(t *testing.T) {
	var tm timing.Timer
	stop := tm.Track("work")
	time.Sleep(time.Millisecond)
	stop()

	assert.Equal(t, 1, tm.Calls("work"))
	assert.Greater(t, tm.Total("work"), time.Duration(0))
}

func TestReportListsSlowestFirst(t *testing.T) {
	var tm timing.Timer
	tm.Add("fast", time.Millisecond)
	tm.Add("slow", time.Second)

	var b strings.Builder
	tm.Report(&b)
	out := b.String()

	assert.Less(t, strings.Index(out, "slow"), strings.Index(out, "fast"))
	assert.Contains(t, out, "1 calls")
}
