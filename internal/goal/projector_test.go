package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testGoal(target, current int64, created, deadline time.Time) model.Goal {
	return model.Goal{
		Name:     "Emergency Fund",
		Type:     "Emergency Fund",
		Target:   target,
		Current:  current,
		Created:  created,
		Deadline: deadline,
	}
}

func TestProgress(t *testing.T) {
	g := testGoal(100000, 25000, date(2024, time.January, 1), date(2024, time.December, 31))
	assert.InDelta(t, 25.0, Progress(g), 0.0001)

	// A zero target counts as complete.
	assert.InDelta(t, 100.0, Progress(model.Goal{Target: 0}), 0.0001)

	// Progress caps at 100 even if current somehow exceeds target.
	over := model.Goal{Target: 100, Current: 150}
	assert.InDelta(t, 100.0, Progress(over), 0.0001)
}

func TestProgressClampViaAddProgress(t *testing.T) {
	g := testGoal(100000, 90000, date(2024, time.January, 1), date(2024, time.December, 31))
	g.AddProgress(50000)

	// Current never exceeds the target, and progress reads 100 at the clamp.
	assert.Equal(t, int64(100000), g.Current)
	assert.InDelta(t, 100.0, Progress(g), 0.0001)
	assert.Zero(t, g.Remaining())
}

func TestDaysToDeadline(t *testing.T) {
	g := testGoal(100000, 0, date(2024, time.January, 1), date(2024, time.June, 30))

	assert.Equal(t, 29, DaysToDeadline(g, date(2024, time.June, 1)))
	assert.Equal(t, 0, DaysToDeadline(g, date(2024, time.June, 30)))
	assert.Equal(t, -10, DaysToDeadline(g, date(2024, time.July, 10)))
}

func TestRequiredMonthly(t *testing.T) {
	g := testGoal(120000, 20000, date(2024, time.January, 1), date(2024, time.December, 1))

	// 100000 remaining over 5 whole calendar months.
	assert.Equal(t, int64(20000), RequiredMonthly(g, date(2024, time.July, 1)))

	// A passed deadline still demands at least one month.
	assert.Equal(t, int64(100000), RequiredMonthly(g, date(2025, time.March, 1)))

	// Nothing remaining, nothing required.
	done := testGoal(120000, 120000, date(2024, time.January, 1), date(2024, time.December, 1))
	assert.Zero(t, RequiredMonthly(done, date(2024, time.July, 1)))
}

func TestOnTrack(t *testing.T) {
	created := date(2024, time.January, 1)
	deadline := date(2025, time.January, 1) // 12 months

	// 6 months in, straight-line expectation is 50%.
	now := date(2024, time.July, 1)

	ahead := testGoal(100000, 60000, created, deadline)
	assert.True(t, OnTrack(ahead, now))

	exactlyOn := testGoal(100000, 50000, created, deadline)
	assert.True(t, OnTrack(exactlyOn, now))

	behind := testGoal(100000, 30000, created, deadline)
	assert.False(t, OnTrack(behind, now))
}

func TestProjectExpectedCompletion(t *testing.T) {
	now := date(2024, time.June, 15)
	g := testGoal(100000, 40000, date(2024, time.January, 1), date(2025, time.January, 1))

	// 60000 remaining at 25000/month: 3 months (ceiling).
	st := Project(g, now, 25000)
	require.True(t, st.HasExpected)
	assert.Equal(t, ledger.Month("2024-09"), st.Expected)
	assert.False(t, st.Completed)
}

func TestProjectNoSavings(t *testing.T) {
	now := date(2024, time.June, 15)
	g := testGoal(100000, 40000, date(2024, time.January, 1), date(2025, time.January, 1))

	// Zero or negative savings leaves the completion month unknown.
	assert.False(t, Project(g, now, 0).HasExpected)
	assert.False(t, Project(g, now, -5000).HasExpected)
}

func TestProjectCompletedGoal(t *testing.T) {
	now := date(2024, time.June, 15)
	g := testGoal(100000, 100000, date(2024, time.January, 1), date(2025, time.January, 1))

	st := Project(g, now, 25000)
	assert.True(t, st.Completed)
	assert.False(t, st.HasExpected)
	assert.InDelta(t, 100.0, st.Progress, 0.0001)
}

func TestProjectAll(t *testing.T) {
	now := date(2024, time.June, 15)
	goals := []model.Goal{
		testGoal(100000, 50000, date(2024, time.January, 1), date(2025, time.January, 1)),
		testGoal(200000, 10000, date(2024, time.March, 1), date(2026, time.March, 1)),
	}

	statuses := ProjectAll(goals, now, 30000)
	require.Len(t, statuses, 2)
	assert.InDelta(t, 50.0, statuses[0].Progress, 0.0001)
	assert.InDelta(t, 5.0, statuses[1].Progress, 0.0001)
}
