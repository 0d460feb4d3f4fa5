package burstbuffer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wlmkit/dataparser/resolve"
)

func newArgs() *resolve.Args {
	return resolve.New(resolve.Parsing, resolve.FlagNone)
}

func TestTryStageInAllocatesAndStartsStagingIn(t *testing.T) {
	p := Init(Config{})

	err := p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=4G"}})
	require.NoError(t, err)

	a, ok := p.allocByJob[1]
	require.True(t, ok)
	assert.Equal(t, StateStagingIn, a.State)
	assert.Equal(t, Size(4), a.Size)
	assert.Equal(t, Size(4), p.limits.userLoad[100])
}

func TestTryStageInSkipsDeniedUser(t *testing.T) {
	p := Init(Config{DenyUsers: []uint32{100}})

	err := p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=4G"}})
	require.NoError(t, err)
	_, ok := p.allocByJob[1]
	assert.False(t, ok)
}

func TestTryStageInRespectsAllowList(t *testing.T) {
	p := Init(Config{AllowUsers: []uint32{200}})

	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=4G"}}))
	_, ok := p.allocByJob[1]
	assert.False(t, ok, "user not on the allow list should be skipped")

	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 2, UserID: 200, Spec: "size=4G"}}))
	_, ok = p.allocByJob[2]
	assert.True(t, ok)
}

func TestTryStageInRespectsUserSizeLimit(t *testing.T) {
	limit := Size(8)
	p := Init(Config{UserSizeLimit: &limit})

	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=6G"}}))
	_, ok := p.allocByJob[1]
	assert.True(t, ok)

	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 2, UserID: 100, Spec: "size=6G"}}))
	_, ok = p.allocByJob[2]
	assert.False(t, ok, "second request would push user 100 over the 8G cap")
}

func TestTryStageInRespectsJobSizeLimit(t *testing.T) {
	limit := Size(4)
	p := Init(Config{JobSizeLimit: &limit})

	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=8G"}}))
	_, ok := p.allocByJob[1]
	assert.False(t, ok, "single job exceeding the per-job cap should be skipped")
}

func TestStageInThenStageOutLifecycle(t *testing.T) {
	p := Init(Config{})
	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=4G"}}))

	done, err := p.TestStageIn(1)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, StateStagedIn, p.allocByJob[1].State)

	require.NoError(t, p.StartStageOut(1))
	assert.Equal(t, StateStagingOut, p.allocByJob[1].State)

	done, err = p.TestStageOut(1)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, StateStagedOut, p.allocByJob[1].State)
	_, hasLoad := p.limits.userLoad[100]
	assert.False(t, hasLoad, "user load should be released once fully staged out")
}

func TestPurgeRemovesCompletedNonLiveJobs(t *testing.T) {
	p := Init(Config{})
	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=4G"}}))
	p.allocByJob[1].State = StateStagedOut

	base := time.Unix(1000, 0)
	p.Purge(base, func(jobID uint32) bool { return false })
	_, ok := p.allocByJob[1]
	assert.False(t, ok)
}

func TestPurgeIsGatedToOncePerMinute(t *testing.T) {
	p := Init(Config{})
	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=4G"}}))
	p.allocByJob[1].State = StateStagedOut

	base := time.Unix(1000, 0)
	p.Purge(base, func(jobID uint32) bool { return false })
	// re-add, then purge again a few seconds later: should be a no-op
	p.allocByJob[1] = &Alloc{JobID: 1, UserID: 100, Size: 4, State: StateStagedOut}
	p.Purge(base.Add(10*time.Second), func(jobID uint32) bool { return false })
	_, ok := p.allocByJob[1]
	assert.True(t, ok, "purge within the same minute should not run again")

	p.Purge(base.Add(90*time.Second), func(jobID uint32) bool { return false })
	_, ok = p.allocByJob[1]
	assert.False(t, ok)
}

func TestPurgeKeepsLiveJobs(t *testing.T) {
	p := Init(Config{})
	require.NoError(t, p.TryStageIn([]JobRequest{{JobID: 1, UserID: 100, Spec: "size=4G"}}))
	p.allocByJob[1].State = StateStagedOut

	base := time.Unix(1000, 0)
	p.Purge(base, func(jobID uint32) bool { return true })
	_, ok := p.allocByJob[1]
	assert.True(t, ok, "a job the caller reports as still live must not be purged")
}

func TestLoadConfigParsesYAML(t *testing.T) {
	doc := `
allow_users: [100, 200]
deny_users: [666]
get_sys_state: /usr/sbin/bb_get_sys_state
start_stage_in: /usr/sbin/bb_start_stage_in
job_size_limit: 64G
user_size_limit: 256G
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []uint32{100, 200}, cfg.AllowUsers)
	assert.Equal(t, []uint32{666}, cfg.DenyUsers)
	assert.Equal(t, "/usr/sbin/bb_get_sys_state", cfg.GetSysState)
	require.NotNil(t, cfg.JobSizeLimit)
	assert.Equal(t, Size(64), *cfg.JobSizeLimit)
	require.NotNil(t, cfg.UserSizeLimit)
	assert.Equal(t, Size(256), *cfg.UserSizeLimit)
}

func TestLoadConfigWithoutLimitsLeavesThemNil(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("get_sys_state: /usr/sbin/bb_get_sys_state\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.JobSizeLimit)
	assert.Nil(t, cfg.UserSizeLimit)
}

func TestRecordFromLineParsesIntoAlloc(t *testing.T) {
	dict := recordFromLine("job_id=7 user_id=100 size=4G state=staged-in")

	args := newArgs()
	var a Alloc
	require.NoError(t, newAllocDescriptor().ParseFn(&a, dict, args))
	assert.False(t, args.Diag.HasErrors())
	assert.Equal(t, uint32(7), a.JobID)
	assert.Equal(t, uint32(100), a.UserID)
	assert.Equal(t, Size(4), a.Size)
	assert.Equal(t, StateStagedIn, a.State)
}
