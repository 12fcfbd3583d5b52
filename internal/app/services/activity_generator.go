package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
)

type activityLine struct {
	message string
	icon    string
}

var organizationActivity = []activityLine{
	{"New student registered from Jadavpur University", "🎓"},
	{"Alumni meetup planned in Kolkata", "🤝"},
	{"Scholarship applications are now open", "📚"},
	{"Cultural night rehearsal has started", "🎭"},
	{"Career guidance session added to the calendar", "💼"},
	{"New discussion started in the community forum", "💬"},
	{"Santali language workshop registrations climbing", "📝"},
	{"Volunteer drive reached a new milestone", "🌱"},
}

var mentorshipActivity = []activityLine{
	{"Mentorship session on interview prep just started", "🧑‍🏫"},
	{"An alumni mentor accepted a new mentee", "✅"},
	{"Resume review session completed", "📄"},
	{"Group mentoring on higher studies scheduled", "🗓️"},
	{"Mentor shared new placement resources", "📎"},
	{"Coding mentorship circle is live", "💻"},
}

// LiveStatsNudger perturbs the live online user count
type LiveStatsNudger interface {
	NudgeOnlineUsers(delta int) models.LiveStats
}

// ActivityGeneratorConfig sets the period of each generator
type ActivityGeneratorConfig struct {
	LiveStatsInterval  time.Duration
	ActivityInterval   time.Duration
	MentorshipInterval time.Duration
}

// ActivityGeneratorOption configures an ActivityGenerator
type ActivityGeneratorOption func(*ActivityGenerator)

// WithRandom replaces the source of uniform choices. intN must return a value
// in [0, n).
func WithRandom(intN func(n int) int) ActivityGeneratorOption {
	return func(g *ActivityGenerator) {
		g.intN = intN
	}
}

// WithGeneratorClock replaces the time source used for message timestamps
func WithGeneratorClock(now func() time.Time) ActivityGeneratorOption {
	return func(g *ActivityGenerator) {
		g.now = now
	}
}

// ActivityGenerator runs the periodic synthetic activity feeds. Each feed is
// its own goroutine with its own ticker.
type ActivityGenerator struct {
	config      ActivityGeneratorConfig
	stats       LiveStatsNudger
	broadcaster Broadcaster
	logger      zerolog.Logger

	randMu sync.Mutex
	intN   func(n int) int
	now    func() time.Time

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewActivityGenerator creates a generator; call Start to begin ticking
func NewActivityGenerator(
	config ActivityGeneratorConfig,
	stats LiveStatsNudger,
	broadcaster Broadcaster,
	logger zerolog.Logger,
	opts ...ActivityGeneratorOption,
) *ActivityGenerator {
	g := &ActivityGenerator{
		config:      config,
		stats:       stats,
		broadcaster: broadcaster,
		logger:      logger,
		intN:        rand.Intn,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start launches the three feeds. They stop when ctx is cancelled or Stop is
// called. Calling Start on a running generator does nothing.
func (g *ActivityGenerator) Start(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.running = true

	g.run(ctx, "live_stats", g.config.LiveStatsInterval, g.pulseLiveStats)
	g.run(ctx, "activity", g.config.ActivityInterval, g.emitActivity)
	g.run(ctx, "mentorship", g.config.MentorshipInterval, g.emitMentorshipUpdate)

	g.logger.Info().
		Dur("liveStatsInterval", g.config.LiveStatsInterval).
		Dur("activityInterval", g.config.ActivityInterval).
		Dur("mentorshipInterval", g.config.MentorshipInterval).
		Msg("Activity generators started")
}

// Stop cancels the feeds and waits for them to exit
func (g *ActivityGenerator) Stop() {
	g.mu.Lock()
	if !g.running {
		g.mu.Unlock()
		return
	}
	g.cancel()
	g.running = false
	g.mu.Unlock()

	g.wg.Wait()
	g.logger.Info().Msg("Activity generators stopped")
}

func (g *ActivityGenerator) run(ctx context.Context, name string, interval time.Duration, tick func()) {
	if interval <= 0 {
		g.logger.Warn().Str("generator", name).Msg("Non-positive interval, generator disabled")
		return
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
}

// pulseLiveStats moves onlineUsers by -1, 0 or +1 and announces the result
func (g *ActivityGenerator) pulseLiveStats() {
	delta := g.pick(3) - 1
	g.broadcaster.Commit(func() []models.BroadcastEvent {
		stats := g.stats.NudgeOnlineUsers(delta)
		return []models.BroadcastEvent{{Name: models.EventLiveStatsUpdate, Data: stats}}
	})
}

func (g *ActivityGenerator) emitActivity() {
	g.emit(models.EventLiveActivity, organizationActivity)
}

func (g *ActivityGenerator) emitMentorshipUpdate() {
	g.emit(models.EventMentorshipNews, mentorshipActivity)
}

func (g *ActivityGenerator) emit(name string, lines []activityLine) {
	line := lines[g.pick(len(lines))]
	msg := models.ActivityMessage{
		ID:        uuid.NewString(),
		Message:   line.message,
		Icon:      line.icon,
		Timestamp: g.now(),
	}
	g.broadcaster.Commit(func() []models.BroadcastEvent {
		return []models.BroadcastEvent{{Name: name, Data: msg}}
	})
}

func (g *ActivityGenerator) pick(n int) int {
	g.randMu.Lock()
	defer g.randMu.Unlock()
	return g.intN(n)
}
