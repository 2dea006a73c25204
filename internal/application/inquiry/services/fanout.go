package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"courtside/internal/application/inquiry/dto"
	"courtside/internal/domain/inquiry"
	"courtside/internal/domain/user"
	"courtside/internal/shared/goroutine"
	"courtside/internal/shared/logger"
	"courtside/internal/shared/services/markdown"
)

// Payload type tags. A new assignment is tagged distinctly from a generic
// update so clients can tell "someone joined" apart from "something changed".
const (
	PayloadNewMessage                = "new-message"
	PayloadStateUpdate               = "state-update"
	PayloadNewModerator              = "new-moderator"
	PayloadModeratorUnassigned       = "moderator-unassigned"
	PayloadInquirySnapshot           = "inquiry-snapshot"
	PayloadInquirySnapshotWithUnread = "inquiry-snapshot-with-unread"
)

// ChannelPublisher is the broker contract. Implementations publish one JSON
// payload to one named channel; delivery guarantees beyond that belong to
// the broker.
type ChannelPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// LiveEvent is the envelope published to every live channel.
type LiveEvent struct {
	Type      string          `json:"type"`
	Inquiry   interface{}     `json:"inquiry,omitempty"`
	Message   *dto.MessageDTO `json:"message,omitempty"`
	Moderator *dto.UserDTO    `json:"moderator,omitempty"`
}

// FanoutDispatcher accepts committed-mutation events and delivers channel
// notifications asynchronously.
type FanoutDispatcher interface {
	Dispatch(event any)
	Start() error
	Stop() error
}

type fanoutJob struct {
	id    string
	event any
}

// Dispatcher drains a bounded queue with a single worker goroutine. One
// worker keeps delivery FIFO per inquiry: jobs are enqueued in commit order
// and published in that same order. Enqueueing never blocks the write path;
// when the queue is full the job is dropped and counted.
type Dispatcher struct {
	snapshots *SnapshotBuilder
	userRepo  user.Repository
	publisher ChannelPublisher
	log       logger.Interface

	queue          chan fanoutJob
	stop           chan struct{}
	done           chan struct{}
	startOnce      sync.Once
	stopOnce       sync.Once
	publishTimeout time.Duration

	dropped  atomic.Int64
	failures atomic.Int64
}

type DispatcherOptions struct {
	QueueSize      int
	PublishTimeout time.Duration
}

func NewDispatcher(
	inquiryRepo inquiry.InquiryRepository,
	assignmentRepo inquiry.AssignmentRepository,
	messageRepo inquiry.MessageRepository,
	categoryRepo inquiry.CategoryRepository,
	userRepo user.Repository,
	renderer markdown.MarkdownService,
	publisher ChannelPublisher,
	log logger.Interface,
	opts DispatcherOptions,
) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1024
	}
	if opts.PublishTimeout <= 0 {
		opts.PublishTimeout = 5 * time.Second
	}

	return &Dispatcher{
		snapshots:      NewSnapshotBuilder(inquiryRepo, assignmentRepo, messageRepo, categoryRepo, userRepo, renderer),
		userRepo:       userRepo,
		publisher:      publisher,
		log:            log.Named("fanout"),
		queue:          make(chan fanoutJob, opts.QueueSize),
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
		publishTimeout: opts.PublishTimeout,
	}
}

func (d *Dispatcher) Start() error {
	d.startOnce.Do(func() {
		goroutine.SafeGo(d.log, "fanout-worker", d.run)
	})
	return nil
}

// Stop drains jobs already queued, then returns.
func (d *Dispatcher) Stop() error {
	d.stopOnce.Do(func() {
		close(d.stop)
		<-d.done
	})
	return nil
}

// Dispatch enqueues a committed-mutation event. It must be called only
// after the surrounding transaction has committed; a full queue drops the
// notification rather than blocking the caller.
func (d *Dispatcher) Dispatch(event any) {
	job := fanoutJob{id: uuid.NewString(), event: event}
	select {
	case d.queue <- job:
	default:
		d.dropped.Add(1)
		d.log.Warnw("fanout queue full, dropping notification",
			"job_id", job.id,
			"event", fmt.Sprintf("%T", event),
			"dropped_total", d.dropped.Load(),
		)
	}
}

// Dropped returns the number of notifications discarded on a full queue.
func (d *Dispatcher) Dropped() int64 { return d.dropped.Load() }

// PublishFailures returns the number of failed channel publishes.
func (d *Dispatcher) PublishFailures() int64 { return d.failures.Load() }

func (d *Dispatcher) run() {
	defer close(d.done)
	for {
		select {
		case job := <-d.queue:
			d.handle(job)
		case <-d.stop:
			// drain what was enqueued before shutdown
			for {
				select {
				case job := <-d.queue:
					d.handle(job)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) handle(job fanoutJob) {
	ctx, cancel := context.WithTimeout(context.Background(), d.publishTimeout)
	defer cancel()

	var err error
	switch e := job.event.(type) {
	case inquiry.InquiryOpenedEvent:
		err = d.handleOpened(ctx, e)
	case inquiry.OwnerMessageCreatedEvent:
		err = d.handleMessage(ctx, e.InquiryID, e.MessageID, e.OwnerID, inquiry.OriginOwner, e.Body, e.Timestamp)
	case inquiry.ModeratorMessageCreatedEvent:
		err = d.handleMessage(ctx, e.InquiryID, e.MessageID, e.ModeratorID, inquiry.OriginModerator, e.Body, e.Timestamp)
	case inquiry.ModeratorAssignedEvent:
		err = d.handleAssignmentChange(ctx, e.InquiryID, e.ModeratorID, PayloadNewModerator)
	case inquiry.ModeratorUnassignedEvent:
		err = d.handleAssignmentChange(ctx, e.InquiryID, e.ModeratorID, PayloadModeratorUnassigned)
	case inquiry.InquiryStateUpdatedEvent:
		err = d.handleStateUpdate(ctx, e)
	default:
		d.log.Warnw("unknown fanout event", "job_id", job.id, "event", fmt.Sprintf("%T", job.event))
		return
	}

	if err != nil {
		d.log.Errorw("fanout job failed", "job_id", job.id, "error", err)
	}
}

func (d *Dispatcher) handleOpened(ctx context.Context, e inquiry.InquiryOpenedEvent) error {
	bundle, err := d.snapshots.Build(ctx, e.InquiryID)
	if err != nil {
		return err
	}

	d.publishOwner(ctx, bundle)
	d.publishDashboards(ctx, bundle)
	return nil
}

func (d *Dispatcher) handleMessage(ctx context.Context, inquiryID, messageID, authorID uint, origin inquiry.MessageOrigin, body string, createdAt time.Time) error {
	bundle, err := d.snapshots.Build(ctx, inquiryID)
	if err != nil {
		return err
	}

	author, err := d.userRepo.GetByID(ctx, authorID)
	if err != nil {
		author = nil
	}
	msg := dto.ToMessageDTO(inquiry.TimelineEntry{
		Origin:    origin,
		MessageID: messageID,
		AuthorID:  authorID,
		Body:      body,
		CreatedAt: createdAt,
	}, author)

	// the thread channel gets the raw message first, then the snapshot
	// channels follow in a fixed order
	d.publish(ctx, InquiryChannel(bundle.Inquiry.SID()), LiveEvent{
		Type:    PayloadNewMessage,
		Message: &msg,
	})
	d.publishOwner(ctx, bundle)
	d.publishModerators(ctx, bundle)
	d.publishDashboards(ctx, bundle)
	return nil
}

func (d *Dispatcher) handleAssignmentChange(ctx context.Context, inquiryID, moderatorID uint, payloadType string) error {
	bundle, err := d.snapshots.Build(ctx, inquiryID)
	if err != nil {
		return err
	}

	d.publish(ctx, InquiryChannel(bundle.Inquiry.SID()), LiveEvent{
		Type:      payloadType,
		Inquiry:   bundle.Snapshot,
		Moderator: dto.ToUserDTO(bundle.Moderators[moderatorID]),
	})
	d.publishOwner(ctx, bundle)
	d.publishModerators(ctx, bundle)
	d.publishDashboards(ctx, bundle)
	return nil
}

func (d *Dispatcher) handleStateUpdate(ctx context.Context, e inquiry.InquiryStateUpdatedEvent) error {
	bundle, err := d.snapshots.Build(ctx, e.InquiryID)
	if err != nil {
		return err
	}

	d.publish(ctx, InquiryChannel(bundle.Inquiry.SID()), LiveEvent{
		Type:    PayloadStateUpdate,
		Inquiry: bundle.Snapshot,
	})
	d.publishOwner(ctx, bundle)
	d.publishModerators(ctx, bundle)
	d.publishDashboards(ctx, bundle)
	return nil
}

func (d *Dispatcher) publishOwner(ctx context.Context, bundle *SnapshotBundle) {
	if bundle.Owner == nil {
		return
	}
	d.publish(ctx, OwnerChannel(bundle.Owner.SID()), LiveEvent{
		Type:    PayloadInquirySnapshot,
		Inquiry: bundle.Snapshot,
	})
}

// publishModerators notifies every moderator that ever held an assignment,
// not only those currently in charge, shaping each payload with that
// moderator's own unread counters.
func (d *Dispatcher) publishModerators(ctx context.Context, bundle *SnapshotBundle) {
	for _, a := range bundle.Assignments {
		u := bundle.Moderators[a.ModeratorID()]
		if u == nil {
			continue
		}

		unread, err := d.snapshots.ModeratorUnread(ctx, a)
		if err != nil {
			d.failures.Add(1)
			d.log.Errorw("failed to compute moderator unread", "assignment_id", a.ID(), "error", err)
			continue
		}

		d.publish(ctx, ModeratorChannel(u.SID()), LiveEvent{
			Type: PayloadInquirySnapshotWithUnread,
			Inquiry: dto.InquirySnapshotWithUnreadDTO{
				InquirySnapshotDTO: bundle.Snapshot,
				Unread:             unread.Own,
				CrossUnread:        unread.CrossOthers,
			},
		})
	}
}

// publishDashboards picks the segment channels from current state at
// dispatch time: "all" plus one of assigned/unassigned and one of
// solved/unsolved.
func (d *Dispatcher) publishDashboards(ctx context.Context, bundle *SnapshotBundle) {
	for _, segment := range inquiry.DashboardSegments(bundle.Assigned(), bundle.Inquiry.Solved()) {
		d.publish(ctx, DashboardChannel(segment), LiveEvent{
			Type:    PayloadInquirySnapshot,
			Inquiry: bundle.Snapshot,
		})
	}
}

// publish is best-effort: failures are logged and counted, never retried
// here and never surfaced to the write path that queued the job.
func (d *Dispatcher) publish(ctx context.Context, channel string, payload LiveEvent) {
	if err := d.publisher.Publish(ctx, channel, payload); err != nil {
		d.failures.Add(1)
		d.log.Errorw("failed to publish live event",
			"channel", channel,
			"type", payload.Type,
			"error", err,
		)
	}
}

// Channel naming, shared with anything that subscribes.

func InquiryChannel(sid string) string {
	return fmt.Sprintf("inquiry/%s", sid)
}

func OwnerChannel(userSID string) string {
	return fmt.Sprintf("owner/%s/inquiries", userSID)
}

func ModeratorChannel(modSID string) string {
	return fmt.Sprintf("moderator/%s/inquiries", modSID)
}

func DashboardChannel(segment inquiry.Segment) string {
	return fmt.Sprintf("dashboard/inquiries/%s", segment)
}
