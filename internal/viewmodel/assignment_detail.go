package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/async"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/models"
	"golang.org/x/sync/errgroup"
)

// Locator reports the last known device position.
type Locator interface {
	Current() (models.Location, bool)
}

// AssignmentDetailEvent is implemented by Refresh, RecruitWalker and
// DownloadAttachment.
type AssignmentDetailEvent interface{ assignmentDetailEvent() }

// RecruitWalker applies the current user to the assignment as its walker.
type RecruitWalker struct{}

func (RecruitWalker) assignmentDetailEvent() {}

// AssignmentDetails is everything the assignment screen shows, loaded as
// one unit.
type AssignmentDetails struct {
	Assignment models.Assignment
	Owner      models.User
	CanRecruit bool

	// DistanceKm is the distance from the device; valid when HasDistance.
	DistanceKm  float64
	HasDistance bool
}

// AssignmentDetailState is the state of the assignment screen.
type AssignmentDetailState struct {
	AssignmentID int64
	Detail       async.Result[AssignmentDetails]
	Recruit      Op[models.Recruitment]
	Download     Op[string]
}

// AssignmentDetail shows one assignment with its owner, whether the current
// user may apply and how far away it is.
type AssignmentDetail struct {
	base[AssignmentDetailState]
	assignments service.AssignmentService
	walkers     service.WalkerService
	locator     Locator
	downloads   Downloader
	recruit     chan struct{}
}

// NewAssignmentDetail creates the view model and starts loading. locator
// may be nil, in which case no distance is shown.
func NewAssignmentDetail(
	ctx context.Context,
	assignmentID int64,
	assignments service.AssignmentService,
	walkers service.WalkerService,
	locator Locator,
	downloads Downloader,
	opts Options,
) *AssignmentDetail {
	vm := &AssignmentDetail{
		base:        newBase(ctx, "assignment_detail", AssignmentDetailState{AssignmentID: assignmentID}, opts),
		assignments: assignments,
		walkers:     walkers,
		locator:     locator,
		downloads:   downloads,
		recruit:     make(chan struct{}, 1),
	}
	vm.load()
	return vm
}

// Handle dispatches ev.
func (vm *AssignmentDetail) Handle(ev AssignmentDetailEvent) {
	switch e := ev.(type) {
	case Refresh:
		vm.load()
	case RecruitWalker:
		vm.recruitWalker()
	case DownloadAttachment:
		vm.download(vm.downloads, e, func(s *AssignmentDetailState, op Op[string]) { s.Download = op })
	}
}

func (vm *AssignmentDetail) load() {
	fetch(&vm.base, "AssignmentDetail.load", vm.join,
		func(s *AssignmentDetailState, r async.Result[AssignmentDetails]) { s.Detail = r },
	)
}

// join loads the assignment with its owner and the recruit eligibility
// concurrently. Any failure fails the whole screen.
func (vm *AssignmentDetail) join(ctx context.Context) (AssignmentDetails, error) {
	id := vm.State().AssignmentID
	var out AssignmentDetails

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := vm.assignments.Get(gctx, id)
		if err != nil {
			return err
		}
		owner, err := vm.walkers.User(gctx, a.OwnerID)
		if err != nil {
			return err
		}
		out.Assignment, out.Owner = a, owner
		return nil
	})
	g.Go(func() error {
		can, err := vm.assignments.CanRecruit(gctx, id)
		out.CanRecruit = can
		return err
	})
	if err := g.Wait(); err != nil {
		return AssignmentDetails{}, err
	}

	if vm.locator != nil {
		if here, ok := vm.locator.Current(); ok {
			out.DistanceKm = here.DistanceKm(out.Assignment.Location)
			out.HasDistance = true
		}
	}
	return out, nil
}

func (vm *AssignmentDetail) recruitWalker() {
	vm.scope.launch(func(ctx context.Context) {
		if !lock(ctx, vm.recruit) {
			return
		}
		defer unlock(vm.recruit)

		if vm.State().Recruit.Done() {
			return
		}
		vm.state.update(func(s *AssignmentDetailState) { s.Recruit = startOp[models.Recruitment]() })

		rec, err := vm.assignments.Recruit(ctx, vm.State().AssignmentID)
		if ctx.Err() != nil {
			return
		}
		vm.logFailure(ctx, "AssignmentDetail.recruitWalker", err)

		vm.state.update(func(s *AssignmentDetailState) {
			s.Recruit = finishOp(rec, err)
			if err != nil {
				return
			}
			if d, ok := s.Detail.Value(); ok {
				d.CanRecruit = false
				s.Detail = async.Succeeded(d)
			}
		})
	})
}
