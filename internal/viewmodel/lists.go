package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/async"
	"github.com/MKhiriev/go-pet-walker/internal/paging"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/models"
)

// ── AssignedPets ────────────────────────────────────────────────────────────

// AssignedPetsEvent is implemented by LoadPage and Refresh.
type AssignedPetsEvent interface{ assignedPetsEvent() }

// AssignedPetsState is the state of the pets-of-an-assignment screen.
type AssignedPetsState struct {
	AssignmentID int64
	Pets         paging.State[models.Pet]
}

// AssignedPets lists the pets attached to one assignment.
type AssignedPets struct {
	base[AssignedPetsState]
	pets *pager[models.Pet]
}

// NewAssignedPets creates the view model and loads the first page.
func NewAssignedPets(ctx context.Context, assignmentID int64, assignments service.AssignmentService, opts Options) *AssignedPets {
	vm := &AssignedPets{base: newBase(ctx, "assigned_pets", AssignedPetsState{AssignmentID: assignmentID}, opts)}
	vm.pets = newPager(&vm.base,
		func(ctx context.Context, page models.PageRequest) (models.Paged[models.Pet], error) {
			return assignments.Pets(ctx, assignmentID, page)
		},
		func(s *AssignedPetsState, st paging.State[models.Pet]) { s.Pets = st },
	)
	vm.pets.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *AssignedPets) Handle(ev AssignedPetsEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.pets.load(e.Page)
	case Refresh:
		vm.pets.refresh()
	}
}

// ── FeaturedWalkers ─────────────────────────────────────────────────────────

// FeaturedWalkersEvent is implemented by LoadPage and Refresh.
type FeaturedWalkersEvent interface{ featuredWalkersEvent() }

// FeaturedWalkersState is the state of the featured walkers screen.
type FeaturedWalkersState struct {
	Walkers paging.State[models.Walker]
}

// FeaturedWalkers lists the walkers promoted by the marketplace.
type FeaturedWalkers struct {
	base[FeaturedWalkersState]
	walkers *pager[models.Walker]
}

// NewFeaturedWalkers creates the view model and loads the first page.
func NewFeaturedWalkers(ctx context.Context, walkers service.WalkerService, opts Options) *FeaturedWalkers {
	vm := &FeaturedWalkers{base: newBase(ctx, "featured_walkers", FeaturedWalkersState{}, opts)}
	vm.walkers = newPager(&vm.base, walkers.Featured,
		func(s *FeaturedWalkersState, st paging.State[models.Walker]) { s.Walkers = st },
	)
	vm.walkers.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *FeaturedWalkers) Handle(ev FeaturedWalkersEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.walkers.load(e.Page)
	case Refresh:
		vm.walkers.refresh()
	}
}

// ── Recruitments ────────────────────────────────────────────────────────────

// RecruitmentsEvent is implemented by LoadPage, Refresh, AcceptRecruitment
// and DeclineRecruitment.
type RecruitmentsEvent interface{ recruitmentsEvent() }

// AcceptRecruitment accepts the recruitment ID.
type AcceptRecruitment struct{ ID int64 }

// DeclineRecruitment declines the recruitment ID.
type DeclineRecruitment struct{ ID int64 }

func (AcceptRecruitment) recruitmentsEvent()  {}
func (DeclineRecruitment) recruitmentsEvent() {}

// RecruitmentsState is the state of the recruitments-of-an-assignment
// screen. Respond tracks the last accept or decline; RespondingID is the
// recruitment it was about.
type RecruitmentsState struct {
	AssignmentID int64
	Recruitments paging.State[models.Recruitment]
	RespondingID int64
	Respond      Op[models.Recruitment]
}

// Recruitments lists and answers the recruitments of one assignment.
type Recruitments struct {
	base[RecruitmentsState]
	list         *pager[models.Recruitment]
	recruitments service.RecruitmentService
	submit       chan struct{}
}

// NewRecruitments creates the view model and loads the first page.
func NewRecruitments(ctx context.Context, assignmentID int64, assignments service.AssignmentService, recruitments service.RecruitmentService, opts Options) *Recruitments {
	vm := &Recruitments{
		base:         newBase(ctx, "recruitments", RecruitmentsState{AssignmentID: assignmentID}, opts),
		recruitments: recruitments,
		submit:       make(chan struct{}, 1),
	}
	vm.list = newPager(&vm.base,
		func(ctx context.Context, page models.PageRequest) (models.Paged[models.Recruitment], error) {
			return assignments.Recruitments(ctx, assignmentID, page)
		},
		func(s *RecruitmentsState, st paging.State[models.Recruitment]) { s.Recruitments = st },
	)
	vm.list.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *Recruitments) Handle(ev RecruitmentsEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.list.load(e.Page)
	case Refresh:
		vm.list.refresh()
	case AcceptRecruitment:
		vm.respond(e.ID, vm.recruitments.Accept)
	case DeclineRecruitment:
		vm.respond(e.ID, vm.recruitments.Decline)
	}
}

func (vm *Recruitments) respond(id int64, call func(context.Context, int64) (models.Recruitment, error)) {
	vm.scope.launch(func(ctx context.Context) {
		if !lock(ctx, vm.submit) {
			return
		}
		defer unlock(vm.submit)

		vm.state.update(func(s *RecruitmentsState) {
			s.RespondingID = id
			s.Respond = startOp[models.Recruitment]()
		})
		res, err := call(ctx, id)
		if ctx.Err() != nil {
			return
		}
		vm.logFailure(ctx, "Recruitments.respond", err)
		vm.state.update(func(s *RecruitmentsState) { s.Respond = finishOp(res, err) })
		if err == nil {
			// the answered item changes status; reload the page it is on
			vm.list.load(vm.State().Recruitments.Window.First)
		}
	})
}

// ── WalkerProfile ───────────────────────────────────────────────────────────

// WalkerProfileEvent is implemented by LoadPage and Refresh.
type WalkerProfileEvent interface{ walkerProfileEvent() }

// WalkerProfileState is the state of a user profile with its reviews. The
// user is dropped while it reloads.
type WalkerProfileState struct {
	UserID  int64
	User    async.Result[models.User]
	Reviews paging.State[models.Review]
}

// WalkerProfile shows a user and the reviews written about them.
type WalkerProfile struct {
	base[WalkerProfileState]
	walkers service.WalkerService
	reviews *pager[models.Review]
}

// NewWalkerProfile creates the view model and loads the user and the first
// page of reviews.
func NewWalkerProfile(ctx context.Context, userID int64, walkers service.WalkerService, opts Options) *WalkerProfile {
	vm := &WalkerProfile{
		base:    newBase(ctx, "walker_profile", WalkerProfileState{UserID: userID}, opts),
		walkers: walkers,
	}
	vm.reviews = newPager(&vm.base,
		func(ctx context.Context, page models.PageRequest) (models.Paged[models.Review], error) {
			return walkers.Reviews(ctx, userID, page)
		},
		func(s *WalkerProfileState, st paging.State[models.Review]) { s.Reviews = st },
	)
	vm.loadUser()
	vm.reviews.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *WalkerProfile) Handle(ev WalkerProfileEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.reviews.load(e.Page)
	case Refresh:
		vm.loadUser()
		vm.reviews.refresh()
	}
}

func (vm *WalkerProfile) loadUser() {
	fetch(&vm.base, "WalkerProfile.loadUser",
		func(ctx context.Context) (models.User, error) { return vm.walkers.User(ctx, vm.State().UserID) },
		func(s *WalkerProfileState, r async.Result[models.User]) { s.User = r },
	)
}

// ── Assignments ─────────────────────────────────────────────────────────────

// AssignmentsEvent is implemented by LoadPage, Refresh and FilterChanged.
type AssignmentsEvent interface{ assignmentsEvent() }

// FilterChanged replaces the browse filter and restarts the list.
type FilterChanged struct{ Filter models.AssignmentFilter }

func (FilterChanged) assignmentsEvent() {}

// AssignmentsState is the state of the assignment browser.
type AssignmentsState struct {
	Filter      models.AssignmentFilter
	Assignments paging.State[models.Assignment]
}

// Assignments browses assignments matching a filter.
type Assignments struct {
	base[AssignmentsState]
	list *pager[models.Assignment]
}

// NewAssignments creates the view model and loads the first page for filter.
func NewAssignments(ctx context.Context, filter models.AssignmentFilter, assignments service.AssignmentService, opts Options) *Assignments {
	vm := &Assignments{base: newBase(ctx, "assignments", AssignmentsState{Filter: filter}, opts)}
	vm.list = newPager(&vm.base,
		func(ctx context.Context, page models.PageRequest) (models.Paged[models.Assignment], error) {
			return assignments.List(ctx, vm.State().Filter, page)
		},
		func(s *AssignmentsState, st paging.State[models.Assignment]) { s.Assignments = st },
	)
	vm.list.load(1)
	return vm
}

// Handle dispatches ev.
func (vm *Assignments) Handle(ev AssignmentsEvent) {
	switch e := ev.(type) {
	case LoadPage:
		vm.list.load(e.Page)
	case Refresh:
		vm.list.refresh()
	case FilterChanged:
		vm.state.update(func(s *AssignmentsState) { s.Filter = e.Filter })
		vm.list.reset()
	}
}
