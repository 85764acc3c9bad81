package viewmodel

import (
	"context"

	"github.com/MKhiriev/go-pet-walker/internal/async"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/MKhiriev/go-pet-walker/models"
)

// DefaultMapRadiusKm is the search radius used when none is given.
const DefaultMapRadiusKm = 5.0

// LocationObserver is a start/stop-able position source.
type LocationObserver interface {
	Locator
	Start(ctx context.Context)
	Stop()
	First(ctx context.Context) (models.Location, error)
}

// MapEvent is implemented by Refresh and SelectAssignment.
type MapEvent interface{ mapEvent() }

// SelectAssignment highlights one of the nearby assignments; 0 clears the
// selection.
type SelectAssignment struct{ ID int64 }

func (SelectAssignment) mapEvent() {}

// MapState is the state of the map screen.
type MapState struct {
	RadiusKm   float64
	Location   async.Result[models.Location]
	Nearby     async.Result[[]models.Assignment]
	SelectedID int64
}

// Selected returns the selected assignment if it is among the loaded ones.
func (s MapState) Selected() (models.Assignment, bool) {
	nearby, ok := s.Nearby.Value()
	if !ok || s.SelectedID == 0 {
		return models.Assignment{}, false
	}
	for _, a := range nearby {
		if a.ID == s.SelectedID {
			return a, true
		}
	}
	return models.Assignment{}, false
}

// Map shows open assignments around the device. Location observation starts
// with the view model and stops when it is closed.
type Map struct {
	base[MapState]
	observer    LocationObserver
	assignments service.AssignmentService
}

// NewMap creates the view model, starts observer and loads the assignments
// around the first position fix.
func NewMap(ctx context.Context, observer LocationObserver, assignments service.AssignmentService, radiusKm float64, opts Options) *Map {
	if radiusKm <= 0 {
		radiusKm = DefaultMapRadiusKm
	}
	vm := &Map{
		base:        newBase(ctx, "map", MapState{RadiusKm: radiusKm}, opts),
		observer:    observer,
		assignments: assignments,
	}
	observer.Start(vm.scope.ctx)
	vm.awaitFirstFix()
	return vm
}

// Handle dispatches ev.
func (vm *Map) Handle(ev MapEvent) {
	switch e := ev.(type) {
	case Refresh:
		here, ok := vm.observer.Current()
		if !ok {
			vm.awaitFirstFix()
			return
		}
		vm.showAround(here)
	case SelectAssignment:
		vm.state.update(func(s *MapState) { s.SelectedID = e.ID })
	}
}

// Close stops location observation and cancels outstanding work.
func (vm *Map) Close() {
	vm.base.Close()
	vm.observer.Stop()
}

func (vm *Map) awaitFirstFix() {
	vm.scope.launch(func(ctx context.Context) {
		here, err := vm.observer.First(ctx)
		if err != nil {
			return
		}
		vm.showAround(here)
	})
}

func (vm *Map) showAround(here models.Location) {
	vm.state.update(func(s *MapState) { s.Location = async.Succeeded(here) })
	fetch(&vm.base, "Map.showAround",
		func(ctx context.Context) ([]models.Assignment, error) {
			bounds := models.BoundsAround(here, vm.State().RadiusKm)
			page, err := vm.assignments.List(ctx,
				models.AssignmentFilter{Status: models.AssignmentOpen, Bounds: &bounds},
				models.PageRequest{Page: 1, PageSize: vm.opts.PageSize},
			)
			return page.Result, err
		},
		func(s *MapState, r async.Result[[]models.Assignment]) { s.Nearby = r },
	)
}
